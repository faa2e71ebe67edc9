//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package operations

import (
	gott "github.com/timburks/redit/pkg/types"
)

// KillLine cuts the rest of the line, or the whole line at its end.
type KillLine struct {
	operation
}

func NewKillLine(multiplier int) *KillLine {
	return &KillLine{operation{Multiplier: multiplier}}
}

func (op *KillLine) Perform(e gott.Editor) error {
	for i := 0; i < op.times(); i++ {
		e.KillLine()
	}
	return nil
}
