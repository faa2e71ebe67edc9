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

// JoinLine joins the current line with the next one.
type JoinLine struct {
	operation
}

func NewJoinLine(multiplier int) *JoinLine {
	return &JoinLine{operation{Multiplier: multiplier}}
}

func (op *JoinLine) Perform(e gott.Editor) error {
	for i := 0; i < op.times(); i++ {
		e.JoinNextLine()
	}
	return nil
}
