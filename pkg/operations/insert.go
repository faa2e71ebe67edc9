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

// Insert inserts text at the cursor.
type Insert struct {
	operation
	Text string
}

func NewInsert(text string) *Insert {
	return &Insert{Text: text}
}

func (op *Insert) Perform(e gott.Editor) error {
	for i := 0; i < op.times(); i++ {
		e.InsertText(op.Text)
	}
	return nil
}

// SplitLine breaks the line at the cursor.
type SplitLine struct {
	operation
}

func NewSplitLine() *SplitLine {
	return &SplitLine{}
}

func (op *SplitLine) Perform(e gott.Editor) error {
	e.SplitLine()
	return nil
}
