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
	"errors"

	gott "github.com/timburks/redit/pkg/types"
)

// ReplaceCharacter overwrites characters starting at the cursor. The cursor
// ends on the last replaced character.
type ReplaceCharacter struct {
	operation
	Character rune
}

func NewReplaceCharacter(c rune, multiplier int) *ReplaceCharacter {
	return &ReplaceCharacter{operation: operation{Multiplier: multiplier}, Character: c}
}

func (op *ReplaceCharacter) Perform(e gott.Editor) error {
	line := []rune(e.GetLine(e.GetCursor().Row))
	if e.GetCursor().Col+op.times() > len(line) {
		return errors.New("not enough characters to replace")
	}
	for i := 0; i < op.times(); i++ {
		if i > 0 {
			e.MoveRight()
		}
		e.ReplaceCharacter(op.Character)
	}
	return nil
}
