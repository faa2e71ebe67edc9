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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/timburks/redit/pkg/editor"
	gott "github.com/timburks/redit/pkg/types"
)

func setup(lines ...string) *editor.Editor {
	e := editor.NewEditor()
	e.LoadBytes([]byte(strings.Join(lines, "\n")))
	return e
}

func check(t *testing.T, e *editor.Editor, want ...string) {
	t.Helper()
	if diff := cmp.Diff(want, e.Lines()); diff != "" {
		t.Errorf("Unexpected document (-want +got):\n%s", diff)
	}
}

func TestDeleteCharacter(t *testing.T) {
	e := setup("abcdef")
	e.Perform(NewDeleteCharacter(2))
	check(t, e, "cdef")
	e.Repeat()
	check(t, e, "ef")
	e.Undo()
	check(t, e, "cdef")
	e.Undo()
	check(t, e, "abcdef")
}

func TestJoinLine(t *testing.T) {
	e := setup("a", "  b", "c", "d")
	e.Perform(NewJoinLine(2))
	check(t, e, "a b c", "d")
	e.Undo()
	check(t, e, "a", "  b", "c", "d")
}

func TestKillLine(t *testing.T) {
	e := setup("one", "two", "three")
	e.Perform(NewKillLine(2))
	check(t, e, "two", "three")
	text, kind := e.GetClipboard()
	if text != "" || kind != gott.Linewise {
		t.Errorf("Unexpected clipboard %q %s", text, kind)
	}
}

func TestPaste(t *testing.T) {
	e := setup("ab")
	e.SetClipboard("x", gott.Charwise)
	e.Perform(NewPaste(gott.PasteAfter, 3))
	check(t, e, "axxxb")
	e.Undo()
	check(t, e, "ab")

	e.SetClipboard("line", gott.Linewise)
	e.Perform(NewPaste(gott.PasteBefore, 1))
	check(t, e, "line", "ab")
}

func TestIndentLine(t *testing.T) {
	e := setup("{", "a", "b", "}")
	e.SetCursor(gott.Point{Row: 1})
	e.Perform(NewIndentLine(5))
	check(t, e, "{", "    a", "    b", "}")
	if e.GetCursor().Row != 3 {
		t.Errorf("Expected to stop on the last line, got row %d", e.GetCursor().Row)
	}
}

func TestInsert(t *testing.T) {
	e := setup("ad")
	e.SetCursor(gott.Point{Col: 1})
	e.Perform(NewInsert("bc"))
	check(t, e, "abcd")
	e.Repeat()
	check(t, e, "abcbcd")
	e.Perform(NewSplitLine())
	check(t, e, "abcbc", "d")
}

func TestDeleteSelection(t *testing.T) {
	e := setup("hello")
	if err := e.Perform(NewDeleteSelection()); err == nil {
		t.Errorf("Deleting without a selection should fail")
	}
	e.SetCursor(gott.Point{Col: 1})
	e.BeginSelection()
	e.MoveRight()
	if err := e.Perform(NewDeleteSelection()); err != nil {
		t.Fatal(err)
	}
	check(t, e, "hlo")
	e.Undo()
	check(t, e, "hello")
}

func TestReplaceCharacter(t *testing.T) {
	e := setup("abcdef")
	e.Perform(NewReplaceCharacter('x', 3))
	check(t, e, "xxxdef")
	if got := e.GetCursor(); got != (gott.Point{Row: 0, Col: 2}) {
		t.Errorf("Cursor at %+v, expected 0,2", got)
	}
	if err := e.Perform(NewReplaceCharacter('y', 5)); err == nil {
		t.Errorf("Replaced past the end of the line")
	}
	check(t, e, "xxxdef")
	e.Undo()
	check(t, e, "abcdef")
}
