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

package editor

import (
	"testing"

	gott "github.com/timburks/redit/pkg/types"
)

func TestSplitLine(t *testing.T) {
	e := load("hello")
	e.SetCursor(gott.Point{Row: 0, Col: 2})
	e.SplitLine()
	checkLines(t, e, "he", "llo")
	checkCursor(t, e, 1, 0)

	e.MoveToEndOfLine()
	e.SplitLine()
	checkLines(t, e, "he", "llo", "")
	checkCursor(t, e, 2, 0)
}

func TestBackspace(t *testing.T) {
	e := load("ab", "cd")
	e.SetCursor(gott.Point{Row: 1, Col: 0})
	e.Backspace()
	checkLines(t, e, "abcd")
	checkCursor(t, e, 0, 2)

	e.Backspace()
	checkLines(t, e, "acd")
	checkCursor(t, e, 0, 1)

	// backspace at the start of the document does nothing
	e.MoveToBeginningOfLine()
	e.Backspace()
	checkLines(t, e, "acd")
	checkCursor(t, e, 0, 0)
}

func TestElectricPair(t *testing.T) {
	e := load("")
	e.InsertChar('f')
	e.InsertChar('(')
	checkLines(t, e, "f()")
	checkCursor(t, e, 0, 2)
	e.InsertChar('x')
	checkLines(t, e, "f(x)")
	e.Backspace()
	checkLines(t, e, "f()")

	// an empty pair is removed at once
	e.Backspace()
	checkLines(t, e, "f")
	checkCursor(t, e, 0, 1)

	options := e.GetOptions()
	options.ElectricPair = false
	e.SetOptions(options)
	e.InsertChar('[')
	checkLines(t, e, "f[")
	e.InsertChar(']')
	e.MoveLeft()
	e.Backspace()
	checkLines(t, e, "f]")
}

func TestDeleteAtCursor(t *testing.T) {
	for _, test := range []struct {
		name   string
		lines  []string
		cursor gott.Point
		want   []string
		row    int
		col    int
	}{
		{"middle", []string{"abc"}, gott.Point{Row: 0, Col: 1}, []string{"ac"}, 0, 1},
		{"last character", []string{"abc"}, gott.Point{Row: 0, Col: 2}, []string{"ab"}, 0, 2},
		{"past the end", []string{"abc"}, gott.Point{Row: 0, Col: 3}, []string{"abc"}, 0, 3},
		{"empty line", []string{"", "x"}, gott.Point{Row: 0, Col: 0}, []string{"x"}, 0, 0},
		{"empty last line", []string{"x", ""}, gott.Point{Row: 1, Col: 0}, []string{"x"}, 0, 0},
		{"only line", []string{""}, gott.Point{Row: 0, Col: 0}, []string{""}, 0, 0},
	} {
		t.Run(test.name, func(t *testing.T) {
			e := load(test.lines...)
			e.SetCursor(test.cursor)
			e.DeleteAtCursor()
			checkLines(t, e, test.want...)
			checkCursor(t, e, test.row, test.col)
		})
	}
}

func TestJoinNextLine(t *testing.T) {
	for _, test := range []struct {
		name  string
		lines []string
		want  []string
		col   int
	}{
		{"separator", []string{"foo", "   bar"}, []string{"foo bar"}, 3},
		{"trailing space", []string{"foo ", "bar"}, []string{"foo bar"}, 4},
		{"empty current line", []string{"", "  bar"}, []string{"bar"}, 0},
		{"blank next line", []string{"foo", "   "}, []string{"foo"}, 3},
		{"last line", []string{"foo"}, []string{"foo"}, 0},
	} {
		t.Run(test.name, func(t *testing.T) {
			e := load(test.lines...)
			e.JoinNextLine()
			checkLines(t, e, test.want...)
			checkCursor(t, e, 0, test.col)
		})
	}
}

func TestOpenLine(t *testing.T) {
	e := load("\tfoo {", "}")
	e.OpenLine(false)
	checkLines(t, e, "\tfoo {", "\t", "}")
	checkCursor(t, e, 1, 1)

	e = load("  foo")
	e.OpenLine(true)
	checkLines(t, e, "  ", "  foo")
	checkCursor(t, e, 0, 2)
}

func TestIndentCurrentLine(t *testing.T) {
	e := load("  {", "x", "}")
	options := e.GetOptions()
	options.IndentWidth = 2
	e.SetOptions(options)

	e.SetCursor(gott.Point{Row: 2, Col: 0})
	e.IndentCurrentLine()
	checkLines(t, e, "  {", "x", "}")
	checkCursor(t, e, 2, 0)

	e.SetCursor(gott.Point{Row: 1, Col: 0})
	e.IndentCurrentLine()
	checkLines(t, e, "  {", "  x", "}")
	checkCursor(t, e, 1, 2)

	e.SetCursor(gott.Point{Row: 0, Col: 3})
	e.IndentCurrentLine()
	checkLines(t, e, "{", "  x", "}")
	checkCursor(t, e, 0, 0)
}

func TestIndentDepthNeverNegative(t *testing.T) {
	e := load("}", "}", "{", "    a")
	e.SetCursor(gott.Point{Row: 3, Col: 0})
	e.IndentCurrentLine()
	checkLines(t, e, "}", "}", "{", "    a")
	checkCursor(t, e, 3, 4)

	// braces in strings are counted too
	e = load(`s := "{"`, "x")
	e.SetCursor(gott.Point{Row: 1, Col: 0})
	e.IndentCurrentLine()
	checkLines(t, e, `s := "{"`, "    x")

	// blank lines get only the indentation
	e = load("{", "")
	e.SetCursor(gott.Point{Row: 1, Col: 0})
	e.IndentCurrentLine()
	checkLines(t, e, "{", "    ")
	checkCursor(t, e, 1, 4)
}

func TestInsertTab(t *testing.T) {
	e := load("ab")
	e.SetCursor(gott.Point{Row: 0, Col: 1})
	e.InsertTab()
	checkLines(t, e, "a   b")
	checkCursor(t, e, 0, 4)
}

func TestInsertText(t *testing.T) {
	e := load("ac")
	e.SetCursor(gott.Point{Row: 0, Col: 1})
	e.InsertText("b\nxy\nz")
	checkLines(t, e, "ab", "xy", "zc")
	checkCursor(t, e, 2, 1)
}

func TestMovement(t *testing.T) {
	e := load("long line", "ab", "  indented")
	e.MoveToEndOfLine()
	checkCursor(t, e, 0, 9)
	e.MoveRight()
	checkCursor(t, e, 0, 9)
	e.MoveDown()
	checkCursor(t, e, 1, 2)
	e.MoveDown()
	e.MoveToFirstNonBlank()
	checkCursor(t, e, 2, 2)
	e.MoveDown()
	checkCursor(t, e, 2, 2)
	e.MoveToBeginningOfLine()
	e.MoveLeft()
	checkCursor(t, e, 2, 0)

	if err := e.MoveCursorToLine(4); err == nil {
		t.Errorf("Moving past the last line should fail")
	}
	if err := e.MoveCursorToLine(0); err == nil {
		t.Errorf("Moving to line zero should fail")
	}
	checkCursor(t, e, 2, 0)
	if err := e.MoveCursorToLine(1); err != nil {
		t.Errorf("Unexpected error %v", err)
	}
	checkCursor(t, e, 0, 0)
}
