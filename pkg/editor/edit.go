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
	"strings"

	gott "github.com/timburks/redit/pkg/types"
)

// InsertChar inserts c at the cursor and advances the cursor. An opening
// delimiter also inserts its closer when electric pairing is enabled.
func (e *Editor) InsertChar(c rune) {
	if c == '\n' {
		e.SplitLine()
		return
	}
	e.currentRow().InsertChar(e.cursor.Col, c)
	e.cursor.Col++
	if closer, ok := e.closerFor(c); ok {
		e.currentRow().InsertChar(e.cursor.Col, closer)
	}
	e.buffer.modified = true
	e.keepCursorInDocument()
}

// InsertText inserts text at the cursor without electric pairing and leaves
// the cursor after it.
func (e *Editor) InsertText(text string) {
	e.cursor = e.buffer.InsertText(e.cursor, []rune(text))
	e.keepCursorInDocument()
	e.AdjustToCursor(gott.ScrollEnough)
}

func (e *Editor) closerFor(c rune) (rune, bool) {
	if !e.options.ElectricPair {
		return 0, false
	}
	closer, ok := e.options.Pairs[c]
	return closer, ok
}

// Backspace removes the character before the cursor, or joins the current
// line onto the previous one at column zero. An empty pair around the cursor
// is removed together.
func (e *Editor) Backspace() {
	row := e.currentRow()
	if e.cursor.Col > 0 {
		before := row.Text[e.cursor.Col-1]
		end := e.cursor.Col
		if closer, ok := e.closerFor(before); ok && end < row.Length() && row.Text[end] == closer {
			end++
		}
		row.DeleteRange(e.cursor.Col-1, end)
		e.cursor.Col--
		e.buffer.modified = true
	} else if e.cursor.Row > 0 {
		previous := e.buffer.Row(e.cursor.Row - 1)
		col := previous.Length()
		previous.Join(row)
		e.buffer.DeleteRow(e.cursor.Row)
		e.cursor.Row--
		e.cursor.Col = col
		e.scrollOneRow()
	}
	e.keepCursorInDocument()
}

// ReplaceCharacter overwrites the character under the cursor. It returns
// false at the end of a line.
func (e *Editor) ReplaceCharacter(c rune) bool {
	row := e.currentRow()
	if e.cursor.Col >= row.Length() || c == '\n' {
		return false
	}
	row.Text[e.cursor.Col] = c
	e.buffer.modified = true
	return true
}

// DeleteAtCursor removes the character under the cursor. On an empty line it
// removes the line unless it is the only one.
func (e *Editor) DeleteAtCursor() {
	row := e.currentRow()
	if row.Length() > 0 {
		if e.cursor.Col < row.Length() {
			row.DeleteChar(e.cursor.Col)
			e.buffer.modified = true
		}
	} else if e.buffer.GetRowCount() > 1 {
		e.buffer.DeleteRow(e.cursor.Row)
		e.cursor.Col = 0
	}
	e.keepCursorInDocument()
	e.clampOffset()
}

// SplitLine moves the text after the cursor to a new line below.
func (e *Editor) SplitLine() {
	tail := e.currentRow().Split(e.cursor.Col)
	e.buffer.InsertRow(e.cursor.Row+1, tail)
	e.cursor.Row++
	e.cursor.Col = 0
	e.keepCursorInDocument()
	e.scrollOneRow()
}

// JoinNextLine appends the next line, without its leading whitespace, to the
// current one. A single space separates them when the current line ends in
// a non-space character and the appended text is not empty.
func (e *Editor) JoinNextLine() {
	if e.cursor.Row >= e.buffer.GetRowCount()-1 {
		return
	}
	row := e.currentRow()
	next := e.buffer.Row(e.cursor.Row + 1)
	appended := []rune(strings.TrimLeft(next.String(), " \t"))
	col := row.Length()
	if row.Length() > 0 && !row.EndsInSpace() && len(appended) > 0 {
		row.InsertChar(row.Length(), ' ')
	}
	row.Join(&Row{Text: appended})
	e.buffer.DeleteRow(e.cursor.Row + 1)
	e.cursor.Col = col
	e.keepCursorInDocument()
	e.clampOffset()
}

// OpenLine inserts a line above or below the cursor with the indentation of
// the current line and moves the cursor to its end.
func (e *Editor) OpenLine(above bool) {
	indentation := e.currentRow().Indentation()
	row := e.cursor.Row
	if !above {
		row++
	}
	e.buffer.InsertRow(row, &Row{Text: indentation})
	e.cursor = gott.Point{Row: row, Col: len(indentation)}
	e.keepCursorInDocument()
	e.AdjustToCursor(gott.ScrollWithMargins)
}

// IndentCurrentLine reindents the current line by brace depth. The depth is
// the net count of braces on the preceding lines, never below zero, less one
// when the line starts with a closing brace. Braces in strings and comments
// are counted too.
func (e *Editor) IndentCurrentLine() {
	depth := 0
	for i := 0; i < e.cursor.Row; i++ {
		row := e.buffer.Row(i)
		depth = max(0, depth+row.Count('{')-row.Count('}'))
	}
	row := e.currentRow()
	blank := row.FirstNonBlank()
	if blank < row.Length() && row.Text[blank] == '}' {
		depth = max(0, depth-1)
	}
	indentation := []rune(strings.Repeat(" ", depth*e.options.IndentWidth))
	row.DeleteRange(0, blank)
	row.InsertText(0, indentation)
	e.buffer.modified = true
	e.cursor.Col = row.FirstNonBlank()
	e.keepCursorInDocument()
}

// InsertTab inserts spaces up to the next multiple of the indent width.
func (e *Editor) InsertTab() {
	w := e.options.IndentWidth
	e.currentRow().InsertText(e.cursor.Col, []rune(strings.Repeat(" ", w-e.cursor.Col%w)))
	e.cursor.Col += w - e.cursor.Col%w
	e.buffer.modified = true
	e.keepCursorInDocument()
}
