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

package screen

import (
	"fmt"
	"strconv"

	"github.com/mattn/go-runewidth"

	gott "github.com/timburks/redit/pkg/types"
)

// A cell is one rune of a line placed at a display column.
type cell struct {
	x   int  // display column
	ch  rune // rune to draw
	col int  // index of the source rune in the line
}

// layout places the runes of a line in display columns, expanding tabs and
// stopping at width. Control characters are drawn as '?'.
func layout(line []rune, width, tabWidth int) []cell {
	if tabWidth < 1 {
		tabWidth = 1
	}
	var cells []cell
	x := 0
	for i, r := range line {
		if r == '\t' {
			n := tabWidth - x%tabWidth
			for k := 0; k < n && x < width; k++ {
				cells = append(cells, cell{x: x, ch: ' ', col: i})
				x++
			}
			if x >= width {
				break
			}
			continue
		}
		w := runewidth.RuneWidth(r)
		if w == 0 {
			r, w = '?', 1
		}
		if x+w > width {
			break
		}
		cells = append(cells, cell{x: x, ch: r, col: i})
		x += w
	}
	return cells
}

// displayColumn returns the display column of the rune at col.
func displayColumn(line []rune, col, tabWidth int) int {
	if tabWidth < 1 {
		tabWidth = 1
	}
	x := 0
	for i, r := range line {
		if i >= col {
			break
		}
		switch w := runewidth.RuneWidth(r); {
		case r == '\t':
			x += tabWidth - x%tabWidth
		case w == 0:
			x++
		default:
			x += w
		}
	}
	if col > len(line) {
		x += col - len(line)
	}
	return x
}

// selected reports whether the rune at (row, col) is inside a selection.
// The last row of a multi-row selection ends before its end column; a
// single-row selection includes the character under its end.
func selected(span *gott.Span, row, col int) bool {
	if span == nil || row < span.Start.Row || row > span.End.Row {
		return false
	}
	if span.Start.Row == span.End.Row {
		return col >= span.Start.Col && col <= span.End.Col
	}
	switch row {
	case span.Start.Row:
		return col >= span.Start.Col
	case span.End.Row:
		return col < span.End.Col
	}
	return true
}

// matches marks the runes of a line that are part of an occurrence of query.
func matches(line []rune, query string) []bool {
	q := []rune(query)
	if len(q) == 0 || len(q) > len(line) {
		return nil
	}
	marks := make([]bool, len(line))
	for i := 0; i+len(q) <= len(line); i++ {
		if string(line[i:i+len(q)]) == string(q) {
			for k := range q {
				marks[i+k] = true
			}
		}
	}
	return marks
}

// modeline describes the frame on one line of the given width.
func modeline(f *gott.Frame, width int) string {
	name := f.FileName
	if name == "" {
		name = "Untitled"
	}
	if f.Modified {
		name += " [+]"
	}
	left := fmt.Sprintf(" %s  %s ", f.Mode, name)
	right := fmt.Sprintf(" %d:%d ", f.Cursor.Row+1, f.Cursor.Col+1)
	space := width - runewidth.StringWidth(right)
	if space < 0 {
		return runewidth.Truncate(right, width, "")
	}
	left = runewidth.Truncate(left, space, "…")
	return runewidth.FillRight(left, space) + right
}

// numberWidth is the width of the line number gutter, including its
// trailing space.
func numberWidth(lineCount int) int {
	return len(strconv.Itoa(lineCount)) + 1
}
