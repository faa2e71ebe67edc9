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

// A Buffer holds the lines of a document. It always contains at least one
// row.
type Buffer struct {
	rows     []*Row
	fileName string
	modified bool
}

func NewBuffer() *Buffer {
	return &Buffer{rows: []*Row{NewRow("")}}
}

func (b *Buffer) GetFileName() string {
	return b.fileName
}

func (b *Buffer) SetFileName(name string) {
	b.fileName = name
}

// LoadBytes replaces the buffer contents. Invalid UTF-8 is replaced with
// U+FFFD and line endings are split on "\n" with any trailing "\r" removed.
func (b *Buffer) LoadBytes(bytes []byte) {
	s := strings.ToValidUTF8(string(bytes), "\uFFFD")
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	b.rows = make([]*Row, len(lines))
	for i, line := range lines {
		b.rows[i] = NewRow(strings.TrimSuffix(line, "\r"))
	}
	b.modified = false
}

// Bytes joins the rows with "\n".
func (b *Buffer) Bytes() []byte {
	return []byte(strings.Join(b.Lines(), "\n"))
}

func (b *Buffer) Lines() []string {
	lines := make([]string, len(b.rows))
	for i, row := range b.rows {
		lines[i] = row.String()
	}
	return lines
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

func (b *Buffer) GetRowLength(i int) int {
	if i < 0 || i >= len(b.rows) {
		return 0
	}
	return b.rows[i].Length()
}

func (b *Buffer) Row(i int) *Row {
	return b.rows[i]
}

// InsertRow inserts row at index i.
func (b *Buffer) InsertRow(i int, row *Row) {
	b.rows = append(b.rows, nil)
	copy(b.rows[i+1:], b.rows[i:])
	b.rows[i] = row
	b.modified = true
}

// DeleteRow removes the row at index i. The last remaining row is emptied
// instead.
func (b *Buffer) DeleteRow(i int) *Row {
	row := b.rows[i]
	if len(b.rows) == 1 {
		b.rows[0] = NewRow("")
	} else {
		b.rows = append(b.rows[0:i], b.rows[i+1:]...)
	}
	b.modified = true
	return row
}

// InsertText inserts text containing newlines at p and returns the position
// just after the inserted text.
func (b *Buffer) InsertText(p gott.Point, text []rune) gott.Point {
	parts := splitLines(text)
	row := b.rows[p.Row]
	b.modified = true
	if len(parts) == 1 {
		row.InsertText(p.Col, parts[0])
		return gott.Point{Row: p.Row, Col: p.Col + len(parts[0])}
	}
	tail := row.Split(p.Col)
	row.InsertText(row.Length(), parts[0])
	for i, part := range parts[1:] {
		b.InsertRow(p.Row+1+i, &Row{Text: append([]rune{}, part...)})
	}
	lastRow := p.Row + len(parts) - 1
	end := gott.Point{Row: lastRow, Col: b.rows[lastRow].Length()}
	b.rows[lastRow].Join(tail)
	return end
}

// span returns the row and column bounds covered by a normalized span. The
// end column is exclusive. On a single row the character under End is
// included; across rows the last row contributes the characters before End.
// clamp moves p to the nearest position inside the document.
func (b *Buffer) clamp(p gott.Point) gott.Point {
	p.Row = max(0, min(p.Row, b.GetRowCount()-1))
	p.Col = max(0, min(p.Col, b.GetRowLength(p.Row)))
	return p
}

func (b *Buffer) span(s gott.Span) (startRow, startCol, endRow, endCol int) {
	s.Start, s.End = b.clamp(s.Start), b.clamp(s.End)
	startRow, endRow = s.Start.Row, s.End.Row
	startCol = min(s.Start.Col, b.GetRowLength(startRow))
	if startRow == endRow {
		endCol = min(s.End.Col+1, b.GetRowLength(endRow))
	} else {
		endCol = min(s.End.Col, b.GetRowLength(endRow))
	}
	return
}

// SpanText returns the text covered by a span, rows joined by newlines.
func (b *Buffer) SpanText(s gott.Span) []rune {
	startRow, startCol, endRow, endCol := b.span(s)
	if startRow == endRow {
		if startCol >= endCol {
			return []rune{}
		}
		return append([]rune{}, b.rows[startRow].Text[startCol:endCol]...)
	}
	text := append([]rune{}, b.rows[startRow].Text[startCol:]...)
	for i := startRow + 1; i < endRow; i++ {
		text = append(text, '\n')
		text = append(text, b.rows[i].Text...)
	}
	text = append(text, '\n')
	text = append(text, b.rows[endRow].Text[0:endCol]...)
	return text
}

// DeleteSpan removes the text covered by a span, merging the partial first
// and last rows, and returns the removed text.
func (b *Buffer) DeleteSpan(s gott.Span) []rune {
	text := b.SpanText(s)
	startRow, startCol, endRow, endCol := b.span(s)
	if startRow == endRow {
		b.rows[startRow].DeleteRange(startCol, endCol)
	} else {
		first := b.rows[startRow]
		first.DeleteRange(startCol, first.Length())
		first.Join(&Row{Text: b.rows[endRow].Text[endCol:]})
		b.rows = append(b.rows[0:startRow+1], b.rows[endRow+1:]...)
	}
	b.modified = true
	return text
}

// Snapshot returns a deep copy of the rows.
func (b *Buffer) Snapshot() [][]rune {
	lines := make([][]rune, len(b.rows))
	for i, row := range b.rows {
		lines[i] = append([]rune{}, row.Text...)
	}
	return lines
}

// Restore replaces the rows with a deep copy of lines.
func (b *Buffer) Restore(lines [][]rune) {
	b.rows = make([]*Row, len(lines))
	for i, line := range lines {
		b.rows[i] = &Row{Text: append([]rune{}, line...)}
	}
	if len(b.rows) == 0 {
		b.rows = []*Row{NewRow("")}
	}
	b.modified = true
}

func splitLines(text []rune) [][]rune {
	parts := [][]rune{{}}
	for _, c := range text {
		if c == '\n' {
			parts = append(parts, []rune{})
		} else {
			parts[len(parts)-1] = append(parts[len(parts)-1], c)
		}
	}
	return parts
}
