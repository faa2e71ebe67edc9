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
	"unicode"
)

// A row of text in the editor
type Row struct {
	Text []rune
}

func NewRow(text string) *Row {
	return &Row{Text: []rune(text)}
}

func (r *Row) Length() int {
	return len(r.Text)
}

func (r *Row) String() string {
	return string(r.Text)
}

func (r *Row) InsertChar(col int, c rune) {
	r.InsertText(col, []rune{c})
}

// insert text at col; col is clamped to the row length
func (r *Row) InsertText(col int, text []rune) {
	if col > len(r.Text) {
		col = len(r.Text)
	}
	if col < 0 {
		col = 0
	}
	line := make([]rune, 0, len(r.Text)+len(text))
	line = append(line, r.Text[0:col]...)
	line = append(line, text...)
	line = append(line, r.Text[col:]...)
	r.Text = line
}

// delete character at col and return the deleted character
func (r *Row) DeleteChar(col int) rune {
	if col < 0 || col >= len(r.Text) {
		return 0
	}
	c := r.Text[col]
	r.DeleteRange(col, col+1)
	return c
}

// delete the characters in [start, end) and return them
func (r *Row) DeleteRange(start, end int) []rune {
	if start < 0 {
		start = 0
	}
	if end > len(r.Text) {
		end = len(r.Text)
	}
	if start >= end {
		return nil
	}
	deleted := append([]rune{}, r.Text[start:end]...)
	line := make([]rune, 0, len(r.Text)-len(deleted))
	line = append(line, r.Text[0:start]...)
	line = append(line, r.Text[end:]...)
	r.Text = line
	return deleted
}

// splits row at col, return a new row containing the remaining text.
func (r *Row) Split(col int) *Row {
	if col >= len(r.Text) {
		return NewRow("")
	}
	after := append([]rune{}, r.Text[col:]...)
	r.Text = append([]rune{}, r.Text[0:col]...)
	return &Row{Text: after}
}

// joins rows by appending the passed-in row to the current row
func (r *Row) Join(other *Row) {
	r.Text = append(append([]rune{}, r.Text...), other.Text...)
}

// Indentation returns the leading blanks of the row.
func (r *Row) Indentation() []rune {
	return append([]rune{}, r.Text[0:r.FirstNonBlank()]...)
}

// FirstNonBlank returns the column of the first non-blank character, or the
// row length if the row is blank.
func (r *Row) FirstNonBlank() int {
	for i, c := range r.Text {
		if c != ' ' && c != '\t' {
			return i
		}
	}
	return len(r.Text)
}

// EndsInSpace returns true if the last character of the row is whitespace.
func (r *Row) EndsInSpace() bool {
	return len(r.Text) > 0 && unicode.IsSpace(r.Text[len(r.Text)-1])
}

// Index returns the column of the first occurrence of query at or after
// col, or -1.
func (r *Row) Index(query []rune, col int) int {
	if col < 0 {
		col = 0
	}
	for i := col; i+len(query) <= len(r.Text); i++ {
		if r.matchAt(query, i) {
			return i
		}
	}
	return -1
}

// LastIndex returns the column of the last occurrence of query that starts
// before col, or -1.
func (r *Row) LastIndex(query []rune, col int) int {
	last := len(r.Text) - len(query)
	if col-1 < last {
		last = col - 1
	}
	for i := last; i >= 0; i-- {
		if r.matchAt(query, i) {
			return i
		}
	}
	return -1
}

func (r *Row) matchAt(query []rune, col int) bool {
	for j, c := range query {
		if r.Text[col+j] != c {
			return false
		}
	}
	return true
}

// Count returns the number of occurrences of c in the row.
func (r *Row) Count(c rune) int {
	n := 0
	for _, x := range r.Text {
		if x == c {
			n++
		}
	}
	return n
}
