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
	"errors"
	"fmt"

	gott "github.com/timburks/redit/pkg/types"
)

// Search holds the last query and whether its matches are highlighted.
type Search struct {
	Query     string
	Highlight bool
}

func (e *Editor) GetSearch() Search {
	return e.search
}

// ClearSearch turns off match highlighting.
func (e *Editor) ClearSearch() {
	e.search.Highlight = false
}

// SearchForward moves the cursor to the next occurrence of query, wrapping
// around the end of the document. The cursor does not move if there is no
// match.
func (e *Editor) SearchForward(query string) error {
	if query == "" {
		return errors.New("no search pattern")
	}
	e.search = Search{Query: query, Highlight: true}
	q := []rune(query)
	start := e.cursor
	rows := e.buffer.GetRowCount()
	// the cursor row is visited twice: after the cursor, then after wrapping
	for i := 0; i <= rows; i++ {
		row := (start.Row + i) % rows
		wrapped := start.Row+i >= rows
		from := 0
		if i == 0 {
			from = start.Col + 1
		}
		col := e.buffer.Row(row).Index(q, from)
		if col == -1 || (i == rows && col > start.Col) {
			continue
		}
		e.moveToMatch(gott.Point{Row: row, Col: col}, wrapped)
		return nil
	}
	return fmt.Errorf("pattern not found: %s", query)
}

// SearchBackward moves the cursor to the previous occurrence of query,
// wrapping around the start of the document.
func (e *Editor) SearchBackward(query string) error {
	if query == "" {
		return errors.New("no search pattern")
	}
	e.search = Search{Query: query, Highlight: true}
	q := []rune(query)
	start := e.cursor
	rows := e.buffer.GetRowCount()
	for i := 0; i <= rows; i++ {
		row := ((start.Row-i)%rows + rows) % rows
		wrapped := start.Row-i < 0
		r := e.buffer.Row(row)
		before := r.Length() + 1
		if i == 0 {
			before = start.Col
		}
		col := r.LastIndex(q, before)
		if col == -1 || (i == rows && col < start.Col) {
			continue
		}
		e.moveToMatch(gott.Point{Row: row, Col: col}, wrapped)
		return nil
	}
	return fmt.Errorf("pattern not found: %s", query)
}

// RepeatSearch searches again for the last query.
func (e *Editor) RepeatSearch(forward bool) error {
	if e.search.Query == "" {
		return errors.New("no previous search")
	}
	if forward {
		return e.SearchForward(e.search.Query)
	}
	return e.SearchBackward(e.search.Query)
}

func (e *Editor) moveToMatch(p gott.Point, wrapped bool) {
	e.cursor = p
	e.keepCursorInDocument()
	if wrapped {
		e.Recenter()
	} else {
		e.AdjustToCursor(gott.ScrollWithMargins)
	}
}
