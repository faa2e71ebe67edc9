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
	gott "github.com/timburks/redit/pkg/types"
)

func (e *Editor) SetSize(size gott.Size) {
	e.size = size
	e.clampOffset()
}

func (e *Editor) GetSize() gott.Size {
	return e.size
}

// GetOffset returns the index of the first visible row.
func (e *Editor) GetOffset() int {
	return e.offset
}

func (e *Editor) height() int {
	return max(1, e.size.Rows)
}

// margins returns the scroll margins, reduced so that they never overlap.
func (e *Editor) margins() (top, bottom int) {
	limit := (e.height() - 1) / 2
	top = min(max(0, e.options.MarginTop), limit)
	bottom = min(max(0, e.options.MarginBottom), limit)
	return
}

func (e *Editor) clampOffset() {
	maxOffset := max(0, e.buffer.GetRowCount()-e.height())
	if e.offset > maxOffset {
		e.offset = maxOffset
	}
	if e.offset < 0 {
		e.offset = 0
	}
}

// scrollOneRow moves the viewport by at most one row to keep the cursor out
// of the scroll margins after a single-row move.
func (e *Editor) scrollOneRow() {
	top, bottom := e.margins()
	if e.cursor.Row < e.offset+top {
		e.offset--
	} else if e.cursor.Row > e.offset+e.height()-1-bottom {
		e.offset++
	}
	e.clampOffset()
}

// Recenter puts the cursor row in the middle of the viewport.
func (e *Editor) Recenter() {
	e.offset = e.cursor.Row - e.height()/2
	e.clampOffset()
}

// AdjustToCursor scrolls to reveal the cursor. ScrollEnough moves the
// viewport as little as possible; ScrollWithMargins also keeps the cursor
// outside the scroll margins.
func (e *Editor) AdjustToCursor(mode gott.ScrollMode) {
	top, bottom := 0, 0
	if mode == gott.ScrollWithMargins {
		top, bottom = e.margins()
	}
	if e.cursor.Row < e.offset+top {
		e.offset = e.cursor.Row - top
	}
	if e.cursor.Row > e.offset+e.height()-1-bottom {
		e.offset = e.cursor.Row - e.height() + 1 + bottom
	}
	e.clampOffset()
}
