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

// A Selection is a visual selection. The anchor stays where the selection
// began and the active end follows the cursor.
type Selection struct {
	Anchor gott.Point
	Active gott.Point
}

// Span returns the selection with its ends in document order.
func (s *Selection) Span() gott.Span {
	if s.Active.Before(s.Anchor) {
		return gott.Span{Start: s.Active, End: s.Anchor}
	}
	return gott.Span{Start: s.Anchor, End: s.Active}
}

// BeginSelection anchors a selection at the cursor.
func (e *Editor) BeginSelection() {
	e.selection = &Selection{Anchor: e.cursor, Active: e.cursor}
}

func (e *Editor) ClearSelection() {
	e.selection = nil
}

func (e *Editor) HasSelection() bool {
	return e.selection != nil
}

// GetSelection returns the current selection, if any.
func (e *Editor) GetSelection() (Selection, bool) {
	if e.selection == nil {
		return Selection{}, false
	}
	return *e.selection, true
}

// CopySelection puts the selected text on the clipboard, moves the cursor to
// the start of the selection and ends it.
func (e *Editor) CopySelection() bool {
	if e.selection == nil {
		return false
	}
	span := e.selection.Span()
	e.setClipboard(e.buffer.SpanText(span), gott.Charwise)
	e.selection = nil
	e.cursor = span.Start
	e.keepCursorInDocument()
	e.AdjustToCursor(gott.ScrollEnough)
	return true
}

// DeleteSelection removes the selected text, puts it on the clipboard, moves
// the cursor to the start of the selection and ends it.
func (e *Editor) DeleteSelection() bool {
	if e.selection == nil {
		return false
	}
	span := e.selection.Span()
	e.setClipboard(e.buffer.DeleteSpan(span), gott.Charwise)
	e.selection = nil
	e.cursor = span.Start
	e.keepCursorInDocument()
	e.clampOffset()
	e.AdjustToCursor(gott.ScrollEnough)
	return true
}
