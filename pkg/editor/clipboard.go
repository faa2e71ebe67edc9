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
	"log"

	"github.com/atotto/clipboard"

	gott "github.com/timburks/redit/pkg/types"
)

// The Clipboard is a single register. Kind records whether it was last
// written with part of a line or with whole lines.
type Clipboard struct {
	Text []rune
	Kind gott.ClipboardKind
}

func (e *Editor) GetClipboard() (string, gott.ClipboardKind) {
	return string(e.clipboard.Text), e.clipboard.Kind
}

func (e *Editor) SetClipboard(text string, kind gott.ClipboardKind) {
	e.setClipboard([]rune(text), kind)
}

func (e *Editor) setClipboard(text []rune, kind gott.ClipboardKind) {
	e.clipboard = Clipboard{Text: append([]rune{}, text...), Kind: kind}
	if e.options.SystemClipboard && e.system != nil {
		if err := e.system.WriteAll(string(text)); err != nil {
			log.Printf("system clipboard: %v", err)
		}
	}
}

// KillLine cuts from the cursor to the end of the line. At the end of the
// line it cuts the whole line instead.
func (e *Editor) KillLine() {
	row := e.currentRow()
	if e.cursor.Col < row.Length() {
		e.setClipboard(row.DeleteRange(e.cursor.Col, row.Length()), gott.Charwise)
		e.buffer.modified = true
	} else {
		e.setClipboard(e.buffer.DeleteRow(e.cursor.Row).Text, gott.Linewise)
		e.cursor.Col = 0
	}
	e.keepCursorInDocument()
	e.clampOffset()
}

// YankLine copies the current line.
func (e *Editor) YankLine() {
	e.setClipboard(e.currentRow().Text, gott.Linewise)
}

// Paste inserts the clipboard before or after the cursor. Whole lines go
// above or below the current line; other text goes before or after the
// character under the cursor, or at the end of the line when the cursor is
// past its last character.
func (e *Editor) Paste(position gott.PastePosition) {
	text := e.clipboard.Text
	if e.clipboard.Kind == gott.Linewise {
		row := e.cursor.Row
		if position == gott.PasteAfter {
			row++
		}
		for i, line := range splitLines(text) {
			e.buffer.InsertRow(row+i, &Row{Text: line})
		}
		e.cursor = gott.Point{Row: row, Col: 0}
	} else {
		if len(text) == 0 {
			return
		}
		at := e.cursor
		if position == gott.PasteAfter && at.Col < e.currentRow().Length() {
			at.Col++
		}
		end := e.buffer.InsertText(at, text)
		e.cursor = gott.Point{Row: end.Row, Col: max(0, end.Col-1)}
	}
	e.keepCursorInDocument()
	e.AdjustToCursor(gott.ScrollEnough)
}

// HostClipboard writes to the clipboard of the host system.
type HostClipboard struct{}

// NewHostClipboard returns nil if the host has no usable clipboard.
func NewHostClipboard() *HostClipboard {
	if clipboard.Unsupported {
		return nil
	}
	return &HostClipboard{}
}

func (h *HostClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
