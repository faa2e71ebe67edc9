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
	"io/fs"
	"log"
	"os"

	gott "github.com/timburks/redit/pkg/types"
)

// Options control editing behavior. They are usually set from the Lua
// configuration.
type Options struct {
	IndentWidth     int
	ElectricPair    bool
	Pairs           map[rune]rune // opener -> closer
	MarginTop       int
	MarginBottom    int
	SystemClipboard bool
	RememberPlaces  bool
}

func DefaultOptions() Options {
	return Options{
		IndentWidth:  4,
		ElectricPair: true,
		Pairs: map[rune]rune{
			'(':  ')',
			'[':  ']',
			'{':  '}',
			'"':  '"',
			'\'': '\'',
		},
		MarginTop:      3,
		MarginBottom:   3,
		RememberPlaces: true,
	}
}

// The Editor owns the document being edited along with the cursor, the
// viewport, the visual selection, the clipboard register, and the undo
// history. There is one editor in a redit instance.
type Editor struct {
	buffer    *Buffer
	cursor    gott.Point
	offset    int       // index of the first visible row
	size      gott.Size // size of the text area
	options   Options
	selection *Selection
	history   *History
	clipboard Clipboard
	search    Search
	previous  gott.Operation // last operation performed, available to repeat
	places    gott.PlaceStore
	system    gott.SystemClipboard
}

var _ gott.Editor = (*Editor)(nil)

func NewEditor() *Editor {
	e := &Editor{
		buffer:  NewBuffer(),
		size:    gott.Size{Rows: 24, Cols: 80},
		options: DefaultOptions(),
		history: NewHistory(),
	}
	e.history.Reset(e.buffer.Snapshot(), e.cursor)
	return e
}

func (e *Editor) GetOptions() Options {
	return e.options
}

func (e *Editor) SetOptions(options Options) {
	if options.IndentWidth < 1 {
		options.IndentWidth = 1
	}
	e.options = options
	e.clampOffset()
}

// SetPlaceStore sets the store used to remember cursor positions per file.
func (e *Editor) SetPlaceStore(places gott.PlaceStore) {
	e.places = places
}

// SetSystemClipboard sets the clipboard that mirrors register writes.
func (e *Editor) SetSystemClipboard(system gott.SystemClipboard) {
	e.system = system
}

func (e *Editor) GetCursor() gott.Point {
	return e.cursor
}

// SetCursor moves the cursor, clamping it to the document.
func (e *Editor) SetCursor(cursor gott.Point) {
	e.cursor = cursor
	e.keepCursorInDocument()
}

func (e *Editor) GetLineCount() int {
	return e.buffer.GetRowCount()
}

func (e *Editor) GetLine(row int) string {
	if row < 0 || row >= e.buffer.GetRowCount() {
		return ""
	}
	return e.buffer.Row(row).String()
}

func (e *Editor) Lines() []string {
	return e.buffer.Lines()
}

func (e *Editor) GetFileName() string {
	return e.buffer.GetFileName()
}

func (e *Editor) Modified() bool {
	return e.buffer.modified
}

// keepCursorInDocument clamps the cursor to valid rows and columns and lets
// an active selection follow it.
func (e *Editor) keepCursorInDocument() {
	e.cursor = e.buffer.clamp(e.cursor)
	if e.selection != nil {
		e.selection.Anchor = e.buffer.clamp(e.selection.Anchor)
		e.selection.Active = e.cursor
	}
}

func (e *Editor) currentRow() *Row {
	return e.buffer.Row(e.cursor.Row)
}

func (e *Editor) MoveLeft() {
	if e.cursor.Col > 0 {
		e.cursor.Col--
	}
	e.keepCursorInDocument()
}

func (e *Editor) MoveRight() {
	if e.cursor.Col < e.currentRow().Length() {
		e.cursor.Col++
	}
	e.keepCursorInDocument()
}

func (e *Editor) MoveUp() {
	if e.cursor.Row > 0 {
		e.cursor.Row--
	}
	e.keepCursorInDocument()
	e.scrollOneRow()
}

func (e *Editor) MoveDown() {
	if e.cursor.Row < e.buffer.GetRowCount()-1 {
		e.cursor.Row++
	}
	e.keepCursorInDocument()
	e.scrollOneRow()
}

func (e *Editor) MoveToBeginningOfLine() {
	e.cursor.Col = 0
	e.keepCursorInDocument()
}

func (e *Editor) MoveToEndOfLine() {
	e.cursor.Col = e.currentRow().Length()
	e.keepCursorInDocument()
}

func (e *Editor) MoveToFirstNonBlank() {
	e.cursor.Col = e.currentRow().FirstNonBlank()
	e.keepCursorInDocument()
}

// MoveCursorToLine moves to the start of a 1-based line and recenters.
func (e *Editor) MoveCursorToLine(line int) error {
	if line < 1 || line > e.buffer.GetRowCount() {
		return fmt.Errorf("line %d is out of range (1-%d)", line, e.buffer.GetRowCount())
	}
	e.cursor = gott.Point{Row: line - 1, Col: 0}
	e.keepCursorInDocument()
	e.Recenter()
	return nil
}

// Perform performs an operation, records a history snapshot, and saves the
// operation so that it can be repeated.
func (e *Editor) Perform(op gott.Operation) error {
	err := op.Perform(e)
	e.previous = op
	e.keepCursorInDocument()
	e.clampOffset()
	e.Snapshot()
	return err
}

// Repeat performs the previous operation again.
func (e *Editor) Repeat() error {
	if e.previous == nil {
		return errors.New("no previous operation")
	}
	return e.Perform(e.previous)
}

// ReadFile replaces the document with the contents of a file. A missing file
// gives an empty document; other read errors also give an empty document but
// are returned. History is reset.
func (e *Editor) ReadFile(path string) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		err = nil
	} else if err != nil {
		err = fmt.Errorf("reading %s: %w", path, err)
	}
	e.buffer = NewBuffer()
	e.buffer.LoadBytes(b)
	e.buffer.SetFileName(path)
	e.cursor = gott.Point{}
	e.selection = nil
	e.previous = nil
	if e.places != nil && e.options.RememberPlaces {
		if place, ok := e.places.Lookup(path); ok {
			e.cursor = place
			e.keepCursorInDocument()
		}
	}
	e.Recenter()
	e.history.Reset(e.buffer.Snapshot(), e.cursor)
	return err
}

// WriteFile writes the document to path, joining lines with "\n". An empty
// path writes to the current file name.
func (e *Editor) WriteFile(path string) error {
	if path == "" {
		path = e.buffer.GetFileName()
	}
	if path == "" {
		return errors.New("no file name")
	}
	if err := os.WriteFile(path, e.buffer.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	e.buffer.SetFileName(path)
	e.buffer.modified = false
	e.RememberPlace()
	return nil
}

// RememberPlace records the cursor position for the current file.
func (e *Editor) RememberPlace() {
	if e.places == nil || !e.options.RememberPlaces || e.buffer.GetFileName() == "" {
		return
	}
	if err := e.places.Remember(e.buffer.GetFileName(), e.cursor); err != nil {
		log.Printf("remembering place: %v", err)
	}
}

func (e *Editor) Bytes() []byte {
	return e.buffer.Bytes()
}

// LoadBytes replaces the document contents as one undoable edit.
func (e *Editor) LoadBytes(b []byte) {
	e.buffer.LoadBytes(b)
	e.buffer.modified = true
	e.selection = nil
	e.keepCursorInDocument()
	e.clampOffset()
	e.Snapshot()
}

// Frame returns a snapshot of the document area for rendering.
func (e *Editor) Frame() *gott.Frame {
	e.clampOffset()
	f := &gott.Frame{
		Offset:    e.offset,
		LineCount: e.buffer.GetRowCount(),
		Cursor:    e.cursor,
		FileName:  e.buffer.GetFileName(),
		Modified:  e.buffer.modified,
	}
	end := min(e.offset+e.height(), e.buffer.GetRowCount())
	for i := e.offset; i < end; i++ {
		f.Lines = append(f.Lines, append([]rune{}, e.buffer.Row(i).Text...))
	}
	if e.selection != nil {
		span := e.selection.Span()
		f.Selection = &span
	}
	if e.search.Highlight {
		f.Highlight = e.search.Query
	}
	return f
}
