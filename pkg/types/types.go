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

package types

// Editor modes
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeVisual
	ModeDired
	ModeFinder
	ModeCommand
	ModeSearchForward
	ModeSearchBackward
	ModeLisp
	ModeQuit
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	case ModeVisual:
		return "VISUAL"
	case ModeDired:
		return "DIRED"
	case ModeFinder:
		return "FIND"
	case ModeCommand:
		return "COMMAND"
	case ModeSearchForward, ModeSearchBackward:
		return "SEARCH"
	case ModeLisp:
		return "LISP"
	case ModeQuit:
		return "QUIT"
	default:
		return "UNKNOWN"
	}
}

// Prompting returns true for modes that collect input on the minibuffer line.
func (m Mode) Prompting() bool {
	switch m {
	case ModeCommand, ModeSearchForward, ModeSearchBackward, ModeLisp:
		return true
	}
	return false
}

// Scroll modes for AdjustToCursor
type ScrollMode int

const (
	ScrollWithMargins ScrollMode = iota // keep the cursor outside the scroll margins
	ScrollEnough                        // scroll only as far as needed to show the cursor
)

// Clipboard kinds
type ClipboardKind int

const (
	Charwise ClipboardKind = iota
	Linewise
)

func (k ClipboardKind) String() string {
	if k == Linewise {
		return "line"
	}
	return "char"
}

// Paste positions
type PastePosition int

const (
	PasteBefore PastePosition = iota
	PasteAfter
)

// A Point is a position in a document. Col may equal the length of its row.
type Point struct {
	Row int
	Col int
}

// Before returns true if p precedes q in reading order.
func (p Point) Before(q Point) bool {
	return p.Row < q.Row || (p.Row == q.Row && p.Col < q.Col)
}

type Size struct {
	Rows int
	Cols int
}

// A Span is a normalized selection: Start never follows End.
type Span struct {
	Start Point
	End   Point
}

// A Frame is an immutable snapshot of everything a renderer needs to draw one
// frame. It is built after each processed event and never modified.
type Frame struct {
	Lines      [][]rune // visible lines, the first is at Offset
	Offset     int      // index of the first visible line
	LineCount  int      // lines in the document
	Cursor     Point    // cursor in document coordinates
	Selection  *Span    // visual selection, nil when inactive
	Highlight  string   // search query to highlight, empty when off
	FileName   string
	Modified   bool
	Mode       Mode
	Minibuffer string // prompt and pending input, or the last message
	Blink      bool   // cursor blink phase
}

// Editor is the set of editing functions available to operations and commands.
type Editor interface {
	GetCursor() Point
	SetCursor(cursor Point)
	GetLineCount() int
	GetLine(row int) string
	GetFileName() string
	SetSize(size Size)
	GetSize() Size

	MoveUp()
	MoveDown()
	MoveLeft()
	MoveRight()
	MoveToBeginningOfLine()
	MoveToEndOfLine()
	MoveToFirstNonBlank()
	MoveCursorToLine(line int) error
	Recenter()
	AdjustToCursor(mode ScrollMode)

	InsertChar(c rune)
	InsertText(text string)
	Backspace()
	DeleteAtCursor()
	ReplaceCharacter(c rune) bool
	SplitLine()
	JoinNextLine()
	OpenLine(above bool)
	IndentCurrentLine()
	InsertTab()

	BeginSelection()
	ClearSelection()
	HasSelection() bool
	CopySelection() bool
	DeleteSelection() bool

	KillLine()
	YankLine()
	Paste(position PastePosition)
	GetClipboard() (string, ClipboardKind)

	Snapshot()
	Undo() error
	Redo() error

	SearchForward(query string) error
	SearchBackward(query string) error
	RepeatSearch(forward bool) error
	ClearSearch()

	Perform(op Operation) error
	Repeat() error

	ReadFile(path string) error
	RememberPlace()
	Modified() bool
	WriteFile(path string) error
	Bytes() []byte
	LoadBytes(b []byte)
	Gofmt(filename string, inputBytes []byte) (outputBytes []byte, err error)

	Frame() *Frame
}

// An Operation is a repeatable edit. Editor.Perform records a history
// snapshot after each one and keeps it for Repeat.
type Operation interface {
	Perform(e Editor) error
}

// A Renderer draws frames.
type Renderer interface {
	Render(f *Frame)
}

// A Browser takes over input while the editor is in Dired mode. HandleEvent
// reports done when browsing ends; a non-empty path names a file to open.
type Browser interface {
	Open(dir string) error
	HandleEvent(event *Event) (path string, done bool)
	View() (lines []string, cursor Point)
}

// A FinderResult is what a Finder commits: a file path or a command name.
type FinderResult struct {
	Path    string
	Command string
}

// A Finder is a fuzzy file and command picker.
type Finder interface {
	Start(dir string, commands []string)
	HandleEvent(event *Event) (result FinderResult, done bool)
	View() (lines []string, cursor Point)
}

// A PlaceStore remembers a cursor position per file.
type PlaceStore interface {
	Lookup(path string) (Point, bool)
	Remember(path string, cursor Point) error
}

// A SystemClipboard mirrors register writes to the host clipboard.
type SystemClipboard interface {
	WriteAll(text string) error
}
