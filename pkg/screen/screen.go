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
	"log"
	"os"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	"github.com/timburks/redit/pkg/config"
	gott "github.com/timburks/redit/pkg/types"
)

// Cursor shapes (DECSCUSR).
const (
	cursorDefault = "\x1b[0 q"
	cursorBlock   = "\x1b[2 q"
	cursorBar     = "\x1b[6 q"
)

// The Screen draws frames of an Editor.
type Screen struct {
	size             gott.Size // screen size
	theme            Theme
	showLineNumbers  bool
	showFringe       bool
	insertLineCursor bool
	tabWidth         int
	shape            string // last cursor shape written to the terminal
	setCell          func(x, y int, ch rune, fg, bg termbox.Attribute)
	interrupt        func() // wakes the input poll; blocks until it is read

	mu     sync.Mutex
	ticker *time.Ticker
	done   chan struct{}
}

var _ gott.Renderer = (*Screen)(nil)

// newScreen returns a screen with default settings that draws with setCell.
func newScreen(setCell func(x, y int, ch rune, fg, bg termbox.Attribute)) *Screen {
	return &Screen{
		theme:           themes["nature"],
		showLineNumbers: true,
		showFringe:      true,
		tabWidth:        4,
		setCell:         setCell,
		interrupt:       termbox.Interrupt,
	}
}

// NewScreen opens the terminal.
func NewScreen() (*Screen, error) {
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	termbox.SetOutputMode(termbox.Output256)
	termbox.SetInputMode(termbox.InputEsc)
	s := newScreen(termbox.SetCell)
	s.size = s.terminalSize()
	return s, nil
}

func (s *Screen) Close() {
	s.StopBlink()
	if s.shape != "" {
		os.Stdout.WriteString(cursorDefault)
	}
	termbox.Close()
}

// SetTheme selects a theme by name.
func (s *Screen) SetTheme(name string) error {
	t, err := LookupTheme(name)
	if err != nil {
		return err
	}
	s.theme = t
	return nil
}

// SetSettings applies configuration to the screen.
func (s *Screen) SetSettings(settings config.Settings) error {
	s.showLineNumbers = settings.ShowLineNumbers
	s.showFringe = settings.ShowFringe
	s.insertLineCursor = settings.InsertLineCursor
	s.tabWidth = settings.IndentWidth
	s.SetBlinkInterval(settings.BlinkInterval)
	return s.SetTheme(settings.Theme)
}

func (s *Screen) terminalSize() gott.Size {
	cols, rows := termbox.Size()
	return gott.Size{Rows: rows, Cols: cols}
}

// GetSize returns the size of the terminal.
func (s *Screen) GetSize() gott.Size {
	return s.size
}

// TextSize is the part of the screen that shows the document.
func (s *Screen) TextSize() gott.Size {
	size := s.size
	size.Rows -= 2
	if size.Rows < 1 {
		size.Rows = 1
	}
	return size
}

func (s *Screen) Render(f *gott.Frame) {
	termbox.Clear(s.theme.Text, s.theme.Background)
	s.size = s.terminalSize()
	x, y, visible := s.draw(f)
	if visible {
		termbox.SetCursor(x, y)
	} else {
		termbox.HideCursor()
	}
	s.setCursorShape(f.Mode)
	termbox.Flush()
}

// draw writes the frame to cells and returns the cursor position.
func (s *Screen) draw(f *gott.Frame) (cursorX, cursorY int, visible bool) {
	textRows := s.size.Rows - 2
	gutter := s.gutterWidth(f.LineCount)
	for y := 0; y < textRows; y++ {
		s.drawGutter(y, f)
		if y >= len(f.Lines) {
			continue
		}
		row := f.Offset + y
		line := f.Lines[y]
		marks := matches(line, f.Highlight)
		for _, c := range layout(line, s.size.Cols-gutter, s.tabWidth) {
			bg := s.theme.Background
			switch {
			case selected(f.Selection, row, c.col):
				bg = s.theme.Selection
			case marks != nil && marks[c.col]:
				bg = s.theme.Match
			}
			s.setCell(gutter+c.x, y, c.ch, s.theme.Text, bg)
		}
	}
	s.drawModeline(f)
	s.drawMinibuffer(f)

	if f.Mode.Prompting() {
		return runewidth.StringWidth(f.Minibuffer), s.size.Rows - 1, true
	}
	if !f.Blink {
		return 0, 0, false
	}
	y := f.Cursor.Row - f.Offset
	if y < 0 || y >= textRows {
		return 0, 0, false
	}
	var line []rune
	if y < len(f.Lines) {
		line = f.Lines[y]
	}
	return gutter + displayColumn(line, f.Cursor.Col, s.tabWidth), y, true
}

func (s *Screen) gutterWidth(lineCount int) int {
	w := 0
	if s.showFringe {
		w++
	}
	if s.showLineNumbers {
		w += numberWidth(lineCount)
	}
	return w
}

func (s *Screen) drawGutter(y int, f *gott.Frame) {
	x := 0
	if s.showFringe {
		ch := ' '
		if y >= len(f.Lines) {
			ch = '~'
		}
		s.setCell(x, y, ch, s.theme.Empty, s.theme.Fringe)
		x++
	}
	if !s.showLineNumbers || y >= len(f.Lines) {
		return
	}
	width := numberWidth(f.LineCount) - 1
	number := strconv.Itoa(f.Offset + y + 1)
	for i, ch := range number {
		s.setCell(x+width-len(number)+i, y, ch, s.theme.LineNumber, s.theme.Background)
	}
}

func (s *Screen) drawModeline(f *gott.Frame) {
	y := s.size.Rows - 2
	if y < 0 {
		return
	}
	text := modeline(f, s.size.Cols)
	tag := len([]rune(f.Mode.String())) + 2
	i := 0
	for _, ch := range text {
		fg, bg := s.theme.ModeLineText, s.theme.ModeLine
		if i < tag {
			fg, bg = s.theme.Background, s.theme.modeColor(f.Mode)
		}
		s.setCell(i, y, ch, fg, bg)
		i += max(runewidth.RuneWidth(ch), 1)
	}
}

func (s *Screen) drawMinibuffer(f *gott.Frame) {
	y := s.size.Rows - 1
	if y < 0 {
		return
	}
	line := runewidth.Truncate(f.Minibuffer, s.size.Cols, "")
	x := 0
	for _, ch := range line {
		s.setCell(x, y, ch, s.theme.Message, s.theme.Background)
		x += max(runewidth.RuneWidth(ch), 1)
	}
}

func (s *Screen) setCursorShape(m gott.Mode) {
	if !s.insertLineCursor && s.shape == "" {
		return
	}
	shape := cursorBlock
	if s.insertLineCursor && m == gott.ModeInsert {
		shape = cursorBar
	}
	if shape != s.shape {
		os.Stdout.WriteString(shape)
		s.shape = shape
	}
}

// SetBlinkInterval starts or adjusts the ticker that interrupts the input
// poll so the cursor can blink.
func (s *Screen) SetBlinkInterval(interval time.Duration) {
	if interval <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ticker != nil {
		s.ticker.Reset(interval)
		return
	}
	s.ticker = time.NewTicker(interval)
	s.done = make(chan struct{})
	go func(ticker *time.Ticker, done chan struct{}, interrupt func()) {
		// At most one interrupt is in flight, so the loop itself never
		// blocks and always sees done.
		var pending atomic.Bool
		for {
			select {
			case <-ticker.C:
				if pending.CompareAndSwap(false, true) {
					go func() {
						interrupt()
						pending.Store(false)
					}()
				}
			case <-done:
				return
			}
		}
	}(s.ticker, s.done, s.interrupt)
}

// StopBlink stops the blink ticker.
func (s *Screen) StopBlink() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ticker == nil {
		return
	}
	s.ticker.Stop()
	close(s.done)
	s.ticker = nil
}

// GetNextEvent waits for input. Blink ticks arrive as EventTick.
func (s *Screen) GetNextEvent() *gott.Event {
	event := termbox.PollEvent()
	switch event.Type {
	case termbox.EventKey:
		if event.Ch != 0 {
			return gott.CharEvent(event.Ch)
		}
		return gott.KeyEvent(key(event.Key))
	case termbox.EventResize:
		termbox.Flush()
		s.size = s.terminalSize()
		return &gott.Event{Type: gott.EventResize}
	case termbox.EventInterrupt:
		return &gott.Event{Type: gott.EventTick}
	case termbox.EventError:
		log.Printf("terminal error: %v", event.Err)
		return &gott.Event{Type: gott.EventError, Err: event.Err}
	default:
		return &gott.Event{Type: gott.EventResize}
	}
}
