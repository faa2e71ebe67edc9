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

package commander

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	gott "github.com/timburks/redit/pkg/types"
)

// An Evaluator runs configuration code.
type Evaluator interface {
	Evaluate(code string) error
}

// The Commander converts user input into commands to the editor.
type Commander struct {
	editor         gott.Editor
	mode           gott.Mode
	modes          map[gott.Mode]mode
	batch          bool   // true if commander is running a lisp script
	debug          bool   // debug mode displays information about events (key codes, etc)
	editKeys       string // edit key sequences in progress
	multiplierText string // multiplier string as it is being entered
	minibuffer     string // text being typed at a prompt
	searchForward  bool   // direction of the last search
	message        string // status message
	blink          bool   // cursor blink phase, toggled by ticks
	browser        gott.Browser
	finder         gott.Finder
	evaluator      Evaluator
}

// NewCommander creates a commander for an editor. Lisp commands act on the
// most recently created commander.
func NewCommander(e gott.Editor) *Commander {
	c := &Commander{
		editor:        e,
		mode:          gott.ModeNormal,
		searchForward: true,
		blink:         true,
		modes: map[gott.Mode]mode{
			gott.ModeNormal:         normalMode{},
			gott.ModeInsert:         insertMode{},
			gott.ModeVisual:         visualMode{},
			gott.ModeCommand:        promptMode{},
			gott.ModeSearchForward:  promptMode{},
			gott.ModeSearchBackward: promptMode{},
			gott.ModeLisp:           promptMode{},
			gott.ModeDired:          diredMode{},
			gott.ModeFinder:         finderMode{},
		},
	}
	current = c
	return c
}

// SetBrowser sets the directory browser used in Dired mode.
func (c *Commander) SetBrowser(b gott.Browser) {
	c.browser = b
}

// SetFinder sets the fuzzy finder.
func (c *Commander) SetFinder(f gott.Finder) {
	c.finder = f
}

// SetEvaluator sets the evaluator for configuration code.
func (c *Commander) SetEvaluator(ev Evaluator) {
	c.evaluator = ev
}

func (c *Commander) GetMode() gott.Mode {
	return c.mode
}

// SetMode switches modes. Leaving Insert mode records an undo snapshot so
// that each insert session is undone as a whole. Leaving Visual mode always
// ends the selection.
func (c *Commander) SetMode(m gott.Mode) {
	if m == c.mode {
		return
	}
	previous := c.mode
	c.mode = m
	switch previous {
	case gott.ModeInsert:
		c.editor.Snapshot()
	case gott.ModeVisual:
		c.editor.ClearSelection()
	}
	switch m {
	case gott.ModeVisual:
		c.editor.BeginSelection()
	case gott.ModeLisp:
		c.minibuffer = "("
	case gott.ModeCommand, gott.ModeSearchForward, gott.ModeSearchBackward:
		c.minibuffer = ""
	}
	c.editKeys = ""
	c.multiplierText = ""
}

func (c *Commander) IsRunning() bool {
	return c.mode != gott.ModeQuit
}

func (c *Commander) GetMessage() string {
	return c.message
}

// SetMessage puts text on the message line.
func (c *Commander) SetMessage(message string) {
	c.message = message
}

// report puts an error on the message line.
func (c *Commander) report(err error) {
	if err != nil {
		c.message = err.Error()
		if c.batch {
			log.Printf("%s", err)
		}
	}
}

func (c *Commander) ProcessEvent(event *gott.Event) error {
	if c.debug {
		c.message = fmt.Sprintf("event=%+v", event)
	}
	switch event.Type {
	case gott.EventKey:
		return c.processKey(event)
	case gott.EventTick:
		c.blink = !c.blink
		return nil
	case gott.EventError:
		return event.Err
	default:
		return nil
	}
}

func (c *Commander) processKey(event *gott.Event) error {
	if !c.mode.Prompting() && !c.debug {
		c.message = ""
	}
	c.blink = true
	handler, ok := c.modes[c.mode]
	if !ok {
		return fmt.Errorf("no handler for mode %s", c.mode)
	}
	if t := handler.handleKey(c, event); !t.stay {
		c.SetMode(t.next)
	}
	return nil
}

func (c *Commander) getMultiplier() int {
	if c.multiplierText == "" {
		return 1
	}
	i, err := strconv.Atoi(c.multiplierText)
	c.multiplierText = ""
	if err != nil || i < 1 {
		return 1
	}
	return i
}

// GetMessageBarText returns the prompt with its pending input, or the last
// message.
func (c *Commander) GetMessageBarText() string {
	switch c.mode {
	case gott.ModeCommand:
		return ":" + c.minibuffer
	case gott.ModeSearchForward:
		return "/" + c.minibuffer
	case gott.ModeSearchBackward:
		return "?" + c.minibuffer
	case gott.ModeLisp:
		return c.minibuffer
	default:
		return c.message
	}
}

// Frame returns a snapshot of everything needed to draw the screen.
func (c *Commander) Frame() *gott.Frame {
	f := c.editor.Frame()
	f.Mode = c.mode
	f.Minibuffer = c.GetMessageBarText()
	f.Blink = c.blink
	var lines []string
	var cursor gott.Point
	switch {
	case c.mode == gott.ModeDired && c.browser != nil:
		lines, cursor = c.browser.View()
	case c.mode == gott.ModeFinder && c.finder != nil:
		lines, cursor = c.finder.View()
	default:
		return f
	}
	f.Lines = make([][]rune, len(lines))
	for i, line := range lines {
		f.Lines[i] = []rune(line)
	}
	f.Offset = 0
	f.LineCount = len(lines)
	f.Cursor = cursor
	f.Selection = nil
	f.Highlight = ""
	return f
}

// quit leaves the editor unless there are unsaved changes.
func (c *Commander) quit(force bool) {
	if c.editor.Modified() && !force {
		c.message = "unsaved changes (use :q! to quit anyway)"
		return
	}
	c.editor.RememberPlace()
	c.SetMode(gott.ModeQuit)
}

func (c *Commander) save(path string) {
	if err := c.editor.WriteFile(path); err != nil {
		c.report(err)
		return
	}
	c.message = fmt.Sprintf("\"%s\" %d lines written", c.editor.GetFileName(), c.editor.GetLineCount())
}

// Open reads a file, or browses a directory.
func (c *Commander) Open(path string) {
	c.open(path)
}

func (c *Commander) open(path string) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		c.browse(path)
		return
	}
	c.editor.RememberPlace()
	if err := c.editor.ReadFile(path); err != nil {
		c.report(err)
		return
	}
	c.message = fmt.Sprintf("\"%s\" %d lines", path, c.editor.GetLineCount())
}

// browse enters Dired mode on a directory.
func (c *Commander) browse(dir string) {
	if c.browser == nil {
		c.report(errors.New("no directory browser available"))
		return
	}
	if err := c.browser.Open(dir); err != nil {
		c.report(err)
		return
	}
	c.SetMode(gott.ModeDired)
}

// currentDir is the directory of the current file, or the working directory.
func (c *Commander) currentDir() string {
	if name := c.editor.GetFileName(); name != "" {
		if abs, err := filepath.Abs(name); err == nil {
			return filepath.Dir(abs)
		}
	}
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	return dir
}

func (c *Commander) find() {
	if c.finder == nil {
		c.report(errors.New("no finder available"))
		return
	}
	c.finder.Start(c.currentDir(), CommandNames())
	c.SetMode(gott.ModeFinder)
}

// evaluate runs configuration code.
func (c *Commander) evaluate(code string) {
	if c.evaluator == nil {
		c.report(errors.New("no configuration evaluator"))
		return
	}
	c.report(c.evaluator.Evaluate(code))
}

func (c *Commander) performCommand(text string) {
	e := c.editor

	parts := strings.Fields(text)
	if len(parts) == 0 {
		return
	}
	if i, err := strconv.Atoi(parts[0]); err == nil {
		c.report(e.MoveCursorToLine(i))
		return
	}
	argument := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(text), parts[0]))
	switch parts[0] {
	case "q", "quit":
		c.quit(false)
	case "q!", "quit!":
		c.quit(true)
	case "w", "write":
		c.save(argument)
	case "wq", "x":
		c.save(argument)
		if !e.Modified() {
			c.quit(false)
		}
	case "e", "edit", "r":
		if argument == "" {
			c.report(errors.New("no file name"))
		} else {
			c.open(argument)
		}
	case "$":
		e.MoveCursorToLine(e.GetLineCount())
	case "fmt":
		out, err := e.Gofmt(e.GetFileName(), e.Bytes())
		if err != nil {
			c.report(err)
		} else {
			e.LoadBytes(out)
		}
	case "theme":
		c.evaluate(fmt.Sprintf("theme = %q", argument))
	case "lua":
		c.evaluate(argument)
	case "noh", "nohlsearch":
		e.ClearSearch()
	case "cursor":
		cursor := e.GetCursor()
		c.message = fmt.Sprintf("%d,%d", cursor.Row+1, cursor.Col+1)
	case "debug":
		c.debug = argument == "on"
		c.message = ""
	default:
		c.report(fmt.Errorf("unknown command: %s", parts[0]))
	}
}
