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
	"fmt"

	gott "github.com/timburks/redit/pkg/types"
)

// A transition names the mode that follows a key.
type transition struct {
	next gott.Mode
	stay bool
}

var stay = transition{stay: true}

func to(m gott.Mode) transition {
	return transition{next: m}
}

// A mode handles keys for one editing mode. Commands run by a key may also
// switch modes themselves through SetMode.
type mode interface {
	handleKey(c *Commander, event *gott.Event) transition
}

type normalMode struct{}

func (normalMode) handleKey(c *Commander, event *gott.Event) transition {
	key := event.Key
	ch := event.Ch

	// multikey commands have highest precedence
	if len(c.editKeys) > 0 {
		keys := c.editKeys + string(ch)
		c.editKeys = ""
		if keys[0] == 'r' {
			if ch != 0 {
				c.parseEval(fmt.Sprintf("(replace-character %q %d)", string(ch), c.getMultiplier()))
			}
			c.multiplierText = ""
			return stay
		}
		switch keys {
		case "gg":
			c.parseEval(fmt.Sprintf("(goto-line %d)", c.getMultiplier()))
		case "yy":
			c.parseEval("(yank-line)")
		}
		c.multiplierText = ""
		return stay
	}
	if key != gott.KeyNone {
		switch key {
		case gott.KeyEsc:
			c.multiplierText = ""
			c.parseEval("(clear-search)")
		case gott.KeyCtrlB, gott.KeyPgup:
			c.parseEval(fmt.Sprintf("(page-up %d)", c.getMultiplier()))
		case gott.KeyCtrlF, gott.KeyPgdn:
			c.parseEval(fmt.Sprintf("(page-down %d)", c.getMultiplier()))
		case gott.KeyCtrlA, gott.KeyHome:
			c.parseEval("(beginning-of-line)")
		case gott.KeyCtrlE, gott.KeyEnd:
			c.parseEval("(end-of-line)")
		case gott.KeyArrowUp:
			c.parseEval(fmt.Sprintf("(up %d)", c.getMultiplier()))
		case gott.KeyArrowDown, gott.KeyEnter:
			c.parseEval(fmt.Sprintf("(down %d)", c.getMultiplier()))
		case gott.KeyArrowLeft:
			c.parseEval(fmt.Sprintf("(left %d)", c.getMultiplier()))
		case gott.KeyArrowRight, gott.KeySpace:
			c.parseEval(fmt.Sprintf("(right %d)", c.getMultiplier()))
		case gott.KeyCtrlJ:
			c.parseEval("(split-line)")
		case gott.KeyCtrlK:
			c.parseEval(fmt.Sprintf("(kill-line %d)", c.getMultiplier()))
		case gott.KeyCtrlL:
			c.parseEval("(recenter)")
		case gott.KeyCtrlR:
			c.parseEval("(redo)")
		case gott.KeyCtrlS:
			c.parseEval("(save)")
		case gott.KeyCtrlT:
			c.SetMode(gott.ModeCommand)
			c.minibuffer = "theme "
		case gott.KeyTab:
			c.parseEval(fmt.Sprintf("(indent-line %d)", c.getMultiplier()))
		}
		return stay
	}
	switch ch {
	//
	// command multipliers are saved until a command uses them
	//
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		c.multiplierText += string(ch)
	case '0':
		if c.multiplierText != "" {
			c.multiplierText += "0"
		} else {
			c.parseEval("(beginning-of-line)")
		}
	//
	// prompts go to the message bar
	//
	case ':':
		c.parseEval("(command-mode)")
	case '(':
		c.parseEval("(lisp-mode)")
	case '/':
		c.parseEval("(search-forward-mode)")
	case '?':
		c.parseEval("(search-backward-mode)")
	case 'n':
		c.parseEval("(search-next)")
	case 'N':
		c.parseEval("(search-previous)")
	//
	// cursor movement isn't repeatable
	//
	case 'h':
		c.parseEval(fmt.Sprintf("(left %d)", c.getMultiplier()))
	case 'j':
		c.parseEval(fmt.Sprintf("(down %d)", c.getMultiplier()))
	case 'k':
		c.parseEval(fmt.Sprintf("(up %d)", c.getMultiplier()))
	case 'l':
		c.parseEval(fmt.Sprintf("(right %d)", c.getMultiplier()))
	case '$':
		c.parseEval("(end-of-line)")
	case '^':
		c.parseEval("(first-non-blank)")
	case 'G':
		if c.multiplierText == "" {
			c.parseEval("(goto-line)")
		} else {
			c.parseEval(fmt.Sprintf("(goto-line %d)", c.getMultiplier()))
		}
	//
	// insert sessions are undone as a unit when they end
	//
	case 'i':
		c.parseEval("(insert-mode)")
	case 'a':
		c.parseEval("(insert-after-cursor)")
	case 'I':
		c.parseEval("(insert-at-start-of-line)")
	case 'A':
		c.parseEval("(insert-at-end-of-line)")
	case 'o':
		c.parseEval("(open-line-below)")
	case 'O':
		c.parseEval("(open-line-above)")
	//
	// "performed" operations are saved for undo and repetition
	//
	case 'x':
		c.parseEval(fmt.Sprintf("(delete-character %d)", c.getMultiplier()))
	case 'J':
		c.parseEval(fmt.Sprintf("(join-line %d)", c.getMultiplier()))
	case 'D':
		c.parseEval(fmt.Sprintf("(kill-line %d)", c.getMultiplier()))
	case 'p':
		c.parseEval(fmt.Sprintf("(paste-after %d)", c.getMultiplier()))
	case 'P':
		c.parseEval(fmt.Sprintf("(paste-before %d)", c.getMultiplier()))
	case '=':
		c.parseEval(fmt.Sprintf("(indent-line %d)", c.getMultiplier()))
	case '.':
		c.parseEval("(repeat)")
	case 'u':
		c.parseEval("(undo)")
	case 'v':
		c.parseEval("(visual-mode)")
	//
	// a few keys open multi-key commands
	//
	case 'g', 'r', 'y':
		c.editKeys = string(ch)
	//
	// files and other views
	//
	case 's':
		c.parseEval("(save)")
	case 'q':
		c.parseEval("(quit)")
	case 'd':
		c.parseEval("(dired-jump)")
	case 'f':
		c.parseEval("(find-file)")
	}
	return stay
}

type insertMode struct{}

func (insertMode) handleKey(c *Commander, event *gott.Event) transition {
	e := c.editor

	switch event.Key {
	case gott.KeyEsc:
		return to(gott.ModeNormal)
	case gott.KeyEnter:
		e.SplitLine()
	case gott.KeyBackspace:
		e.Backspace()
	case gott.KeyDelete:
		e.DeleteAtCursor()
	case gott.KeyTab:
		e.InsertTab()
	case gott.KeySpace:
		e.InsertChar(' ')
	case gott.KeyArrowUp:
		e.MoveUp()
	case gott.KeyArrowDown:
		e.MoveDown()
	case gott.KeyArrowLeft:
		e.MoveLeft()
	case gott.KeyArrowRight:
		e.MoveRight()
	case gott.KeyHome:
		e.MoveToBeginningOfLine()
	case gott.KeyEnd:
		e.MoveToEndOfLine()
	case gott.KeyNone:
		if event.Ch != 0 {
			e.InsertChar(event.Ch)
		}
	}
	e.AdjustToCursor(gott.ScrollWithMargins)
	return stay
}

type visualMode struct{}

func (visualMode) handleKey(c *Commander, event *gott.Event) transition {
	switch event.Key {
	case gott.KeyEsc:
		return to(gott.ModeNormal)
	case gott.KeyArrowUp:
		c.parseEval("(up)")
	case gott.KeyArrowDown:
		c.parseEval("(down)")
	case gott.KeyArrowLeft:
		c.parseEval("(left)")
	case gott.KeyArrowRight:
		c.parseEval("(right)")
	case gott.KeyHome:
		c.parseEval("(beginning-of-line)")
	case gott.KeyEnd:
		c.parseEval("(end-of-line)")
	case gott.KeyNone:
		switch event.Ch {
		case 'v':
			return to(gott.ModeNormal)
		case 'h':
			c.parseEval("(left)")
		case 'j':
			c.parseEval("(down)")
		case 'k':
			c.parseEval("(up)")
		case 'l':
			c.parseEval("(right)")
		case '0':
			c.parseEval("(beginning-of-line)")
		case '$':
			c.parseEval("(end-of-line)")
		case '^':
			c.parseEval("(first-non-blank)")
		case 'G':
			c.parseEval("(goto-line)")
		case 'y':
			c.parseEval("(copy-selection)")
		case 'd', 'x':
			c.parseEval("(delete-selection)")
		}
	}
	return stay
}

// promptMode collects a line of input for a command, a search, or a lisp
// expression.
type promptMode struct{}

func (promptMode) handleKey(c *Commander, event *gott.Event) transition {
	switch event.Key {
	case gott.KeyEsc:
		c.minibuffer = ""
		return to(gott.ModeNormal)
	case gott.KeyEnter:
		prompt := c.mode
		text := c.minibuffer
		c.minibuffer = ""
		c.run(prompt, text)
		// commands may have switched modes themselves
		if c.mode == prompt {
			return to(gott.ModeNormal)
		}
		return stay
	case gott.KeyBackspace:
		if runes := []rune(c.minibuffer); len(runes) > 0 {
			c.minibuffer = string(runes[0 : len(runes)-1])
		} else {
			return to(gott.ModeNormal)
		}
	case gott.KeySpace:
		c.minibuffer += " "
	case gott.KeyTab:
		c.minibuffer += "\t"
	case gott.KeyNone:
		if event.Ch != 0 {
			c.minibuffer += string(event.Ch)
		}
	}
	return stay
}

// run executes the input of a prompt.
func (c *Commander) run(prompt gott.Mode, text string) {
	e := c.editor
	switch prompt {
	case gott.ModeCommand:
		c.performCommand(text)
	case gott.ModeSearchForward, gott.ModeSearchBackward:
		c.searchForward = prompt == gott.ModeSearchForward
		if text == "" {
			c.report(e.RepeatSearch(c.searchForward))
		} else if c.searchForward {
			c.report(e.SearchForward(text))
		} else {
			c.report(e.SearchBackward(text))
		}
	case gott.ModeLisp:
		if result := c.parseEval(text); result != "" {
			c.message = result
		}
	}
}

// diredMode passes keys to the directory browser until it is done.
type diredMode struct{}

func (diredMode) handleKey(c *Commander, event *gott.Event) transition {
	if c.browser == nil {
		return to(gott.ModeNormal)
	}
	path, done := c.browser.HandleEvent(event)
	if !done {
		return stay
	}
	c.SetMode(gott.ModeNormal)
	if path != "" {
		c.open(path)
	}
	return stay
}

// finderMode passes keys to the finder until it commits or cancels.
type finderMode struct{}

func (finderMode) handleKey(c *Commander, event *gott.Event) transition {
	if c.finder == nil {
		return to(gott.ModeNormal)
	}
	result, done := c.finder.HandleEvent(event)
	if !done {
		return stay
	}
	c.SetMode(gott.ModeNormal)
	switch {
	case result.Path != "":
		c.open(result.Path)
	case result.Command != "":
		c.RunCommand(result.Command)
	}
	return stay
}
