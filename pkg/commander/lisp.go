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
	"sort"

	"github.com/steelseries/golisp"
	"github.com/timburks/redit/pkg/operations"
	gott "github.com/timburks/redit/pkg/types"
)

// current is the commander that lisp primitives act on.
var current *Commander

// A command is a lisp primitive that acts on the current commander.
type command struct {
	name string
	args string // argument count, as golisp expects it
	fn   func(c *Commander, args *golisp.Data) *golisp.Data
}

var commands = []command{
	// movement
	{"left", "*", func(c *Commander, args *golisp.Data) *golisp.Data {
		repeat(count(args), c.editor.MoveLeft)
		return nil
	}},
	{"right", "*", func(c *Commander, args *golisp.Data) *golisp.Data {
		repeat(count(args), c.editor.MoveRight)
		return nil
	}},
	{"up", "*", func(c *Commander, args *golisp.Data) *golisp.Data {
		repeat(count(args), c.editor.MoveUp)
		return nil
	}},
	{"down", "*", func(c *Commander, args *golisp.Data) *golisp.Data {
		repeat(count(args), c.editor.MoveDown)
		return nil
	}},
	{"beginning-of-line", "0", func(c *Commander, args *golisp.Data) *golisp.Data {
		c.editor.MoveToBeginningOfLine()
		return nil
	}},
	{"end-of-line", "0", func(c *Commander, args *golisp.Data) *golisp.Data {
		c.editor.MoveToEndOfLine()
		return nil
	}},
	{"first-non-blank", "0", func(c *Commander, args *golisp.Data) *golisp.Data {
		c.editor.MoveToFirstNonBlank()
		return nil
	}},
	{"goto-line", "*", func(c *Commander, args *golisp.Data) *golisp.Data {
		line := c.editor.GetLineCount()
		if !golisp.NilP(args) {
			line = count(args)
		}
		c.report(c.editor.MoveCursorToLine(line))
		return nil
	}},
	{"recenter", "0", func(c *Commander, args *golisp.Data) *golisp.Data {
		c.editor.Recenter()
		return nil
	}},
	{"page-up", "*", func(c *Commander, args *golisp.Data) *golisp.Data {
		repeat(count(args)*page(c.editor), c.editor.MoveUp)
		return nil
	}},
	{"page-down", "*", func(c *Commander, args *golisp.Data) *golisp.Data {
		repeat(count(args)*page(c.editor), c.editor.MoveDown)
		return nil
	}},

	// modes
	{"insert-mode", "0", func(c *Commander, args *golisp.Data) *golisp.Data {
		c.SetMode(gott.ModeInsert)
		return nil
	}},
	{"insert-after-cursor", "0", func(c *Commander, args *golisp.Data) *golisp.Data {
		c.editor.MoveRight()
		c.SetMode(gott.ModeInsert)
		return nil
	}},
	{"insert-at-start-of-line", "0", func(c *Commander, args *golisp.Data) *golisp.Data {
		c.editor.MoveToFirstNonBlank()
		c.SetMode(gott.ModeInsert)
		return nil
	}},
	{"insert-at-end-of-line", "0", func(c *Commander, args *golisp.Data) *golisp.Data {
		c.editor.MoveToEndOfLine()
		c.SetMode(gott.ModeInsert)
		return nil
	}},
	{"open-line-below", "0", func(c *Commander, args *golisp.Data) *golisp.Data {
		c.editor.OpenLine(false)
		c.SetMode(gott.ModeInsert)
		return nil
	}},
	{"open-line-above", "0", func(c *Commander, args *golisp.Data) *golisp.Data {
		c.editor.OpenLine(true)
		c.SetMode(gott.ModeInsert)
		return nil
	}},
	{"visual-mode", "0", func(c *Commander, args *golisp.Data) *golisp.Data {
		c.SetMode(gott.ModeVisual)
		return nil
	}},
	{"normal-mode", "0", func(c *Commander, args *golisp.Data) *golisp.Data {
		c.SetMode(gott.ModeNormal)
		return nil
	}},
	{"command-mode", "0", func(c *Commander, args *golisp.Data) *golisp.Data {
		c.SetMode(gott.ModeCommand)
		return nil
	}},
	{"lisp-mode", "0", func(c *Commander, args *golisp.Data) *golisp.Data {
		c.SetMode(gott.ModeLisp)
		return nil
	}},
	{"search-forward-mode", "0", func(c *Commander, args *golisp.Data) *golisp.Data {
		c.SetMode(gott.ModeSearchForward)
		return nil
	}},
	{"search-backward-mode", "0", func(c *Commander, args *golisp.Data) *golisp.Data {
		c.SetMode(gott.ModeSearchBackward)
		return nil
	}},
	{"quit", "0", func(c *Commander, args *golisp.Data) *golisp.Data {
		c.quit(false)
		return nil
	}},
	{"force-quit", "0", func(c *Commander, args *golisp.Data) *golisp.Data {
		c.quit(true)
		return nil
	}},

	// repeatable edits
	{"delete-character", "*", func(c *Commander, args *golisp.Data) *golisp.Data {
		c.report(c.editor.Perform(operations.NewDeleteCharacter(count(args))))
		return nil
	}},
	{"join-line", "*", func(c *Commander, args *golisp.Data) *golisp.Data {
		c.report(c.editor.Perform(operations.NewJoinLine(count(args))))
		return nil
	}},
	{"kill-line", "*", func(c *Commander, args *golisp.Data) *golisp.Data {
		c.report(c.editor.Perform(operations.NewKillLine(count(args))))
		return nil
	}},
	{"paste-after", "*", func(c *Commander, args *golisp.Data) *golisp.Data {
		c.report(c.editor.Perform(operations.NewPaste(gott.PasteAfter, count(args))))
		return nil
	}},
	{"paste-before", "*", func(c *Commander, args *golisp.Data) *golisp.Data {
		c.report(c.editor.Perform(operations.NewPaste(gott.PasteBefore, count(args))))
		return nil
	}},
	{"indent-line", "*", func(c *Commander, args *golisp.Data) *golisp.Data {
		c.report(c.editor.Perform(operations.NewIndentLine(count(args))))
		return nil
	}},
	{"delete-selection", "0", func(c *Commander, args *golisp.Data) *golisp.Data {
		c.report(c.editor.Perform(operations.NewDeleteSelection()))
		c.SetMode(gott.ModeNormal)
		return nil
	}},
	{"replace-character", "1|2", func(c *Commander, args *golisp.Data) *golisp.Data {
		text, ok := stringArg(args)
		if !ok || text == "" {
			c.report(errors.New("replace-character requires a string argument"))
			return nil
		}
		op := operations.NewReplaceCharacter([]rune(text)[0], count(golisp.Cdr(args)))
		c.report(c.editor.Perform(op))
		return nil
	}},
	{"insert", "1", func(c *Commander, args *golisp.Data) *golisp.Data {
		text, ok := stringArg(args)
		if !ok {
			c.report(errors.New("insert requires a string argument"))
			return nil
		}
		c.report(c.editor.Perform(operations.NewInsert(text)))
		return nil
	}},
	{"split-line", "0", func(c *Commander, args *golisp.Data) *golisp.Data {
		c.report(c.editor.Perform(operations.NewSplitLine()))
		return nil
	}},
	{"repeat", "0", func(c *Commander, args *golisp.Data) *golisp.Data {
		c.report(c.editor.Repeat())
		return nil
	}},

	// clipboard and history
	{"yank-line", "0", func(c *Commander, args *golisp.Data) *golisp.Data {
		c.editor.YankLine()
		return nil
	}},
	{"copy-selection", "0", func(c *Commander, args *golisp.Data) *golisp.Data {
		if !c.editor.CopySelection() {
			c.report(errors.New("no selection"))
		}
		c.SetMode(gott.ModeNormal)
		return nil
	}},
	{"undo", "0", func(c *Commander, args *golisp.Data) *golisp.Data {
		c.report(c.editor.Undo())
		return nil
	}},
	{"redo", "0", func(c *Commander, args *golisp.Data) *golisp.Data {
		c.report(c.editor.Redo())
		return nil
	}},

	// search
	{"search-forward", "1", func(c *Commander, args *golisp.Data) *golisp.Data {
		if query, ok := stringArg(args); ok {
			c.searchForward = true
			c.report(c.editor.SearchForward(query))
		}
		return nil
	}},
	{"search-backward", "1", func(c *Commander, args *golisp.Data) *golisp.Data {
		if query, ok := stringArg(args); ok {
			c.searchForward = false
			c.report(c.editor.SearchBackward(query))
		}
		return nil
	}},
	{"search-next", "0", func(c *Commander, args *golisp.Data) *golisp.Data {
		c.report(c.editor.RepeatSearch(c.searchForward))
		return nil
	}},
	{"search-previous", "0", func(c *Commander, args *golisp.Data) *golisp.Data {
		c.report(c.editor.RepeatSearch(!c.searchForward))
		return nil
	}},
	{"clear-search", "0", func(c *Commander, args *golisp.Data) *golisp.Data {
		c.editor.ClearSearch()
		return nil
	}},

	// files and the rest
	{"save", "*", func(c *Commander, args *golisp.Data) *golisp.Data {
		path, _ := stringArg(args)
		c.save(path)
		return nil
	}},
	{"open", "1", func(c *Commander, args *golisp.Data) *golisp.Data {
		if path, ok := stringArg(args); ok {
			c.open(path)
		}
		return nil
	}},
	{"fmt", "0", func(c *Commander, args *golisp.Data) *golisp.Data {
		c.performCommand("fmt")
		return nil
	}},
	{"dired-jump", "0", func(c *Commander, args *golisp.Data) *golisp.Data {
		c.browse(c.currentDir())
		return nil
	}},
	{"find-file", "0", func(c *Commander, args *golisp.Data) *golisp.Data {
		c.find()
		return nil
	}},
	{"cursor", "0", func(c *Commander, args *golisp.Data) *golisp.Data {
		cursor := c.editor.GetCursor()
		return golisp.StringWithValue(fmt.Sprintf("%d,%d", cursor.Row+1, cursor.Col+1))
	}},
	{"message", "1", func(c *Commander, args *golisp.Data) *golisp.Data {
		c.message = golisp.String(golisp.Car(args))
		if s, ok := stringArg(args); ok {
			c.message = s
		}
		return nil
	}},
	{"lua", "1", func(c *Commander, args *golisp.Data) *golisp.Data {
		if code, ok := stringArg(args); ok {
			c.evaluate(code)
		}
		return nil
	}},
}

// commandNames lists the commands that can run without arguments.
var commandNames []string

func init() {
	for _, cmd := range commands {
		if cmd.args == "0" || cmd.args == "*" {
			commandNames = append(commandNames, cmd.name)
		}
		fn := cmd.fn
		golisp.MakePrimitiveFunction(cmd.name, cmd.args,
			func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
				if current == nil {
					return nil, errors.New("no active editor")
				}
				return fn(current, args), nil
			})
	}
}

// CommandNames returns the names of the commands offered by the finder.
func CommandNames() []string {
	names := append([]string(nil), commandNames...)
	sort.Strings(names)
	return names
}

// RunCommand calls a command by name with no arguments.
func (c *Commander) RunCommand(name string) {
	if result := c.parseEval("(" + name + ")"); result != "" {
		c.message = result
	}
}

// parseEval evaluates one lisp expression and returns its printed value.
func (c *Commander) parseEval(code string) string {
	current = c
	value, err := golisp.ParseAndEval(code)
	if err != nil {
		return err.Error()
	}
	if golisp.NilP(value) {
		return ""
	}
	if golisp.StringP(value) {
		return golisp.StringValue(value)
	}
	return golisp.String(value)
}

// ParseEvalScript evaluates a sequence of lisp expressions, as given on the
// command line with --eval.
func (c *Commander) ParseEvalScript(code string) error {
	current = c
	c.batch = true
	defer func() { c.batch = false }()
	_, err := golisp.ParseAndEvalAll(code)
	return err
}

func repeat(n int, f func()) {
	for i := 0; i < n; i++ {
		f()
	}
}

// page is the number of rows moved by a page command.
func page(e gott.Editor) int {
	if rows := e.GetSize().Rows; rows > 2 {
		return rows - 2
	}
	return 1
}

// count returns the optional numeric argument of a command, at least 1.
func count(args *golisp.Data) int {
	if golisp.NilP(args) {
		return 1
	}
	n := 1
	switch value := golisp.Car(args); {
	case golisp.IntegerP(value):
		n = int(golisp.IntegerValue(value))
	case golisp.FloatP(value):
		n = int(golisp.FloatValue(value))
	}
	if n < 1 {
		return 1
	}
	return n
}

func stringArg(args *golisp.Data) (string, bool) {
	if golisp.NilP(args) {
		return "", false
	}
	value := golisp.Car(args)
	if !golisp.StringP(value) {
		return "", false
	}
	return golisp.StringValue(value), true
}
