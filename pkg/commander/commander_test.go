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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/timburks/redit/pkg/editor"
	gott "github.com/timburks/redit/pkg/types"
)

// setup returns a commander for an editor holding lines read from a file.
func setup(t *testing.T, lines ...string) (*Commander, *editor.Editor) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.txt")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		t.Fatalf("Write failed: %+v", err)
	}
	e := editor.NewEditor()
	if err := e.ReadFile(path); err != nil {
		t.Fatalf("Read failed: %+v", err)
	}
	return NewCommander(e), e
}

// typeKeys sends each character as a key press.
func typeKeys(t *testing.T, c *Commander, keys string) {
	t.Helper()
	for _, ch := range keys {
		if err := c.ProcessEvent(gott.CharEvent(ch)); err != nil {
			t.Fatalf("ProcessEvent failed: %+v", err)
		}
	}
}

func press(t *testing.T, c *Commander, k gott.Key) {
	t.Helper()
	if err := c.ProcessEvent(gott.KeyEvent(k)); err != nil {
		t.Fatalf("ProcessEvent failed: %+v", err)
	}
}

func checkLines(t *testing.T, e *editor.Editor, want ...string) {
	t.Helper()
	if diff := cmp.Diff(want, e.Lines()); diff != "" {
		t.Errorf("Unexpected document (-want +got):\n%s", diff)
	}
}

func checkCursor(t *testing.T, e *editor.Editor, row, col int) {
	t.Helper()
	if got, want := e.GetCursor(), (gott.Point{Row: row, Col: col}); got != want {
		t.Errorf("Cursor at %+v, expected %+v", got, want)
	}
}

func checkMode(t *testing.T, c *Commander, want gott.Mode) {
	t.Helper()
	if got := c.GetMode(); got != want {
		t.Errorf("Mode is %s, expected %s", got, want)
	}
}

func checkMessage(t *testing.T, c *Commander, want string) {
	t.Helper()
	if got := c.GetMessage(); got != want {
		t.Errorf("Message is %q, expected %q", got, want)
	}
}

func TestInsertSessionIsUndoneAsUnit(t *testing.T) {
	c, e := setup(t, "abc")
	typeKeys(t, c, "ixy")
	checkMode(t, c, gott.ModeInsert)
	press(t, c, gott.KeyEsc)
	checkMode(t, c, gott.ModeNormal)
	checkLines(t, e, "xyabc")
	typeKeys(t, c, "u")
	checkLines(t, e, "abc")
	checkCursor(t, e, 0, 0)
	press(t, c, gott.KeyCtrlR)
	checkLines(t, e, "xyabc")
	checkCursor(t, e, 0, 2)
}

func TestInsertVariants(t *testing.T) {
	c, e := setup(t, "  abc")
	typeKeys(t, c, "Az")
	press(t, c, gott.KeyEsc)
	checkLines(t, e, "  abcz")
	typeKeys(t, c, "Iy")
	press(t, c, gott.KeyEsc)
	checkLines(t, e, "  yabcz")
	typeKeys(t, c, "oq")
	press(t, c, gott.KeyEsc)
	checkLines(t, e, "  yabcz", "  q")
	typeKeys(t, c, "Ow")
	press(t, c, gott.KeyEsc)
	checkLines(t, e, "  yabcz", "  w", "  q")
}

func TestInsertModeEditing(t *testing.T) {
	c, e := setup(t, "ab")
	typeKeys(t, c, "a")
	checkCursor(t, e, 0, 1)
	press(t, c, gott.KeyEnter)
	checkLines(t, e, "a", "b")
	press(t, c, gott.KeyBackspace)
	checkLines(t, e, "ab")
	press(t, c, gott.KeySpace)
	checkLines(t, e, "a b")
	press(t, c, gott.KeyEsc)
}

func TestVisualCancelClearsSelection(t *testing.T) {
	c, e := setup(t, "abc")
	typeKeys(t, c, "vl")
	checkMode(t, c, gott.ModeVisual)
	if !e.HasSelection() {
		t.Errorf("Expected a selection in visual mode")
	}
	press(t, c, gott.KeyEsc)
	checkMode(t, c, gott.ModeNormal)
	if e.HasSelection() {
		t.Errorf("Selection survived leaving visual mode")
	}
	if f := c.Frame(); f.Selection != nil {
		t.Errorf("Frame has selection %+v after cancel", f.Selection)
	}
}

func TestVisualCopy(t *testing.T) {
	c, e := setup(t, "ab", "cd")
	typeKeys(t, c, "lvjy")
	checkMode(t, c, gott.ModeNormal)
	text, kind := e.GetClipboard()
	if text != "b\nc" || kind != gott.Charwise {
		t.Errorf("Clipboard holds %q (%s), expected \"b\\nc\" (char)", text, kind)
	}
	checkCursor(t, e, 0, 1)
	checkLines(t, e, "ab", "cd")
}

func TestVisualDelete(t *testing.T) {
	c, e := setup(t, "abcdef")
	typeKeys(t, c, "lvld")
	checkMode(t, c, gott.ModeNormal)
	checkLines(t, e, "adef")
	typeKeys(t, c, "u")
	checkLines(t, e, "abcdef")
}

func TestCountedDeleteAndRepeat(t *testing.T) {
	c, e := setup(t, "abcdefg")
	typeKeys(t, c, "3x")
	checkLines(t, e, "defg")
	typeKeys(t, c, ".")
	checkLines(t, e, "g")
	typeKeys(t, c, "uu")
	checkLines(t, e, "abcdefg")
	typeKeys(t, c, "u")
	checkMessage(t, c, "already at oldest change")
}

func TestYankAndPasteLine(t *testing.T) {
	c, e := setup(t, "one", "two")
	typeKeys(t, c, "yyjp")
	checkLines(t, e, "one", "two", "one")
	checkCursor(t, e, 2, 0)
	typeKeys(t, c, "ggP")
	checkLines(t, e, "one", "one", "two", "one")
}

func TestKillAndJoin(t *testing.T) {
	c, e := setup(t, "one", "two", "three")
	typeKeys(t, c, "lD")
	checkLines(t, e, "o", "two", "three")
	typeKeys(t, c, "J")
	checkLines(t, e, "o two", "three")
}

func TestMovementKeys(t *testing.T) {
	c, e := setup(t, "zero", "  one", "two", "three")
	typeKeys(t, c, "jj")
	checkCursor(t, e, 2, 0)
	typeKeys(t, c, "$")
	checkCursor(t, e, 2, 3)
	typeKeys(t, c, "0")
	checkCursor(t, e, 2, 0)
	typeKeys(t, c, "k^")
	checkCursor(t, e, 1, 2)
	typeKeys(t, c, "G")
	checkCursor(t, e, 3, 0)
	typeKeys(t, c, "2G")
	checkCursor(t, e, 1, 0)
	typeKeys(t, c, "gg")
	checkCursor(t, e, 0, 0)
	typeKeys(t, c, "3gg")
	checkCursor(t, e, 2, 0)
	typeKeys(t, c, "2l")
	checkCursor(t, e, 2, 2)
	press(t, c, gott.KeyCtrlA)
	checkCursor(t, e, 2, 0)
	press(t, c, gott.KeyCtrlE)
	checkCursor(t, e, 2, 3)
}

func TestSearchPrompt(t *testing.T) {
	c, e := setup(t, "one", "two", "three two")
	typeKeys(t, c, "/tw")
	checkMode(t, c, gott.ModeSearchForward)
	if got := c.GetMessageBarText(); got != "/tw" {
		t.Errorf("Message bar shows %q, expected %q", got, "/tw")
	}
	typeKeys(t, c, "o")
	press(t, c, gott.KeyEnter)
	checkMode(t, c, gott.ModeNormal)
	checkCursor(t, e, 1, 0)
	typeKeys(t, c, "n")
	checkCursor(t, e, 2, 6)
	typeKeys(t, c, "N")
	checkCursor(t, e, 1, 0)
	if f := c.Frame(); f.Highlight != "two" {
		t.Errorf("Highlight is %q, expected %q", f.Highlight, "two")
	}
	press(t, c, gott.KeyEsc)
	if f := c.Frame(); f.Highlight != "" {
		t.Errorf("Highlight is %q after clearing", f.Highlight)
	}
}

func TestBackwardSearchPrompt(t *testing.T) {
	c, e := setup(t, "one", "two", "three two")
	typeKeys(t, c, "?two")
	press(t, c, gott.KeyEnter)
	checkCursor(t, e, 2, 6)
	// an empty query repeats the last search
	typeKeys(t, c, "?")
	press(t, c, gott.KeyEnter)
	checkCursor(t, e, 1, 0)
}

func TestSearchNotFound(t *testing.T) {
	c, e := setup(t, "one", "two")
	typeKeys(t, c, "j/zzz")
	press(t, c, gott.KeyEnter)
	checkMessage(t, c, "pattern not found: zzz")
	checkCursor(t, e, 1, 0)
	typeKeys(t, c, "l")
	checkMessage(t, c, "")
}

func TestPromptEditing(t *testing.T) {
	c, _ := setup(t, "one")
	typeKeys(t, c, ":ab")
	press(t, c, gott.KeyBackspace)
	if got := c.GetMessageBarText(); got != ":a" {
		t.Errorf("Message bar shows %q, expected %q", got, ":a")
	}
	press(t, c, gott.KeyBackspace)
	press(t, c, gott.KeyBackspace)
	checkMode(t, c, gott.ModeNormal)
	typeKeys(t, c, ":abc")
	press(t, c, gott.KeyEsc)
	checkMode(t, c, gott.ModeNormal)
	checkMessage(t, c, "")
}

func TestGotoLineCommand(t *testing.T) {
	c, e := setup(t, "one", "two", "three")
	typeKeys(t, c, ":2")
	press(t, c, gott.KeyEnter)
	checkCursor(t, e, 1, 0)
	typeKeys(t, c, ":9")
	press(t, c, gott.KeyEnter)
	checkMessage(t, c, "line 9 is out of range (1-3)")
	checkCursor(t, e, 1, 0)
	typeKeys(t, c, ":$")
	press(t, c, gott.KeyEnter)
	checkCursor(t, e, 2, 0)
}

func TestUnknownCommand(t *testing.T) {
	c, _ := setup(t, "one")
	typeKeys(t, c, ":bogus")
	press(t, c, gott.KeyEnter)
	checkMessage(t, c, "unknown command: bogus")
	checkMode(t, c, gott.ModeNormal)
}

func TestWriteCommand(t *testing.T) {
	c, e := setup(t, "one", "two")
	path := filepath.Join(t.TempDir(), "out.txt")
	typeKeys(t, c, "x:w "+path)
	press(t, c, gott.KeyEnter)
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Read failed: %+v", err)
	}
	if string(got) != "ne\ntwo" {
		t.Errorf("Wrote %q, expected %q", got, "ne\ntwo")
	}
	if e.Modified() {
		t.Errorf("Document is still modified after writing")
	}
	checkMessage(t, c, "\""+path+"\" 2 lines written")
}

func TestQuitWithUnsavedChanges(t *testing.T) {
	c, _ := setup(t, "one")
	typeKeys(t, c, "x:q")
	press(t, c, gott.KeyEnter)
	if !c.IsRunning() {
		t.Fatalf("Quit with unsaved changes")
	}
	checkMessage(t, c, "unsaved changes (use :q! to quit anyway)")
	typeKeys(t, c, ":q!")
	press(t, c, gott.KeyEnter)
	if c.IsRunning() {
		t.Errorf("Force quit did not stop the commander")
	}
}

func TestQuitKey(t *testing.T) {
	c, _ := setup(t, "one")
	typeKeys(t, c, "q")
	if c.IsRunning() {
		t.Errorf("Quit did not stop an unmodified commander")
	}
}

func TestLispPrompt(t *testing.T) {
	c, e := setup(t, "one", "two", "three")
	typeKeys(t, c, "(")
	checkMode(t, c, gott.ModeLisp)
	if got := c.GetMessageBarText(); got != "(" {
		t.Errorf("Message bar shows %q, expected %q", got, "(")
	}
	typeKeys(t, c, "down 2)")
	press(t, c, gott.KeyEnter)
	checkMode(t, c, gott.ModeNormal)
	checkCursor(t, e, 2, 0)
	typeKeys(t, c, "(cursor)")
	press(t, c, gott.KeyEnter)
	checkMessage(t, c, "3,1")
}

func TestParseEvalScript(t *testing.T) {
	c, e := setup(t, "one", "two")
	if err := c.ParseEvalScript(`(down) (end-of-line) (insert "!")`); err != nil {
		t.Fatalf("Script failed: %+v", err)
	}
	checkLines(t, e, "one", "two!")
	if err := c.ParseEvalScript(`(undo)`); err != nil {
		t.Fatalf("Script failed: %+v", err)
	}
	checkLines(t, e, "one", "two")
}

func TestTickTogglesBlink(t *testing.T) {
	c, _ := setup(t, "one")
	if !c.Frame().Blink {
		t.Errorf("Cursor starts hidden")
	}
	c.ProcessEvent(&gott.Event{Type: gott.EventTick})
	if c.Frame().Blink {
		t.Errorf("Tick did not toggle the cursor")
	}
	typeKeys(t, c, "l")
	if !c.Frame().Blink {
		t.Errorf("Key press did not show the cursor")
	}
}

func TestErrorEvent(t *testing.T) {
	c, _ := setup(t, "one")
	want := errors.New("terminal closed")
	if err := c.ProcessEvent(&gott.Event{Type: gott.EventError, Err: want}); err != want {
		t.Errorf("ProcessEvent returned %v, expected %v", err, want)
	}
}

func TestFrame(t *testing.T) {
	c, _ := setup(t, "one")
	typeKeys(t, c, ":w")
	f := c.Frame()
	if f.Mode != gott.ModeCommand || f.Minibuffer != ":w" {
		t.Errorf("Frame has mode %s and minibuffer %q", f.Mode, f.Minibuffer)
	}
	if diff := cmp.Diff([][]rune{[]rune("one")}, f.Lines); diff != "" {
		t.Errorf("Unexpected frame lines (-want +got):\n%s", diff)
	}
}

type fakeBrowser struct {
	dir  string
	path string
}

func (b *fakeBrowser) Open(dir string) error {
	b.dir = dir
	return nil
}

func (b *fakeBrowser) HandleEvent(event *gott.Event) (string, bool) {
	switch event.Key {
	case gott.KeyEnter:
		return b.path, true
	case gott.KeyEsc:
		return "", true
	}
	return "", false
}

func (b *fakeBrowser) View() ([]string, gott.Point) {
	return []string{"..", filepath.Base(b.path)}, gott.Point{Row: 1}
}

func TestDired(t *testing.T) {
	c, e := setup(t, "one")
	path := filepath.Join(t.TempDir(), "other.txt")
	if err := os.WriteFile(path, []byte("other"), 0644); err != nil {
		t.Fatalf("Write failed: %+v", err)
	}
	browser := &fakeBrowser{path: path}
	c.SetBrowser(browser)
	typeKeys(t, c, "d")
	checkMode(t, c, gott.ModeDired)
	if browser.dir != filepath.Dir(e.GetFileName()) {
		t.Errorf("Browser opened %q, expected %q", browser.dir, filepath.Dir(e.GetFileName()))
	}
	f := c.Frame()
	if diff := cmp.Diff([][]rune{[]rune(".."), []rune("other.txt")}, f.Lines); diff != "" {
		t.Errorf("Unexpected dired lines (-want +got):\n%s", diff)
	}
	if f.Cursor != (gott.Point{Row: 1}) {
		t.Errorf("Dired cursor at %+v", f.Cursor)
	}
	typeKeys(t, c, "j")
	checkMode(t, c, gott.ModeDired)
	press(t, c, gott.KeyEnter)
	checkMode(t, c, gott.ModeNormal)
	checkLines(t, e, "other")
	if e.GetFileName() != path {
		t.Errorf("Opened %q, expected %q", e.GetFileName(), path)
	}
}

func TestDiredWithoutBrowser(t *testing.T) {
	c, _ := setup(t, "one")
	typeKeys(t, c, "d")
	checkMode(t, c, gott.ModeNormal)
	checkMessage(t, c, "no directory browser available")
}

type fakeFinder struct {
	commands []string
	result   gott.FinderResult
}

func (f *fakeFinder) Start(dir string, commands []string) {
	f.commands = commands
}

func (f *fakeFinder) HandleEvent(event *gott.Event) (gott.FinderResult, bool) {
	if event.Key == gott.KeyEnter {
		return f.result, true
	}
	return gott.FinderResult{}, false
}

func (f *fakeFinder) View() ([]string, gott.Point) {
	return []string{f.result.Command}, gott.Point{}
}

func TestFinderRunsCommand(t *testing.T) {
	c, e := setup(t, "one")
	finder := &fakeFinder{result: gott.FinderResult{Command: "end-of-line"}}
	c.SetFinder(finder)
	typeKeys(t, c, "f")
	checkMode(t, c, gott.ModeFinder)
	found := false
	for _, name := range finder.commands {
		if name == "undo" {
			found = true
		}
		if name == "insert" {
			t.Errorf("Finder offered a command that needs an argument")
		}
	}
	if !found {
		t.Errorf("Finder commands %v do not include undo", finder.commands)
	}
	press(t, c, gott.KeyEnter)
	checkMode(t, c, gott.ModeNormal)
	checkCursor(t, e, 0, 3)
}

type fakeEvaluator struct {
	code []string
}

func (f *fakeEvaluator) Evaluate(code string) error {
	f.code = append(f.code, code)
	if strings.Contains(code, "error") {
		return errors.New("bad config")
	}
	return nil
}

func TestThemeCommand(t *testing.T) {
	c, _ := setup(t, "one")
	evaluator := &fakeEvaluator{}
	c.SetEvaluator(evaluator)
	press(t, c, gott.KeyCtrlT)
	checkMode(t, c, gott.ModeCommand)
	typeKeys(t, c, "nature")
	press(t, c, gott.KeyEnter)
	typeKeys(t, c, ":lua error()")
	press(t, c, gott.KeyEnter)
	checkMessage(t, c, "bad config")
	want := []string{`theme = "nature"`, "error()"}
	if diff := cmp.Diff(want, evaluator.code); diff != "" {
		t.Errorf("Unexpected evaluated code (-want +got):\n%s", diff)
	}
}

func TestReplaceCharacter(t *testing.T) {
	c, e := setup(t, "abcdef")
	typeKeys(t, c, "2rx")
	checkLines(t, e, "xxcdef")
	checkCursor(t, e, 0, 1)
	typeKeys(t, c, "l.")
	checkLines(t, e, "xxxxef")
	typeKeys(t, c, "$rz")
	checkMessage(t, c, "not enough characters to replace")
}

func TestScriptEditsDuringSelection(t *testing.T) {
	c, e := setup(t, "a", "b")
	if err := c.ParseEvalScript("(down) (visual-mode) (kill-line) (kill-line) (delete-selection)"); err != nil {
		t.Fatalf("Script failed: %+v", err)
	}
	checkLines(t, e, "")
	checkMode(t, c, gott.ModeNormal)
}
