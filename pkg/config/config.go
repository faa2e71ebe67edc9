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

// Package config runs Lua configuration code. After every evaluation the
// known setting globals are read back and applied, so a script can change
// settings at startup or while editing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/timburks/redit/pkg/editor"
)

// ErrClosed is returned when evaluating with a closed state.
var ErrClosed = errors.New("lua state is closed")

// Settings are the values a configuration script can change.
type Settings struct {
	Theme              string
	ShowLineNumbers    bool
	ShowFringe         bool
	InsertLineCursor   bool
	IndentWidth        int
	ElectricPair       bool
	Pairs              map[rune]rune
	ScrollMarginTop    int
	ScrollMarginBottom int
	SystemClipboard    bool
	BlinkInterval      time.Duration
	RememberPlaces     bool
}

func DefaultSettings() Settings {
	options := editor.DefaultOptions()
	return Settings{
		Theme:              "nature",
		ShowLineNumbers:    true,
		ShowFringe:         true,
		IndentWidth:        options.IndentWidth,
		ElectricPair:       options.ElectricPair,
		Pairs:              options.Pairs,
		ScrollMarginTop:    options.MarginTop,
		ScrollMarginBottom: options.MarginBottom,
		BlinkInterval:      500 * time.Millisecond,
		RememberPlaces:     options.RememberPlaces,
	}
}

// EditorOptions returns the editing part of the settings.
func (s Settings) EditorOptions() editor.Options {
	return editor.Options{
		IndentWidth:     s.IndentWidth,
		ElectricPair:    s.ElectricPair,
		Pairs:           s.Pairs,
		MarginTop:       s.ScrollMarginTop,
		MarginBottom:    s.ScrollMarginBottom,
		SystemClipboard: s.SystemClipboard,
		RememberPlaces:  s.RememberPlaces,
	}
}

// DefaultPath returns the location of the user's configuration file.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "redit", "config.lua"), nil
}

// Lua evaluates configuration code.
type Lua struct {
	L        *lua.LState
	settings Settings
	apply    func(Settings) error
	closed   bool
}

// New creates a Lua state with the base, table, string and math libraries.
// apply is called with the settings after every evaluation.
func New(apply func(Settings) error) *Lua {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	l := &Lua{L: L, settings: DefaultSettings(), apply: apply}
	l.publish()
	return l
}

func (l *Lua) Close() {
	if !l.closed {
		l.L.Close()
		l.closed = true
	}
}

func (l *Lua) Settings() Settings {
	return l.settings
}

// Evaluate runs code and then reads back every setting. Settings assigned
// before an error in the code are still applied, values of the wrong type
// are skipped, and if apply rejects the result all of it is rolled back.
// The globals are then reset to the settings in effect.
func (l *Lua) Evaluate(code string) error {
	if l.closed {
		return ErrClosed
	}
	err := l.doWithRecovery(func() error {
		return l.L.DoString(code)
	})
	previous := l.settings
	problems := l.poll()
	if l.apply != nil {
		if applyErr := l.apply(l.settings); applyErr != nil {
			problems = append(problems, applyErr.Error())
			l.settings = previous
			l.apply(previous)
		}
	}
	// rejected values must not linger in the globals
	l.publish()
	if err != nil {
		return fmt.Errorf("lua: %w", err)
	}
	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// LoadFile evaluates a configuration file. A missing file is not an error.
func (l *Lua) LoadFile(path string) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	} else if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := l.Evaluate(string(b)); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func (l *Lua) doWithRecovery(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}
