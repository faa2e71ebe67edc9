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

package config

import (
	"fmt"
	"time"
	"unicode/utf8"

	lua "github.com/yuin/gopher-lua"
)

// publish sets the setting globals to the current values.
func (l *Lua) publish() {
	s := l.settings
	l.L.SetGlobal("theme", lua.LString(s.Theme))
	l.L.SetGlobal("show_line_numbers", lua.LBool(s.ShowLineNumbers))
	l.L.SetGlobal("show_fringe", lua.LBool(s.ShowFringe))
	l.L.SetGlobal("insert_line_cursor", lua.LBool(s.InsertLineCursor))
	l.L.SetGlobal("indent_width", lua.LNumber(s.IndentWidth))
	l.L.SetGlobal("electric_pair", lua.LBool(s.ElectricPair))
	l.L.SetGlobal("scroll_margin_top", lua.LNumber(s.ScrollMarginTop))
	l.L.SetGlobal("scroll_margin_bottom", lua.LNumber(s.ScrollMarginBottom))
	l.L.SetGlobal("system_clipboard", lua.LBool(s.SystemClipboard))
	l.L.SetGlobal("blink_interval_ms", lua.LNumber(s.BlinkInterval/time.Millisecond))
	l.L.SetGlobal("remember_places", lua.LBool(s.RememberPlaces))
	pairs := l.L.NewTable()
	for opener, closer := range s.Pairs {
		pairs.RawSetString(string(opener), lua.LString(string(closer)))
	}
	l.L.SetGlobal("electric_pairs", pairs)
}

// poll reads every setting global. Each is applied on its own; values of
// the wrong type are reported and skipped.
func (l *Lua) poll() []string {
	var problems []string
	report := func(name, expected string, v lua.LValue) {
		problems = append(problems, fmt.Sprintf("%s must be %s, not %s", name, expected, v.Type()))
	}
	str := func(name string, target *string) {
		switch v := l.L.GetGlobal(name).(type) {
		case *lua.LNilType:
		case lua.LString:
			*target = string(v)
		default:
			report(name, "a string", v)
		}
	}
	boolean := func(name string, target *bool) {
		switch v := l.L.GetGlobal(name).(type) {
		case *lua.LNilType:
		case lua.LBool:
			*target = bool(v)
		default:
			report(name, "a boolean", v)
		}
	}
	number := func(name string, minimum int, target *int) {
		switch v := l.L.GetGlobal(name).(type) {
		case *lua.LNilType:
		case lua.LNumber:
			if int(v) < minimum {
				problems = append(problems, fmt.Sprintf("%s must be at least %d", name, minimum))
				return
			}
			*target = int(v)
		default:
			report(name, "a number", v)
		}
	}

	s := &l.settings
	str("theme", &s.Theme)
	boolean("show_line_numbers", &s.ShowLineNumbers)
	boolean("show_fringe", &s.ShowFringe)
	boolean("insert_line_cursor", &s.InsertLineCursor)
	number("indent_width", 1, &s.IndentWidth)
	boolean("electric_pair", &s.ElectricPair)
	number("scroll_margin_top", 0, &s.ScrollMarginTop)
	number("scroll_margin_bottom", 0, &s.ScrollMarginBottom)
	boolean("system_clipboard", &s.SystemClipboard)
	boolean("remember_places", &s.RememberPlaces)
	blink := int(s.BlinkInterval / time.Millisecond)
	number("blink_interval_ms", 50, &blink)
	s.BlinkInterval = time.Duration(blink) * time.Millisecond

	switch v := l.L.GetGlobal("electric_pairs").(type) {
	case *lua.LNilType:
	case *lua.LTable:
		if pairs, err := readPairs(v); err != nil {
			problems = append(problems, err.Error())
		} else {
			s.Pairs = pairs
		}
	default:
		report("electric_pairs", "a table", v)
	}
	return problems
}

func readPairs(t *lua.LTable) (map[rune]rune, error) {
	pairs := make(map[rune]rune)
	var err error
	t.ForEach(func(k, v lua.LValue) {
		opener, ok1 := k.(lua.LString)
		closer, ok2 := v.(lua.LString)
		if !ok1 || !ok2 || utf8.RuneCountInString(string(opener)) != 1 || utf8.RuneCountInString(string(closer)) != 1 {
			if err == nil {
				err = fmt.Errorf("electric_pairs must map single characters to single characters")
			}
			return
		}
		o, _ := utf8.DecodeRuneInString(string(opener))
		c, _ := utf8.DecodeRuneInString(string(closer))
		pairs[o] = c
	})
	return pairs, err
}
