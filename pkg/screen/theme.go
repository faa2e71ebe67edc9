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
	"fmt"

	"github.com/nsf/termbox-go"

	gott "github.com/timburks/redit/pkg/types"
)

// A Theme assigns colors to the parts of the screen.
type Theme struct {
	Name         string
	Text         termbox.Attribute
	Background   termbox.Attribute
	LineNumber   termbox.Attribute
	Fringe       termbox.Attribute
	Empty        termbox.Attribute
	Selection    termbox.Attribute
	Match        termbox.Attribute
	ModeLine     termbox.Attribute
	ModeLineText termbox.Attribute
	Normal       termbox.Attribute
	Insert       termbox.Attribute
	Visual       termbox.Attribute
	Message      termbox.Attribute
}

// color converts an xterm 256-color index to a termbox attribute.
func color(n int) termbox.Attribute {
	return termbox.Attribute(n + 1)
}

var themes = map[string]Theme{
	"nature": {
		Name:         "nature",
		Text:         color(187),
		Background:   color(234),
		LineNumber:   color(242),
		Fringe:       color(236),
		Empty:        color(239),
		Selection:    color(22),
		Match:        color(136),
		ModeLine:     color(237),
		ModeLineText: color(187),
		Normal:       color(107),
		Insert:       color(173),
		Visual:       color(139),
		Message:      color(250),
	},
	"everforest": {
		Name:         "everforest",
		Text:         color(223),
		Background:   color(235),
		LineNumber:   color(243),
		Fringe:       color(236),
		Empty:        color(241),
		Selection:    color(52),
		Match:        color(108),
		ModeLine:     color(238),
		ModeLineText: color(223),
		Normal:       color(142),
		Insert:       color(167),
		Visual:       color(175),
		Message:      color(246),
	},
}

// LookupTheme returns the named theme.
func LookupTheme(name string) (Theme, error) {
	t, ok := themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme: %s", name)
	}
	return t, nil
}

// modeColor is the background of the mode name on the modeline.
func (t Theme) modeColor(m gott.Mode) termbox.Attribute {
	switch m {
	case gott.ModeInsert:
		return t.Insert
	case gott.ModeVisual:
		return t.Visual
	default:
		return t.Normal
	}
}
