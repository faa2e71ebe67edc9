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
	"github.com/nsf/termbox-go"

	gott "github.com/timburks/redit/pkg/types"
)

// key converts termbox keys. Ctrl-H, Ctrl-I, Ctrl-M and Ctrl-[ share codes
// with Backspace, Tab, Enter and Esc, and arrive as those keys.
func key(k termbox.Key) gott.Key {
	switch k {
	case termbox.KeyArrowDown:
		return gott.KeyArrowDown
	case termbox.KeyArrowLeft:
		return gott.KeyArrowLeft
	case termbox.KeyArrowRight:
		return gott.KeyArrowRight
	case termbox.KeyArrowUp:
		return gott.KeyArrowUp
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return gott.KeyBackspace
	case termbox.KeyDelete:
		return gott.KeyDelete
	case termbox.KeyCtrlA:
		return gott.KeyCtrlA
	case termbox.KeyCtrlB:
		return gott.KeyCtrlB
	case termbox.KeyCtrlC:
		return gott.KeyCtrlC
	case termbox.KeyCtrlD:
		return gott.KeyCtrlD
	case termbox.KeyCtrlE:
		return gott.KeyCtrlE
	case termbox.KeyCtrlF:
		return gott.KeyCtrlF
	case termbox.KeyCtrlG:
		return gott.KeyCtrlG
	case termbox.KeyCtrlJ:
		return gott.KeyCtrlJ
	case termbox.KeyCtrlK:
		return gott.KeyCtrlK
	case termbox.KeyCtrlL:
		return gott.KeyCtrlL
	case termbox.KeyCtrlN:
		return gott.KeyCtrlN
	case termbox.KeyCtrlO:
		return gott.KeyCtrlO
	case termbox.KeyCtrlP:
		return gott.KeyCtrlP
	case termbox.KeyCtrlQ:
		return gott.KeyCtrlQ
	case termbox.KeyCtrlR:
		return gott.KeyCtrlR
	case termbox.KeyCtrlS:
		return gott.KeyCtrlS
	case termbox.KeyCtrlT:
		return gott.KeyCtrlT
	case termbox.KeyCtrlU:
		return gott.KeyCtrlU
	case termbox.KeyCtrlV:
		return gott.KeyCtrlV
	case termbox.KeyCtrlW:
		return gott.KeyCtrlW
	case termbox.KeyCtrlX:
		return gott.KeyCtrlX
	case termbox.KeyCtrlY:
		return gott.KeyCtrlY
	case termbox.KeyCtrlZ:
		return gott.KeyCtrlZ
	case termbox.KeyEnd:
		return gott.KeyEnd
	case termbox.KeyEnter:
		return gott.KeyEnter
	case termbox.KeyEsc:
		return gott.KeyEsc
	case termbox.KeyHome:
		return gott.KeyHome
	case termbox.KeyPgdn:
		return gott.KeyPgdn
	case termbox.KeyPgup:
		return gott.KeyPgup
	case termbox.KeySpace:
		return gott.KeySpace
	case termbox.KeyTab:
		return gott.KeyTab
	default:
		return gott.KeyUnsupported
	}
}
