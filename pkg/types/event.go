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

// Event types
type EventType int

const (
	EventKey EventType = iota
	EventResize
	EventTick // input poll timed out
	EventError
)

// An Event is a terminal input event.
type Event struct {
	Type EventType
	Key  Key
	Ch   rune
	Err  error
}

// Keys that arrive without a printable character.
type Key int

const (
	KeyNone Key = iota
	KeyUnsupported
	KeyEsc
	KeyEnter
	KeyTab
	KeySpace
	KeyBackspace
	KeyDelete
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyPgup
	KeyPgdn
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ
)

// KeyEvent returns a key press event for a special key.
func KeyEvent(k Key) *Event {
	return &Event{Type: EventKey, Key: k}
}

// CharEvent returns a key press event for a printable character.
func CharEvent(ch rune) *Event {
	return &Event{Type: EventKey, Ch: ch}
}
