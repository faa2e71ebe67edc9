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

package editor

import (
	"errors"

	gott "github.com/timburks/redit/pkg/types"
)

// A snapshot is a full copy of the document and cursor.
type snapshot struct {
	lines  [][]rune
	cursor gott.Point
}

func (s *snapshot) equals(lines [][]rune, cursor gott.Point) bool {
	if s.cursor != cursor || len(s.lines) != len(lines) {
		return false
	}
	for i := range lines {
		if string(s.lines[i]) != string(lines[i]) {
			return false
		}
	}
	return true
}

// A History is a linear list of snapshots with an index marking the one
// that matches the live document.
type History struct {
	snapshots []snapshot
	index     int
}

func NewHistory() *History {
	return &History{}
}

// Reset discards all snapshots and starts over with one for the given state.
func (h *History) Reset(lines [][]rune, cursor gott.Point) {
	h.snapshots = []snapshot{{lines: lines, cursor: cursor}}
	h.index = 0
}

// Record adds a snapshot after the current one, discarding any snapshots
// that could have been redone. It returns false if the state matches the
// current snapshot.
func (h *History) Record(lines [][]rune, cursor gott.Point) bool {
	if len(h.snapshots) > 0 && h.snapshots[h.index].equals(lines, cursor) {
		return false
	}
	if len(h.snapshots) > 0 {
		h.snapshots = h.snapshots[0 : h.index+1]
	}
	h.snapshots = append(h.snapshots, snapshot{lines: lines, cursor: cursor})
	h.index = len(h.snapshots) - 1
	return true
}

func (h *History) back() (snapshot, bool) {
	if h.index == 0 {
		return snapshot{}, false
	}
	h.index--
	return h.snapshots[h.index], true
}

func (h *History) forward() (snapshot, bool) {
	if h.index >= len(h.snapshots)-1 {
		return snapshot{}, false
	}
	h.index++
	return h.snapshots[h.index], true
}

// Len returns the number of stored snapshots.
func (h *History) Len() int {
	return len(h.snapshots)
}

// Index returns the position of the snapshot matching the live document.
func (h *History) Index() int {
	return h.index
}

// Snapshot records the live document and cursor in the history.
func (e *Editor) Snapshot() {
	e.history.Record(e.buffer.Snapshot(), e.cursor)
}

// Undo restores the previous snapshot and recenters.
func (e *Editor) Undo() error {
	s, ok := e.history.back()
	if !ok {
		return errors.New("already at oldest change")
	}
	e.restore(s)
	return nil
}

// Redo restores the next snapshot and recenters.
func (e *Editor) Redo() error {
	s, ok := e.history.forward()
	if !ok {
		return errors.New("already at newest change")
	}
	e.restore(s)
	return nil
}

func (e *Editor) restore(s snapshot) {
	e.buffer.Restore(s.lines)
	e.selection = nil
	e.cursor = s.cursor
	e.keepCursorInDocument()
	e.Recenter()
}

// GetHistory returns the undo history.
func (e *Editor) GetHistory() *History {
	return e.history
}
