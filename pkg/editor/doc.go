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

// Package editor implements the core text editing functions of redit.
// The Editor owns a single document, its cursor, the viewport, the visual
// selection, the clipboard register, and a linear undo history of full
// document snapshots. Edits that should be repeatable are expressed as
// operations and run through Perform, which records a snapshot after each.
package editor
