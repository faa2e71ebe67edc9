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

// Package commander converts user input and scripts into commands for redit.
// Each editing mode handles keys on its own and names the mode that follows.
// Keys are bound to lisp expressions; every command is a lisp primitive, so
// the same commands are available to key bindings, the lisp prompt, scripts,
// and the finder. Edits that should be repeatable are wrapped in operations.
package commander
