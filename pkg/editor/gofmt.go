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
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// Gofmt formats Go source with the gofmt command. The process runs to
// completion before Gofmt returns.
func (e *Editor) Gofmt(filename string, inputBytes []byte) (outputBytes []byte, err error) {
	path, err := exec.LookPath("gofmt")
	if err != nil {
		return inputBytes, fmt.Errorf("gofmt: %w", err)
	}
	var stdout, stderr bytes.Buffer
	cmd := exec.Command(path)
	cmd.Stdin = bytes.NewReader(inputBytes)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err = cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			message := strings.Replace(stderr.String(), "<standard input>", filename, -1)
			return inputBytes, fmt.Errorf("gofmt: %s", strings.TrimSpace(message))
		}
		return inputBytes, fmt.Errorf("gofmt: %w", err)
	}
	return stdout.Bytes(), nil
}
