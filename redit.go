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

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/timburks/redit/pkg/commander"
	"github.com/timburks/redit/pkg/config"
	"github.com/timburks/redit/pkg/editor"
	"github.com/timburks/redit/pkg/places"
	"github.com/timburks/redit/pkg/screen"
)

func main() {
	var filename, script, configPath string

	for i := 1; i < len(os.Args); i++ {
		argi := os.Args[i]
		switch argi {
		case "--eval": // eval program
			i++
			if i < len(os.Args) {
				script = os.Args[i]
			} else {
				log.Fatal("No program specified for --eval option")
			}
		case "--config":
			i++
			if i < len(os.Args) {
				configPath = os.Args[i]
			} else {
				log.Fatal("No file specified for --config option")
			}
		default:
			if filename != "" {
				log.Fatalf("Only one file can be edited, got %s and %s", filename, argi)
			}
			filename = argi
		}
	}

	if script != "" {
		if err := runScript(filename, script); err != nil {
			log.Fatal(err)
		}
		return
	}

	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		fmt.Fprintln(os.Stderr, "redit: standard input is not a terminal")
		os.Exit(1)
	}

	// Open a log file.
	f, err := os.OpenFile(os.Getenv("HOME")+"/.reditlog", os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		log.Fatal(err)
	}
	log.SetOutput(f)
	defer f.Close()

	if err := run(filename, configPath); err != nil {
		log.Printf("%+v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run edits a file interactively.
func run(filename, configPath string) error {
	// The editor manages all text manipulation.
	e := editor.NewEditor()

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e)

	// The screen draws frames and reads input.
	s, err := screen.NewScreen()
	if err != nil {
		return err
	}
	defer s.Close()

	settings := config.New(func(settings config.Settings) error {
		e.SetOptions(settings.EditorOptions())
		return s.SetSettings(settings)
	})
	defer settings.Close()
	c.SetEvaluator(settings)
	if err := loadConfig(settings, configPath); err != nil {
		c.SetMessage(err.Error())
	}

	if path, err := places.DefaultPath(); err == nil {
		if store, err := places.Open(path); err != nil {
			log.Printf("opening places: %v", err)
		} else {
			defer store.Close()
			e.SetPlaceStore(store)
		}
	}
	if system := editor.NewHostClipboard(); system != nil {
		e.SetSystemClipboard(system)
	}

	if filename != "" {
		c.Open(filename)
	}

	// Run the main event loop.
	for c.IsRunning() {
		e.SetSize(s.TextSize())
		s.Render(c.Frame())
		if err := c.ProcessEvent(s.GetNextEvent()); err != nil {
			return err
		}
	}
	return nil
}

// runScript runs lisp commands against a file and exits.
func runScript(filename, script string) error {
	e := editor.NewEditor()
	c := commander.NewCommander(e)
	settings := config.New(func(settings config.Settings) error {
		e.SetOptions(settings.EditorOptions())
		return nil
	})
	defer settings.Close()
	c.SetEvaluator(settings)
	if filename != "" {
		if err := e.ReadFile(filename); err != nil {
			return err
		}
	}
	if err := c.ParseEvalScript(script); err != nil {
		return err
	}
	if message := c.GetMessage(); message != "" {
		log.Print(message)
	}
	return nil
}

// loadConfig evaluates the configuration file and applies the settings.
func loadConfig(settings *config.Lua, path string) error {
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return settings.Evaluate("")
		}
	}
	if err := settings.LoadFile(path); err != nil {
		return err
	}
	return settings.Evaluate("")
}
