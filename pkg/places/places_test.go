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

package places

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	bolt "go.etcd.io/bbolt"

	gott "github.com/timburks/redit/pkg/types"
)

func tempStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "places.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestPutGet(t *testing.T) {
	s, _ := tempStore(t)
	if _, err := s.Get("a.txt"); !errors.Is(err, ErrNoPlace) {
		t.Errorf("Expected ErrNoPlace, got %v", err)
	}
	want := gott.Point{Row: 12, Col: 3}
	if err := s.Put("a.txt", want); err != nil {
		t.Fatal(err)
	}
	got, err := s.Get("a.txt")
	if err != nil || got != want {
		t.Errorf("Expected %+v, got %+v (%v)", want, got, err)
	}
	s.Put("a.txt", gott.Point{Row: 1})
	if got, _ := s.Get("a.txt"); got != (gott.Point{Row: 1}) {
		t.Errorf("Put should replace the stored place, got %+v", got)
	}
	s.Delete("a.txt")
	if _, ok := s.Lookup("a.txt"); ok {
		t.Errorf("Deleted place should be gone")
	}
}

func TestRelativeAndAbsolutePaths(t *testing.T) {
	s, _ := tempStore(t)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	s.Remember("b.txt", gott.Point{Row: 4, Col: 4})
	if p, ok := s.Lookup(filepath.Join(wd, "b.txt")); !ok || p.Row != 4 {
		t.Errorf("Relative and absolute paths should share a place")
	}
}

func TestPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "places.db")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	s.Put("c.txt", gott.Point{Row: 7, Col: 1})
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	if p, ok := s.Lookup("c.txt"); !ok || p != (gott.Point{Row: 7, Col: 1}) {
		t.Errorf("Place should survive reopening, got %+v", p)
	}
}

func TestCorruptValue(t *testing.T) {
	s, _ := tempStore(t)
	s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketPlaces)).Put(key("d.txt"), []byte("garbage"))
	})
	if _, err := s.Get("d.txt"); err == nil {
		t.Errorf("Expected an error for a corrupt value")
	}
	if _, ok := s.Lookup("d.txt"); ok {
		t.Errorf("A corrupt value should not be used")
	}
}
