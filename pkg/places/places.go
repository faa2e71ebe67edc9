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

// Package places remembers the last cursor position in each edited file.
// Positions are kept in a bbolt database keyed by absolute path.
package places

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"

	gott "github.com/timburks/redit/pkg/types"
)

const bucketPlaces = "places"

const dbTimeout = time.Second

// ErrNoPlace is returned by Get for files without a stored position.
var ErrNoPlace = errors.New("no place stored")

var initDB = map[string]func(tx *bolt.Tx) error{
	"initialize places table": func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketPlaces))
		return err
	},
}

// A Store holds cursor positions.
type Store struct {
	db *bolt.DB
}

var _ gott.PlaceStore = (*Store)(nil)

// DefaultPath returns the location of the places database.
func DefaultPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "redit", "places.db"), nil
}

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0644, &bolt.Options{Timeout: dbTimeout})
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			if err := fn(tx); err != nil {
				return fmt.Errorf("failed to %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func key(path string) []byte {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return []byte(path)
}

func marshalPoint(p gott.Point) []byte {
	return []byte(strconv.Itoa(p.Row) + ":" + strconv.Itoa(p.Col))
}

func unmarshalPoint(data []byte) (gott.Point, error) {
	row, col, ok := strings.Cut(string(data), ":")
	if !ok {
		return gott.Point{}, fmt.Errorf("bad place %q", data)
	}
	var p gott.Point
	var err error
	if p.Row, err = strconv.Atoi(row); err != nil {
		return gott.Point{}, err
	}
	if p.Col, err = strconv.Atoi(col); err != nil {
		return gott.Point{}, err
	}
	return p, nil
}

// Put stores the cursor position for a file.
func (s *Store) Put(path string, cursor gott.Point) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketPlaces))
		return b.Put(key(path), marshalPoint(cursor))
	})
}

// Get returns the stored cursor position for a file.
func (s *Store) Get(path string) (gott.Point, error) {
	var p gott.Point
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketPlaces)).Get(key(path))
		if v == nil {
			return ErrNoPlace
		}
		var err error
		p, err = unmarshalPoint(v)
		return err
	})
	return p, err
}

// Delete forgets the position for a file.
func (s *Store) Delete(path string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketPlaces)).Delete(key(path))
	})
}

// Lookup returns the stored position, treating errors as a missing place.
func (s *Store) Lookup(path string) (gott.Point, bool) {
	p, err := s.Get(path)
	if err != nil {
		if !errors.Is(err, ErrNoPlace) {
			log.Printf("looking up place for %s: %v", path, err)
		}
		return gott.Point{}, false
	}
	return p, true
}

func (s *Store) Remember(path string, cursor gott.Point) error {
	return s.Put(path, cursor)
}
