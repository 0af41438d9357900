// Package storage implements the embedded ordered key/value store the
// core requires (spec §4.C8): named sub-trees with create-if-missing
// semantics, ordered byte-keyed iteration, and durable commits — backed
// by go.etcd.io/bbolt, the maintained continuation of the teacher's own
// boltdb/bolt dependency. A bbolt bucket is exactly spec's "sub-tree."
package storage

import (
	"github.com/pkg/errors"
	"go.etcd.io/bbolt"
)

// Engine owns the single on-disk database file backing every table's
// sub-tree plus the reserved vinyl_table sub-tree.
type Engine struct {
	db *bbolt.DB
}

// Open opens (creating if absent) the database file at dataPath. It
// does not enumerate the sub-trees already present; SubTreeNames does.
func Open(dataPath string) (*Engine, error) {
	db, err := bbolt.Open(dataPath, 0o600, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "opening data file %s", dataPath)
	}
	return &Engine{db: db}, nil
}

// Close releases the underlying database file.
func (e *Engine) Close() error {
	return e.db.Close()
}

// SubTreeNames enumerates existing sub-tree (bucket) names.
func (e *Engine) SubTreeNames() ([]string, error) {
	var names []string
	err := e.db.View(func(tx *bbolt.Tx) error {
		return tx.ForEach(func(name []byte, _ *bbolt.Bucket) error {
			names = append(names, string(name))
			return nil
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "listing sub-trees")
	}
	return names, nil
}

// Sub returns a handle to the named sub-tree, creating it if it does
// not already exist.
func (e *Engine) Sub(name string) (*Sub, error) {
	err := e.db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(name))
		return err
	})
	if err != nil {
		return nil, errors.Wrapf(err, "creating sub-tree %s", name)
	}
	return &Sub{db: e.db, name: name}, nil
}

// Sub is a handle to one named, ordered key/value sub-tree.
type Sub struct {
	db   *bbolt.DB
	name string
}

// Insert stores value under key, reporting whether an older value was
// displaced. Durability is bbolt's: every call commits a real
// transaction; the core never calls fsync directly.
func (s *Sub) Insert(key, val []byte) (displaced bool, err error) {
	err = s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(s.name))
		displaced = b.Get(key) != nil
		return b.Put(key, val)
	})
	if err != nil {
		return false, errors.Wrapf(err, "inserting into sub-tree %s", s.name)
	}
	return displaced, nil
}

// Iterate walks the sub-tree in ascending key order, invoking fn for
// each (key, value) pair until fn returns false or the sub-tree is
// exhausted. Keys and values are only valid for the duration of the
// call to fn, matching bbolt's own cursor contract.
func (s *Sub) Iterate(fn func(key, val []byte) bool) error {
	return s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(s.name))
		c := b.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			if !fn(k, v) {
				break
			}
		}
		return nil
	})
}

// Len reports the number of keys in the sub-tree.
func (s *Sub) Len() int {
	var n int
	_ = s.db.View(func(tx *bbolt.Tx) error {
		n = tx.Bucket([]byte(s.name)).Stats().KeyN
		return nil
	})
	return n
}

// Cursor opens a long-lived forward cursor over the sub-tree, backing
// TableScan's pull-based iteration: each call to Next advances one key
// at a time instead of materializing the whole sub-tree up front. The
// caller must call Close once done, including on early abandonment.
func (s *Sub) Cursor() (*Cursor, error) {
	tx, err := s.db.Begin(false)
	if err != nil {
		return nil, errors.Wrapf(err, "opening cursor on sub-tree %s", s.name)
	}
	return &Cursor{tx: tx, cursor: tx.Bucket([]byte(s.name)).Cursor(), started: false}, nil
}

// Cursor is a forward-only, single-shot cursor over one sub-tree. It
// holds a read transaction open for its lifetime, matching spec §4.C7's
// requirement that execution suspend only where storage itself does.
type Cursor struct {
	tx      *bbolt.Tx
	cursor  *bbolt.Cursor
	started bool
}

// Next returns the next (key, value) pair in ascending order, or
// ok=false once the sub-tree is exhausted. The returned slices are
// copies, safe to retain past the next call or past Close.
func (c *Cursor) Next() (key, val []byte, ok bool) {
	var k, v []byte
	if !c.started {
		c.started = true
		k, v = c.cursor.First()
	} else {
		k, v = c.cursor.Next()
	}
	if k == nil {
		return nil, nil, false
	}
	keyCopy := append([]byte(nil), k...)
	valCopy := append([]byte(nil), v...)
	return keyCopy, valCopy, true
}

// Close releases the cursor's underlying read transaction.
func (c *Cursor) Close() error {
	return c.tx.Rollback()
}
