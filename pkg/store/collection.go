package store

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	bolt "go.etcd.io/bbolt"

	apperrors "dogroom/pkg/errors"
)

// Record is any entity stored in a Collection. Ids are unique within a
// collection and immutable after creation.
type Record interface {
	RecordID() string
}

// Page is one slice of a cursor walk. Next is nil when the walk is done;
// otherwise it is an opaque cursor resuming immediately after the last item.
type Page[T Record] struct {
	Items []T     `json:"items"`
	Next  *string `json:"next"`
}

// Collection is a typed handle over one entity kind: keyed records plus an
// insertion-ordered id index, with atomic create, read-modify-write mutation
// and one-shot seeding.
type Collection[T Record] struct {
	store   *Store
	kind    string
	records []byte
	index   []byte
}

func NewCollection[T Record](s *Store, kind string) (*Collection[T], error) {
	c := &Collection[T]{
		store:   s,
		kind:    kind,
		records: []byte("records:" + kind),
		index:   []byte("index:" + kind),
	}
	err := s.update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(c.records); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(c.index)
		return err
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Collection[T]) Kind() string { return c.kind }

func (c *Collection[T]) Get(id string) (T, error) {
	var out T
	err := c.store.view(func(tx *bolt.Tx) error {
		data := tx.Bucket(c.records).Get([]byte(id))
		if data == nil {
			return apperrors.NotFoundWithID(c.kind, id)
		}
		return c.decode(data, &out)
	})
	return out, err
}

func (c *Collection[T]) Exists(id string) (bool, error) {
	var found bool
	err := c.store.view(func(tx *bolt.Tx) error {
		found = tx.Bucket(c.records).Get([]byte(id)) != nil
		return nil
	})
	return found, err
}

// Create writes the record and appends its id to the index in one
// transaction. Fails with AlreadyExists when the id is taken.
func (c *Collection[T]) Create(record T) (T, error) {
	err := c.store.update(func(tx *bolt.Tx) error {
		return c.createInTx(tx, record)
	})
	return record, err
}

// CreateIf runs guard over every record of the collection (in index order)
// and creates the record only when the guard returns nil. Guard and create
// share one write transaction, so a check-then-insert sequence cannot race
// with a concurrent create.
func (c *Collection[T]) CreateIf(record T, guard func(existing []T) error) (T, error) {
	err := c.store.update(func(tx *bolt.Tx) error {
		existing, err := c.allInTx(tx)
		if err != nil {
			return err
		}
		if err := guard(existing); err != nil {
			return err
		}
		return c.createInTx(tx, record)
	})
	return record, err
}

// Mutate applies fn to the current state of id and persists the result.
// The read-modify-write runs in one write transaction; concurrent Mutate
// calls on the same id are equivalent to some sequential order.
func (c *Collection[T]) Mutate(id string, fn func(T) (T, error)) (T, error) {
	var out T
	err := c.store.update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(c.records)
		data := bucket.Get([]byte(id))
		if data == nil {
			return apperrors.NotFoundWithID(c.kind, id)
		}
		var current T
		if err := c.decode(data, &current); err != nil {
			return err
		}
		next, err := fn(current)
		if err != nil {
			return err
		}
		if next.RecordID() != id {
			return apperrors.Internal(fmt.Sprintf("%s mutation changed record id", c.kind), nil)
		}
		encoded, err := msgpack.Marshal(next)
		if err != nil {
			return apperrors.Internal(fmt.Sprintf("failed to encode %s record", c.kind), err)
		}
		if err := bucket.Put([]byte(id), encoded); err != nil {
			return err
		}
		out = next
		return nil
	})
	return out, err
}

// List returns up to limit records starting immediately after cursor in
// index order. An empty cursor starts at the beginning.
func (c *Collection[T]) List(cursor string, limit int) (*Page[T], error) {
	if limit < 1 {
		return nil, apperrors.InvalidInput("limit must be a positive integer")
	}

	page := &Page[T]{Items: []T{}}
	err := c.store.view(func(tx *bolt.Tx) error {
		records := tx.Bucket(c.records)
		cur := tx.Bucket(c.index).Cursor()

		var k, v []byte
		if cursor == "" {
			k, v = cur.First()
		} else {
			start, err := decodeCursor(cursor)
			if err != nil {
				return err
			}
			k, v = cur.Seek(start)
			if k != nil && bytes.Equal(k, start) {
				k, v = cur.Next()
			}
		}

		var lastKey []byte
		for ; k != nil && len(page.Items) < limit; k, v = cur.Next() {
			data := records.Get(v)
			if data == nil {
				return apperrors.Internal(fmt.Sprintf("%s index references missing record %q", c.kind, v), nil)
			}
			var item T
			if err := c.decode(data, &item); err != nil {
				return err
			}
			page.Items = append(page.Items, item)
			lastKey = append(lastKey[:0], k...)
		}

		if k != nil {
			next := encodeCursor(lastKey)
			page.Next = &next
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return page, nil
}

// All loads every record of the collection in insertion order.
func (c *Collection[T]) All() ([]T, error) {
	var out []T
	err := c.store.view(func(tx *bolt.Tx) error {
		var err error
		out, err = c.allInTx(tx)
		return err
	})
	return out, err
}

// EnsureSeed writes the seed records and flips the per-kind seeded flag in
// one transaction. Every later call, including concurrent ones, is a no-op,
// so it is safe to run on every request.
func (c *Collection[T]) EnsureSeed(seed []T) error {
	flag := []byte("seeded:" + c.kind)
	return c.store.update(func(tx *bolt.Tx) error {
		meta := tx.Bucket(metaBucket)
		if meta.Get(flag) != nil {
			return nil
		}
		records := tx.Bucket(c.records)
		for _, record := range seed {
			if records.Get([]byte(record.RecordID())) != nil {
				continue
			}
			if err := c.createInTx(tx, record); err != nil {
				return err
			}
		}
		return meta.Put(flag, []byte{1})
	})
}

func (c *Collection[T]) createInTx(tx *bolt.Tx, record T) error {
	id := record.RecordID()
	if id == "" {
		return apperrors.InvalidInput(c.kind + " id must not be empty")
	}

	records := tx.Bucket(c.records)
	if records.Get([]byte(id)) != nil {
		return apperrors.AlreadyExists(c.kind, id)
	}

	encoded, err := msgpack.Marshal(record)
	if err != nil {
		return apperrors.Internal(fmt.Sprintf("failed to encode %s record", c.kind), err)
	}

	index := tx.Bucket(c.index)
	seq, err := index.NextSequence()
	if err != nil {
		return err
	}
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	if err := index.Put(key, []byte(id)); err != nil {
		return err
	}
	return records.Put([]byte(id), encoded)
}

func (c *Collection[T]) allInTx(tx *bolt.Tx) ([]T, error) {
	records := tx.Bucket(c.records)
	out := []T{}
	err := tx.Bucket(c.index).ForEach(func(_, id []byte) error {
		data := records.Get(id)
		if data == nil {
			return apperrors.Internal(fmt.Sprintf("%s index references missing record %q", c.kind, id), nil)
		}
		var item T
		if err := c.decode(data, &item); err != nil {
			return err
		}
		out = append(out, item)
		return nil
	})
	return out, err
}

func (c *Collection[T]) decode(data []byte, out *T) error {
	if err := msgpack.Unmarshal(data, out); err != nil {
		return apperrors.Internal(fmt.Sprintf("failed to decode %s record", c.kind), err)
	}
	return nil
}

func encodeCursor(key []byte) string {
	return base64.RawURLEncoding.EncodeToString(key)
}

func decodeCursor(cursor string) ([]byte, error) {
	key, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil || len(key) != 8 {
		return nil, apperrors.InvalidInput("invalid cursor")
	}
	return key, nil
}
