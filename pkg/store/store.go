package store

import (
	"time"

	bolt "go.etcd.io/bbolt"

	apperrors "dogroom/pkg/errors"
)

var metaBucket = []byte("meta")

// Store is the keyed record storage shared by all collections. It wraps a
// single bbolt database: per entity kind there is a records bucket
// (id -> encoded record) and an index bucket (big-endian sequence -> id)
// holding insertion order. Write transactions are serialized by bbolt, which
// is what makes create/mutate/seed atomic per key and per kind.
type Store struct {
	db *bolt.DB
}

func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, apperrors.Storage("failed to open store", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(metaBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, apperrors.Storage("failed to initialize store", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Ping verifies the database is still readable. Used by readiness checks.
func (s *Store) Ping() error {
	return s.view(func(tx *bolt.Tx) error {
		if tx.Bucket(metaBucket) == nil {
			return apperrors.Storage("store meta bucket missing", nil)
		}
		return nil
	})
}

// view and update run a transaction and fold storage-level failures into the
// STORAGE_UNAVAILABLE error kind. AppErrors raised inside the transaction
// (NotFound, AlreadyExists, Conflict, ...) pass through untouched.
func (s *Store) view(fn func(tx *bolt.Tx) error) error {
	return wrapStorageErr(s.db.View(fn))
}

func (s *Store) update(fn func(tx *bolt.Tx) error) error {
	return wrapStorageErr(s.db.Update(fn))
}

func wrapStorageErr(err error) error {
	if err == nil || apperrors.IsAppError(err) {
		return err
	}
	return apperrors.Storage("store operation failed", err)
}
