package storage

import (
	"fmt"

	bolt "go.etcd.io/bbolt"
)

// BboltBackend implements Backend using bbolt for on-disk persistence.
type BboltBackend struct {
	db *bolt.DB
}

// NewBboltBackend opens (creating if necessary) a bbolt database at dbPath.
func NewBboltBackend(dbPath string) (*BboltBackend, error) {
	db, err := bolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bbolt database: %w", err)
	}

	return &BboltBackend{db: db}, nil
}

// CreateBucket creates a new bucket. Idempotent.
func (b *BboltBackend) CreateBucket(name []byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(name)
		return err
	})
}

// DeleteBucket deletes a bucket. Idempotent.
func (b *BboltBackend) DeleteBucket(name []byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		err := tx.DeleteBucket(name)
		if err == bolt.ErrBucketNotFound {
			return nil
		}
		return err
	})
}

// BucketExists checks if a bucket exists.
func (b *BboltBackend) BucketExists(name []byte) (bool, error) {
	exists := false
	err := b.db.View(func(tx *bolt.Tx) error {
		exists = tx.Bucket(name) != nil
		return nil
	})
	return exists, err
}

// Put stores a key-value pair in a bucket.
func (b *BboltBackend) Put(bucket, key, value []byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(bucket)
		if bkt == nil {
			return fmt.Errorf("bucket not found: %s", bucket)
		}
		return bkt.Put(key, value)
	})
}

// Get retrieves a value from a bucket. Returns nil for a missing key.
func (b *BboltBackend) Get(bucket, key []byte) ([]byte, error) {
	var value []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(bucket)
		if bkt == nil {
			return fmt.Errorf("bucket not found: %s", bucket)
		}
		v := bkt.Get(key)
		if v != nil {
			// Copy the value since it's only valid during the transaction
			value = make([]byte, len(v))
			copy(value, v)
		}
		return nil
	})
	return value, err
}

// Delete removes a key from a bucket.
func (b *BboltBackend) Delete(bucket, key []byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(bucket)
		if bkt == nil {
			return fmt.Errorf("bucket not found: %s", bucket)
		}
		return bkt.Delete(key)
	})
}

// ForEach iterates over all key-value pairs in a bucket.
func (b *BboltBackend) ForEach(bucket []byte, fn func(k, v []byte) error) error {
	return b.db.View(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(bucket)
		if bkt == nil {
			return fmt.Errorf("bucket not found: %s", bucket)
		}
		return bkt.ForEach(fn)
	})
}

// Close closes the database.
func (b *BboltBackend) Close() error {
	return b.db.Close()
}
