package storage

import (
	"bytes"
	"testing"
)

// backendTestSuite runs a conformance test suite against any Backend
// implementation.
func backendTestSuite(t *testing.T, newBackend func() (Backend, func(), error)) {
	t.Run("CreateBucket", func(t *testing.T) {
		backend, cleanup, err := newBackend()
		if err != nil {
			t.Fatalf("failed to create backend: %v", err)
		}
		defer cleanup()

		if err := backend.CreateBucket([]byte("test")); err != nil {
			t.Fatalf("CreateBucket failed: %v", err)
		}

		exists, err := backend.BucketExists([]byte("test"))
		if err != nil {
			t.Fatalf("BucketExists failed: %v", err)
		}
		if !exists {
			t.Error("Bucket should exist after creation")
		}

		// Idempotent
		if err := backend.CreateBucket([]byte("test")); err != nil {
			t.Errorf("CreateBucket should be idempotent: %v", err)
		}
	})

	t.Run("DeleteBucket", func(t *testing.T) {
		backend, cleanup, err := newBackend()
		if err != nil {
			t.Fatalf("failed to create backend: %v", err)
		}
		defer cleanup()

		backend.CreateBucket([]byte("test"))
		if err := backend.DeleteBucket([]byte("test")); err != nil {
			t.Fatalf("DeleteBucket failed: %v", err)
		}

		exists, _ := backend.BucketExists([]byte("test"))
		if exists {
			t.Error("Bucket should not exist after deletion")
		}

		// Idempotent
		if err := backend.DeleteBucket([]byte("test")); err != nil {
			t.Errorf("DeleteBucket should be idempotent: %v", err)
		}
	})

	t.Run("PutAndGet", func(t *testing.T) {
		backend, cleanup, err := newBackend()
		if err != nil {
			t.Fatalf("failed to create backend: %v", err)
		}
		defer cleanup()

		backend.CreateBucket([]byte("test"))

		key := []byte("word")
		value := []byte("42")
		if err := backend.Put([]byte("test"), key, value); err != nil {
			t.Fatalf("Put failed: %v", err)
		}

		got, err := backend.Get([]byte("test"), key)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !bytes.Equal(got, value) {
			t.Errorf("Get returned %s, want %s", got, value)
		}

		// Non-existent key
		got, err = backend.Get([]byte("test"), []byte("nonexistent"))
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got != nil {
			t.Errorf("Get should return nil for non-existent key, got %s", got)
		}
	})

	t.Run("PutEmptyKey", func(t *testing.T) {
		backend, cleanup, err := newBackend()
		if err != nil {
			t.Fatalf("failed to create backend: %v", err)
		}
		defer cleanup()

		backend.CreateBucket([]byte("test"))

		// bbolt rejects empty keys; every backend must agree so callers
		// storing arbitrary tokens hit the limit on any backend.
		if err := backend.Put([]byte("test"), []byte(""), []byte("v")); err == nil {
			t.Error("Put with an empty key should fail")
		}
	})

	t.Run("PutMissingBucket", func(t *testing.T) {
		backend, cleanup, err := newBackend()
		if err != nil {
			t.Fatalf("failed to create backend: %v", err)
		}
		defer cleanup()

		if err := backend.Put([]byte("missing"), []byte("k"), []byte("v")); err == nil {
			t.Error("Put into a missing bucket should fail")
		}
	})

	t.Run("Delete", func(t *testing.T) {
		backend, cleanup, err := newBackend()
		if err != nil {
			t.Fatalf("failed to create backend: %v", err)
		}
		defer cleanup()

		backend.CreateBucket([]byte("test"))
		key := []byte("word")
		backend.Put([]byte("test"), key, []byte("1"))

		if err := backend.Delete([]byte("test"), key); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}

		got, _ := backend.Get([]byte("test"), key)
		if got != nil {
			t.Error("Key should not exist after deletion")
		}
	})

	t.Run("ForEach", func(t *testing.T) {
		backend, cleanup, err := newBackend()
		if err != nil {
			t.Fatalf("failed to create backend: %v", err)
		}
		defer cleanup()

		backend.CreateBucket([]byte("test"))

		expected := map[string]string{
			"hello": "2",
			"world": "2",
			"again": "1",
		}
		for k, v := range expected {
			backend.Put([]byte("test"), []byte(k), []byte(v))
		}

		collected := make(map[string]string)
		err = backend.ForEach([]byte("test"), func(k, v []byte) error {
			collected[string(k)] = string(v)
			return nil
		})
		if err != nil {
			t.Fatalf("ForEach failed: %v", err)
		}

		if len(collected) != len(expected) {
			t.Errorf("ForEach collected %d items, want %d", len(collected), len(expected))
		}
		for k, v := range expected {
			if collected[k] != v {
				t.Errorf("ForEach: key %s = %s, want %s", k, collected[k], v)
			}
		}
	})
}
