package storage

import (
	"encoding/json"
	"fmt"
)

// JSONStore wraps a Backend and provides JSON serialization convenience
// methods for structured values.
type JSONStore struct {
	backend Backend
}

// NewJSONStore creates a new JSON store wrapper around a backend.
func NewJSONStore(backend Backend) *JSONStore {
	return &JSONStore{backend: backend}
}

// Backend returns the underlying backend.
func (j *JSONStore) Backend() Backend {
	return j.backend
}

// PutJSON stores a JSON-encoded value in a bucket.
func (j *JSONStore) PutJSON(bucket, key []byte, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return j.backend.Put(bucket, key, data)
}

// GetJSON retrieves and JSON-decodes a value from a bucket. A missing key
// leaves v untouched and returns found=false.
func (j *JSONStore) GetJSON(bucket, key []byte, v interface{}) (bool, error) {
	data, err := j.backend.Get(bucket, key)
	if err != nil {
		return false, err
	}

	if data == nil {
		return false, nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to decode JSON: %w", err)
	}

	return true, nil
}
