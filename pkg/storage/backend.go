package storage

// Backend defines a generic key-value storage interface with bucket support.
// All operations work with raw []byte; callers choose their own serialization
// (see JSONStore). Implementations must be safe for concurrent use.
type Backend interface {
	// Bucket operations
	CreateBucket(name []byte) error
	DeleteBucket(name []byte) error
	BucketExists(name []byte) (bool, error)

	// KV operations within buckets
	Put(bucket, key, value []byte) error
	Get(bucket, key []byte) ([]byte, error)
	Delete(bucket, key []byte) error

	// Iteration
	ForEach(bucket []byte, fn func(k, v []byte) error) error

	// Lifecycle
	Close() error
}
