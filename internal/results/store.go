// Package results persists finished counting runs. Each run gets a UUID: run
// metadata lives in a shared bucket keyed by that ID, and the per-word counts
// live in one bucket per run.
package results

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"pkg.jsn.cam/wordtally/pkg/storage"
)

var ErrRunNotFound = errors.New("run not found")

var runsBucket = []byte("runs")

// RunMeta describes one stored counting run.
type RunMeta struct {
	ID            string    `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	Records       int       `json:"records"`
	Workers       int       `json:"workers"`
	Tokenizer     string    `json:"tokenizer"`
	DistinctWords int       `json:"distinct_words"`
	TotalWords    int       `json:"total_words"`
}

// Store is a run catalog on top of a storage backend.
type Store struct {
	store *storage.JSONStore
}

// NewStore wraps a backend, creating the shared runs bucket if needed.
func NewStore(backend storage.Backend) (*Store, error) {
	if err := backend.CreateBucket(runsBucket); err != nil {
		return nil, fmt.Errorf("create runs bucket: %w", err)
	}

	return &Store{store: storage.NewJSONStore(backend)}, nil
}

func countsBucket(id string) []byte {
	return []byte("counts:" + id)
}

// wordKeyPrefix pads every stored word key by one byte. The empty token is a
// valid word under the default tokenizer policy, but bbolt rejects empty
// keys, so words are stored as prefix+word and stripped on the way out.
const wordKeyPrefix = "w"

func wordKey(word string) []byte {
	return []byte(wordKeyPrefix + word)
}

// Save persists counts under a fresh run ID and returns the completed
// metadata. DistinctWords and TotalWords are derived from counts.
func (s *Store) Save(meta RunMeta, counts map[string]int) (RunMeta, error) {
	meta.ID = uuid.New().String()
	if meta.CreatedAt.IsZero() {
		meta.CreatedAt = time.Now()
	}

	meta.DistinctWords = len(counts)
	meta.TotalWords = 0
	for _, count := range counts {
		meta.TotalWords += count
	}

	backend := s.store.Backend()
	bucket := countsBucket(meta.ID)
	if err := backend.CreateBucket(bucket); err != nil {
		return RunMeta{}, fmt.Errorf("create counts bucket: %w", err)
	}

	for word, count := range counts {
		if err := backend.Put(bucket, wordKey(word), []byte(strconv.Itoa(count))); err != nil {
			// Don't leave an orphan counts bucket behind
			backend.DeleteBucket(bucket)
			return RunMeta{}, fmt.Errorf("store count for %q: %w", word, err)
		}
	}

	if err := s.store.PutJSON(runsBucket, []byte(meta.ID), meta); err != nil {
		backend.DeleteBucket(bucket)
		return RunMeta{}, fmt.Errorf("store run metadata: %w", err)
	}

	return meta, nil
}

// List returns the stored runs, newest first.
func (s *Store) List() ([]RunMeta, error) {
	var runs []RunMeta

	err := s.store.Backend().ForEach(runsBucket, func(k, v []byte) error {
		var meta RunMeta
		if err := json.Unmarshal(v, &meta); err != nil {
			return fmt.Errorf("corrupt metadata for run %s: %w", k, err)
		}
		runs = append(runs, meta)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].CreatedAt.After(runs[j].CreatedAt)
	})

	return runs, nil
}

// Get returns one run's metadata and counts.
func (s *Store) Get(id string) (RunMeta, map[string]int, error) {
	var meta RunMeta
	found, err := s.store.GetJSON(runsBucket, []byte(id), &meta)
	if err != nil {
		return RunMeta{}, nil, fmt.Errorf("load run metadata: %w", err)
	}
	if !found {
		return RunMeta{}, nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}

	counts := make(map[string]int, meta.DistinctWords)
	err = s.store.Backend().ForEach(countsBucket(id), func(k, v []byte) error {
		word, ok := strings.CutPrefix(string(k), wordKeyPrefix)
		if !ok {
			return fmt.Errorf("corrupt word key %q", k)
		}
		count, err := strconv.Atoi(string(v))
		if err != nil {
			return fmt.Errorf("corrupt count for %q: %w", word, err)
		}
		counts[word] = count
		return nil
	})
	if err != nil {
		return RunMeta{}, nil, fmt.Errorf("load run counts: %w", err)
	}

	return meta, counts, nil
}

// Delete removes a run's metadata and counts. Unknown IDs return
// ErrRunNotFound.
func (s *Store) Delete(id string) error {
	backend := s.store.Backend()

	data, err := backend.Get(runsBucket, []byte(id))
	if err != nil {
		return err
	}
	if data == nil {
		return fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}

	if err := backend.Delete(runsBucket, []byte(id)); err != nil {
		return fmt.Errorf("delete run metadata: %w", err)
	}
	if err := backend.DeleteBucket(countsBucket(id)); err != nil {
		return fmt.Errorf("delete run counts: %w", err)
	}

	return nil
}
