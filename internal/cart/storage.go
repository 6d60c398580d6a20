// Package cart implements the client-side storefront state: the cart store,
// the favorites list and the checkout wizard. State is persisted as plain
// JSON blobs through a pluggable Storage adapter, mirroring the browser
// storage keys the web frontend uses.
package cart

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// ErrKeyNotFound is returned when a storage key has no stored value.
var ErrKeyNotFound = errors.New("cart: key not found")

// Storage persists JSON blobs under string keys. Implementations must be safe
// for concurrent use.
type Storage interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
	Delete(key string) error
}

// MemoryStorage is an in-process Storage, used in tests and ephemeral sessions.
type MemoryStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStorage creates an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string][]byte)}
}

func (s *MemoryStorage) Load(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.data[key]
	if !ok {
		return nil, errors.WithStack(ErrKeyNotFound)
	}

	out := make([]byte, len(data))
	copy(out, data)

	return out, nil
}

func (s *MemoryStorage) Save(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	s.data[key] = stored

	return nil
}

func (s *MemoryStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)

	return nil
}

// FileStorage persists each key as one JSON file under a directory.
type FileStorage struct {
	mu  sync.Mutex
	dir string
}

// NewFileStorage creates the directory if needed and returns a file-backed
// storage rooted there.
func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create storage directory")
	}

	return &FileStorage{dir: dir}, nil
}

func (s *FileStorage) Load(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WithStack(ErrKeyNotFound)
		}

		return nil, errors.Wrapf(err, "load %q", key)
	}

	return data, nil
}

func (s *FileStorage) Save(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return errors.Wrapf(os.WriteFile(s.path(key), data, 0o644), "save %q", key)
}

func (s *FileStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "delete %q", key)
	}

	return nil
}

func (s *FileStorage) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
