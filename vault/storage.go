package vault

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/go-kit/log"
)

// Storage is the per-device key-value backend the vault writes through.
// Implementations absorb their own failures: Load reports a missing entry the
// same way as an unreadable one.
type Storage interface {
	Load(key string) (string, bool)
	Store(key, value string)
	Delete(key string)
}

// MemoryStorage keeps entries in a map. Used in tests and as a throwaway
// backend when no file path is configured.
type MemoryStorage struct {
	mu      sync.Mutex
	entries map[string]string
}

// NewMemoryStorage creates an empty in-memory backend.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{entries: make(map[string]string)}
}

func (m *MemoryStorage) Load(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.entries[key]
	return value, ok
}

func (m *MemoryStorage) Store(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
}

func (m *MemoryStorage) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
}

// FileStorage persists entries as a single JSON file, rewritten on every
// mutation. The file is owner-only; a missing or unparseable file starts
// empty rather than failing.
type FileStorage struct {
	mu      sync.Mutex
	path    string
	entries map[string]string
	logger  log.Logger
}

// NewFileStorage opens (or initializes) the store at path.
func NewFileStorage(path string, logger log.Logger) *FileStorage {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	fs := &FileStorage{
		path:    path,
		entries: make(map[string]string),
		logger:  logger,
	}
	fs.load()
	return fs
}

func (f *FileStorage) load() {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return
	}
	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		f.logger.Log("msg", "store file unreadable, starting empty", "path", f.path)
		return
	}
	f.entries = entries
}

func (f *FileStorage) flush() {
	data, err := json.MarshalIndent(f.entries, "", "  ")
	if err != nil {
		return
	}
	if err := os.WriteFile(f.path, data, 0600); err != nil {
		f.logger.Log("msg", "store flush failed", "path", f.path)
	}
}

func (f *FileStorage) Load(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	value, ok := f.entries[key]
	return value, ok
}

func (f *FileStorage) Store(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[key] = value
	f.flush()
}

func (f *FileStorage) Delete(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, key)
	f.flush()
}
