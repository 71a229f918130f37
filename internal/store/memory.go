package store

import (
	"encoding/json"
	"sync"

	"github.com/pterm/pterm"
)

// MemoryStore keeps records in a map. It backs tests and the degraded mode
// the app falls into when the SQLite file can not be opened: records survive
// the process, nothing more.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]string)}
}

func (s *MemoryStore) Put(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		pterm.Warning.Printfln("storage: failed to encode %q: %v", key, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[key] = string(raw)
}

func (s *MemoryStore) Get(key string, dest any) bool {
	s.mu.Lock()
	raw, ok := s.records[key]
	s.mu.Unlock()

	if !ok {
		return false
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false
	}

	return true
}

func (s *MemoryStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, key)
}

func (s *MemoryStore) Close() error {
	return nil
}
