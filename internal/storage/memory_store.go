package storage

import (
	"encoding/json"
	"fmt"
)

// MemoryStore is the in-memory Store used by tests and throwaway setups.
// Values round-trip through JSON so a type-mismatched read fails with
// ErrDecode exactly like the sqlite-backed store.
type MemoryStore struct {
	records map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string][]byte)}
}

func (store *MemoryStore) Save(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncode, key, err)
	}
	store.records[key] = data
	return nil
}

func (store *MemoryStore) Fetch(key string, dest any) (bool, error) {
	data, exists := store.records[key]
	if !exists {
		return false, nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrDecode, key, err)
	}
	return true, nil
}

// Remove drops a key outright. Subsequent fetches report an absent key.
func (store *MemoryStore) Remove(key string) {
	delete(store.records, key)
}
