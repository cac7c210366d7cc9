package memory

import (
	"context"
	"sync"

	"github.com/tidwall/btree"

	"github.com/mwantia/cmdspec"
	"github.com/mwantia/cmdspec/registry/store"
)

type memoryEntry struct {
	record  *store.Record
	payload []byte
}

// MemoryStore keeps spec documents in process memory, ordered by name.
// Intended for tests and ephemeral hosts.
type MemoryStore struct {
	mu sync.RWMutex

	specs *btree.Map[string, *memoryEntry]
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		specs: btree.NewMap[string, *memoryEntry](0),
	}
}

// Name returns the identifier name defined for this store.
func (*MemoryStore) Name() string {
	return "memory"
}

// Open is part of the lifecycle behaviour and prepares the store for use.
func (ms *MemoryStore) Open(ctx context.Context) error {
	return nil
}

// Close is part of the lifecycle behaviour and releases all resources.
func (ms *MemoryStore) Close(ctx context.Context) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.specs.Clear()
	return nil
}

func (ms *MemoryStore) Put(ctx context.Context, name string, payload []byte) (*store.Record, error) {
	if name == "" {
		return nil, cmdspec.ErrInvalidName
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()

	buffer := make([]byte, len(payload))
	copy(buffer, payload)

	if existing, ok := ms.specs.Get(name); ok {
		existing.record.Touch(int64(len(buffer)))
		existing.payload = buffer

		record := *existing.record
		return &record, nil
	}

	record := store.NewRecord(name, int64(len(buffer)))
	ms.specs.Set(name, &memoryEntry{
		record:  record,
		payload: buffer,
	})

	copied := *record
	return &copied, nil
}

func (ms *MemoryStore) Get(ctx context.Context, name string) ([]byte, *store.Record, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	entry, ok := ms.specs.Get(name)
	if !ok {
		return nil, nil, cmdspec.ErrNotExist
	}

	payload := make([]byte, len(entry.payload))
	copy(payload, entry.payload)

	record := *entry.record
	return payload, &record, nil
}

func (ms *MemoryStore) List(ctx context.Context) ([]*store.Record, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	records := make([]*store.Record, 0, ms.specs.Len())
	ms.specs.Scan(func(name string, entry *memoryEntry) bool {
		record := *entry.record
		records = append(records, &record)
		return true
	})

	return records, nil
}

func (ms *MemoryStore) Delete(ctx context.Context, name string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if _, ok := ms.specs.Delete(name); !ok {
		return cmdspec.ErrNotExist
	}

	return nil
}
