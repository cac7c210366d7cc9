package consul

import (
	"context"
	"errors"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/hashicorp/consul/api"

	"github.com/mwantia/cmdspec"
	"github.com/mwantia/cmdspec/registry/store"
)

// ConsulStore keeps spec documents in the Consul KV store under a common
// prefix, one envelope blob per spec.
type ConsulStore struct {
	mu sync.RWMutex
	kv *api.KV

	address string
	prefix  string
}

// NewConsulStore creates a Consul-backed spec store. An empty address uses
// the default Consul agent configuration.
func NewConsulStore(address, prefix string) *ConsulStore {
	if prefix == "" {
		prefix = "cmdspec"
	}

	return &ConsulStore{
		address: address,
		prefix:  strings.Trim(prefix, "/"),
	}
}

// Name returns the identifier name defined for this store.
func (*ConsulStore) Name() string {
	return "consul"
}

// Open is part of the lifecycle behaviour and prepares the store for use.
func (cs *ConsulStore) Open(ctx context.Context) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	config := api.DefaultConfig()
	if cs.address != "" {
		config.Address = cs.address
	}

	client, err := api.NewClient(config)
	if err != nil {
		return err
	}

	cs.kv = client.KV()
	return nil
}

// Close is part of the lifecycle behaviour and releases all resources.
func (cs *ConsulStore) Close(ctx context.Context) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.kv = nil
	return nil
}

func (cs *ConsulStore) Put(ctx context.Context, name string, payload []byte) (*store.Record, error) {
	if name == "" || strings.Contains(name, "/") {
		return nil, cmdspec.ErrInvalidName
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.kv == nil {
		return nil, cmdspec.ErrNotConnected
	}

	key := cs.buildKey(name)

	record, err := cs.readRecord(key)
	switch {
	case err == nil:
		record.Touch(int64(len(payload)))
	case errors.Is(err, cmdspec.ErrNotExist):
		record = store.NewRecord(name, int64(len(payload)))
	default:
		return nil, err
	}

	blob, err := store.EncodeEnvelope(record, payload)
	if err != nil {
		return nil, err
	}

	pair := &api.KVPair{
		Key:   key,
		Value: blob,
	}
	if _, err := cs.kv.Put(pair, (&api.WriteOptions{}).WithContext(ctx)); err != nil {
		return nil, err
	}

	return record, nil
}

func (cs *ConsulStore) Get(ctx context.Context, name string) ([]byte, *store.Record, error) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	if cs.kv == nil {
		return nil, nil, cmdspec.ErrNotConnected
	}

	pair, _, err := cs.kv.Get(cs.buildKey(name), (&api.QueryOptions{}).WithContext(ctx))
	if err != nil {
		return nil, nil, err
	}
	if pair == nil {
		return nil, nil, cmdspec.ErrNotExist
	}

	return store.DecodeEnvelope(pair.Value)
}

func (cs *ConsulStore) List(ctx context.Context) ([]*store.Record, error) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	if cs.kv == nil {
		return nil, cmdspec.ErrNotConnected
	}

	pairs, _, err := cs.kv.List(cs.prefix+"/", (&api.QueryOptions{}).WithContext(ctx))
	if err != nil {
		return nil, err
	}

	records := make([]*store.Record, 0, len(pairs))
	for _, pair := range pairs {
		_, record, err := store.DecodeEnvelope(pair.Value)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Name < records[j].Name
	})

	return records, nil
}

func (cs *ConsulStore) Delete(ctx context.Context, name string) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.kv == nil {
		return cmdspec.ErrNotConnected
	}

	key := cs.buildKey(name)

	if _, err := cs.readRecord(key); err != nil {
		return err
	}
	if _, err := cs.kv.Delete(key, (&api.WriteOptions{}).WithContext(ctx)); err != nil {
		return err
	}

	return nil
}

func (cs *ConsulStore) buildKey(name string) string {
	return path.Join(cs.prefix, name)
}

func (cs *ConsulStore) readRecord(key string) (*store.Record, error) {
	pair, _, err := cs.kv.Get(key, nil)
	if err != nil {
		return nil, err
	}
	if pair == nil {
		return nil, cmdspec.ErrNotExist
	}

	_, record, err := store.DecodeEnvelope(pair.Value)
	return record, err
}
