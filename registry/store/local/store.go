package local

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mwantia/cmdspec"
	"github.com/mwantia/cmdspec/registry/store"
)

const fileExtension = ".spec.json"

// LocalStore keeps spec documents as one envelope file per spec under a
// root directory.
type LocalStore struct {
	root string
}

func NewLocalStore(root string) *LocalStore {
	return &LocalStore{
		root: root,
	}
}

// Name returns the identifier name defined for this store.
func (*LocalStore) Name() string {
	return "local"
}

// Open is part of the lifecycle behaviour and prepares the store for use.
func (ls *LocalStore) Open(ctx context.Context) error {
	return os.MkdirAll(ls.root, 0o755)
}

// Close is part of the lifecycle behaviour and releases all resources.
func (ls *LocalStore) Close(ctx context.Context) error {
	return nil
}

func (ls *LocalStore) Put(ctx context.Context, name string, payload []byte) (*store.Record, error) {
	if err := validName(name); err != nil {
		return nil, err
	}

	path := ls.buildPath(name)

	record, err := ls.readRecord(path)
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
	if err := os.WriteFile(path, blob, 0o644); err != nil {
		return nil, err
	}

	return record, nil
}

func (ls *LocalStore) Get(ctx context.Context, name string) ([]byte, *store.Record, error) {
	if err := validName(name); err != nil {
		return nil, nil, err
	}

	blob, err := os.ReadFile(ls.buildPath(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, cmdspec.ErrNotExist
		}
		return nil, nil, err
	}

	return store.DecodeEnvelope(blob)
}

func (ls *LocalStore) List(ctx context.Context) ([]*store.Record, error) {
	entries, err := os.ReadDir(ls.root)
	if err != nil {
		return nil, err
	}

	records := make([]*store.Record, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), fileExtension) {
			continue
		}

		record, err := ls.readRecord(filepath.Join(ls.root, entry.Name()))
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

func (ls *LocalStore) Delete(ctx context.Context, name string) error {
	if err := validName(name); err != nil {
		return err
	}

	if err := os.Remove(ls.buildPath(name)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cmdspec.ErrNotExist
		}
		return err
	}

	return nil
}

func (ls *LocalStore) buildPath(name string) string {
	return filepath.Join(ls.root, name+fileExtension)
}

func (ls *LocalStore) readRecord(path string) (*store.Record, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, cmdspec.ErrNotExist
		}
		return nil, err
	}

	_, record, err := store.DecodeEnvelope(blob)
	return record, err
}

// validName rejects names that would escape the root directory.
func validName(name string) error {
	if name == "" || strings.ContainsAny(name, "/\\") || name != filepath.Base(name) {
		return cmdspec.ErrInvalidName
	}
	return nil
}
