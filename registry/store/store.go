// Package store defines the persistence interface for raw command
// specification documents and the record metadata attached to each stored
// spec. Backends live in subpackages, one per storage system.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Record describes one stored specification document.
type Record struct {
	// Name is the unique spec identifier within the store.
	Name string `json:"name"`

	// Revision changes on every write.
	Revision string `json:"revision"`

	Size       int64     `json:"size"`
	CreateTime time.Time `json:"create_time"`
	UpdateTime time.Time `json:"update_time"`
}

// NewRecord creates the record for a freshly stored document. Timestamps
// are truncated to seconds so backends storing Unix epochs round-trip
// exactly.
func NewRecord(name string, size int64) *Record {
	now := time.Now().UTC().Truncate(time.Second)
	return &Record{
		Name:       name,
		Revision:   uuid.NewString(),
		Size:       size,
		CreateTime: now,
		UpdateTime: now,
	}
}

// Touch rolls the revision after an overwrite, keeping the create time.
func (r *Record) Touch(size int64) {
	r.Revision = uuid.NewString()
	r.Size = size
	r.UpdateTime = time.Now().UTC().Truncate(time.Second)
}

// Store persists raw specification documents as opaque payloads, keyed by
// spec name. Implementations must be safe for concurrent use between Open
// and Close.
type Store interface {
	// Name returns the identifier name defined for this store.
	Name() string

	// Open is part of the lifecycle behaviour and prepares the store for use.
	Open(ctx context.Context) error

	// Close is part of the lifecycle behaviour and releases all resources.
	Close(ctx context.Context) error

	// Put stores a document payload under the given spec name, creating or
	// overwriting it, and returns the resulting record.
	Put(ctx context.Context, name string, payload []byte) (*Record, error)

	// Get returns the payload and record for the given spec name.
	// Returns cmdspec.ErrNotExist when the name is unknown.
	Get(ctx context.Context, name string) ([]byte, *Record, error)

	// List returns the records of all stored specs ordered by name.
	List(ctx context.Context) ([]*Record, error)

	// Delete removes the spec with the given name.
	// Returns cmdspec.ErrNotExist when the name is unknown.
	Delete(ctx context.Context, name string) error
}
