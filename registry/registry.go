// Package registry combines a document store with the compiler so hosts
// can publish named CLI specifications and load them back as compiled
// trees. A document must compile before it is persisted, so everything in
// a registry is known valid.
package registry

import (
	"bytes"
	"context"

	"github.com/mwantia/cmdspec"
	"github.com/mwantia/cmdspec/codec"
	"github.com/mwantia/cmdspec/data"
	"github.com/mwantia/cmdspec/log"
	"github.com/mwantia/cmdspec/registry/store"
)

type Registry struct {
	store    store.Store
	compiler *cmdspec.Compiler
	log      *log.Logger
}

func New(st store.Store, opts ...Option) (*Registry, error) {
	options := newDefaultOptions()
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	compiler := options.Compiler
	if compiler == nil {
		var err error
		if compiler, err = cmdspec.New(); err != nil {
			return nil, err
		}
	}

	return &Registry{
		store:    st,
		compiler: compiler,
		log:      options.Logger.Named(st.Name()),
	}, nil
}

// Open prepares the underlying store.
func (r *Registry) Open(ctx context.Context) error {
	if err := r.store.Open(ctx); err != nil {
		return err
	}

	r.log.Debug("registry opened")
	return nil
}

// Close releases the underlying store.
func (r *Registry) Close(ctx context.Context) error {
	r.log.Debug("registry closed")
	return r.store.Close(ctx)
}

// Publish compiles the document and, if valid, persists it under the given
// name. The compiled tree is returned alongside the store record.
func (r *Registry) Publish(ctx context.Context, name string, doc *data.Document) (*data.CommandSpec, *store.Record, error) {
	if doc == nil {
		return nil, nil, cmdspec.ErrNilDocument
	}

	spec, err := r.compiler.Compile(doc)
	if err != nil {
		r.log.Warn("rejected spec '%s': %v", name, err)
		return nil, nil, err
	}

	payload, err := codec.EncodeJSON(doc)
	if err != nil {
		return nil, nil, err
	}

	record, err := r.store.Put(ctx, name, payload)
	if err != nil {
		return nil, nil, err
	}

	r.log.Info("published spec '%s' revision %s", name, record.Revision)
	return spec, record, nil
}

// Load fetches a stored document and compiles it.
func (r *Registry) Load(ctx context.Context, name string) (*data.CommandSpec, error) {
	doc, _, err := r.Document(ctx, name)
	if err != nil {
		return nil, err
	}

	return r.compiler.Compile(doc)
}

// Document fetches the raw stored document without compiling it.
func (r *Registry) Document(ctx context.Context, name string) (*data.Document, *store.Record, error) {
	payload, record, err := r.store.Get(ctx, name)
	if err != nil {
		return nil, nil, err
	}

	doc, err := codec.DecodeJSON(bytes.NewReader(payload))
	if err != nil {
		return nil, nil, err
	}

	return doc, record, nil
}

// List returns the records of all published specs.
func (r *Registry) List(ctx context.Context) ([]*store.Record, error) {
	return r.store.List(ctx)
}

// Names returns the names of all published specs.
func (r *Registry) Names(ctx context.Context) ([]string, error) {
	records, err := r.store.List(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(records))
	for _, record := range records {
		names = append(names, record.Name)
	}

	return names, nil
}

// Remove deletes a published spec.
func (r *Registry) Remove(ctx context.Context, name string) error {
	if err := r.store.Delete(ctx, name); err != nil {
		return err
	}

	r.log.Info("removed spec '%s'", name)
	return nil
}
