package cmdspec

import (
	"github.com/mwantia/cmdspec/builder"
	"github.com/mwantia/cmdspec/data"
)

// Compiler turns raw declarative documents into validated, immutable
// command specification trees. A Compiler holds no mutable state; one
// instance may serve any number of concurrent compiles.
type Compiler struct {
	scalars ScalarBuilder

	arguments ArgumentBuilder
	flags     FlagBuilder
	options   OptionBuilder
}

// New creates a compiler using the default builders unless overridden via
// options.
func New(opts ...CompilerOption) (*Compiler, error) {
	options := &CompilerOptions{
		Scalars:   builder.Scalar{},
		Arguments: builder.Argument{},
		Flags:     builder.Flag{},
		Options:   builder.Option{},
	}

	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	return &Compiler{
		scalars:   options.Scalars,
		arguments: options.Arguments,
		flags:     options.Flags,
		options:   options.Options,
	}, nil
}

// Compile compiles the given raw document into a command specification
// tree. The first error anywhere in the tree aborts the whole compile;
// there is no partial result.
func (c *Compiler) Compile(doc *data.Document) (*data.CommandSpec, error) {
	return c.compile(doc, data.Accumulator{})
}

// Compile compiles a raw document using a compiler with default builders.
func Compile(doc *data.Document) (*data.CommandSpec, error) {
	compiler, err := New()
	if err != nil {
		return nil, err
	}

	return compiler.Compile(doc)
}
