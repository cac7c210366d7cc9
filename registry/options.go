package registry

import (
	"github.com/mwantia/cmdspec"
	"github.com/mwantia/cmdspec/log"
)

type Options struct {
	Compiler *cmdspec.Compiler
	Logger   *log.Logger
}

type Option func(*Options) error

func newDefaultOptions() *Options {
	return &Options{
		Logger: log.Discard(),
	}
}

// WithCompiler replaces the default compiler, e.g. to supply custom
// builders.
func WithCompiler(compiler *cmdspec.Compiler) Option {
	return func(opts *Options) error {
		opts.Compiler = compiler
		return nil
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(opts *Options) error {
		opts.Logger = logger
		return nil
	}
}

func WithLogLevel(level log.Level) Option {
	return func(opts *Options) error {
		opts.Logger = log.New("registry", log.Options{Level: level})
		return nil
	}
}
