package cmdspec

type CompilerOptions struct {
	Scalars ScalarBuilder

	Arguments ArgumentBuilder
	Flags     FlagBuilder
	Options   OptionBuilder
}

type CompilerOption func(*CompilerOptions) error

func WithScalarBuilder(builder ScalarBuilder) CompilerOption {
	return func(opts *CompilerOptions) error {
		opts.Scalars = builder
		return nil
	}
}

func WithArgumentBuilder(builder ArgumentBuilder) CompilerOption {
	return func(opts *CompilerOptions) error {
		opts.Arguments = builder
		return nil
	}
}

func WithFlagBuilder(builder FlagBuilder) CompilerOption {
	return func(opts *CompilerOptions) error {
		opts.Flags = builder
		return nil
	}
}

func WithOptionBuilder(builder OptionBuilder) CompilerOption {
	return func(opts *CompilerOptions) error {
		opts.Options = builder
		return nil
	}
}
