package cmdspec

import "github.com/mwantia/cmdspec/data"

// ScalarBuilder validates and defaults the simple scalar fields of a
// command specification. Implementations must be side-effect-free and
// reentrant; the compiler may call them from concurrent compiles.
type ScalarBuilder interface {
	// BuildString validates raw as an optional string field.
	// A nil raw value yields the default.
	BuildString(field string, raw any, def string) (string, error)

	// BuildBool validates raw as a boolean field.
	// A nil raw value yields the default.
	BuildBool(field string, raw any, def bool) (bool, error)

	// BuildCommandName validates raw as an optional command-name token.
	// A nil raw value yields the empty string.
	BuildCommandName(field string, raw any) (string, error)
}

// ArgumentBuilder validates a single positional argument declaration.
// The raw props value is the declaration's property mapping; nil means the
// argument was declared without properties.
type ArgumentBuilder interface {
	Build(name string, props any) (data.ArgumentSpec, error)
}

// FlagBuilder validates a single flag declaration.
type FlagBuilder interface {
	Build(name string, props any) (data.FlagSpec, error)
}

// OptionBuilder validates a single option declaration.
type OptionBuilder interface {
	Build(name string, props any) (data.OptionSpec, error)
}
