package data

// CommandSpec is the compiled, immutable form of one command level.
// The compiler produces the whole tree in a single pass; nothing mutates a
// CommandSpec afterwards.
type CommandSpec struct {
	// Name is the command name, explicit or defaulted from the subcommand
	// key. Empty means absent (only possible on the root).
	Name string

	Description string
	Version     string
	Author      string
	About       string

	// Summary is the explicit summary when given, otherwise the first
	// paragraph of About, otherwise empty.
	Summary string

	// AllowUnknownArgs permits tokens that match no declared item.
	AllowUnknownArgs bool

	// ParseDoubleDash treats "--" as the end of option parsing.
	ParseDoubleDash bool

	Args        []ArgumentSpec
	Flags       []FlagSpec
	Options     []OptionSpec
	Subcommands []CommandSpec

	// SubcommandKey is the key under which this node was declared in its
	// parent's subcommand mapping. Empty on the root, set everywhere else.
	SubcommandKey string
}

// ArgumentSpec describes a single positional argument.
type ArgumentSpec struct {
	Name        string
	Description string
	Required    bool
	Hide        bool
}

// FlagSpec describes a single boolean flag.
type FlagSpec struct {
	Name        string
	Description string

	// Short is a single-character name (e.g. "v" for -v). Empty for none.
	Short string
	// Long is the full name used as --long. Empty for none.
	Long string

	// Global flags are injected, hidden, into every nested subcommand.
	Global bool
	// Hide excludes the flag from help listings while keeping it matchable.
	Hide bool
}

// OptionSpec describes a single value-carrying option.
type OptionSpec struct {
	Name        string
	Description string

	Short string
	Long  string

	// Default is the value used when the option is not provided.
	Default string
	// Multiple allows the option to be given more than once.
	Multiple bool

	Global bool
	Hide   bool
}
