package data

// Accumulator carries the global flags and options inherited by a
// subcommand level during compilation. It is transient compile state and
// never part of the compiled tree.
type Accumulator struct {
	Flags   []FlagSpec
	Options []OptionSpec
}

// Collect selects the global-marked entries from the given flags and
// options as hidden copies and concatenates the inherited accumulator
// behind them. The originals are left untouched.
func Collect(flags []FlagSpec, options []OptionSpec, inherited Accumulator) Accumulator {
	var acc Accumulator

	for _, flag := range flags {
		if flag.Global {
			flag.Hide = true
			acc.Flags = append(acc.Flags, flag)
		}
	}
	for _, option := range options {
		if option.Global {
			option.Hide = true
			acc.Options = append(acc.Options, option)
		}
	}

	acc.Flags = append(acc.Flags, inherited.Flags...)
	acc.Options = append(acc.Options, inherited.Options...)

	return acc
}
