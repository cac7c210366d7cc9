package cmdspec

import (
	"github.com/mwantia/cmdspec/data"
	errs "github.com/mwantia/cmdspec/data/errors"
)

// validateArgumentOrder rejects a required argument declared after an
// optional one. Scans pairwise and fails on the first violation, naming
// both arguments.
func validateArgumentOrder(args []data.ArgumentSpec) error {
	for i := 0; i+1 < len(args); i++ {
		if !args[i].Required && args[i+1].Required {
			return errs.ArgumentOrder(args[i].Name, args[i+1].Name)
		}
	}
	return nil
}

// validateNameConflicts rejects duplicate non-empty short or long names
// across the combined flags and options of one level. The short family is
// checked completely before the long family.
func validateNameConflicts(flags []data.FlagSpec, options []data.OptionSpec) error {
	type named struct {
		name  string
		short string
		long  string
	}

	items := make([]named, 0, len(flags)+len(options))
	for _, flag := range flags {
		items = append(items, named{name: flag.Name, short: flag.Short, long: flag.Long})
	}
	for _, option := range options {
		items = append(items, named{name: option.Name, short: option.Short, long: option.Long})
	}

	shorts := make(map[string]string, len(items))
	for _, item := range items {
		if item.short == "" {
			continue
		}
		if first, ok := shorts[item.short]; ok {
			return errs.NameConflict("short", item.short, first, item.name)
		}
		shorts[item.short] = item.name
	}

	longs := make(map[string]string, len(items))
	for _, item := range items {
		if item.long == "" {
			continue
		}
		if first, ok := longs[item.long]; ok {
			return errs.NameConflict("long", item.long, first, item.name)
		}
		longs[item.long] = item.name
	}

	return nil
}
