package cmdspec

import (
	"strings"

	"github.com/mwantia/cmdspec/data"
	errs "github.com/mwantia/cmdspec/data/errors"
)

// compile handles one command level. The accumulator carries the hidden
// copies of every global flag and option declared by ancestors; it is empty
// at the root.
func (c *Compiler) compile(doc *data.Document, inherited data.Accumulator) (*data.CommandSpec, error) {
	if doc == nil {
		return nil, errs.NotMapping("config")
	}
	if key, ok := doc.DuplicateKey(); ok {
		return nil, errs.DuplicateKey("config", key)
	}

	spec := &data.CommandSpec{}

	var err error
	if spec.Name, err = c.scalars.BuildCommandName("name", value(doc, "name")); err != nil {
		return nil, err
	}
	if spec.Description, err = c.scalars.BuildString("description", value(doc, "description"), ""); err != nil {
		return nil, err
	}
	if spec.Version, err = c.scalars.BuildString("version", value(doc, "version"), ""); err != nil {
		return nil, err
	}
	if spec.Author, err = c.scalars.BuildString("author", value(doc, "author"), ""); err != nil {
		return nil, err
	}
	if spec.About, err = c.scalars.BuildString("about", value(doc, "about"), ""); err != nil {
		return nil, err
	}
	if spec.Summary, err = c.scalars.BuildString("summary", value(doc, "summary"), ""); err != nil {
		return nil, err
	}
	if spec.Summary == "" && spec.About != "" {
		spec.Summary = firstParagraph(spec.About)
	}

	if spec.AllowUnknownArgs, err = c.scalars.BuildBool("allow_unknown_args", value(doc, "allow_unknown_args"), false); err != nil {
		return nil, err
	}
	if spec.ParseDoubleDash, err = c.scalars.BuildBool("parse_double_dash", value(doc, "parse_double_dash"), true); err != nil {
		return nil, err
	}

	if spec.Args, err = c.compileArguments(doc); err != nil {
		return nil, err
	}
	if spec.Flags, err = c.compileFlags(doc); err != nil {
		return nil, err
	}
	if spec.Options, err = c.compileOptions(doc); err != nil {
		return nil, err
	}

	// Global accumulator for this level: locally declared globals first,
	// inherited entries behind them.
	acc := data.Collect(spec.Flags, spec.Options, inherited)

	if spec.Subcommands, err = c.compileSubcommands(doc, acc); err != nil {
		return nil, err
	}

	// Validation covers only the level's own declared items. Globals merged
	// in from ancestors are deliberately exempt, so a merged-in short or
	// long name never conflicts with a local one.
	if err := validateArgumentOrder(spec.Args); err != nil {
		return nil, err
	}
	if err := validateNameConflicts(spec.Flags, spec.Options); err != nil {
		return nil, err
	}

	return spec, nil
}

func (c *Compiler) compileArguments(doc *data.Document) ([]data.ArgumentSpec, error) {
	list, err := itemList(doc, "args")
	if err != nil || list == nil {
		return nil, err
	}

	args := make([]data.ArgumentSpec, 0, list.Len())
	for _, entry := range list.Entries() {
		arg, err := c.arguments.Build(entry.Key, entry.Value)
		if err != nil {
			return nil, errs.InvalidItem("args", entry.Key, err)
		}
		args = append(args, arg)
	}

	return args, nil
}

func (c *Compiler) compileFlags(doc *data.Document) ([]data.FlagSpec, error) {
	list, err := itemList(doc, "flags")
	if err != nil || list == nil {
		return nil, err
	}

	flags := make([]data.FlagSpec, 0, list.Len())
	for _, entry := range list.Entries() {
		flag, err := c.flags.Build(entry.Key, entry.Value)
		if err != nil {
			return nil, errs.InvalidItem("flags", entry.Key, err)
		}
		flags = append(flags, flag)
	}

	return flags, nil
}

func (c *Compiler) compileOptions(doc *data.Document) ([]data.OptionSpec, error) {
	list, err := itemList(doc, "options")
	if err != nil || list == nil {
		return nil, err
	}

	options := make([]data.OptionSpec, 0, list.Len())
	for _, entry := range list.Entries() {
		option, err := c.options.Build(entry.Key, entry.Value)
		if err != nil {
			return nil, errs.InvalidItem("options", entry.Key, err)
		}
		options = append(options, option)
	}

	return options, nil
}

func (c *Compiler) compileSubcommands(doc *data.Document, acc data.Accumulator) ([]data.CommandSpec, error) {
	list, err := itemList(doc, "subcommands")
	if err != nil || list == nil {
		return nil, err
	}

	subcommands := make([]data.CommandSpec, 0, list.Len())
	for _, entry := range list.Entries() {
		childDoc, _ := entry.Value.(*data.Document)

		child, err := c.compile(childDoc, acc)
		if err != nil {
			return nil, errs.Subcommand(entry.Key, err)
		}

		// Inherited globals land behind the child's own declarations,
		// hidden so they stay out of the child's help listing.
		child.Flags = append(child.Flags, acc.Flags...)
		child.Options = append(child.Options, acc.Options...)

		if child.Name == "" {
			child.Name = entry.Key
		}
		child.SubcommandKey = entry.Key

		subcommands = append(subcommands, *child)
	}

	return subcommands, nil
}

// itemList fetches one of the keyed item collections. Absent keys yield a
// nil list; present values must be unique-keyed mappings.
func itemList(doc *data.Document, name string) (*data.Document, error) {
	raw, ok := doc.Get(name)
	if !ok || raw == nil {
		return nil, nil
	}

	list, ok := raw.(*data.Document)
	if !ok {
		return nil, errs.NotMapping(name)
	}
	if key, dup := list.DuplicateKey(); dup {
		return nil, errs.DuplicateKey(name, key)
	}

	return list, nil
}

func value(doc *data.Document, key string) any {
	raw, ok := doc.Get(key)
	if !ok {
		return nil
	}
	return raw
}

// firstParagraph derives a summary from an about text: the part before the
// first blank line, trimmed.
func firstParagraph(about string) string {
	text := strings.ReplaceAll(about, "\r\n", "\n")
	if idx := strings.Index(text, "\n\n"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}
