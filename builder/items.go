package builder

import (
	"unicode/utf8"

	"github.com/mwantia/cmdspec/data"
	errs "github.com/mwantia/cmdspec/data/errors"
)

// Argument is the default builder for positional argument declarations.
type Argument struct{}

func (Argument) Build(name string, props any) (data.ArgumentSpec, error) {
	arg := data.ArgumentSpec{Name: name}

	doc, err := itemProps(name, props)
	if err != nil {
		return arg, err
	}

	var scalars Scalar
	for _, entry := range doc.Entries() {
		switch entry.Key {
		case "description":
			if arg.Description, err = scalars.BuildString(entry.Key, entry.Value, ""); err != nil {
				return arg, err
			}
		case "required":
			if arg.Required, err = scalars.BuildBool(entry.Key, entry.Value, false); err != nil {
				return arg, err
			}
		case "hide":
			if arg.Hide, err = scalars.BuildBool(entry.Key, entry.Value, false); err != nil {
				return arg, err
			}
		default:
			return arg, errs.UnknownProperty(name, entry.Key)
		}
	}

	return arg, nil
}

// Flag is the default builder for flag declarations.
type Flag struct{}

func (Flag) Build(name string, props any) (data.FlagSpec, error) {
	flag := data.FlagSpec{Name: name}

	doc, err := itemProps(name, props)
	if err != nil {
		return flag, err
	}

	var scalars Scalar
	for _, entry := range doc.Entries() {
		switch entry.Key {
		case "description":
			if flag.Description, err = scalars.BuildString(entry.Key, entry.Value, ""); err != nil {
				return flag, err
			}
		case "short":
			if flag.Short, err = shortName(name, entry.Value); err != nil {
				return flag, err
			}
		case "long":
			if flag.Long, err = longName(name, entry.Value); err != nil {
				return flag, err
			}
		case "global":
			if flag.Global, err = scalars.BuildBool(entry.Key, entry.Value, false); err != nil {
				return flag, err
			}
		case "hide":
			if flag.Hide, err = scalars.BuildBool(entry.Key, entry.Value, false); err != nil {
				return flag, err
			}
		default:
			return flag, errs.UnknownProperty(name, entry.Key)
		}
	}

	return flag, nil
}

// Option is the default builder for value-carrying option declarations.
type Option struct{}

func (Option) Build(name string, props any) (data.OptionSpec, error) {
	option := data.OptionSpec{Name: name}

	doc, err := itemProps(name, props)
	if err != nil {
		return option, err
	}

	var scalars Scalar
	for _, entry := range doc.Entries() {
		switch entry.Key {
		case "description":
			if option.Description, err = scalars.BuildString(entry.Key, entry.Value, ""); err != nil {
				return option, err
			}
		case "short":
			if option.Short, err = shortName(name, entry.Value); err != nil {
				return option, err
			}
		case "long":
			if option.Long, err = longName(name, entry.Value); err != nil {
				return option, err
			}
		case "default":
			if option.Default, err = scalars.BuildString(entry.Key, entry.Value, ""); err != nil {
				return option, err
			}
		case "multiple":
			if option.Multiple, err = scalars.BuildBool(entry.Key, entry.Value, false); err != nil {
				return option, err
			}
		case "global":
			if option.Global, err = scalars.BuildBool(entry.Key, entry.Value, false); err != nil {
				return option, err
			}
		case "hide":
			if option.Hide, err = scalars.BuildBool(entry.Key, entry.Value, false); err != nil {
				return option, err
			}
		default:
			return option, errs.UnknownProperty(name, entry.Key)
		}
	}

	return option, nil
}

// itemProps normalizes an item's property value. A nil value stands for a
// declaration without properties; anything else must be a unique-keyed
// mapping.
func itemProps(name string, props any) (*data.Document, error) {
	if props == nil {
		return data.NewDocument(), nil
	}

	doc, ok := props.(*data.Document)
	if !ok {
		return nil, errs.NotMapping(name)
	}
	if key, dup := doc.DuplicateKey(); dup {
		return nil, errs.DuplicateKey(name, key)
	}

	return doc, nil
}

func shortName(item string, raw any) (string, error) {
	value, err := Scalar{}.BuildString("short", raw, "")
	if err != nil {
		return "", err
	}
	if value == "" {
		return "", nil
	}

	if utf8.RuneCountInString(value) != 1 || value == "-" {
		return "", errs.InvalidShortName(item, value)
	}

	return value, nil
}

func longName(item string, raw any) (string, error) {
	value, err := Scalar{}.BuildString("long", raw, "")
	if err != nil {
		return "", err
	}
	if value == "" {
		return "", nil
	}

	if !validNameToken(value) {
		return "", errs.InvalidLongName(item, value)
	}

	return value, nil
}
