package builder

import (
	"strings"

	errs "github.com/mwantia/cmdspec/data/errors"
)

// Scalar is the default scalar property builder. It validates raw values
// as strings or booleans and applies defaults for absent values.
type Scalar struct{}

func (Scalar) BuildString(field string, raw any, def string) (string, error) {
	if raw == nil {
		return def, nil
	}

	value, ok := raw.(string)
	if !ok {
		return "", errs.FieldType(field, "string")
	}

	return value, nil
}

func (Scalar) BuildBool(field string, raw any, def bool) (bool, error) {
	if raw == nil {
		return def, nil
	}

	value, ok := raw.(bool)
	if !ok {
		return false, errs.FieldType(field, "boolean")
	}

	return value, nil
}

func (s Scalar) BuildCommandName(field string, raw any) (string, error) {
	value, err := s.BuildString(field, raw, "")
	if err != nil {
		return "", err
	}
	if value == "" {
		return "", nil
	}

	if !validNameToken(value) {
		return "", errs.InvalidCommandName(field, value)
	}

	return value, nil
}

// validNameToken checks a command or long name: non-empty, no whitespace,
// no leading dash.
func validNameToken(value string) bool {
	if value == "" || strings.HasPrefix(value, "-") {
		return false
	}
	return !strings.ContainsAny(value, " \t\n\r")
}
