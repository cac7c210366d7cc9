package errors

import "strings"

// NotMapping reports a collection that is not a keyed mapping.
func NotMapping(collection string) error {
	return newError(nil, "'%s' must be a keyed mapping", collection)
}

// DuplicateKey reports a repeated key within a collection.
func DuplicateKey(collection string, key string) error {
	return newError(nil, "duplicate key '%s' in '%s'", key, collection)
}

// InvalidItem annotates a failed item declaration with the list it belongs to.
func InvalidItem(list string, name string, err error) error {
	return newError(err, "invalid entry '%s' in '%s'", name, list)
}

// ArgumentOrder reports a required argument declared after an optional one.
func ArgumentOrder(optional string, required string) error {
	return newError(nil, "required argument '%s' may not follow optional argument '%s'", required, optional)
}

// NameConflict reports two items sharing the same short or long name.
func NameConflict(family string, key string, first string, second string) error {
	return newError(nil, "duplicate %s name '%s' shared by '%s' and '%s'", family, key, first, second)
}

// Subcommand wraps an error from a nested level with the subcommand key so
// deep failures stay locatable.
func Subcommand(key string, err error) error {
	text := strings.TrimPrefix(err.Error(), "cmdspec: ")
	return newError(nil, "subcommand '%s': %s", key, text)
}
