package errors

// FieldType reports a field whose raw value has the wrong type.
func FieldType(field string, want string) error {
	return newError(nil, "field '%s' must be a %s", field, want)
}

// InvalidCommandName reports a value that is not a legal command-name token.
func InvalidCommandName(field string, value string) error {
	return newError(nil, "field '%s' value '%s' is not a valid command name", field, value)
}

// InvalidShortName reports a short name that is not a single character.
func InvalidShortName(item string, value string) error {
	return newError(nil, "short name '%s' of '%s' must be a single character", value, item)
}

// InvalidLongName reports a malformed long name.
func InvalidLongName(item string, value string) error {
	return newError(nil, "long name '%s' of '%s' is not a valid name token", value, item)
}

// UnknownProperty reports an unrecognized property on an item declaration.
func UnknownProperty(item string, property string) error {
	return newError(nil, "unknown property '%s' on '%s'", property, item)
}
