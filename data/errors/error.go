package errors

import (
	"errors"
	"fmt"
)

func newError(err error, format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if err != nil {
		text = fmt.Sprintf("%s: %v", text, err)
	}

	return errors.New("cmdspec: " + text)
}
