package logger

import (
	"errors"
	"fmt"
)

// typeName returns the type of the innermost wrapped error, which is usually
// the one a driver returned.
func typeName(err error) string {
	if err == nil {
		return "<nil>"
	}
	for {
		next := errors.Unwrap(err)
		if next == nil {
			break
		}
		err = next
	}
	return fmt.Sprintf("%T", err)
}
