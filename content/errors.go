package content

import (
	"errors"
	"fmt"
)

// ErrorKind classifies content loading failures.
type ErrorKind string

const (
	KindNotFound ErrorKind = "not_found"
	KindDecode   ErrorKind = "decode"
	KindInvalid  ErrorKind = "invalid"
)

// LoadError reports which data file could not be turned into records.
type LoadError struct {
	File string
	Kind ErrorKind
	Err  error
}

func (e *LoadError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := fmt.Sprintf("content %s: %s", e.File, e.Kind)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *LoadError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind reports whether err is a LoadError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Kind == kind
	}
	return false
}
