package parser

import (
	"errors"
	"fmt"
	"strconv"
)

// NumericParseError is returned when the number part of a measurement is not
// a valid floating point value. Unit recognition never fails on its own.
type NumericParseError struct {
	Kind  Kind
	Input string // the string handed to the parser
	Text  string // the text that failed numeric conversion
	Err   error  // the strconv error
}

func (e *NumericParseError) Error() string {
	cause := e.Err
	var numErr *strconv.NumError
	if errors.As(cause, &numErr) {
		cause = numErr.Err
	}
	return fmt.Sprintf("parse %s %q: number %q: %v", e.Kind, e.Input, e.Text, cause)
}

func (e *NumericParseError) Unwrap() error {
	return e.Err
}
