package osc

import (
	"errors"
	"fmt"
)

// Decode error kinds. Errors returned by the decoder wrap exactly one of these,
// so callers can classify a failure with errors.Is.
var (
	// ErrTruncated reports that fewer bytes remain than a fixed-size field
	// (int32, float32, timetag, blob body) requires.
	ErrTruncated = errors.New("osc: truncated data")

	// ErrMalformed reports a structural violation: a string without NUL
	// terminator, non-NUL padding, a message without type tag string, a
	// bundle without time tag, or contents that are neither a bundle nor a
	// message.
	ErrMalformed = errors.New("osc: malformed data")

	// ErrUnknownTag reports a type tag character outside the supported set.
	// Decoding of the offending message stops at that tag.
	ErrUnknownTag = errors.New("osc: unknown type tag")
)

// ErrInvalidArgument is returned by the encoder for values that can't be
// represented on the wire.
var ErrInvalidArgument = errors.New("osc: invalid argument")

// ElementError reports which element of a bundle failed to decode. For nested
// bundles the Err of an ElementError is itself an ElementError, so the chain of
// indices is the path from the outermost bundle to the failing packet.
type ElementError struct {
	Index int
	Err   error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("bundle element %d: %v", e.Index, e.Err)
}

func (e *ElementError) Unwrap() error {
	return e.Err
}

// ElementPath returns the bundle element indices leading to the packet that
// produced err, outermost first. It returns nil if err didn't come from a
// bundle element.
func ElementPath(err error) []int {
	var path []int
	for {
		var ee *ElementError
		if !errors.As(err, &ee) {
			return path
		}
		path = append(path, ee.Index)
		err = ee.Err
	}
}
