package osc

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"go.uber.org/multierr"
)

const (
	bundleTagString = "#bundle"
)

// Bundle represents an OSC bundle. It consists of the OSC-string "#bundle"
// followed by an OSC Time Tag, followed by zero or more OSC bundle/message
// elements. Each element is preceded by its length as an int32. See
// http://opensoundcontrol.org/spec-1_0.html for more information.
type Bundle struct {
	Timetag  Timetag
	Elements []Packet
}

// Verify that Bundle implements the Packet interface.
var _ Packet = (*Bundle)(nil)

// NewBundle returns a bundle of the given elements, stamped with the current
// time.
func NewBundle(elements ...Packet) *Bundle {
	return NewBundleWithTimetag(NewTimetag(), elements...)
}

// NewBundleWithTime returns a bundle of the given elements stamped with t.
func NewBundleWithTime(t time.Time, elements ...Packet) *Bundle {
	return NewBundleWithTimetag(NewTimetagFromTime(t), elements...)
}

// NewBundleWithTimetag returns a bundle of the given elements stamped with tt.
func NewBundleWithTimetag(tt Timetag, elements ...Packet) *Bundle {
	return &Bundle{Timetag: tt, Elements: elements}
}

// Append appends an OSC bundle or OSC message to the bundle.
func (b *Bundle) Append(pck Packet) error {
	switch t := pck.(type) {
	case *Bundle:
		if t == nil {
			return fmt.Errorf("Append: %w: nil bundle", ErrInvalidArgument)
		}
	case *Message:
		if t == nil {
			return fmt.Errorf("Append: %w: nil message", ErrInvalidArgument)
		}
	default:
		return fmt.Errorf("Append: %w: only Bundle and Message are supported", ErrInvalidArgument)
	}

	b.Elements = append(b.Elements, pck)
	return nil
}

// MarshalBinary serializes the OSC bundle to a byte array with the following
// format:
// 1. Bundle string: '#bundle'
// 2. OSC timetag
// 3. Length of first OSC bundle element
// 4. First bundle element
// 5. Length of n OSC bundle element
// 6. n bundle element
func (b *Bundle) MarshalBinary() ([]byte, error) {
	return defaultEncoder.Encode(b)
}

func (b *Bundle) appendBinary(data []byte, e *Encoder) ([]byte, error) {
	if b == nil {
		return data, fmt.Errorf("%w: nil bundle", ErrInvalidArgument)
	}
	data = appendPaddedString(data, bundleTagString)
	data = appendTimetag(data, b.Timetag)

	for i, elem := range b.Elements {
		if elem == nil {
			return data, fmt.Errorf("bundle element %d: %w: nil packet", i, ErrInvalidArgument)
		}

		// Reserve the size of the element and fill it in once it's encoded
		start := len(data)
		data = appendInt32(data, 0)

		var err error
		if data, err = elem.appendBinary(data, e); err != nil {
			return data, fmt.Errorf("bundle element %d: %w", i, err)
		}

		size := len(data) - start - bit32Size
		if size > math.MaxInt32 {
			return data, fmt.Errorf("bundle element %d: %w: %d bytes", i, ErrInvalidArgument, size)
		}
		binary.BigEndian.PutUint32(data[start:], uint32(size))
	}

	return data, nil
}

// NewBundleFromData returns a new OSC bundle created from the parsed data.
func NewBundleFromData(data []byte) (b *Bundle, err error) {
	b = &Bundle{}
	if err = b.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return b, nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface. The
// bundle keeps the elements that decoded before an element error.
func (b *Bundle) UnmarshalBinary(data []byte) error {
	bb, _, err := defaultDecoder.parseBundle(data, 1)
	if bb != nil {
		*b = *bb
	}
	if err != nil {
		return fmt.Errorf("UnmarshalBinary: %w", err)
	}
	return nil
}

// parseBundle reads a bundle spanning all of data. depth is the nesting level
// of this bundle, 1 for an outermost bundle.
//
// A nil bundle is returned only when the header is bad. Once the header is
// read, element failures are reported as *ElementError next to the elements
// decoded so far.
func (d *Decoder) parseBundle(data []byte, depth int) (*Bundle, []byte, error) {
	if limit := d.maxDepth(); limit > 0 && depth > limit {
		return nil, data, fmt.Errorf("%w: bundles nested deeper than %d", ErrMalformed, limit)
	}

	// Read the '#bundle' OSC string
	startTag, rest, err := parsePaddedString(data)
	if err != nil {
		return nil, data, err
	}
	if startTag != bundleTagString {
		return nil, data, fmt.Errorf("%w: invalid bundle start tag %q", ErrMalformed, startTag)
	}

	if len(rest) < bit64Size {
		return nil, data, fmt.Errorf("%w: bundle missing timetag", ErrMalformed)
	}
	tt, rest, err := parseTimetag(rest)
	if err != nil {
		return nil, data, err
	}

	b := &Bundle{Timetag: tt}
	var errs error

	// Read until the end of the buffer
	for i := 0; len(rest) > 0; i++ {
		length, r, err := parseInt32(rest)
		if err != nil {
			return b, nil, multierr.Append(errs, &ElementError{Index: i, Err: err})
		}
		if length < 0 {
			err = fmt.Errorf("%w: negative element length %d", ErrMalformed, length)
			return b, nil, multierr.Append(errs, &ElementError{Index: i, Err: err})
		}
		if int(length) > len(r) {
			err = fmt.Errorf("%w: element length %d, have %d bytes", ErrTruncated, length, len(r))
			return b, nil, multierr.Append(errs, &ElementError{Index: i, Err: err})
		}
		body := r[:length]
		rest = r[length:]

		// The length prefix is authoritative: bytes of body the element
		// doesn't use are dropped with it.
		p, _, err := d.decode(body, depth)
		if err != nil {
			errs = multierr.Append(errs, &ElementError{Index: i, Err: err})
			if !d.SkipInvalidElements {
				return b, nil, errs
			}
			// A nested bundle keeps the elements that did decode.
			if p != nil {
				b.Elements = append(b.Elements, p)
			}
			continue
		}
		b.Elements = append(b.Elements, p)
	}

	return b, rest, errs
}
