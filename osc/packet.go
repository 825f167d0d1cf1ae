package osc

import (
	"encoding"
	"fmt"
	"strings"
)

// DefaultMaxDepth is the bundle nesting limit used when Decoder.MaxDepth is 0.
const DefaultMaxDepth = 32

// Packet is the interface for Message and Bundle. No other implementations
// exist, so a type switch over *Message and *Bundle is exhaustive.
type Packet interface {
	encoding.BinaryMarshaler

	appendBinary(b []byte, e *Encoder) ([]byte, error)
}

// Encoder turns packets into OSC bytes. The zero value produces the reference
// wire format. An Encoder holds no state and is safe for concurrent use.
type Encoder struct {
	// PadBlobs aligns blob payloads to 4 bytes as OSC 1.0 requires. The
	// reference format doesn't pad blobs, so it is off by default.
	PadBlobs bool
}

// Encode returns the OSC encoding of p.
func (e *Encoder) Encode(p Packet) ([]byte, error) {
	return e.AppendPacket(nil, p)
}

// AppendPacket appends the OSC encoding of p to b.
func (e *Encoder) AppendPacket(b []byte, p Packet) ([]byte, error) {
	if p == nil {
		return b, fmt.Errorf("AppendPacket: %w: nil packet", ErrInvalidArgument)
	}
	return p.appendBinary(b, e)
}

// Decoder turns OSC bytes into packets. The zero value decodes the reference
// wire format with a bundle nesting limit of DefaultMaxDepth. A Decoder holds
// no state and is safe for concurrent use.
type Decoder struct {
	// MaxDepth limits how deeply bundles may nest. 0 means DefaultMaxDepth,
	// a negative value disables the limit.
	MaxDepth int

	// SkipInvalidElements keeps decoding the remaining elements of a bundle
	// after one of them fails. Each failure is reported as an *ElementError;
	// several failures are combined with multierr.
	SkipInvalidElements bool

	// PadBlobs expects blob payloads aligned to 4 bytes, see Encoder.PadBlobs.
	PadBlobs bool
}

var (
	defaultEncoder = &Encoder{}
	defaultDecoder = &Decoder{}
)

// Decode decodes one packet from the head of data and returns it together
// with the bytes following it. Bundles always consume the rest of data.
//
// On error the returned packet is nil, except for bundles: a bundle whose
// header decoded is returned holding the elements that decoded successfully,
// and the error identifies the failing elements with *ElementError.
func (d *Decoder) Decode(data []byte) (Packet, []byte, error) {
	return d.decode(data, 0)
}

// ParsePacket decodes data as exactly one packet. Trailing bytes after a
// message are an error.
func (d *Decoder) ParsePacket(data []byte) (Packet, error) {
	p, rest, err := d.Decode(data)
	if err != nil {
		return p, err
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("ParsePacket: %w: %d trailing bytes", ErrMalformed, len(rest))
	}
	return p, nil
}

// ParsePackets decodes every packet in data, which may hold several packets
// back to back. It stops at the first error and returns the packets decoded
// until then.
func (d *Decoder) ParsePackets(data []byte) ([]Packet, error) {
	var packets []Packet
	for len(data) > 0 {
		p, rest, err := d.Decode(data)
		if p != nil {
			packets = append(packets, p)
		}
		if err != nil {
			return packets, err
		}
		data = rest
	}
	return packets, nil
}

// decode peeks at the first string of data to choose between bundle and
// message. depth is the number of enclosing bundles.
func (d *Decoder) decode(data []byte, depth int) (Packet, []byte, error) {
	s, _, err := parsePaddedString(data)
	if err != nil {
		return nil, data, err
	}

	switch {
	case s == bundleTagString:
		b, rest, err := d.parseBundle(data, depth+1)
		if b == nil {
			return nil, data, err
		}
		return b, rest, err

	case strings.HasPrefix(s, "/"):
		m, rest, err := d.parseMessage(data)
		if err != nil {
			return nil, data, err
		}
		return m, rest, nil

	default:
		return nil, data, fmt.Errorf("%w: unrecognized OSC packet contents %q", ErrMalformed, s)
	}
}

func (d *Decoder) maxDepth() int {
	if d.MaxDepth == 0 {
		return DefaultMaxDepth
	}
	return d.MaxDepth
}

// Encode returns the OSC encoding of p in the reference wire format.
func Encode(p Packet) ([]byte, error) {
	return defaultEncoder.Encode(p)
}

// DecodePacket decodes one packet from the head of data with the default
// Decoder and returns the remaining bytes.
func DecodePacket(data []byte) (Packet, []byte, error) {
	return defaultDecoder.Decode(data)
}

// ParsePacket parses exactly one OSC packet with the default Decoder.
func ParsePacket(data []byte) (Packet, error) {
	return defaultDecoder.ParsePacket(data)
}

// ParsePackets parses all OSC packets in data with the default Decoder.
func ParsePackets(data []byte) ([]Packet, error) {
	return defaultDecoder.ParsePackets(data)
}
