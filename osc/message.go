package osc

import (
	"fmt"
	"math"
	"strings"
)

// Message represents a single OSC message. An OSC message consists of an OSC
// address pattern and zero or more arguments.
type Message struct {
	Address   string
	Arguments []Argument
}

// Verify that Messages implements the Packet interface.
var _ Packet = (*Message)(nil)

// NewMessage returns a new Message. The address parameter is the OSC address.
func NewMessage(addr string, args ...Argument) *Message {
	return &Message{Address: addr, Arguments: args}
}

// Append appends the given arguments to the arguments list.
func (m *Message) Append(args ...Argument) {
	m.Arguments = append(m.Arguments, args...)
}

// Clear clears the OSC address and all arguments.
func (m *Message) Clear() {
	m.Address = ""
	m.Arguments = m.Arguments[:0]
}

// TypeTags returns the type tag string: ',' followed by one character per
// argument.
func (m *Message) TypeTags() string {
	var sb strings.Builder
	sb.Grow(len(m.Arguments) + 1)
	sb.WriteByte(typeTagPrefix)
	for _, arg := range m.Arguments {
		if arg != nil {
			sb.WriteByte(byte(arg.TypeTag()))
		}
	}
	return sb.String()
}

// String implements the fmt.Stringer interface.
func (m *Message) String() string {
	if m == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(m.Address)
	sb.WriteByte(' ')
	sb.WriteString(m.TypeTags())
	for _, arg := range m.Arguments {
		sb.WriteByte(' ')
		sb.WriteString(formatArgument(arg))
	}

	return sb.String()
}

// MarshalBinary implements the encoding.BinaryMarshaler interface. The byte
// buffer has the following format:
// 1. OSC Address Pattern
// 2. OSC Type Tag String
// 3. OSC Arguments
func (m *Message) MarshalBinary() ([]byte, error) {
	return defaultEncoder.Encode(m)
}

func (m *Message) appendBinary(b []byte, e *Encoder) ([]byte, error) {
	if m == nil {
		return b, fmt.Errorf("%w: nil message", ErrInvalidArgument)
	}
	if err := validateString(m.Address); err != nil {
		return b, fmt.Errorf("message address: %w", err)
	}
	if !strings.HasPrefix(m.Address, "/") {
		return b, fmt.Errorf("message address %q: %w: must start with '/'", m.Address, ErrInvalidArgument)
	}

	tags := make([]byte, 1, len(m.Arguments)+1)
	tags[0] = typeTagPrefix

	// Process the type tags and collect all arguments
	var payload []byte
	for i, arg := range m.Arguments {
		var err error
		switch t := arg.(type) {
		case Int32:
			payload = appendInt32(payload, int32(t))
		case Float32:
			payload = appendFloat32(payload, float32(t))
		case String:
			if err = validateString(string(t)); err == nil {
				payload = appendPaddedString(payload, string(t))
			}
		case Blob:
			if len(t) > math.MaxInt32 {
				err = fmt.Errorf("%w: blob of %d bytes", ErrInvalidArgument, len(t))
			} else {
				payload = appendBlob(payload, t, e.PadBlobs)
			}
		case Timetag:
			payload = appendTimetag(payload, t)
		case True, False, Nil, Impulse:
		default:
			err = fmt.Errorf("%w: unsupported type %T", ErrInvalidArgument, t)
		}
		if err != nil {
			return b, fmt.Errorf("message %s argument %d: %w", m.Address, i, err)
		}
		tags = append(tags, byte(arg.TypeTag()))
	}

	b = appendPaddedString(b, m.Address)
	b = appendPaddedString(b, string(tags))
	return append(b, payload...), nil
}

// NewMessageFromData returns a new OSC message parsed from data.
func NewMessageFromData(data []byte) (msg *Message, err error) {
	msg = &Message{}
	if err = msg.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return msg, nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface. data
// must hold exactly one message.
func (m *Message) UnmarshalBinary(data []byte) error {
	msg, rest, err := defaultDecoder.parseMessage(data)
	if err != nil {
		return fmt.Errorf("UnmarshalBinary: %w", err)
	}
	if len(rest) != 0 {
		return fmt.Errorf("UnmarshalBinary: %w: %d trailing bytes", ErrMalformed, len(rest))
	}
	*m = *msg
	return nil
}

// parseMessage reads a message from the head of data and returns the bytes
// following its last argument.
func (d *Decoder) parseMessage(data []byte) (*Message, []byte, error) {
	addr, rest, err := parsePaddedString(data)
	if err != nil {
		return nil, data, fmt.Errorf("message address: %w", err)
	}
	if !strings.HasPrefix(addr, "/") {
		return nil, data, fmt.Errorf("%w: message address %q doesn't start with '/'", ErrMalformed, addr)
	}

	if len(rest) == 0 || rest[0] != typeTagPrefix {
		return nil, data, fmt.Errorf("message %s: %w: missing type tag string", addr, ErrMalformed)
	}
	tags, rest, err := parsePaddedString(rest)
	if err != nil {
		return nil, data, fmt.Errorf("message %s type tags: %w", addr, err)
	}
	tags = tags[1:]

	msg := &Message{Address: addr}
	if len(tags) > 0 {
		msg.Arguments = make([]Argument, 0, len(tags))
	}

	for i := 0; i < len(tags); i++ {
		var arg Argument
		switch tag := TypeTag(tags[i]); tag {
		case TypeInt32:
			var v int32
			v, rest, err = parseInt32(rest)
			arg = Int32(v)
		case TypeFloat32:
			var v float32
			v, rest, err = parseFloat32(rest)
			arg = Float32(v)
		case TypeString:
			var v string
			v, rest, err = parsePaddedString(rest)
			arg = String(v)
		case TypeBlob:
			var v []byte
			v, rest, err = parseBlob(rest, d.PadBlobs)
			arg = Blob(v)
		case TypeTimeTag:
			var v Timetag
			v, rest, err = parseTimetag(rest)
			arg = v
		case TypeTrue:
			arg = True{}
		case TypeFalse:
			arg = False{}
		case TypeNil:
			arg = Nil{}
		case TypeImpulse:
			arg = Impulse{}
		default:
			err = fmt.Errorf("%w %q", ErrUnknownTag, tag)
		}
		if err != nil {
			return nil, data, fmt.Errorf("message %s argument %d: %w", addr, i, err)
		}
		msg.Arguments = append(msg.Arguments, arg)
	}

	return msg, rest, nil
}

// validateString rejects strings that can't survive NUL termination.
func validateString(s string) error {
	if i := strings.IndexByte(s, 0); i != -1 {
		return fmt.Errorf("%w: NUL byte at offset %d of %q", ErrInvalidArgument, i, s)
	}
	return nil
}
