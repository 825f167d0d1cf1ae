package osc

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

const (
	bit32Size = 4
	bit64Size = 8
)

////
// De/Encoding functions
//
// Every parse function returns the decoded value together with the bytes that
// follow it, so decoders thread the remainder through each step instead of
// keeping a cursor.
////

// appendInt32 appends i as a big-endian two's complement integer.
func appendInt32(b []byte, i int32) []byte {
	return binary.BigEndian.AppendUint32(b, uint32(i))
}

// parseInt32 reads a big-endian int32 from the head of data.
func parseInt32(data []byte) (int32, []byte, error) {
	if len(data) < bit32Size {
		return 0, data, fmt.Errorf("parseInt32: %w: need %d bytes, have %d", ErrTruncated, bit32Size, len(data))
	}
	return int32(binary.BigEndian.Uint32(data)), data[bit32Size:], nil
}

// appendFloat32 appends f as a big-endian IEEE-754 single.
func appendFloat32(b []byte, f float32) []byte {
	return binary.BigEndian.AppendUint32(b, math.Float32bits(f))
}

// parseFloat32 reads a big-endian IEEE-754 single from the head of data.
func parseFloat32(data []byte) (float32, []byte, error) {
	if len(data) < bit32Size {
		return 0, data, fmt.Errorf("parseFloat32: %w: need %d bytes, have %d", ErrTruncated, bit32Size, len(data))
	}
	return math.Float32frombits(binary.BigEndian.Uint32(data)), data[bit32Size:], nil
}

// appendPaddedString appends str followed by at least one NUL, padded to a
// multiple of 4 bytes.
func appendPaddedString(b []byte, str string) []byte {
	b = append(b, str...)
	n := len(str) + 1
	return append(b, zeros[:1+padBytesNeeded(n)]...)
}

// parsePaddedString reads a NUL terminated, NUL padded string from the head of
// data. The padding must consist of NUL bytes only.
func parsePaddedString(data []byte) (string, []byte, error) {
	pos := bytes.IndexByte(data, 0)
	if pos == -1 {
		return "", data, fmt.Errorf("parsePaddedString: %w: missing NUL terminator", ErrMalformed)
	}

	n := pos + 1
	n += padBytesNeeded(n)
	if n > len(data) {
		return "", data, fmt.Errorf("parsePaddedString: %w: string padding runs past end of data", ErrMalformed)
	}
	for _, c := range data[pos+1 : n] {
		if c != 0 {
			return "", data, fmt.Errorf("parsePaddedString: %w: non-NUL byte %#02x in padding", ErrMalformed, c)
		}
	}

	return string(data[:pos]), data[n:], nil
}

// appendBlob appends the 4 byte length of blob followed by its bytes. The blob
// itself is only padded to a multiple of 4 when pad is set.
func appendBlob(b []byte, blob []byte, pad bool) []byte {
	b = appendInt32(b, int32(len(blob)))
	b = append(b, blob...)
	if pad {
		b = append(b, zeros[:padBytesNeeded(len(blob))]...)
	}
	return b
}

// parseBlob reads a length prefixed blob from the head of data. The returned
// slice is a copy. When pad is set, trailing alignment bytes are consumed too.
func parseBlob(data []byte, pad bool) ([]byte, []byte, error) {
	length, rest, err := parseInt32(data)
	if err != nil {
		return nil, data, fmt.Errorf("parseBlob: %w", err)
	}
	if length < 0 {
		return nil, data, fmt.Errorf("parseBlob: %w: negative blob length %d", ErrMalformed, length)
	}

	n := int(length)
	if n > len(rest) {
		return nil, data, fmt.Errorf("parseBlob: %w: blob length %d, have %d", ErrTruncated, n, len(rest))
	}
	blob := make([]byte, n)
	copy(blob, rest)
	rest = rest[n:]

	if pad {
		p := padBytesNeeded(n)
		if p > len(rest) {
			return nil, data, fmt.Errorf("parseBlob: %w: blob padding runs past end of data", ErrTruncated)
		}
		rest = rest[p:]
	}

	return blob, rest, nil
}

// appendTimetag appends t as a big-endian 64-bit fixed point value.
func appendTimetag(b []byte, t Timetag) []byte {
	return binary.BigEndian.AppendUint64(b, uint64(t))
}

// parseTimetag reads a 64-bit fixed point time tag from the head of data.
func parseTimetag(data []byte) (Timetag, []byte, error) {
	if len(data) < bit64Size {
		return 0, data, fmt.Errorf("parseTimetag: %w: need %d bytes, have %d", ErrTruncated, bit64Size, len(data))
	}
	return Timetag(binary.BigEndian.Uint64(data)), data[bit64Size:], nil
}

// padBytesNeeded determines how many bytes are needed to fill up to the next 4
// byte length.
func padBytesNeeded(elementLen int) int {
	return (4 - (elementLen % 4)) % 4
}

var zeros = [bit32Size]byte{}
