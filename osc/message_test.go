package osc

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_Append(t *testing.T) {
	oscAddress := "/address"
	message := NewMessage(oscAddress)

	message.Append(String("string argument"))
	message.Append(Int32(123456789))
	message.Append(True{})

	if len(message.Arguments) != 3 {
		t.Errorf("Number of arguments should be %d and is %d", 3, len(message.Arguments))
	}
}

func TestMessage_TypeTags(t *testing.T) {
	msg := NewMessage("/all",
		Int32(1), Float32(2), String("3"), Blob{4}, True{}, False{}, Nil{}, Impulse{}, Timetag(5))
	assert.Equal(t, ",ifsbTFNIt", msg.TypeTags())
	assert.Equal(t, ",", NewMessage("/none").TypeTags())
}

func TestMessage_String(t *testing.T) {
	msg := NewMessage("/address", Int32(1), String("two"), Blob{3, 3, 3}, Impulse{})
	assert.Equal(t, `/address ,isbI 1 "two" blob(3) Impulse`, msg.String())
	assert.Equal(t, "", (*Message)(nil).String())
}

func TestMessage_MarshalBinary(t *testing.T) {
	for _, tt := range messageTestCases {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.obj.MarshalBinary()
			if (err != nil) != tt.wantErr {
				t.Errorf("MarshalBinary() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.raw) {
				t.Errorf("MarshalBinary() got = %q, want %q", got, tt.raw)
			}
		})
	}
}

func TestMessage_UnmarshalBinary(t *testing.T) {
	for _, tt := range messageTestCases {
		t.Run(tt.name, func(t *testing.T) {
			m := new(Message)
			if err := m.UnmarshalBinary(tt.raw); (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalBinary() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(m, tt.obj) {
				t.Errorf("UnmarshalBinary() got = %v, want %v", m, tt.obj)
			}
		})
	}
}

func TestMessage_MarshalBinaryInvalid(t *testing.T) {
	tests := []struct {
		name string
		msg  *Message
	}{
		{"no_slash", NewMessage("address")},
		{"empty_address", NewMessage("")},
		{"nul_in_address", NewMessage("/a\x00b")},
		{"nul_in_string", NewMessage("/a", String("x\x00y"))},
		{"nil_argument", NewMessage("/a", Int32(1), nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.msg.MarshalBinary()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidArgument), "got %v", err)
		})
	}
}

func TestMessage_ArgumentOrder(t *testing.T) {
	args := []Argument{
		String("first"), Int32(2), Impulse{}, Float32(4.25), Blob{5, 5}, Nil{}, Timetag(7), False{}, String(""),
	}
	data, err := Encode(NewMessage("/order", args...))
	require.NoError(t, err)

	msg, err := NewMessageFromData(data)
	require.NoError(t, err)
	require.Len(t, msg.Arguments, len(args))
	for i := range args {
		assert.Equal(t, args[i], msg.Arguments[i], "argument %d", i)
	}
}

func TestMessage_PadBlobs(t *testing.T) {
	msg := NewMessage("/b", Blob{1, 2, 3}, Int32(9))
	want := []byte("/b" + nulls(2) + ",bi" + zero +
		"\x00\x00\x00\x03" + "\x01\x02\x03" + zero +
		"\x00\x00\x00\x09")

	got, err := (&Encoder{PadBlobs: true}).Encode(msg)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	p, err := (&Decoder{PadBlobs: true}).ParsePacket(got)
	require.NoError(t, err)
	assert.Equal(t, msg, p)

	// The same bytes read without padding misplace the int.
	_, err = ParsePacket(got)
	assert.Error(t, err)
}

func TestMessage_UnmarshalBinaryErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want error
	}{
		{"empty", "", ErrMalformed},
		{"no_terminator", "/abc", ErrMalformed},
		{"bad_padding", "/a" + zero + "x" + "," + nulls(3), ErrMalformed},
		{"missing_typetags", "/a" + nulls(2), ErrMalformed},
		{"typetags_without_comma", "/a" + nulls(2) + "i" + nulls(3) + nulls(4), ErrMalformed},
		{"short_int", "/a" + nulls(2) + ",i" + nulls(2) + "\x00\x01", ErrTruncated},
		{"short_float", "/a" + nulls(2) + ",f" + nulls(2), ErrTruncated},
		{"short_timetag", "/a" + nulls(2) + ",t" + nulls(2) + nulls(4), ErrTruncated},
		{"short_blob", "/a" + nulls(2) + ",b" + nulls(2) + "\x00\x00\x00\x08" + "abcd", ErrTruncated},
		{"unterminated_string_arg", "/a" + nulls(2) + ",s" + nulls(2) + "abcd", ErrMalformed},
		{"unknown_tag", "/a" + nulls(2) + ",ix" + zero + "\x00\x00\x00\x01", ErrUnknownTag},
		{"trailing_bytes", "/a" + nulls(2) + "," + nulls(3) + nulls(4), ErrMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(Message)
			err := m.UnmarshalBinary([]byte(tt.raw))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)
		})
	}
}

var result interface{}

func BenchmarkMessageMarshalBinary(b *testing.B) {
	var buf []byte
	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		buf, _ = temp.MarshalBinary()
	}
	result = buf
}
