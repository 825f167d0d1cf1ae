package osc

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"
)

// TypeTag is the single character that identifies the wire type of an
// argument in a message's type tag string.
type TypeTag byte

const (
	TypeInt32   TypeTag = 'i'
	TypeFloat32 TypeTag = 'f'
	TypeString  TypeTag = 's'
	TypeBlob    TypeTag = 'b'
	TypeTrue    TypeTag = 'T'
	TypeFalse   TypeTag = 'F'
	TypeNil     TypeTag = 'N'
	TypeImpulse TypeTag = 'I'
	TypeTimeTag TypeTag = 't'
)

// typeTagPrefix starts every type tag string.
const typeTagPrefix = ','

func (t TypeTag) String() string {
	return string(rune(t))
}

// Argument is an OSC message argument. The set of implementations is closed:
// Int32, Float32, String, Blob, True, False, Nil, Impulse and Timetag.
type Argument interface {
	// TypeTag returns the type tag character of the argument.
	TypeTag() TypeTag

	isArgument()
}

// Int32 is the 'i' argument.
type Int32 int32

// Float32 is the 'f' argument.
type Float32 float32

// String is the 's' argument.
type String string

// Blob is the 'b' argument, an arbitrary byte payload.
type Blob []byte

// True is the 'T' argument. It carries no payload.
type True struct{}

// False is the 'F' argument. It carries no payload.
type False struct{}

// Nil is the 'N' argument. It carries no payload.
type Nil struct{}

// Impulse is the 'I' argument, a trigger without a value. It carries no
// payload.
type Impulse struct{}

func (Int32) TypeTag() TypeTag   { return TypeInt32 }
func (Float32) TypeTag() TypeTag { return TypeFloat32 }
func (String) TypeTag() TypeTag  { return TypeString }
func (Blob) TypeTag() TypeTag    { return TypeBlob }
func (True) TypeTag() TypeTag    { return TypeTrue }
func (False) TypeTag() TypeTag   { return TypeFalse }
func (Nil) TypeTag() TypeTag     { return TypeNil }
func (Impulse) TypeTag() TypeTag { return TypeImpulse }
func (Timetag) TypeTag() TypeTag { return TypeTimeTag }

func (Int32) isArgument()   {}
func (Float32) isArgument() {}
func (String) isArgument()  {}
func (Blob) isArgument()    {}
func (True) isArgument()    {}
func (False) isArgument()   {}
func (Nil) isArgument()     {}
func (Impulse) isArgument() {}
func (Timetag) isArgument() {}

// Bool returns True or False.
func Bool(b bool) Argument {
	if b {
		return True{}
	}
	return False{}
}

// Int converts any integer to an Int32 argument, truncating to 32 bits.
func Int[T constraints.Integer](i T) Int32 {
	return Int32(i)
}

// Float converts any float to a Float32 argument.
func Float[T constraints.Float](f T) Float32 {
	return Float32(f)
}

// formatArgument renders a single argument for Message.String.
func formatArgument(arg Argument) string {
	switch a := arg.(type) {
	case Int32:
		return strconv.FormatInt(int64(a), 10)
	case Float32:
		return strconv.FormatFloat(float64(a), 'g', -1, 32)
	case String:
		return strconv.Quote(string(a))
	case Blob:
		return fmt.Sprintf("blob(%d)", len(a))
	case True:
		return "true"
	case False:
		return "false"
	case Nil:
		return "Nil"
	case Impulse:
		return "Impulse"
	case Timetag:
		return strconv.FormatUint(a.TimeTag(), 10)
	default:
		return fmt.Sprintf("%T", a)
	}
}
