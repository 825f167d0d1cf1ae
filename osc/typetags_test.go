package osc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgument_TypeTag(t *testing.T) {
	tests := []struct {
		arg  Argument
		want TypeTag
	}{
		{Int32(1), 'i'},
		{Float32(1), 'f'},
		{String("s"), 's'},
		{Blob{1}, 'b'},
		{True{}, 'T'},
		{False{}, 'F'},
		{Nil{}, 'N'},
		{Impulse{}, 'I'},
		{Timetag(1), 't'},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.arg.TypeTag())
		})
	}
}

func TestBool(t *testing.T) {
	assert.Equal(t, True{}, Bool(true))
	assert.Equal(t, False{}, Bool(false))
}

func TestIntFloat(t *testing.T) {
	assert.Equal(t, Int32(7), Int(uint8(7)))
	assert.Equal(t, Int32(-3), Int(int64(-3)))
	assert.Equal(t, Int32(-1), Int(uint32(0xffffffff)))
	assert.Equal(t, Float32(0.5), Float(0.5))
	assert.Equal(t, Float32(2), Float(float32(2)))
}
