package huffpack

import (
	"errors"

	"github.com/chronos-tachyon/assert"
)

// ErrEmptyInput is returned by NewInput for a zero-length buffer.
var ErrEmptyInput = errors.New("huffpack: input is empty")

// Input is a byte buffer that is known to be non-empty.  Only NewInput and
// MustInput construct one; passing the zero Input to this package is a defect.
type Input struct {
	data []byte
}

// NewInput wraps data, or returns ErrEmptyInput if data is empty.  The buffer
// is not copied and must not be modified while it is in use.
func NewInput(data []byte) (Input, error) {
	if len(data) == 0 {
		return Input{}, ErrEmptyInput
	}
	return Input{data: data}, nil
}

// MustInput is NewInput that panics on an empty buffer.
func MustInput(data []byte) Input {
	assert.Assertf(len(data) != 0, "MustInput: input is empty")
	return Input{data: data}
}

// Bytes returns the wrapped buffer.
func (in Input) Bytes() []byte {
	in.check()
	return in.data
}

// Len returns the number of bytes in the buffer.  It is always positive.
func (in Input) Len() int {
	in.check()
	return len(in.data)
}

func (in Input) check() {
	assert.Assertf(len(in.data) != 0, "huffpack: use of zero Input")
}
