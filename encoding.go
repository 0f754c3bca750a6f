package huffpack

import (
	"fmt"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// MaxEncodingSize is the longest code a tree with NumSymbols leaves can
// produce.  The deepest leaf sits NumSymbols-1 levels below the root, and the
// root contributes no bit.
const MaxEncodingSize = NumSymbols - 1

// Encoding is the bit string that replaces one symbol in the packed output.
//
// Bit 0 is the first bit emitted.  It is stored in the most significant bit of
// words[0], the same layout Bits uses, so an Encoding can be appended to Bits
// a word at a time.  Bits at positions >= Len() are always zero, which makes
// Encoding comparable with == and usable as a map key.
type Encoding struct {
	words [4]uint64
	size  uint8
}

// NewEncoding returns an empty Encoding.
func NewEncoding() Encoding {
	return Encoding{}
}

// Push appends one bit.  Pushing onto an Encoding that already holds
// MaxEncodingSize bits is a defect and panics.
func (e *Encoding) Push(bit bool) {
	assert.Assertf(e.size < MaxEncodingSize, "Encoding.Push: already holds %d bits, max %d", e.size, MaxEncodingSize)
	if bit {
		e.words[e.size/64] |= uint64(1) << (63 - e.size%64)
	}
	e.size++
}

// Len returns the number of bits in this Encoding.
func (e Encoding) Len() int {
	return int(e.size)
}

// IsEmpty reports whether no bits have been pushed.
func (e Encoding) IsEmpty() bool {
	return e.size == 0
}

// Bit returns the i'th bit.
func (e Encoding) Bit(i int) bool {
	assert.Assertf(i >= 0 && i < int(e.size), "Encoding.Bit: index %d out of range [0, %d)", i, e.size)
	return (e.words[i/64]>>(63-uint(i)%64))&1 == 1
}

// Reversed returns the corresponding Encoding with the bits in reverse order.
func (e Encoding) Reversed() Encoding {
	var out Encoding
	for i := int(e.size) - 1; i >= 0; i-- {
		out.Push(e.Bit(i))
	}
	return out
}

// Equal reports whether both Encodings hold the same bits.
func (e Encoding) Equal(other Encoding) bool {
	return e == other
}

// HasPrefix reports whether prefix is a leading run of e.  Every Encoding has
// the empty Encoding as a prefix.
func (e Encoding) HasPrefix(prefix Encoding) bool {
	if prefix.size > e.size {
		return false
	}
	n := uint(prefix.size)
	for w := 0; n > 0; w++ {
		take := n
		if take > 64 {
			take = 64
		}
		if highBits(e.words[w], take) != prefix.words[w] {
			return false
		}
		n -= take
	}
	return true
}

// Compare orders Encodings bit by bit, '0' before '1'.  When one is a prefix
// of the other, the shorter sorts first.
func (e Encoding) Compare(other Encoding) int {
	n := e.Len()
	if other.Len() < n {
		n = other.Len()
	}
	for i := 0; i < n; i++ {
		a, b := e.Bit(i), other.Bit(i)
		if a != b {
			if b {
				return -1
			}
			return 1
		}
	}
	switch {
	case e.size < other.size:
		return -1
	case e.size > other.size:
		return 1
	default:
		return 0
	}
}

// String returns the string representation of this Encoding.
func (e Encoding) String() string {
	var buf strings.Builder
	buf.Grow(int(e.size) + 2)
	buf.WriteByte('"')
	for i := 0; i < int(e.size); i++ {
		if e.Bit(i) {
			buf.WriteByte('1')
		} else {
			buf.WriteByte('0')
		}
	}
	buf.WriteByte('"')
	return buf.String()
}

// GoString returns a Go expression that rebuilds this Encoding.
func (e Encoding) GoString() string {
	return "huffpack.MustParseEncoding(" + e.String() + ")"
}

// ParseEncoding parses a string of '0' and '1' characters.  Surrounding double
// quotes, as produced by String, are accepted.
func ParseEncoding(str string) (Encoding, error) {
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}
	if len(str) > MaxEncodingSize {
		return Encoding{}, fmt.Errorf("huffpack: encoding of %d bits exceeds max %d", len(str), MaxEncodingSize)
	}
	var e Encoding
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
			e.Push(false)
		case '1':
			e.Push(true)
		default:
			return Encoding{}, fmt.Errorf("huffpack: invalid character %q at offset %d in encoding", str[i], i)
		}
	}
	return e, nil
}

// MustParseEncoding is ParseEncoding that panics on error.
func MustParseEncoding(str string) Encoding {
	e, err := ParseEncoding(str)
	assert.Assertf(err == nil, "%v", err)
	return e
}

var (
	_ fmt.Stringer   = Encoding{}
	_ fmt.GoStringer = Encoding{}
)
