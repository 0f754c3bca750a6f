package huffpack

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// Bits is a packed, append-only sequence of bits.
//
// Bit 0 is the most significant bit of words[0].  Bits at positions >= Len()
// are always zero.
type Bits struct {
	words []uint64
	size  uint64
}

// makeBits returns an empty Bits with room for capacity bits, so that
// appending up to capacity bits never reallocates.
func makeBits(capacity uint64) Bits {
	return Bits{words: make([]uint64, 0, wordsFor(capacity))}
}

// Len returns the number of bits.
func (b *Bits) Len() uint64 {
	return b.size
}

// Bit returns the i'th bit.
func (b *Bits) Bit(i uint64) bool {
	assert.Assertf(i < b.size, "Bits.Bit: index %d out of range [0, %d)", i, b.size)
	return (b.words[i/64]>>(63-i%64))&1 == 1
}

// appendWord appends the n most significant bits of word, 0 < n <= 64.  The
// remaining bits of word must be zero.
func (b *Bits) appendWord(word uint64, n uint) {
	if n == 0 {
		return
	}
	off := uint(b.size % 64)
	if off == 0 {
		b.words = append(b.words, word)
	} else {
		last := len(b.words) - 1
		b.words[last] |= word >> off
		if off+n > 64 {
			b.words = append(b.words, word<<(64-off))
		}
	}
	b.size += uint64(n)
}

// AppendEncoding appends every bit of e.
func (b *Bits) AppendEncoding(e Encoding) {
	n := uint(e.size)
	for w := 0; n > 0; w++ {
		take := n
		if take > 64 {
			take = 64
		}
		b.appendWord(e.words[w], take)
		n -= take
	}
}

// Append appends every bit of other.
func (b *Bits) Append(other *Bits) {
	n := other.size
	for _, word := range other.words {
		take := n
		if take > 64 {
			take = 64
		}
		b.appendWord(word, uint(take))
		n -= take
	}
}

// WriteTo writes the bits to w, most significant bit of each byte first.  The
// final byte is padded with zero bits.
func (b *Bits) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.Grow(int((b.size + 7) / 8))

	bw := bitio.NewWriter(&buf)
	n := b.size
	for _, word := range b.words {
		take := n
		if take > 64 {
			take = 64
		}
		if err := bw.WriteBits(word>>(64-take), uint8(take)); err != nil {
			return 0, fmt.Errorf("huffpack: failed to pack bits: %w", err)
		}
		n -= take
	}
	if err := bw.Close(); err != nil {
		return 0, fmt.Errorf("huffpack: failed to flush bits: %w", err)
	}
	return buf.WriteTo(w)
}

// Bytes returns the bits packed into bytes, as written by WriteTo.
func (b *Bits) Bytes() []byte {
	var buf bytes.Buffer
	_, err := b.WriteTo(&buf)
	assert.Assertf(err == nil, "Bits.Bytes: %v", err)
	return buf.Bytes()
}

// String returns the string representation of these Bits.
func (b *Bits) String() string {
	var buf strings.Builder
	buf.Grow(int(b.size) + 2)
	buf.WriteByte('"')
	for i := uint64(0); i < b.size; i++ {
		if b.Bit(i) {
			buf.WriteByte('1')
		} else {
			buf.WriteByte('0')
		}
	}
	buf.WriteByte('"')
	return buf.String()
}

var (
	_ fmt.Stringer = (*Bits)(nil)
	_ io.WriterTo  = (*Bits)(nil)
)
