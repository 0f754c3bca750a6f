package huffpack

import (
	"bytes"
	"fmt"
	"io"
)

// Table maps each symbol to its Encoding.
type Table [NumSymbols]Encoding

// Encode returns the Encoding of symbol.
func (t *Table) Encode(symbol byte) Encoding {
	return t[symbol]
}

// MinSize is the bit length of the shortest non-empty code.
func (t *Table) MinSize() int {
	minSize := 0
	for _, e := range t {
		if n := e.Len(); n != 0 && (minSize == 0 || n < minSize) {
			minSize = n
		}
	}
	return minSize
}

// MaxSize is the bit length of the longest code.
func (t *Table) MaxSize() int {
	maxSize := 0
	for _, e := range t {
		if n := e.Len(); n > maxSize {
			maxSize = n
		}
	}
	return maxSize
}

// SizeBySymbol returns an array containing the bit length for each symbol in
// the alphabet.
func (t *Table) SizeBySymbol() []byte {
	out := make([]byte, NumSymbols)
	for symbol, e := range t {
		out[symbol] = byte(e.Len())
	}
	return out
}

// BitsRequired returns the number of bits needed to pack a buffer with the
// given symbol counts.
func (t *Table) BitsRequired(freqs *Frequencies) uint64 {
	var sum uint64
	for symbol, count := range freqs {
		sum += count * uint64(t[symbol].Len())
	}
	return sum
}

// Dump writes a programmer-readable debugging dump of the Table to the given
// writer.
func (t *Table) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Table{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", t.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", t.MaxSize())
	for symbol, e := range t {
		if e.IsEmpty() {
			fmt.Fprintf(&buf, "\tEncode(%d) = nil\n", symbol)
		} else {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, e)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
