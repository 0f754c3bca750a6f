package huffpack

import (
	"github.com/chronos-tachyon/assert"
)

// Compressor derives a code table from a buffer and packs the buffer with it.
// A Compressor holds only configuration and may be shared between goroutines.
type Compressor struct {
	opts Options
}

// Init initializes this Compressor.
func (c *Compressor) Init(opts Options) {
	*c = Compressor{opts: opts}
}

// Options returns the options this Compressor was initialized with.
func (c *Compressor) Options() Options {
	return c.opts
}

// GenerateEncodings counts the symbols of in, builds a Huffman tree from the
// counts and returns the exact packed size in bits together with the code of
// every symbol.
func (c *Compressor) GenerateEncodings(in Input) (uint64, *Table) {
	freqs := CountFrequencies(in, c.opts)
	table := NewTree(&freqs, c.opts.treeOptions()).Encodings()
	return table.BitsRequired(&freqs), table
}

// Compress packs in using the table from GenerateEncodings.  The result holds
// exactly as many bits as GenerateEncodings reports.
func (c *Compressor) Compress(in Input) *Bits {
	bitsRequired, table := c.GenerateEncodings(in)
	data := in.Bytes()
	spans := partition(len(data), c.opts.chunkSize())
	parts := make([]Bits, len(spans))

	forEachSpan(spans, c.opts.parallelism(), func(index int, s span) {
		chunk := data[s.lo:s.hi]
		var size uint64
		for _, b := range chunk {
			size += uint64(table[b].Len())
		}
		part := makeBits(size)
		for _, b := range chunk {
			part.AppendEncoding(table[b])
		}
		parts[index] = part
	})

	// Partitions are joined in input order.
	if len(parts) == 1 {
		out := parts[0]
		assert.Assertf(out.Len() == bitsRequired, "packed %d bits, expected %d", out.Len(), bitsRequired)
		return &out
	}
	out := makeBits(bitsRequired)
	for index := range parts {
		out.Append(&parts[index])
	}
	assert.Assertf(out.Len() == bitsRequired, "packed %d bits, expected %d", out.Len(), bitsRequired)
	return &out
}

// GenerateEncodings is Compressor.GenerateEncodings with default Options.
func GenerateEncodings(in Input) (uint64, *Table) {
	var c Compressor
	c.Init(Options{})
	return c.GenerateEncodings(in)
}

// Compress is Compressor.Compress with default Options.
func Compress(in Input) *Bits {
	var c Compressor
	c.Init(Options{})
	return c.Compress(in)
}
