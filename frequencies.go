package huffpack

import (
	"github.com/chronos-tachyon/assert"
)

// Frequencies holds the number of occurrences of each symbol.
type Frequencies [NumSymbols]uint64

// FrequenciesFromSlice copies counts into a Frequencies.  The slice must hold
// exactly NumSymbols entries; any other length is a defect.
func FrequenciesFromSlice(counts []uint64) Frequencies {
	assert.Assertf(len(counts) == NumSymbols, "frequency table has %d entries, expected %d", len(counts), NumSymbols)
	var freqs Frequencies
	copy(freqs[:], counts)
	return freqs
}

// Add adds other into f, element by element.
func (f *Frequencies) Add(other *Frequencies) {
	for symbol := range f {
		f[symbol] += other[symbol]
	}
}

// Total returns the sum of all counts.
func (f *Frequencies) Total() uint64 {
	var sum uint64
	for _, count := range f {
		sum += count
	}
	return sum
}

// Present returns the number of symbols with a non-zero count.
func (f *Frequencies) Present() int {
	var n int
	for _, count := range f {
		if count != 0 {
			n++
		}
	}
	return n
}

// CountFrequencies counts every byte of in.  The buffer is split into
// partitions per opts; each partition is counted into its own table and the
// tables are summed.
func CountFrequencies(in Input, opts Options) Frequencies {
	data := in.Bytes()
	spans := partition(len(data), opts.chunkSize())
	partials := make([]Frequencies, len(spans))

	forEachSpan(spans, opts.parallelism(), func(index int, s span) {
		local := &partials[index]
		for _, b := range data[s.lo:s.hi] {
			local[b]++
		}
	})

	total := partials[0]
	for index := 1; index < len(partials); index++ {
		total.Add(&partials[index])
	}
	return total
}
