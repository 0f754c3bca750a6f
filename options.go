package huffpack

import (
	"runtime"
)

// DefaultChunkSize is the partition size used when Options.ChunkSize is not
// set.
const DefaultChunkSize = 64 << 10

// Options configures a Compressor.  The zero value selects the defaults.
type Options struct {
	// Parallelism caps the number of partitions processed at once.  Zero
	// or negative means runtime.GOMAXPROCS(0).
	Parallelism int

	// ChunkSize is the number of input bytes per partition.  Zero or
	// negative means DefaultChunkSize.  Inputs that fit in one chunk are
	// processed on the calling goroutine.
	ChunkSize int

	// SkipUnused leaves symbols with a count of zero out of the tree.
	// They are assigned the empty Encoding instead of a real code.
	SkipUnused bool
}

func (opts Options) parallelism() int {
	if opts.Parallelism > 0 {
		return opts.Parallelism
	}
	return runtime.GOMAXPROCS(0)
}

func (opts Options) chunkSize() int {
	if opts.ChunkSize > 0 {
		return opts.ChunkSize
	}
	return DefaultChunkSize
}

// treeOptions extracts the options relevant to NewTree.
func (opts Options) treeOptions() TreeOptions {
	return TreeOptions{SkipUnused: opts.SkipUnused}
}
