package huffpack

import (
	"golang.org/x/sync/errgroup"
)

// span is the half-open byte range [lo, hi) of one partition.
type span struct {
	lo int
	hi int
}

// partition splits n bytes into contiguous spans of at most chunkSize bytes,
// in input order.
func partition(n int, chunkSize int) []span {
	count := (n + chunkSize - 1) / chunkSize
	spans := make([]span, 0, count)
	for lo := 0; lo < n; lo += chunkSize {
		hi := lo + chunkSize
		if hi > n {
			hi = n
		}
		spans = append(spans, span{lo, hi})
	}
	return spans
}

// forEachSpan calls fn once per span, running at most parallelism calls at a
// time.  Each call must write only to state owned by its own index.  A single
// span runs on the calling goroutine.
func forEachSpan(spans []span, parallelism int, fn func(index int, s span)) {
	if len(spans) == 1 || parallelism == 1 {
		for index, s := range spans {
			fn(index, s)
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(parallelism)
	for index, s := range spans {
		index, s := index, s
		g.Go(func() error {
			fn(index, s)
			return nil
		})
	}

	// No worker returns an error; Wait is the join point.
	_ = g.Wait()
}
