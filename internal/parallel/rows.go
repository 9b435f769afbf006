package parallel

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// MinRowsPerBand is the smallest band a worker receives. Images shorter
// than two bands run inline on the calling goroutine.
const MinRowsPerBand = 16

// maxWorkers caps the number of concurrent bands; 0 means GOMAXPROCS.
var maxWorkers atomic.Int32

// SetMaxWorkers limits how many bands Rows processes concurrently.
// n <= 0 restores the default (GOMAXPROCS). n == 1 forces serial execution.
func SetMaxWorkers(n int) {
	if n < 0 {
		n = 0
	}
	maxWorkers.Store(int32(n))
}

// Workers returns the effective worker limit.
func Workers() int {
	if n := int(maxWorkers.Load()); n > 0 {
		return n
	}
	return runtime.GOMAXPROCS(0)
}

// Rows calls fn once for every row in [0, height). Rows are split into
// contiguous bands processed concurrently, so fn must only write to
// storage owned by its row. Rows returns after every call has finished.
func Rows(height int, fn func(y int)) {
	if height <= 0 {
		return
	}

	workers := Workers()
	bands := height / MinRowsPerBand
	if bands > workers {
		bands = workers
	}
	if bands < 2 {
		for y := 0; y < height; y++ {
			fn(y)
		}
		return
	}

	per := (height + bands - 1) / bands

	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < height; start += per {
		start := start // per-iteration copy; go directive is below 1.22
		end := min(start+per, height)
		g.Go(func() error {
			for y := start; y < end; y++ {
				fn(y)
			}
			return nil
		})
	}
	_ = g.Wait() // bands never fail
}
