package parallel

import (
	"sync/atomic"
	"testing"
)

func TestRowsVisitsEveryRowOnce(t *testing.T) {
	for _, height := range []int{0, 1, 15, 16, 33, 257, 1000} {
		counts := make([]int32, height)
		Rows(height, func(y int) {
			atomic.AddInt32(&counts[y], 1)
		})
		for y, c := range counts {
			if c != 1 {
				t.Fatalf("height=%d: row %d visited %d times, want 1", height, y, c)
			}
		}
	}
}

func TestRowsSerialWhenLimitedToOneWorker(t *testing.T) {
	SetMaxWorkers(1)
	t.Cleanup(func() { SetMaxWorkers(0) })

	if got := Workers(); got != 1 {
		t.Fatalf("Workers() = %d, want 1", got)
	}

	var order []int
	Rows(100, func(y int) {
		order = append(order, y) // safe: serial
	})
	for i, y := range order {
		if y != i {
			t.Fatalf("row order[%d] = %d, want %d", i, y, i)
		}
	}
}

func TestSetMaxWorkersNegativeRestoresDefault(t *testing.T) {
	SetMaxWorkers(-3)
	t.Cleanup(func() { SetMaxWorkers(0) })
	if Workers() < 1 {
		t.Errorf("Workers() = %d, want >= 1", Workers())
	}
}
