package utils

import (
	"runtime"
	"sync"

	goutils "go.viam.com/utils"
)

// ParallelFactor controls the max level of parallelization. This might be
// useful to set in tests where too much parallelism actually slows tests down
// in aggregate.
var ParallelFactor = runtime.GOMAXPROCS(0)

func init() {
	if ParallelFactor <= 0 {
		ParallelFactor = 1
	}
}

// ParallelForEachRow calls f for every row index in [0, height), splitting the
// rows over parallel workers. Rows are each visited exactly once; no ordering
// is guaranteed between them, so f must only write state owned by its row.
func ParallelForEachRow(height int, f func(y int)) {
	workers := ParallelFactor
	if workers > height {
		workers = height
	}
	if workers <= 1 {
		for y := 0; y < height; y++ {
			f(y)
		}
		return
	}

	rowsPer := height / workers
	extra := height % workers

	var wait sync.WaitGroup
	wait.Add(workers)
	from := 0
	for i := 0; i < workers; i++ {
		to := from + rowsPer
		if i < extra {
			to++
		}
		fromCopy, toCopy := from, to
		goutils.PanicCapturingGo(func() {
			defer wait.Done()
			for y := fromCopy; y < toCopy; y++ {
				f(y)
			}
		})
		from = to
	}
	wait.Wait()
}
