package utils

import (
	"runtime"
	"time"

	"github.com/edaniels/golog"
)

// Profiler starts a timing and memory checkpoint for the named operation and
// returns a stop function that logs elapsed wall time and heap growth at
// debug level. Observability is injected through the logger; the core keeps
// no ambient state.
func Profiler(logger golog.Logger, name string) func() {
	start := time.Now()
	var before runtime.MemStats
	runtime.ReadMemStats(&before)
	return func() {
		var after runtime.MemStats
		runtime.ReadMemStats(&after)
		logger.Debugf(
			"%s: %.3fs elapsed, heap %.1f MB -> %.1f MB",
			name,
			time.Since(start).Seconds(),
			float64(before.HeapAlloc)/1e6,
			float64(after.HeapAlloc)/1e6,
		)
	}
}
