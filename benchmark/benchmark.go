// benchmark.go
// A reusable benchmarking module for Genome Buddy
// Measures execution time and memory usage of a wrapped command run

package benchmark

import (
	"os"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
)

// Result holds the resource usage of one run.
type Result struct {
	Label          string
	Elapsed        time.Duration
	MemoryUsedMB   float64
	TotalAllocMB   float64
	HeapAllocMB    float64 // live heap when the run returned
	HeapSysMB      float64 // heap obtained from the OS, a high-water mark
	GCCycles       uint32
	CPUCores       int
	GoroutinesFrom int
	GoroutinesTo   int
}

func toMB(b uint64) float64 {
	return float64(b) / 1024.0 / 1024.0
}

// Measure runs f and records its runtime and memory usage. The error of f
// is returned unchanged.
func Measure(label string, f func() error) (Result, error) {
	runtime.GC()
	var memStart, memEnd runtime.MemStats
	runtime.ReadMemStats(&memStart)
	startGoroutines := runtime.NumGoroutine()
	start := time.Now()

	err := f()

	elapsed := time.Since(start)
	runtime.ReadMemStats(&memEnd)

	res := Result{
		Label:          label,
		Elapsed:        elapsed,
		TotalAllocMB:   toMB(memEnd.TotalAlloc - memStart.TotalAlloc),
		HeapAllocMB:    toMB(memEnd.HeapAlloc),
		HeapSysMB:      toMB(memEnd.HeapSys),
		GCCycles:       memEnd.NumGC - memStart.NumGC,
		CPUCores:       runtime.NumCPU(),
		GoroutinesFrom: startGoroutines,
		GoroutinesTo:   runtime.NumGoroutine(),
	}
	// Alloc can shrink when the run itself triggered a collection
	if memEnd.Alloc > memStart.Alloc {
		res.MemoryUsedMB = toMB(memEnd.Alloc - memStart.Alloc)
	}
	return res, err
}

// Run wraps f, logs environment info before it starts and resource usage
// after it returns.
func Run(logger *log.Logger, label string, f func() error) error {
	host, _ := os.Hostname()
	logger.Info("benchmark starting",
		"run", label,
		"timestamp", time.Now().Format(time.RFC1123),
		"host", host,
		"go", runtime.Version(),
		"os_arch", runtime.GOOS+"/"+runtime.GOARCH,
	)

	res, err := Measure(label, f)

	logger.Info("benchmark finished",
		"run", res.Label,
		"elapsed", res.Elapsed,
		"memory_used_mb", res.MemoryUsedMB,
		"total_alloc_mb", res.TotalAllocMB,
		"heap_alloc_mb", res.HeapAllocMB,
		"heap_sys_mb", res.HeapSysMB,
		"gc_cycles", res.GCCycles,
		"cpu_cores", res.CPUCores,
		"goroutines", []int{res.GoroutinesFrom, res.GoroutinesTo},
	)
	return err
}
