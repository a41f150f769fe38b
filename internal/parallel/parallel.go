// Package parallel provides the worker fan-out used to compute per-example gradients of a
// mini-batch concurrently.
package parallel

import (
	"runtime"
	"sync"

	"github.com/klauspost/cpuid/v2"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns defaults based on the number of physical cores.
//
// Hyper-threads share the FPU, so float-heavy work gains little from them.
func DefaultConfig() Config {
	n := NumCores()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 8,
	}
}

// NumCores returns the number of physical cores, or runtime.NumCPU when cpuid cannot tell.
func NumCores() int {
	if n := cpuid.CPU.PhysicalCores; n > 0 {
		return min(n, runtime.NumCPU())
	}
	return runtime.NumCPU()
}

// Chunks returns the number of chunks Range would split n items into.
func Chunks(n int, cfg Config) int {
	if n <= 0 {
		return 0
	}
	if !cfg.Enabled || cfg.NumWorkers <= 1 || n < cfg.MinChunkSize {
		return 1
	}
	size := chunkSize(n, cfg)
	return (n + size - 1) / size
}

func chunkSize(n int, cfg Config) int {
	return max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize, 1)
}

// Range calls f(chunk, start, end) for consecutive half-open ranges covering [0, n).
//
// Chunk indices run from 0 to Chunks(n, cfg)-1, so callers can give every chunk its own
// accumulator. Falls back to a single sequential call when parallelism is disabled or n
// is too small. Range returns after every call has finished.
func Range(n int, cfg Config, f func(chunk, start, end int)) {
	chunks := Chunks(n, cfg)
	if chunks == 0 {
		return
	}
	if chunks == 1 {
		f(0, 0, n)
		return
	}

	size := chunkSize(n, cfg)
	var wg sync.WaitGroup
	for c := 0; c < chunks; c++ {
		start := c * size
		end := min(start+size, n)
		wg.Add(1)
		go func(c, s, e int) {
			defer wg.Done()
			f(c, s, e)
		}(c, start, end)
	}
	wg.Wait()
}
