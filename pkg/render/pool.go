package render

import (
	"runtime"
	"sync"
	"time"
)

// rowRange is a unit of work for the worker pool: the half-open row
// interval [start, end) of the film.
type rowRange struct {
	start, end int
}

// Trace renders every pixel of the camera's film. With threaded set it
// partitions the image into row ranges and dispatches them to one
// worker goroutine per CPU, each operating on its own tracer clone;
// otherwise it renders on the calling goroutine. Row ranges are
// disjoint, so workers never write the same pixel and the result is
// identical either way.
func (t *LevelSetTracer) Trace(threaded bool) Stats {
	start := time.Now()
	height := t.camera.Film().Height()

	var stats Stats
	if !threaded {
		t.renderRows(0, height, &stats)
		stats.Duration = time.Since(start)
		return stats
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > height {
		numWorkers = height
	}

	// Several chunks per worker so a slow range does not stall the rest.
	chunk := height / (numWorkers * 4)
	if chunk < 1 {
		chunk = 1
	}
	numRanges := (height + chunk - 1) / chunk

	ranges := make(chan rowRange, numRanges)
	results := make(chan Stats, numWorkers)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		worker := t.clone()
		wg.Add(1)
		go func() {
			defer wg.Done()
			var workerStats Stats
			for r := range ranges {
				if worker.renderRows(r.start, r.end, &workerStats) {
					break
				}
			}
			results <- workerStats
		}()
	}

	for j := 0; j < height; j += chunk {
		end := j + chunk
		if end > height {
			end = height
		}
		ranges <- rowRange{start: j, end: end}
	}
	close(ranges)
	wg.Wait()
	close(results)

	for workerStats := range results {
		stats.Pixels += workerStats.Pixels
		stats.Rays += workerStats.Rays
		stats.Hits += workerStats.Hits
	}
	stats.Duration = time.Since(start)
	return stats
}
