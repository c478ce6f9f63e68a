package topo

import (
	"runtime"
	"sync"

	"github.com/bollig/topomesh/mesh"
	"github.com/bollig/topomesh/raster"
)

// columnChunk is the number of columns a worker claims at a time. Large
// enough to amortize the progress callback, small enough to balance load
// on ragged grids.
const columnChunk = 1024

// BuildParallel is Build with the per-column redistribution fanned out
// over workers goroutines. Columns share no state, so the result is
// identical to the serial build. workers <= 0 uses GOMAXPROCS; workers
// of 1 runs serially. progress may be nil.
func BuildParallel(g *raster.Grid, nz int, floorDepth float64, workers int, progress Progress) (*mesh.CoordinateField, error) {
	d, err := prepare(g, nz, floorDepth)
	if err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	cf := mesh.NewCoordinateField(d)
	total := d.NumColumns()
	if workers == 1 {
		deformColumns(cf, g, 0, total)
		if progress != nil {
			progress(total, total)
		}
		return cf, nil
	}

	var (
		wg   sync.WaitGroup
		next int
		mu   sync.Mutex
		done int
	)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				mu.Lock()
				lo := next
				next += columnChunk
				mu.Unlock()
				if lo >= total {
					return
				}
				hi := lo + columnChunk
				if hi > total {
					hi = total
				}
				deformColumns(cf, g, lo, hi)
				if progress != nil {
					mu.Lock()
					done += hi - lo
					progress(done, total)
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()
	return cf, nil
}
