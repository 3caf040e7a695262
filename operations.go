package tableaccess

import (
	"github.com/dusancerhaty/fsm-table-access-simd/internal/conf"
	"github.com/dusancerhaty/fsm-table-access-simd/internal/engine"
	"sync"
)

// Run - Launches one access engine per requested thread and aggregates their results.
// Never more than conf.ThreadsMax workers are launched, and every worker that did launch is
// joined before Run returns. A request beyond the maximum therefore completes the reduced
// run and then fails with a LaunchShortfall error.
//
// All workers share the benchmark's index buffer and rewrite it concurrently without
// synchronization. That is a deliberate property of the measured workload, so the buffer
// must never be partitioned per worker and never put behind locks.
//
// It returns:
//   - report is the aggregated outcome of the run, see Report
//   - err is of type LaunchShortfall if fewer workers launched than requested
func (B *Benchmark) Run() (report Report, err error) {
	requested := B.config.ThreadCount

	launched := requested
	if launched > conf.ThreadsMax {
		launched = conf.ThreadsMax
	}

	results := make([]engine.Result, launched)

	var wg sync.WaitGroup
	for id := uint32(0); id < launched; id++ {
		accessEngine := engine.New(engine.Conf{
			ID:         id,
			Indices:    B.indices,
			Table:      B.table,
			IndexMask:  B.config.TableIndexMask,
			CycleCount: B.config.CycleCount,
		})

		wg.Add(1)
		go func(slot *engine.Result) {
			defer wg.Done()
			*slot = accessEngine.Run()
		}(&results[id])
	}

	// The join publishes every result slot, no further synchronization is involved
	wg.Wait()

	if launched < requested {
		err = LaunchShortfall{Started: launched, Requested: requested}
		return
	}

	report = newReport(results)

	return
}
