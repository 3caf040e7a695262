package engine

import (
	"github.com/dusancerhaty/fsm-table-access-simd/internal/conf"
	"runtime"
	"time"
)

// Conf - Configuration for one access engine
//   - ID is the worker identity, it selects which logical CPU to pin to and skews every scrambled address
//   - Indices is the index buffer. All workers in a run share the same slice and rewrite it concurrently
//     without synchronization, the data races between workers are part of the measured workload and no
//     worker gets a private copy.
//   - Table is the lookup table, read only for the duration of a run
//   - IndexMask masks a scrambled index into table element range
//   - CycleCount is the number of full passes over the index buffer
type Conf struct {
	ID         uint32
	Indices    []uint32
	Table      []uint16
	IndexMask  uint32
	CycleCount uint32
}

// Result - Outcome of one engine run
//   - ID is the worker identity the result belongs to
//   - TableAccesses is the nominal number of table lookups, cycle count times number of index entries
//   - Elapsed is the time spent in the access loop
//   - Value is the folded checksum over the four lane accumulators
type Result struct {
	ID            uint32
	TableAccesses uint64
	Elapsed       time.Duration
	Value         uint16
}

// Engine - Drives the scramble/mask/lookup/fold loop for one worker
type Engine struct {
	id         uint32
	indices    []uint32
	table      []uint16
	indexMask  uint32
	cycleCount uint32
}

// New - Returns a new Engine given a configuration
func New(engineConf Conf) (engine *Engine) {
	engine = &Engine{
		id:         engineConf.ID,
		indices:    engineConf.Indices,
		table:      engineConf.Table,
		indexMask:  engineConf.IndexMask,
		cycleCount: engineConf.CycleCount,
	}

	return
}

// Run - Pins the calling goroutine to the engine's CPU and drives the access loop.
// The goroutine stays locked to its OS thread, the thread is dropped when the goroutine exits.
//
// The loop takes the index entries four at a time, one per lane. Each entry is scrambled with
// conf.IndexXorVal plus the worker id, masked into table range, the looked up element is folded
// into the entry's lane, and the scrambled address is written back to the entry's slot. A tail
// of less than four entries is never touched, while the nominal access count still covers the
// full buffer.
func (E *Engine) Run() (result Result) {
	runtime.LockOSThread()
	_ = pinThread(int(E.id))

	indices := E.indices
	table := E.table
	indexMask := E.indexMask
	id := E.id
	count := uint32(len(indices))

	value0 := conf.TableXorVal
	value1 := conf.TableXorVal
	value2 := conf.TableXorVal
	value3 := conf.TableXorVal

	start := monotonicNow()

	for cycle := uint32(0); cycle < E.cycleCount; cycle++ {
		for index := uint32(0); index+4 <= count; index += 4 {
			addr0 := (indices[index] ^ conf.IndexXorVal) + id
			addr1 := (indices[index+1] ^ conf.IndexXorVal) + id
			addr2 := (indices[index+2] ^ conf.IndexXorVal) + id
			addr3 := (indices[index+3] ^ conf.IndexXorVal) + id

			value0 = (value0 ^ table[addr0&indexMask]) & conf.TableAddVal
			value1 = (value1 ^ table[addr1&indexMask]) & conf.TableAddVal
			value2 = (value2 ^ table[addr2&indexMask]) & conf.TableAddVal
			value3 = (value3 ^ table[addr3&indexMask]) & conf.TableAddVal

			// Scrambled addresses go back into the buffer every other worker is scanning
			indices[index] = addr0
			indices[index+1] = addr1
			indices[index+2] = addr2
			indices[index+3] = addr3
		}
	}

	elapsed := monotonicNow() - start

	result = Result{
		ID:            E.id,
		TableAccesses: uint64(E.cycleCount) * uint64(count),
		Elapsed:       elapsed,
		Value:         value0 ^ value1 ^ value2 ^ value3,
	}

	return
}
