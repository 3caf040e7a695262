package tableaccess

import (
	"fmt"
	"github.com/dusancerhaty/fsm-table-access-simd/internal/conf"
	"github.com/dusancerhaty/fsm-table-access-simd/internal/file"
)

// Benchmark - The main implementation struct, it owns the two loaded buffers for a run
type Benchmark struct {
	config  Config
	indices []uint32
	table   []uint16
}

// New - Loads the two input buffers according to the given configuration and returns a
// Benchmark ready to run.
//   - config is a resolved configuration, see NewConfig
//
// It returns:
//   - benchmark is a pointer to a Benchmark struct
//   - err is a standard error, if something went wrong
func New(config Config) (benchmark *Benchmark, err error) {
	indices, err := file.ReadIndices(config.LocationOfFiles, config.IndicesBufferSize)
	if err != nil {
		err = fmt.Errorf("error while reading indices buffer: %s", err)
		return
	}

	table, err := file.ReadTable(config.LocationOfFiles, config.TableBufferSize)
	if err != nil {
		err = fmt.Errorf("error while reading table buffer: %s", err)
		return
	}

	benchmark = &Benchmark{
		config:  config,
		indices: indices,
		table:   table,
	}

	return
}

// NewFromBuffers - Returns a Benchmark over already loaded buffers, for callers that bring
// their own data instead of the two input files. Only entries up to the configured sizes
// take part in a run, a larger buffer is fine but a smaller one is an error.
//   - config is a resolved configuration, see NewConfig
//   - indices is the index buffer, it must hold at least the configured number of entries
//   - table is the lookup table, it must hold at least the configured number of elements
//
// It returns:
//   - benchmark is a pointer to a Benchmark struct
//   - err is a standard error, if something went wrong
func NewFromBuffers(config Config, indices []uint32, table []uint16) (benchmark *Benchmark, err error) {
	indexEntries := config.IndicesBufferSize / conf.IndexElementSize
	if uint32(len(indices)) < indexEntries {
		err = fmt.Errorf("indices buffer holds %d entries which is lower than expected %d", len(indices), indexEntries)
		return
	}

	tableElements := config.TableBufferSize / conf.TableElementSize
	if uint32(len(table)) < tableElements {
		err = fmt.Errorf("table buffer holds %d elements which is lower than expected %d", len(table), tableElements)
		return
	}

	benchmark = &Benchmark{
		config:  config,
		indices: indices[:indexEntries],
		table:   table[:tableElements],
	}

	return
}
