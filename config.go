package tableaccess

import (
	"fmt"
	"github.com/dusancerhaty/fsm-table-access-simd/internal/conf"
	"github.com/dusancerhaty/fsm-table-access-simd/internal/utils"
	"io"
)

// Config - Resolved benchmark configuration
//   - LocationOfFiles is the directory holding the two input files
//   - IndicesBufferSize is the resolved index buffer size in bytes, always a power of two
//   - TableBufferSize is the resolved lookup table size in bytes, always a power of two
//   - TableIndexMask masks any 32 bit value into table element range
//   - CycleCount is the number of passes every worker makes over the index buffer
//   - ThreadCount is the requested number of workers
type Config struct {
	LocationOfFiles   string
	IndicesBufferSize uint32
	TableBufferSize   uint32
	TableIndexMask    uint32
	CycleCount        uint32
	ThreadCount       uint32
}

// NewConfig - Resolves a raw benchmark configuration. Buffer sizes are rounded up to the
// nearest power of two and then clamped to their maxima, so an oversized request quietly
// becomes the maximum. The table size is kept at one element or more so the index mask
// stays well defined.
//   - location is the directory holding the indices and table files, it can not be empty
//   - indicesBufferSize and tableBufferSize are the requested buffer sizes in bytes
//   - cycleCount and threadCount pass through as given, zero makes for an empty run
//
// It returns:
//   - config is the resolved Config
//   - err is a standard error, if something went wrong
func NewConfig(location string, indicesBufferSize, tableBufferSize, cycleCount, threadCount uint32) (config Config, err error) {
	// Check if location is empty
	if location == "" {
		err = fmt.Errorf("location of files can not be empty")
		return
	}

	indicesSize := utils.RoundUp2(int64(indicesBufferSize))
	if indicesSize > int64(conf.IndicesBufferSizeMax) {
		indicesSize = int64(conf.IndicesBufferSizeMax)
	}

	tableSize := utils.RoundUp2(int64(tableBufferSize))
	if tableSize > int64(conf.TableBufferSizeMax) {
		tableSize = int64(conf.TableBufferSizeMax)
	}
	if tableSize < int64(conf.TableElementSize) {
		tableSize = int64(conf.TableElementSize)
	}

	config = Config{
		LocationOfFiles:   location,
		IndicesBufferSize: uint32(indicesSize),
		TableBufferSize:   uint32(tableSize),
		TableIndexMask:    uint32(tableSize)/conf.TableElementSize - 1,
		CycleCount:        cycleCount,
		ThreadCount:       threadCount,
	}

	return
}

// Print - Writes the resolved configuration line by line
func (C Config) Print(w io.Writer) {
	_, _ = fmt.Fprintf(w, "location of files: %s\n", C.LocationOfFiles)
	_, _ = fmt.Fprintf(w, "indices buffer size: %d\n", C.IndicesBufferSize)
	_, _ = fmt.Fprintf(w, "table buffer size: %d\n", C.TableBufferSize)
	_, _ = fmt.Fprintf(w, "table index mask: 0x%08X\n", C.TableIndexMask)
	_, _ = fmt.Fprintf(w, "cycle count: %d\n", C.CycleCount)
	_, _ = fmt.Fprintf(w, "thread count: %d\n", C.ThreadCount)
}
