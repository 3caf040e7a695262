package file

import (
	"fmt"
	"github.com/dusancerhaty/fsm-table-access-simd/internal/conf"
	"io"
	"os"
	"path/filepath"
)

// readChunkSize - Number of bytes read from disk in one piece while filling a buffer
const readChunkSize uint32 = 4 * 1024 * 1024

// ReadIndices - Reads the index buffer content from the indices file in the given location.
// Only the first size bytes are consumed, a larger file is fine but a smaller one is an error.
//   - location is the directory holding the indices file
//   - size is the resolved buffer size in bytes
//
// It returns:
//   - indices is a slice with one entry per 32 bits of file content, in file order
//   - err is a standard error, if something went wrong
func ReadIndices(location string, size uint32) (indices []uint32, err error) {
	fileName := filepath.Join(location, conf.FileWithIndices)

	filePtr, err := openInputFile(fileName, size)
	if err != nil {
		return
	}
	defer func() { _ = filePtr.Close() }()

	indices = make([]uint32, size/conf.IndexElementSize)

	buf := make([]byte, chunkSize(size))
	for offset := uint32(0); offset < size; offset += uint32(len(buf)) {
		_, err = io.ReadFull(filePtr, buf)
		if err != nil {
			indices = nil
			err = fmt.Errorf("error while reading from file %s: %s", fileName, err)
			return
		}

		bytesToIndices(buf, indices[offset/conf.IndexElementSize:])
	}

	return
}

// ReadTable - Reads the lookup table content from the table file in the given location.
// Only the first size bytes are consumed, a larger file is fine but a smaller one is an error.
//   - location is the directory holding the table file
//   - size is the resolved buffer size in bytes
//
// It returns:
//   - table is a slice with one element per 16 bits of file content, in file order
//   - err is a standard error, if something went wrong
func ReadTable(location string, size uint32) (table []uint16, err error) {
	fileName := filepath.Join(location, conf.FileWithTable)

	filePtr, err := openInputFile(fileName, size)
	if err != nil {
		return
	}
	defer func() { _ = filePtr.Close() }()

	table = make([]uint16, size/conf.TableElementSize)

	buf := make([]byte, chunkSize(size))
	for offset := uint32(0); offset < size; offset += uint32(len(buf)) {
		_, err = io.ReadFull(filePtr, buf)
		if err != nil {
			table = nil
			err = fmt.Errorf("error while reading from file %s: %s", fileName, err)
			return
		}

		bytesToTableElements(buf, table[offset/conf.TableElementSize:])
	}

	return
}

// openInputFile - Opens an input file for reading and does some rudimentary checks of its validity
func openInputFile(fileName string, size uint32) (filePtr *os.File, err error) {
	if stat, ok := os.Stat(fileName); ok == nil {
		if stat.Size() < int64(size) {
			err = fmt.Errorf("size of file %s is lower than expected %d", fileName, size)
			return
		}

		filePtr, err = os.Open(fileName)
		if err != nil {
			err = fmt.Errorf("unable to open existing input file: %s", err)
			return
		}
	} else {
		err = fmt.Errorf("input file %s not found", fileName)
		return
	}

	return
}

// chunkSize - Bounds the staging buffer so reading a large file never needs a second
// full size allocation. Resolved sizes are powers of two, hence always a whole number of chunks.
func chunkSize(size uint32) uint32 {
	if size < readChunkSize {
		return size
	}

	return readChunkSize
}
