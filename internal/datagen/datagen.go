package datagen

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"github.com/dusancerhaty/fsm-table-access-simd/internal/conf"
	"math/rand"
	"os"
	"path/filepath"
)

// writeBufferSize - Size of the buffered writer used when producing the files
const writeBufferSize int = 1024 * 1024

// Conf - Configuration for generating a set of benchmark input files
//   - LocationOfFiles is the directory to write the two files to, it is created if missing
//   - IndicesBufferSize is the indices file size in bytes
//   - TableBufferSize is the table file size in bytes
//   - Seed drives the pseudo random content, the same seed always gives the same files
type Conf struct {
	LocationOfFiles   string
	IndicesBufferSize uint32
	TableBufferSize   uint32
	Seed              int64
}

// Generate - Writes an indices file and a table file filled with seeded pseudo random content.
// Existing files are truncated and rewritten.
func Generate(genConf Conf) (err error) {
	if genConf.LocationOfFiles == "" {
		err = fmt.Errorf("location of files can not be empty")
		return
	}

	err = os.MkdirAll(genConf.LocationOfFiles, 0755)
	if err != nil {
		err = fmt.Errorf("error while creating directory %s: %s", genConf.LocationOfFiles, err)
		return
	}

	rnd := rand.New(rand.NewSource(genConf.Seed))

	err = writeIndices(filepath.Join(genConf.LocationOfFiles, conf.FileWithIndices), genConf.IndicesBufferSize, rnd)
	if err != nil {
		return
	}

	err = writeTable(filepath.Join(genConf.LocationOfFiles, conf.FileWithTable), genConf.TableBufferSize, rnd)

	return
}

// writeIndices - Writes size bytes of pseudo random little endian 32 bit entries to fileName
func writeIndices(fileName string, size uint32, rnd *rand.Rand) (err error) {
	filePtr, err := os.OpenFile(fileName, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		err = fmt.Errorf("error while open/create indices file: %s", err)
		return
	}
	defer func() { _ = filePtr.Close() }()

	writer := bufio.NewWriterSize(filePtr, writeBufferSize)

	buf := make([]byte, conf.IndexElementSize)
	written := uint32(0)
	for ; written+conf.IndexElementSize <= size; written += conf.IndexElementSize {
		binary.LittleEndian.PutUint32(buf, rnd.Uint32())
		_, err = writer.Write(buf)
		if err != nil {
			err = fmt.Errorf("error while writing to indices file: %s", err)
			return
		}
	}

	// A size below entry width still has to land on disk byte exact
	if rem := size - written; rem > 0 {
		binary.LittleEndian.PutUint32(buf, rnd.Uint32())
		_, err = writer.Write(buf[:rem])
		if err != nil {
			err = fmt.Errorf("error while writing to indices file: %s", err)
			return
		}
	}

	err = writer.Flush()
	if err != nil {
		err = fmt.Errorf("error while flushing indices file: %s", err)
	}

	return
}

// writeTable - Writes size bytes of pseudo random little endian 16 bit elements to fileName
func writeTable(fileName string, size uint32, rnd *rand.Rand) (err error) {
	filePtr, err := os.OpenFile(fileName, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		err = fmt.Errorf("error while open/create table file: %s", err)
		return
	}
	defer func() { _ = filePtr.Close() }()

	writer := bufio.NewWriterSize(filePtr, writeBufferSize)

	buf := make([]byte, conf.TableElementSize)
	written := uint32(0)
	for ; written+conf.TableElementSize <= size; written += conf.TableElementSize {
		binary.LittleEndian.PutUint16(buf, uint16(rnd.Uint32()))
		_, err = writer.Write(buf)
		if err != nil {
			err = fmt.Errorf("error while writing to table file: %s", err)
			return
		}
	}

	if rem := size - written; rem > 0 {
		binary.LittleEndian.PutUint16(buf, uint16(rnd.Uint32()))
		_, err = writer.Write(buf[:rem])
		if err != nil {
			err = fmt.Errorf("error while writing to table file: %s", err)
			return
		}
	}

	err = writer.Flush()
	if err != nil {
		err = fmt.Errorf("error while flushing table file: %s", err)
	}

	return
}
