//go:build unit

package file

import (
	"bufio"
	"encoding/binary"
	"github.com/dusancerhaty/fsm-table-access-simd/internal/conf"
	"github.com/stretchr/testify/assert"
	"os"
	"path/filepath"
	"testing"
)

const testLocation string = "unittest_data"

func TestReadIndices(t *testing.T) {
	t.Run("reads indices from file", func(t *testing.T) {
		// Prepare
		err := os.MkdirAll(testLocation, 0755)
		assert.NoError(t, err, "create test location")

		expected := []uint32{10, 20, 0x68E1A1AB, 0xFFFFFFFF, 0, 1, 2, 3}
		buf := make([]byte, len(expected)*4)
		for i, v := range expected {
			binary.LittleEndian.PutUint32(buf[i*4:], v)
		}
		err = os.WriteFile(filepath.Join(testLocation, conf.FileWithIndices), buf, 0644)
		assert.NoError(t, err, "write indices file")

		// Execute
		indices, err := ReadIndices(testLocation, 32)

		// Check
		assert.NoError(t, err, "reads indices from file")
		assert.Equal(t, expected, indices, "correct entries in correct order")

		// Clean up
		err = os.RemoveAll(testLocation)
		assert.NoError(t, err, "remove test location")
	})

	t.Run("reads only requested size from larger file", func(t *testing.T) {
		// Prepare
		err := os.MkdirAll(testLocation, 0755)
		assert.NoError(t, err, "create test location")

		buf := make([]byte, 64)
		for i := 0; i < 16; i++ {
			binary.LittleEndian.PutUint32(buf[i*4:], uint32(i))
		}
		err = os.WriteFile(filepath.Join(testLocation, conf.FileWithIndices), buf, 0644)
		assert.NoError(t, err, "write indices file")

		// Execute
		indices, err := ReadIndices(testLocation, 32)

		// Check
		assert.NoError(t, err, "reads indices from file")
		assert.Equal(t, 8, len(indices), "correct number of entries")
		assert.Equal(t, uint32(7), indices[7], "last entry from requested range")

		// Clean up
		err = os.RemoveAll(testLocation)
		assert.NoError(t, err, "remove test location")
	})

	t.Run("reads a file spanning several chunks", func(t *testing.T) {
		// Prepare
		err := os.MkdirAll(testLocation, 0755)
		assert.NoError(t, err, "create test location")

		size := readChunkSize * 2
		f, err := os.OpenFile(filepath.Join(testLocation, conf.FileWithIndices), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
		assert.NoError(t, err, "open/create indices file")

		writer := bufio.NewWriterSize(f, 1024*1024)
		buf := make([]byte, 4)
		for i := uint32(0); i < size/4; i++ {
			binary.LittleEndian.PutUint32(buf, i*2654435761)
			if _, err = writer.Write(buf); err != nil {
				break
			}
		}
		assert.NoError(t, err, "write entries")
		err = writer.Flush()
		assert.NoError(t, err, "flush indices file")
		_ = f.Close()

		// Execute
		indices, err := ReadIndices(testLocation, size)

		// Check
		assert.NoError(t, err, "reads indices from file")
		assert.Equal(t, int(size/4), len(indices), "correct number of entries")

		boundary := readChunkSize / 4
		assert.Equal(t, uint32(0), indices[0], "first entry correct")
		assert.Equal(t, (boundary-1)*2654435761, indices[boundary-1], "entry before chunk boundary correct")
		assert.Equal(t, boundary*2654435761, indices[boundary], "entry after chunk boundary correct")
		assert.Equal(t, (size/4-1)*2654435761, indices[size/4-1], "last entry correct")

		// Clean up
		err = os.RemoveAll(testLocation)
		assert.NoError(t, err, "remove test location")
	})

	t.Run("missing file gives error", func(t *testing.T) {
		// Prepare
		err := os.MkdirAll(testLocation, 0755)
		assert.NoError(t, err, "create test location")

		// Execute
		indices, err := ReadIndices(testLocation, 32)

		// Check
		assert.Error(t, err, "missing file gives error")
		assert.Nil(t, indices, "no indices returned")

		// Clean up
		err = os.RemoveAll(testLocation)
		assert.NoError(t, err, "remove test location")
	})

	t.Run("undersized file gives error", func(t *testing.T) {
		// Prepare
		err := os.MkdirAll(testLocation, 0755)
		assert.NoError(t, err, "create test location")

		err = os.WriteFile(filepath.Join(testLocation, conf.FileWithIndices), make([]byte, 16), 0644)
		assert.NoError(t, err, "write indices file")

		// Execute
		indices, err := ReadIndices(testLocation, 32)

		// Check
		assert.Error(t, err, "undersized file gives error")
		assert.Nil(t, indices, "no indices returned")

		// Clean up
		err = os.RemoveAll(testLocation)
		assert.NoError(t, err, "remove test location")
	})
}

func TestReadTable(t *testing.T) {
	t.Run("reads table from file", func(t *testing.T) {
		// Prepare
		err := os.MkdirAll(testLocation, 0755)
		assert.NoError(t, err, "create test location")

		expected := []uint16{0x68E1, 0xA1AB, 0, 0xFFFF, 1, 2, 3, 4}
		buf := make([]byte, len(expected)*2)
		for i, v := range expected {
			binary.LittleEndian.PutUint16(buf[i*2:], v)
		}
		err = os.WriteFile(filepath.Join(testLocation, conf.FileWithTable), buf, 0644)
		assert.NoError(t, err, "write table file")

		// Execute
		table, err := ReadTable(testLocation, 16)

		// Check
		assert.NoError(t, err, "reads table from file")
		assert.Equal(t, expected, table, "correct elements in correct order")

		// Clean up
		err = os.RemoveAll(testLocation)
		assert.NoError(t, err, "remove test location")
	})

	t.Run("missing file gives error", func(t *testing.T) {
		// Prepare
		err := os.MkdirAll(testLocation, 0755)
		assert.NoError(t, err, "create test location")

		// Execute
		table, err := ReadTable(testLocation, 16)

		// Check
		assert.Error(t, err, "missing file gives error")
		assert.Nil(t, table, "no table returned")

		// Clean up
		err = os.RemoveAll(testLocation)
		assert.NoError(t, err, "remove test location")
	})

	t.Run("undersized file gives error", func(t *testing.T) {
		// Prepare
		err := os.MkdirAll(testLocation, 0755)
		assert.NoError(t, err, "create test location")

		err = os.WriteFile(filepath.Join(testLocation, conf.FileWithTable), make([]byte, 8), 0644)
		assert.NoError(t, err, "write table file")

		// Execute
		table, err := ReadTable(testLocation, 16)

		// Check
		assert.Error(t, err, "undersized file gives error")
		assert.Nil(t, table, "no table returned")

		// Clean up
		err = os.RemoveAll(testLocation)
		assert.NoError(t, err, "remove test location")
	})
}
