package file

import (
	"encoding/binary"
)

// bytesToIndices - Converts a chunk of raw little endian bytes to 32 bit index entries
func bytesToIndices(buf []byte, indices []uint32) {
	for i := 0; i+4 <= len(buf); i += 4 {
		indices[i/4] = binary.LittleEndian.Uint32(buf[i:])
	}
}

// bytesToTableElements - Converts a chunk of raw little endian bytes to 16 bit table elements
func bytesToTableElements(buf []byte, table []uint16) {
	for i := 0; i+2 <= len(buf); i += 2 {
		table[i/2] = binary.LittleEndian.Uint16(buf[i:])
	}
}
