package conf

// IndicesBufferSizeMax - Upper bound in bytes for the buffer holding table indices
const IndicesBufferSizeMax uint32 = 16 * 1024 * 1024

// IndicesBufferSizeDefault - Default size in bytes for the buffer holding table indices
const IndicesBufferSizeDefault uint32 = 512 * 1024

// TableBufferSizeMax - Upper bound in bytes for the buffer holding the lookup table
const TableBufferSizeMax uint32 = 1024 * 1024 * 1024

// TableBufferSizeDefault - Default size in bytes for the buffer holding the lookup table
const TableBufferSizeDefault uint32 = TableBufferSizeMax

// TableElementSize - Number of bytes per lookup table element
const TableElementSize uint32 = 2

// IndexElementSize - Number of bytes per index buffer entry
const IndexElementSize uint32 = 4

// TableXorVal - Seed for the four lane accumulators in the access loop
const TableXorVal uint16 = 26849

// TableAddVal - Mask folded into a lane accumulator after each table lookup
const TableAddVal uint16 = 41387

// IndexXorVal - Constant every index entry is scrambled with before addressing the table
const IndexXorVal uint32 = uint32(TableXorVal)<<16 | uint32(TableAddVal)

// FileWithIndices - Name of the input file holding the index buffer content
const FileWithIndices string = "indices.bin"

// FileWithTable - Name of the input file holding the lookup table content
const FileWithTable string = "table.bin"

// ThreadsMax - Hard upper bound on the number of workers a run will ever launch
const ThreadsMax uint32 = 256
