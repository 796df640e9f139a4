package posting

// BlockSize is the maximum number of bytes a single .bin file may hold
// before the writer rolls over to the next numbered file in the shard.
const BlockSize = 1_999_998

// Segment identifies a contiguous run of encoded postings: the file
// that holds them and the byte offset within that file where the run
// begins. Concatenating the bytes of each segment of a term, in order,
// reconstructs its posting list.
type Segment struct {
	File   string
	Offset uint64
}

// FileName returns the on-disk name for block index within shardID,
// following the "{shard_id}_{block:03d}.bin" convention.
func FileName(shardID, block int) string {
	return fmtShardBlock(shardID, block)
}
