package posting

import "strconv"

// fmtShardBlock renders the "{shard_id}_{block:03d}.bin" file name. The
// block index is zero-padded to 3 digits to match existing artifacts'
// naming, though nothing besides string equality depends on the width:
// callers should treat file names as opaque keys once a descriptor has
// been loaded.
func fmtShardBlock(shardID, block int) string {
	b := strconv.Itoa(block)
	for len(b) < 3 {
		b = "0" + b
	}
	return strconv.Itoa(shardID) + "_" + b + ".bin"
}

// PostingLocsFileName returns the companion posting_locs blob name for
// a shard.
func PostingLocsFileName(shardID int) string {
	return strconv.Itoa(shardID) + "_posting_locs.pickle"
}
