package fragbuf

const (
	// DefaultFragmentSize is the capacity of the first fragment a growing
	// buffer allocates.
	DefaultFragmentSize = 512

	// MaxFragmentSize is the largest fragment capacity a growing buffer
	// allocates. Fragments adopted through FromBytes may be larger.
	MaxFragmentSize = 128 * 1024
)

// allocTable holds the fragment capacities a buffer walks through as it
// grows. Each entry is roughly 1.5x the previous one, computed as (3x+1)/2
// and capped at MaxFragmentSize, so a buffer reaches large fragments after a
// bounded number of small allocations without over-reserving for small
// payloads.
var allocTable = [...]int{
	512,
	768,
	1152,
	1728,
	2592,
	3888,
	5832,
	8748,
	13122,
	19683,
	29525,
	44288,
	66432,
	99648,
	131072,
}

// allocSizeAt returns the fragment capacity for the idx-th allocation of a
// buffer. Allocations past the end of the table stay at MaxFragmentSize.
func allocSizeAt(idx int) int {
	if idx >= len(allocTable) {
		return MaxFragmentSize
	}

	return allocTable[idx]
}

// AllocTable returns a copy of the fragment capacity growth table, from the
// first allocation of a buffer to the point the capacity saturates at
// MaxFragmentSize.
//
// The table is exposed so callers that exercise size-sensitive paths, such
// as round-trip harnesses, can target payload sizes that land exactly on
// fragment boundaries.
func AllocTable() []int {
	out := make([]int, len(allocTable))
	copy(out, allocTable[:])

	return out
}
