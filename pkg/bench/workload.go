package bench

import (
	"math/rand"
	"slices"

	"github.com/KevoDB/cursor/pkg/algorithm"
	"github.com/KevoDB/cursor/pkg/config"
	"github.com/KevoDB/cursor/pkg/cursor"
)

// pass is one implementation of a workload. It runs against data it may
// modify and returns the checksum of its outcome and how many elements it
// visited.
type pass func(data []int) (sum uint64, visited int)

// cursorKind describes the adapter variant a workload's adapter pass uses
type cursorKind interface {
	Category() cursor.Category
	Mutable() bool
}

var (
	mutableInts  cursorKind = cursor.Adapter[int, *int]{}
	readOnlyInts cursorKind = cursor.Adapter[int, cursor.Const[int]]{}
)

// workload pairs the adapter and native implementations of one benchmark.
// prepare builds the input for a round; both passes receive their own copy.
type workload struct {
	name    string
	kind    cursorKind
	prepare func(rng *rand.Rand, size int) []int
	adapter pass
	native  pass
}

var workloads = map[string]workload{
	config.WorkloadSort: {
		name:    config.WorkloadSort,
		kind:    mutableInts,
		prepare: shuffledInts,
		adapter: func(data []int) (uint64, int) {
			algorithm.Sort(cursor.Make(cursor.Begin(data)), cursor.Make(cursor.End(data)), algorithm.Ascending[int])
			return Checksum(data), len(data)
		},
		native: func(data []int) (uint64, int) {
			slices.Sort(data)
			return Checksum(data), len(data)
		},
	},
	config.WorkloadDistance: {
		name:    config.WorkloadDistance,
		kind:    readOnlyInts,
		prepare: shuffledInts,
		adapter: func(data []int) (uint64, int) {
			first := cursor.MakeConst(cursor.Begin(data))
			last := cursor.MakeConst(cursor.End(data))
			total := 0
			for it := first; !it.Equal(last); it.Inc() {
				total += algorithm.Distance(it, last)
			}
			return checksumValue(total), len(data)
		},
		native: func(data []int) (uint64, int) {
			total := 0
			for i := range data {
				total += len(data) - i
			}
			return checksumValue(total), len(data)
		},
	},
	config.WorkloadSearch: {
		name:    config.WorkloadSearch,
		kind:    readOnlyInts,
		prepare: sortedInts,
		adapter: func(data []int) (uint64, int) {
			first := cursor.MakeConst(cursor.Begin(data))
			last := cursor.MakeConst(cursor.End(data))
			total := 0
			for probe := 0; probe < len(data); probe++ {
				total += algorithm.LowerBound(first, last, probe, algorithm.Ascending[int]).Offset()
			}
			return checksumValue(total), len(data)
		},
		native: func(data []int) (uint64, int) {
			total := 0
			for probe := 0; probe < len(data); probe++ {
				i, _ := slices.BinarySearch(data, probe)
				total += i
			}
			return checksumValue(total), len(data)
		},
	},
	config.WorkloadScan: {
		name:    config.WorkloadScan,
		kind:    readOnlyInts,
		prepare: shuffledInts,
		adapter: func(data []int) (uint64, int) {
			total := 0
			last := cursor.MakeConst(cursor.End(data))
			for it := cursor.MakeConst(cursor.Begin(data)); it.Less(last); it.Inc() {
				total += it.Get()
			}
			return checksumValue(total), len(data)
		},
		native: func(data []int) (uint64, int) {
			total := 0
			for _, v := range data {
				total += v
			}
			return checksumValue(total), len(data)
		},
	},
}

// shuffledInts returns a permutation of [0, size).
func shuffledInts(rng *rand.Rand, size int) []int {
	return rng.Perm(size)
}

// sortedInts returns size ascending values with gaps and duplicates.
func sortedInts(rng *rand.Rand, size int) []int {
	vec := make([]int, size)
	v := 0
	for i := range vec {
		v += rng.Intn(3)
		vec[i] = v
	}
	return vec
}
