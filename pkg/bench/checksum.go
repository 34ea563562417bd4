package bench

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Checksum hashes the values of vec in order. Two slices have equal
// checksums when they hold the same values in the same order.
func Checksum(vec []int) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, v := range vec {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		d.Write(buf[:])
	}
	return d.Sum64()
}

// checksumValue folds a single scalar result into a checksum.
func checksumValue(v int) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	return xxhash.Sum64(buf[:])
}
