package types

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// UUIDToIntArray splits a 128-bit UUID into four big-endian 32-bit words:
// [mostHigh, mostLow, leastHigh, leastLow].
func UUIDToIntArray(u uuid.UUID) [4]uint32 {
	most := binary.BigEndian.Uint64(u[:8])
	least := binary.BigEndian.Uint64(u[8:])

	return [4]uint32{
		uint32(most >> 32),
		uint32(most),
		uint32(least >> 32),
		uint32(least),
	}
}

// UUIDFromIntArray is the inverse of UUIDToIntArray.
func UUIDFromIntArray(words [4]uint32) uuid.UUID {
	var u uuid.UUID
	binary.BigEndian.PutUint64(u[:8], uint64(words[0])<<32|uint64(words[1]))
	binary.BigEndian.PutUint64(u[8:], uint64(words[2])<<32|uint64(words[3]))
	return u
}
