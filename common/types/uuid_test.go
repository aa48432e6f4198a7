package types

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDToIntArray(t *testing.T) {
	u, err := uuid.Parse("6536bfed-8695-48fd-83a1-ecd24cf2a0fd")
	require.NoError(t, err)

	assert.Equal(t,
		[4]uint32{0x6536bfed, 0x869548fd, 0x83a1ecd2, 0x4cf2a0fd},
		UUIDToIntArray(u))
}

func TestUUIDFromIntArray(t *testing.T) {
	u := UUIDFromIntArray([4]uint32{0x6536bfed, 0x869548fd, 0x83a1ecd2, 0x4cf2a0fd})
	assert.Equal(t, "6536bfed-8695-48fd-83a1-ecd24cf2a0fd", u.String())
}

func TestUUIDIntArrayRoundTrip(t *testing.T) {
	var zero uuid.UUID
	var ones uuid.UUID
	for i := range ones {
		ones[i] = 0xff
	}

	for _, u := range []uuid.UUID{zero, ones, uuid.New(), uuid.New()} {
		assert.Equal(t, u, UUIDFromIntArray(UUIDToIntArray(u)))
	}
}
