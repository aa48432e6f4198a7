package wire

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/craftlabs/go-craft/common/types"
)

// Read-side mirror of the encode dispatch: one function per supported
// type, accepting exactly the bytes its Write counterpart emits.

func ReadBool(r *Reader) (bool, error) {
	return r.ReadBoolean()
}

func ReadUint8(r *Reader) (uint8, error) {
	return r.ReadByte()
}

func ReadInt8(r *Reader) (int8, error) {
	c, err := r.ReadByte()
	return int8(c), err
}

func ReadInt16(r *Reader) (int16, error) {
	return r.ReadShort()
}

func ReadUint16(r *Reader) (uint16, error) {
	n, err := r.ReadShort()
	return uint16(n), err
}

func ReadInt32(r *Reader) (int32, error) {
	return r.ReadInt()
}

func ReadUint32(r *Reader) (uint32, error) {
	n, err := r.ReadInt()
	return uint32(n), err
}

func ReadInt64(r *Reader) (int64, error) {
	return r.ReadLong()
}

func ReadUint64(r *Reader) (uint64, error) {
	n, err := r.ReadLong()
	return uint64(n), err
}

func ReadFloat32(r *Reader) (float32, error) {
	return r.ReadFloat()
}

func ReadVarInt32(r *Reader) (int32, error) {
	return r.ReadVarInt()
}

func ReadVarUint32(r *Reader) (uint32, error) {
	n, err := r.ReadVarInt()
	return uint32(n), err
}

func ReadVarUint16(r *Reader) (uint16, error) {
	n, err := r.ReadVarInt()
	return uint16(n), err
}

func ReadString(r *Reader) (string, error) {
	return r.ReadUtf()
}

func ReadResourceLocation(r *Reader) (types.ResourceLocation, error) {
	return r.ReadResourceLocation()
}

func ReadResourceLocationList(r *Reader) ([]types.ResourceLocation, error) {
	return ReadList(r, func(r *Reader) (types.ResourceLocation, error) {
		return r.ReadResourceLocation()
	})
}

func ReadGameType(r *Reader) (types.GameType, error) {
	id, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	return types.GameTypeFromID(id)
}

func ReadOptionalGameType(r *Reader) (*types.GameType, error) {
	id, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	return types.OptionalGameTypeFromID(int8(id))
}

func ReadDifficulty(r *Reader) (types.Difficulty, error) {
	id, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	return types.DifficultyFromID(id)
}

func ReadUUID(r *Reader) (uuid.UUID, error) {
	var words [4]uint32
	for i := range words {
		n, err := r.ReadInt()
		if err != nil {
			return uuid.UUID{}, err
		}
		words[i] = uint32(n)
	}
	return types.UUIDFromIntArray(words), nil
}

// ReadComponent fails until the rich text encoding is wired up.
func ReadComponent(r *Reader) (types.Component, error) {
	return types.Component{}, errors.Wrap(ErrUnsupportedType, "chat component")
}
