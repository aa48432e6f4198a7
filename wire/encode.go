package wire

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/craftlabs/go-craft/common/types"
)

// ErrUnsupportedType marks a value type whose wire encoding is not
// defined yet. Encoding must stop there instead of emitting wrong bytes.
var ErrUnsupportedType = errors.New("type has no wire encoding")

// Each supported type gets exactly one canonical encoding, defined by the
// function below bearing its name. Integer types additionally get a
// compact VarInt form (the WriteVar* functions) that a packet field opts
// into; everything else has a single form.

func WriteBool(b *Buffer, v bool) error {
	return b.WriteBoolean(v)
}

func WriteUint8(b *Buffer, v uint8) error {
	return b.WriteByte(v)
}

func WriteInt8(b *Buffer, v int8) error {
	return b.WriteByte(uint8(v))
}

func WriteInt16(b *Buffer, v int16) error {
	return b.WriteShort(v)
}

// WriteUint16 reinterprets the bit pattern as int16; the two-byte
// big-endian form is identical.
func WriteUint16(b *Buffer, v uint16) error {
	return b.WriteShort(int16(v))
}

func WriteInt32(b *Buffer, v int32) error {
	return b.WriteInt(v)
}

func WriteUint32(b *Buffer, v uint32) error {
	return b.WriteInt(int32(v))
}

func WriteInt64(b *Buffer, v int64) error {
	return b.WriteLong(v)
}

func WriteUint64(b *Buffer, v uint64) error {
	return b.WriteLong(int64(v))
}

func WriteFloat32(b *Buffer, v float32) error {
	return b.WriteFloat(v)
}

func WriteVarInt32(b *Buffer, v int32) error {
	return b.WriteVarInt(v)
}

func WriteVarUint32(b *Buffer, v uint32) error {
	return b.WriteVarInt(int32(v))
}

func WriteVarUint16(b *Buffer, v uint16) error {
	return b.WriteVarInt(int32(v))
}

func WriteString(b *Buffer, v string) error {
	return b.WriteUtf(v)
}

func WriteResourceLocation(b *Buffer, v types.ResourceLocation) error {
	return b.WriteResourceLocation(v)
}

func WriteResourceLocationList(b *Buffer, v []types.ResourceLocation) error {
	return WriteList(b, v, WriteResourceLocation)
}

// WriteGameType encodes the mode's stable one-byte id.
func WriteGameType(b *Buffer, v types.GameType) error {
	return b.WriteByte(v.ID())
}

// WriteOptionalGameType encodes into the same id space as WriteGameType,
// with the reserved sentinel id standing in for "unset".
func WriteOptionalGameType(b *Buffer, v *types.GameType) error {
	return b.WriteByte(uint8(types.OptionalGameTypeID(v)))
}

func WriteDifficulty(b *Buffer, v types.Difficulty) error {
	return b.WriteByte(v.ID())
}

// WriteUUID encodes the identifier as four big-endian 32-bit words, most
// significant first.
func WriteUUID(b *Buffer, v uuid.UUID) error {
	for _, word := range types.UUIDToIntArray(v) {
		if err := b.WriteInt(int32(word)); err != nil {
			return err
		}
	}
	return nil
}

func WriteTag(b *Buffer, tag interface{}) error {
	return b.WriteTag(tag)
}

// WriteComponent fails until the rich text encoding is wired up.
func WriteComponent(b *Buffer, v types.Component) error {
	return errors.Wrap(ErrUnsupportedType, "chat component")
}
