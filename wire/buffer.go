package wire

import (
	"encoding/binary"
	"math"

	"github.com/Tnze/go-mc/nbt"
	"github.com/pkg/errors"

	"github.com/craftlabs/go-craft/common/types"
)

// MaxStringLength is the protocol-wide maximum encoded byte length of a
// string field.
const MaxStringLength = 32767

// maxVarIntBytes is the longest VarInt encoding of a 32-bit value.
const maxVarIntBytes = 5

var (
	ErrStringTooLong = errors.New("string is too long")
	ErrVarIntTooBig  = errors.New("varint is longer than 5 bytes")
)

// Buffer accumulates the wire form of one packet. It is append-only and
// exclusively owned by the caller building the packet; once complete the
// bytes are handed to the transport and the buffer is discarded.
//
// All integer fields are big-endian. Every length prefix is a VarInt
// placed immediately before its payload.
type Buffer struct {
	buf []byte
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

// Bytes returns the accumulated wire form.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

func (b *Buffer) Len() int {
	return len(b.buf)
}

func (b *Buffer) WriteByte(n byte) error {
	b.buf = append(b.buf, n)
	return nil
}

// WriteBytes appends raw bytes verbatim, with no length prefix. Used for
// "rest of packet" payloads; length-prefixed blobs go through
// WriteByteArray instead.
func (b *Buffer) WriteBytes(p []byte) error {
	b.buf = append(b.buf, p...)
	return nil
}

// WriteVarInt encodes n as 1 to 5 bytes of 7 payload bits each, high bit
// set while more bytes follow. The shift between groups is logical over
// the 32-bit pattern, so negative inputs always take the full 5 bytes.
func (b *Buffer) WriteVarInt(n int32) error {
	v := uint32(n)
	if v == 0 {
		b.buf = append(b.buf, 0)
		return nil
	}
	for v != 0 {
		c := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			c |= 0x80
		}
		b.buf = append(b.buf, c)
	}
	return nil
}

func (b *Buffer) WriteShort(n int16) error {
	b.buf = binary.BigEndian.AppendUint16(b.buf, uint16(n))
	return nil
}

func (b *Buffer) WriteInt(n int32) error {
	b.buf = binary.BigEndian.AppendUint32(b.buf, uint32(n))
	return nil
}

func (b *Buffer) WriteLong(n int64) error {
	b.buf = binary.BigEndian.AppendUint64(b.buf, uint64(n))
	return nil
}

func (b *Buffer) WriteFloat(n float32) error {
	b.buf = binary.BigEndian.AppendUint32(b.buf, math.Float32bits(n))
	return nil
}

func (b *Buffer) WriteBoolean(v bool) error {
	if v {
		return b.WriteByte(1)
	}
	return b.WriteByte(0)
}

// WriteUtf appends a VarInt byte-length prefix followed by the UTF-8
// bytes of s, subject to the protocol-wide maximum string length.
func (b *Buffer) WriteUtf(s string) error {
	return b.WriteUtfWithLimit(s, MaxStringLength)
}

// WriteUtfWithLimit is WriteUtf with an explicit byte limit. An oversized
// string is reported as an error before anything is appended, so the
// buffer never holds partial output.
func (b *Buffer) WriteUtfWithLimit(s string, maxBytes int) error {
	if len(s) > maxBytes {
		return errors.Wrapf(ErrStringTooLong, "%d bytes encoded, max %d", len(s), maxBytes)
	}
	_ = b.WriteVarInt(int32(len(s)))
	return b.WriteBytes([]byte(s))
}

// WriteByteArray appends a VarInt length prefix followed by the raw bytes.
func (b *Buffer) WriteByteArray(p []byte) error {
	_ = b.WriteVarInt(int32(len(p)))
	return b.WriteBytes(p)
}

// WriteResourceLocation appends the identifier's canonical string form.
func (b *Buffer) WriteResourceLocation(rl types.ResourceLocation) error {
	return b.WriteUtf(rl.String())
}

// WriteTag delegates to the NBT codec and appends the encoded tag. A
// failure from the tag codec is wrapped and propagated, never dropped.
func (b *Buffer) WriteTag(tag interface{}) error {
	data, err := nbt.Marshal(tag)
	if err != nil {
		return errors.Wrap(err, "encode nbt tag")
	}
	return b.WriteBytes(data)
}
