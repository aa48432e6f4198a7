package wire

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/Tnze/go-mc/nbt"
	"github.com/pkg/errors"

	"github.com/craftlabs/go-craft/common/types"
)

// Reader consumes the wire form of one packet. It is the literal inverse
// of Buffer: every Read accepts exactly the bytes the matching Write
// produces, with identical VarInt semantics and length-prefix placement.
type Reader struct {
	buf []byte
	off int
}

func NewReader(data []byte) *Reader {
	return &Reader{buf: data}
}

// Remaining reports how many bytes are left unread.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.off
}

func (r *Reader) ReadByte() (byte, error) {
	if r.off >= len(r.buf) {
		return 0, io.ErrUnexpectedEOF
	}
	c := r.buf[r.off]
	r.off++
	return c, nil
}

// ReadBytes returns the next n raw bytes. The returned slice aliases the
// reader's backing buffer.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, errors.Errorf("negative byte count %d", n)
	}
	if r.Remaining() < n {
		return nil, io.ErrUnexpectedEOF
	}
	p := r.buf[r.off : r.off+n]
	r.off += n
	return p, nil
}

// ReadRemaining consumes the rest of the packet as a raw payload.
func (r *Reader) ReadRemaining() []byte {
	p := r.buf[r.off:]
	r.off = len(r.buf)
	return p
}

// Read implements io.Reader so delegated codecs can consume the stream
// directly.
func (r *Reader) Read(p []byte) (int, error) {
	if r.off >= len(r.buf) {
		return 0, io.EOF
	}
	n := copy(p, r.buf[r.off:])
	r.off += n
	return n, nil
}

// ReadVarInt decodes 1 to 5 bytes of 7 payload bits each, low group first,
// into the 32-bit pattern the writer encoded.
func (r *Reader) ReadVarInt() (int32, error) {
	var v uint32
	for i := 0; i < maxVarIntBytes; i++ {
		c, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		v |= uint32(c&0x7f) << (7 * uint(i))
		if c&0x80 == 0 {
			return int32(v), nil
		}
	}
	return 0, ErrVarIntTooBig
}

func (r *Reader) ReadShort() (int16, error) {
	p, err := r.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(p)), nil
}

func (r *Reader) ReadInt() (int32, error) {
	p, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(p)), nil
}

func (r *Reader) ReadLong() (int64, error) {
	p, err := r.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(p)), nil
}

func (r *Reader) ReadFloat() (float32, error) {
	p, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.BigEndian.Uint32(p)), nil
}

func (r *Reader) ReadBoolean() (bool, error) {
	c, err := r.ReadByte()
	if err != nil {
		return false, err
	}
	return c != 0, nil
}

func (r *Reader) ReadUtf() (string, error) {
	return r.ReadUtfWithLimit(MaxStringLength)
}

func (r *Reader) ReadUtfWithLimit(maxBytes int) (string, error) {
	n, err := r.ReadVarInt()
	if err != nil {
		return "", err
	}
	if n < 0 {
		return "", errors.Errorf("negative string length %d", n)
	}
	if int(n) > maxBytes {
		return "", errors.Wrapf(ErrStringTooLong, "%d bytes encoded, max %d", n, maxBytes)
	}
	p, err := r.ReadBytes(int(n))
	if err != nil {
		return "", err
	}
	return string(p), nil
}

func (r *Reader) ReadByteArray() ([]byte, error) {
	n, err := r.ReadVarInt()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, errors.Errorf("negative byte array length %d", n)
	}
	return r.ReadBytes(int(n))
}

func (r *Reader) ReadResourceLocation() (types.ResourceLocation, error) {
	s, err := r.ReadUtf()
	if err != nil {
		return types.ResourceLocation{}, err
	}
	return types.ParseResourceLocation(s)
}

// ReadTag delegates to the NBT codec, which consumes exactly one tag from
// the stream, and returns the tag's name.
func (r *Reader) ReadTag(v interface{}) (string, error) {
	name, err := nbt.NewDecoder(r).Decode(v)
	if err != nil {
		return "", errors.Wrap(err, "decode nbt tag")
	}
	return name, nil
}
