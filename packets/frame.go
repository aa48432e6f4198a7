package packets

import (
	"io"

	"github.com/inconshreveable/log15"
	"github.com/pkg/errors"

	"github.com/craftlabs/go-craft/wire"
)

// maxFrameSize bounds one packet frame: three VarInt length bytes.
const maxFrameSize = 1<<21 - 1

var (
	errFrameTooLarge = errors.New("packet frame is too large")
	ErrUnknownCode   = errors.New("unknown packet code")
)

var log = log15.New("module", "packets")

// WriteFrame emits one packet frame: a VarInt byte length covering code
// and body, the VarInt packet code, then the body. Compression and
// encryption, when active, are applied by the transport to the frame
// bytes, not here.
func WriteFrame(w io.Writer, p Packet) error {
	body, err := p.Serialize()
	if err != nil {
		return errors.Wrapf(err, "serialize %s packet", p.Code())
	}

	head := wire.NewBuffer()
	_ = head.WriteVarInt(int32(p.Code()))
	total := head.Len() + len(body)
	if total > maxFrameSize {
		return errors.Wrapf(errFrameTooLarge, "%d bytes, max %d", total, maxFrameSize)
	}

	frame := wire.NewBuffer()
	_ = frame.WriteVarInt(int32(total))
	_ = frame.WriteBytes(head.Bytes())
	_ = frame.WriteBytes(body)

	_, err = w.Write(frame.Bytes())
	return err
}

// ReadFrame reads one packet frame and decodes it through newPacket,
// which maps a code to an empty packet of that kind (nil for codes the
// caller does not handle).
func ReadFrame(r io.Reader, newPacket func(Code) Packet) (Packet, error) {
	total, err := readVarIntFrom(r)
	if err != nil {
		return nil, err
	}
	if total < 0 || total > maxFrameSize {
		return nil, errors.Wrapf(errFrameTooLarge, "%d bytes, max %d", total, maxFrameSize)
	}

	frame := make([]byte, total)
	if _, err = io.ReadFull(r, frame); err != nil {
		return nil, err
	}

	fr := wire.NewReader(frame)
	code, err := fr.ReadVarInt()
	if err != nil {
		return nil, err
	}

	p := newPacket(Code(code))
	if p == nil {
		log.Debug("dropping packet with unknown code", "code", code)
		return nil, errors.Wrapf(ErrUnknownCode, "code %d", code)
	}

	if err = p.Deserialize(fr.ReadRemaining()); err != nil {
		return nil, errors.Wrapf(err, "deserialize %s packet", p.Code())
	}
	return p, nil
}

// readVarIntFrom decodes a VarInt directly off the stream, one byte at a
// time, with the same 5-byte bound as the in-memory reader.
func readVarIntFrom(r io.Reader) (int32, error) {
	var v uint32
	buf := make([]byte, 1)
	for i := 0; i < 5; i++ {
		if _, err := io.ReadFull(r, buf); err != nil {
			return 0, err
		}
		v |= uint32(buf[0]&0x7f) << (7 * uint(i))
		if buf[0]&0x80 == 0 {
			return int32(v), nil
		}
	}
	return 0, wire.ErrVarIntTooBig
}
