package wire

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
)

var varIntVectors = []struct {
	value int32
	bytes []byte
}{
	{0, []byte{0x00}},
	{1, []byte{0x01}},
	{2, []byte{0x02}},
	{127, []byte{0x7f}},
	{128, []byte{0x80, 0x01}},
	{255, []byte{0xff, 0x01}},
	{300, []byte{0xac, 0x02}},
	{25565, []byte{0xdd, 0xc7, 0x01}},
	{2097151, []byte{0xff, 0xff, 0x7f}},
	{2147483647, []byte{0xff, 0xff, 0xff, 0xff, 0x07}},
	{-1, []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
	{-2147483648, []byte{0x80, 0x80, 0x80, 0x80, 0x08}},
}

func TestWriteVarInt(t *testing.T) {
	for _, v := range varIntVectors {
		b := NewBuffer()
		if err := b.WriteVarInt(v.value); err != nil {
			t.Fatalf("write %d: %v", v.value, err)
		}
		if !bytes.Equal(b.Bytes(), v.bytes) {
			t.Fatalf("%d should encode as % x, not % x", v.value, v.bytes, b.Bytes())
		}
	}
}

func TestVarIntRoundTrip(t *testing.T) {
	for offset := uint(0); offset < 32; offset++ {
		for _, delta := range []int32{-1, 0, 1} {
			n := int32(uint32(1)<<offset) + delta

			b := NewBuffer()
			_ = b.WriteVarInt(n)
			if b.Len() > 5 {
				t.Fatalf("%d encoded as %d bytes, max 5", n, b.Len())
			}

			got, err := NewReader(b.Bytes()).ReadVarInt()
			if err != nil {
				t.Fatalf("read back %d: %v", n, err)
			}
			if got != n {
				t.Fatalf("put %d, but got %d", n, got)
			}
		}
	}
}

func TestVarIntSingleByteRange(t *testing.T) {
	for n := int32(0); n <= 127; n++ {
		b := NewBuffer()
		_ = b.WriteVarInt(n)
		if b.Len() != 1 {
			t.Fatalf("%d should be 1 byte, not %d bytes", n, b.Len())
		}
	}
}

func TestWriteFixedWidth(t *testing.T) {
	b := NewBuffer()
	_ = b.WriteShort(-2)
	_ = b.WriteInt(0x01020304)
	_ = b.WriteLong(0x0102030405060708)
	_ = b.WriteFloat(1.0)

	want := []byte{
		0xff, 0xfe,
		0x01, 0x02, 0x03, 0x04,
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
		0x3f, 0x80, 0x00, 0x00,
	}
	if !bytes.Equal(b.Bytes(), want) {
		t.Fatalf("fixed-width fields should encode as % x, not % x", want, b.Bytes())
	}
}

func TestWriteBoolean(t *testing.T) {
	b := NewBuffer()
	_ = b.WriteBoolean(true)
	_ = b.WriteBoolean(false)
	if !bytes.Equal(b.Bytes(), []byte{0x01, 0x00}) {
		t.Fatalf("booleans should encode as 01 00, not % x", b.Bytes())
	}
}

func TestWriteUtf(t *testing.T) {
	b := NewBuffer()
	if err := b.WriteUtf("A"); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b.Bytes(), []byte{0x01, 0x41}) {
		t.Fatalf(`"A" should encode as 01 41, not % x`, b.Bytes())
	}
}

func TestWriteUtfTooLong(t *testing.T) {
	b := NewBuffer()
	err := b.WriteUtfWithLimit("hello", 4)
	if !errors.Is(err, ErrStringTooLong) {
		t.Fatalf("want ErrStringTooLong, got %v", err)
	}
	if b.Len() != 0 {
		t.Fatalf("oversize string must not leave partial output, buffer has % x", b.Bytes())
	}
}

func TestWriteByteArray(t *testing.T) {
	b := NewBuffer()
	_ = b.WriteByteArray([]byte{0xde, 0xad})
	if !bytes.Equal(b.Bytes(), []byte{0x02, 0xde, 0xad}) {
		t.Fatalf("byte array should encode as 02 de ad, not % x", b.Bytes())
	}

	// raw append carries no prefix
	b = NewBuffer()
	_ = b.WriteBytes([]byte{0xde, 0xad})
	if !bytes.Equal(b.Bytes(), []byte{0xde, 0xad}) {
		t.Fatalf("raw bytes should encode as de ad, not % x", b.Bytes())
	}
}

func TestWriteList(t *testing.T) {
	b := NewBuffer()
	err := WriteList(b, []int32{7, 9}, func(b *Buffer, n int32) error {
		return b.WriteVarInt(n)
	})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b.Bytes(), []byte{0x02, 0x07, 0x09}) {
		t.Fatalf("list should encode as 02 07 09, not % x", b.Bytes())
	}
}

func TestWriteIntIDList(t *testing.T) {
	b := NewBuffer()
	if err := WriteIntIDList(b, []int32{1, 2, 300}); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b.Bytes(), []byte{0x03, 0x01, 0x02, 0xac, 0x02}) {
		t.Fatalf("id list encoded as % x", b.Bytes())
	}
}

func TestWriteMap(t *testing.T) {
	b := NewBuffer()
	pairs := []Pair[int32, string]{{Key: 1, Value: "a"}}
	err := WriteMap(b, pairs,
		func(b *Buffer, k int32) error { return b.WriteVarInt(k) },
		func(b *Buffer, v string) error { return b.WriteUtf(v) },
	)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b.Bytes(), []byte{0x01, 0x01, 0x01, 0x61}) {
		t.Fatalf("map should encode as 01 01 01 61, not % x", b.Bytes())
	}
}

func TestWriteMapPreservesOrder(t *testing.T) {
	b := NewBuffer()
	pairs := []Pair[int32, int32]{{Key: 2, Value: 20}, {Key: 1, Value: 10}}
	err := WriteMap(b, pairs,
		func(b *Buffer, k int32) error { return b.WriteVarInt(k) },
		func(b *Buffer, v int32) error { return b.WriteVarInt(v) },
	)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b.Bytes(), []byte{0x02, 0x02, 0x14, 0x01, 0x0a}) {
		t.Fatalf("pair order must equal input order, got % x", b.Bytes())
	}
}
