package packets

import (
	"github.com/craftlabs/go-craft/common/types"
	"github.com/craftlabs/go-craft/wire"
)

// ClientboundCustomQuery asks the client to answer a plugin channel query
// during login. The transaction id travels in compact form; Data is the
// unframed remainder of the packet.
type ClientboundCustomQuery struct {
	TransactionID uint32
	Identifier    types.ResourceLocation
	Data          []byte
}

func (p *ClientboundCustomQuery) Code() Code {
	return CustomQueryCode
}

func (p *ClientboundCustomQuery) Serialize() ([]byte, error) {
	b := wire.NewBuffer()
	if err := wire.WriteVarUint32(b, p.TransactionID); err != nil {
		return nil, err
	}
	if err := wire.WriteResourceLocation(b, p.Identifier); err != nil {
		return nil, err
	}
	if err := b.WriteBytes(p.Data); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func (p *ClientboundCustomQuery) Deserialize(data []byte) error {
	r := wire.NewReader(data)

	id, err := wire.ReadVarUint32(r)
	if err != nil {
		return err
	}
	identifier, err := wire.ReadResourceLocation(r)
	if err != nil {
		return err
	}

	p.TransactionID = id
	p.Identifier = identifier
	p.Data = r.ReadRemaining()
	return nil
}
