package packets

// Code identifies a packet kind within its protocol state.
type Code int32

// Clientbound login packet codes.
const (
	LoginDisconnectCode Code = iota
	HelloCode
	GameProfileCode
	LoginCompressionCode
	CustomQueryCode
)

var codeNames = [...]string{
	LoginDisconnectCode:  "LoginDisconnect",
	HelloCode:            "Hello",
	GameProfileCode:      "GameProfile",
	LoginCompressionCode: "LoginCompression",
	CustomQueryCode:      "CustomQuery",
}

func (c Code) String() string {
	if c < 0 || int(c) >= len(codeNames) {
		return "Unknown"
	}
	return codeNames[c]
}

// Packet is one protocol message. Serialize writes the declared fields in
// order with no padding between them; Deserialize accepts exactly the
// bytes Serialize produces.
type Packet interface {
	Code() Code
	Serialize() ([]byte, error)
	Deserialize(data []byte) error
}
