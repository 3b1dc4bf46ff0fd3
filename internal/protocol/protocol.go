// Package protocol holds the fixed 64-byte packet framing and the wire
// constants understood by Riing family controllers.
package protocol

// TransferLength is the size of every bulk transfer, in both directions.
// The controller ignores anything shorter and rejects anything longer, so
// payloads are always zero-padded up to this length before hitting the wire.
const TransferLength = 64

// Known command prefixes. The remainder of each packet is zero padding.
var (
	// CommandInit resets the controller into a known state after open.
	CommandInit = []byte{0xfe, 0x33}
	// CommandSaveProfile persists the active configuration to NVRAM.
	CommandSaveProfile = []byte{0x32, 0x53}
	// CommandSetLighting prefixes every lighting packet; it is followed by
	// the port number, mode+speed byte and an optional GRB value array.
	CommandSetLighting = []byte{0x32, 0x52}
)

// Lighting mode bytes. These are opaque hardware constants; modes that take
// a speed have it added onto the mode byte when the packet is framed.
const (
	ModeFlow     byte = 0x00
	ModeSpectrum byte = 0x04
	ModeRipple   byte = 0x08
	ModeBlink    byte = 0x0c
	ModePulse    byte = 0x10
	ModeWave     byte = 0x14 // reserved, unusable (see effects.Wave)
	ModeFull     byte = 0x19
)

// Speed bytes, added to the mode byte for the animated hardware modes.
const (
	SpeedSlow    byte = 0x00
	SpeedNormal  byte = 0x01
	SpeedFast    byte = 0x02
	SpeedExtreme byte = 0x03
)

// Pad returns a fresh TransferLength-sized packet with data copied in and
// the tail zeroed. Callers must not hand it more than TransferLength bytes;
// the driver enforces (and silently drops on) overflow.
func Pad(data []byte) []byte {
	buf := make([]byte, TransferLength)
	copy(buf, data)
	return buf
}
