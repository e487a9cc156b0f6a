/*
	Copyright (c) 2026 gdl90dec authors
	Distributable under the terms of The "BSD New" License
	that can be found in the LICENSE file.

	encode.go: framing (CRC append, byte-stuffing, flag delimiting) for
	messages sent back to a GDL 90, e.g. Initialization and Height Above
	Terrain
*/

package gdl90

// PrepareMessage appends the message's CRC, escapes flag and escape bytes,
// and wraps the result in flag bytes, producing a frame ready to write to
// a transport. data is the unframed id | body form, as returned by
// Initialization.ToBytes or HeightAboveTerrain.ToBytes.
func PrepareMessage(data []byte) []byte {
	crc := crcCompute(data)
	withCRC := make([]byte, len(data)+2)
	copy(withCRC, data)
	withCRC[len(data)] = byte(crc)
	withCRC[len(data)+1] = byte(crc >> 8)

	out := make([]byte, 0, 2+len(withCRC)*2)
	out = append(out, flagByte)
	for _, b := range withCRC {
		if b == flagByte || b == escapeByte {
			out = append(out, escapeByte, b^0x20)
		} else {
			out = append(out, b)
		}
	}
	out = append(out, flagByte)
	return out
}
