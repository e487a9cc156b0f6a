package gdl90

import "testing"

func TestPrepareMessageStuffsFlagAndEscapeBytes(t *testing.T) {
	// Body bytes equal to the flag or escape byte must be stuffed, and
	// unescaping must restore them unchanged.
	data := []byte{byte(MessageIDInitialization), 0x7e, 0x7d}
	framed := PrepareMessage(data)

	if framed[0] != flagByte || framed[len(framed)-1] != flagByte {
		t.Fatal("PrepareMessage must wrap the frame in flag bytes")
	}

	unescaped, ok := unescapeFrame(framed)
	if !ok {
		t.Fatal("unescapeFrame failed to invert PrepareMessage's stuffing")
	}
	if validateCRC(unescaped) != CRCResultOK {
		t.Fatal("validateCRC failed on a freshly prepared message")
	}
	if unescaped[1] != 0x7e || unescaped[2] != 0x7d {
		t.Fatalf("unescaped body = % x, want the original 0x7e 0x7d bytes preserved", unescaped[:3])
	}
}

func TestPrepareMessageLengthWithoutStuffedBytes(t *testing.T) {
	data := []byte{byte(MessageIDHeightAboveTerrain), 0x00, 0x00}
	framed := PrepareMessage(data)
	// id + body(2) + crc(2) + 2 flags, no stuffing expected for this input.
	if len(framed) != len(data)+2+2 {
		t.Errorf("len(framed) = %d, want %d", len(framed), len(data)+2+2)
	}
}
