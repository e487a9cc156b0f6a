package gdl90

import (
	"bytes"
	"testing"
)

func buildReportPayload(id MessageID, bodyLen int, tor [3]byte) []byte {
	p := make([]byte, 4+bodyLen)
	p[0] = byte(id)
	p[1], p[2], p[3] = tor[0], tor[1], tor[2]
	return p
}

func TestDecodeBasicReport(t *testing.T) {
	p := buildReportPayload(MessageIDBasicReport, 18, [3]byte{0x01, 0x00, 0x00})
	copy(p[4:], bytes.Repeat([]byte{0xaa}, 18))

	v, ok := decodeBasicReport(message{id: MessageIDBasicReport, payload: p})
	if !ok {
		t.Fatal("decodeBasicReport returned ok=false")
	}
	if !v.HasValidTOR || v.TimeOfReception != 80 {
		t.Errorf("TimeOfReception = %d (valid=%v), want 80 (valid=true)", v.TimeOfReception, v.HasValidTOR)
	}
	if !bytes.Equal(v.Payload[:], bytes.Repeat([]byte{0xaa}, 18)) {
		t.Error("Payload was not copied correctly")
	}
}

func TestDecodeBasicReportTooShort(t *testing.T) {
	p := buildReportPayload(MessageIDBasicReport, 17, [3]byte{})
	if _, ok := decodeBasicReport(message{id: MessageIDBasicReport, payload: p}); ok {
		t.Fatal("decodeBasicReport with a 21-byte payload should fail")
	}
}

func TestDecodeLongReport(t *testing.T) {
	p := buildReportPayload(MessageIDLongReport, 34, [3]byte{0xff, 0xff, 0xff})
	copy(p[4:], bytes.Repeat([]byte{0x55}, 34))

	v, ok := decodeLongReport(message{id: MessageIDLongReport, payload: p})
	if !ok {
		t.Fatal("decodeLongReport returned ok=false")
	}
	if v.HasValidTOR {
		t.Error("HasValidTOR should be false for the sentinel TOR")
	}
	if !bytes.Equal(v.Payload[:], bytes.Repeat([]byte{0x55}, 34)) {
		t.Error("Payload was not copied correctly")
	}
}

func TestDecodeLongReportTooShort(t *testing.T) {
	p := buildReportPayload(MessageIDLongReport, 33, [3]byte{})
	if _, ok := decodeLongReport(message{id: MessageIDLongReport, payload: p}); ok {
		t.Fatal("decodeLongReport with a 37-byte payload should fail")
	}
}
