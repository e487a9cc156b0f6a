package gdl90

import "testing"

func buildUplinkPayload(bodyLen int) []byte {
	p := make([]byte, 1+bodyLen)
	p[0] = byte(MessageIDUplinkData)
	return p
}

// TestDecodeUplinkDataBoundary checks the minimum valid message length:
// a 435-byte body (id + TOR(3) + payload(431) + ...) is too short; 436
// succeeds.
func TestDecodeUplinkDataBoundary(t *testing.T) {
	short := message{id: MessageIDUplinkData, payload: buildUplinkPayload(434)}
	if _, ok := decodeUplinkData(short); ok {
		t.Fatal("decodeUplinkData with a 435-byte payload should fail")
	}

	long := message{id: MessageIDUplinkData, payload: buildUplinkPayload(435)}
	if _, ok := decodeUplinkData(long); !ok {
		t.Fatal("decodeUplinkData with a 436-byte payload should succeed")
	}
}

// TestDecodeUplinkDataTORSentinel is TESTABLE PROPERTY 4 for TOR=0xFFFFFF.
func TestDecodeUplinkDataTORSentinel(t *testing.T) {
	p := buildUplinkPayload(435)
	p[1], p[2], p[3] = 0xff, 0xff, 0xff // TOR transmitted LSB-first: p[1]=lsb
	m := message{id: MessageIDUplinkData, payload: p}

	v, ok := decodeUplinkData(m)
	if !ok {
		t.Fatal("decodeUplinkData returned ok=false")
	}
	if v.HasValidTOR {
		t.Error("HasValidTOR should be false for the sentinel TOR")
	}
	if v.TimeOfReception != 0 {
		t.Errorf("TimeOfReception = %d, want 0", v.TimeOfReception)
	}
}

func TestDecodeUplinkDataTORValid(t *testing.T) {
	p := buildUplinkPayload(435)
	p[1], p[2], p[3] = 0x01, 0x00, 0x00 // tor = 1
	m := message{id: MessageIDUplinkData, payload: p}

	v, ok := decodeUplinkData(m)
	if !ok {
		t.Fatal("decodeUplinkData returned ok=false")
	}
	if !v.HasValidTOR {
		t.Error("HasValidTOR should be true")
	}
	if v.TimeOfReception != 80 {
		t.Errorf("TimeOfReception = %d, want 80 ns", v.TimeOfReception)
	}
}
