package gdl90

import "testing"

type capturedMessage struct {
	id      MessageID
	decoded Decoded
}

type capturedError struct {
	id   MessageID
	kind StreamError
}

func newCapturingStream() (*Stream, *[]capturedMessage, *[]capturedError) {
	var messages []capturedMessage
	var errs []capturedError
	s, ok := NewStream(Config{
		OnMessage: func(id MessageID, decoded Decoded) {
			messages = append(messages, capturedMessage{id, decoded})
		},
		OnError: func(id MessageID, kind StreamError) {
			errs = append(errs, capturedError{id, kind})
		},
	})
	if !ok {
		panic("NewStream rejected valid callbacks")
	}
	return s, &messages, &errs
}

func heartbeatFrame() []byte {
	return PrepareMessage([]byte{byte(MessageIDHeartbeat), 0x81, 0x41, 0x0f, 0xff, 0x01, 0xff})
}

// TestProcessDeliversOneMessagePerFrame is TESTABLE PROPERTY 1.
func TestProcessDeliversOneMessagePerFrame(t *testing.T) {
	s, messages, errs := newCapturingStream()
	s.Process(heartbeatFrame())

	if len(*errs) != 0 {
		t.Fatalf("unexpected errors: %+v", *errs)
	}
	if len(*messages) != 1 {
		t.Fatalf("got %d messages, want 1", len(*messages))
	}
	if (*messages)[0].id != MessageIDHeartbeat {
		t.Errorf("delivered id = %v, want Heartbeat", (*messages)[0].id)
	}
	if (*messages)[0].decoded.ID() != MessageIDHeartbeat {
		t.Error("decoded.ID() does not match the delivered id")
	}
}

// TestProcessDeliversMultipleFramesInOrder is TESTABLE PROPERTY 2.
func TestProcessDeliversMultipleFramesInOrder(t *testing.T) {
	s, messages, errs := newCapturingStream()

	hatFrame := PrepareMessage([]byte{byte(MessageIDHeightAboveTerrain), 0x01, 0x00})
	initFrame := PrepareMessage([]byte{byte(MessageIDInitialization), 0x01, 0x00})

	var buf []byte
	buf = append(buf, heartbeatFrame()...)
	buf = append(buf, hatFrame...)
	buf = append(buf, initFrame...)

	s.Process(buf)

	if len(*errs) != 0 {
		t.Fatalf("unexpected errors: %+v", *errs)
	}
	if len(*messages) != 3 {
		t.Fatalf("got %d messages, want 3", len(*messages))
	}
	wantOrder := []MessageID{MessageIDHeartbeat, MessageIDHeightAboveTerrain, MessageIDInitialization}
	for i, want := range wantOrder {
		if (*messages)[i].id != want {
			t.Errorf("message %d id = %v, want %v", i, (*messages)[i].id, want)
		}
	}
}

// TestProcessSkipsEmptyFrame checks that two adjacent flag bytes delimit
// an empty frame that is skipped silently, with no callback.
func TestProcessSkipsEmptyFrame(t *testing.T) {
	s, messages, errs := newCapturingStream()
	s.Process([]byte{flagByte, flagByte})

	if len(*messages) != 0 || len(*errs) != 0 {
		t.Fatalf("two adjacent flags should produce no callback, got messages=%+v errs=%+v", *messages, *errs)
	}
}

func TestProcessReportsCRCMismatch(t *testing.T) {
	s, messages, errs := newCapturingStream()

	frame := heartbeatFrame()
	frame[len(frame)-2] ^= 0xff // corrupt a CRC byte without touching the flags
	s.Process(frame)

	if len(*messages) != 0 {
		t.Fatalf("corrupted frame should not deliver a message, got %+v", *messages)
	}
	if len(*errs) != 1 || (*errs)[0].kind != ErrCRC {
		t.Fatalf("errs = %+v, want one ErrCRC", *errs)
	}
}

// TestProcessReportsShortFrameAsInvalidMessage checks that a frame too
// short to even contain a transmitted CRC (here, just the id byte) is
// reported as ErrInvalidMessage, not ErrCRC: there is no CRC to mismatch
// against.
func TestProcessReportsShortFrameAsInvalidMessage(t *testing.T) {
	s, messages, errs := newCapturingStream()

	s.Process([]byte{flagByte, byte(MessageIDHeartbeat), flagByte})

	if len(*messages) != 0 {
		t.Fatalf("short frame should not deliver a message, got %+v", *messages)
	}
	if len(*errs) != 1 || (*errs)[0].kind != ErrInvalidMessage {
		t.Fatalf("errs = %+v, want one ErrInvalidMessage", *errs)
	}
}

func TestProcessReportsUnknownMessageType(t *testing.T) {
	s, messages, errs := newCapturingStream()

	frame := PrepareMessage([]byte{0x7f, 0x01, 0x02, 0x03})
	s.Process(frame)

	if len(*messages) != 0 {
		t.Fatalf("unknown id should not deliver a message, got %+v", *messages)
	}
	if len(*errs) != 1 || (*errs)[0].kind != ErrUnknownMessageType {
		t.Fatalf("errs = %+v, want one ErrUnknownMessageType", *errs)
	}
}

func TestProcessReportsInvalidMessage(t *testing.T) {
	s, messages, errs := newCapturingStream()

	frame := PrepareMessage([]byte{byte(MessageIDHeartbeat), 0x01})
	s.Process(frame)

	if len(*messages) != 0 {
		t.Fatalf("short heartbeat body should not deliver a message, got %+v", *messages)
	}
	if len(*errs) != 1 || (*errs)[0].kind != ErrInvalidMessage {
		t.Fatalf("errs = %+v, want one ErrInvalidMessage", *errs)
	}
}

func TestNewStreamRejectsNilCallbacks(t *testing.T) {
	if _, ok := NewStream(Config{OnMessage: nil, OnError: func(MessageID, StreamError) {}}); ok {
		t.Error("NewStream should reject a nil OnMessage")
	}
	if _, ok := NewStream(Config{OnMessage: func(MessageID, Decoded) {}, OnError: nil}); ok {
		t.Error("NewStream should reject a nil OnError")
	}
}
