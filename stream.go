/*
	Copyright (c) 2026 gdl90dec authors
	Distributable under the terms of The "BSD New" License
	that can be found in the LICENSE file.

	stream.go: frame scanning and id dispatch over an arbitrary byte buffer
*/

package gdl90

// StreamError classifies a frame that could not be delivered to OnMessage.
type StreamError int

const (
	// ErrCRC: the frame unescaped cleanly but its transmitted CRC did not
	// match the computed one.
	ErrCRC StreamError = iota
	// ErrInvalidMessage: the frame unescaped cleanly but its payload was
	// shorter than the documented minimum for its id, or it could not be
	// unescaped at all.
	ErrInvalidMessage
	// ErrUnknownMessageType: the id byte is not one of the known message ids.
	ErrUnknownMessageType
)

func (e StreamError) String() string {
	switch e {
	case ErrCRC:
		return "CRC error"
	case ErrInvalidMessage:
		return "invalid message"
	case ErrUnknownMessageType:
		return "unknown message type"
	default:
		return "unknown error"
	}
}

// OnMessageFunc is invoked once for every structurally valid, CRC-checked
// frame with a known id. The id parameter duplicates Decoded.ID() for
// callers who would rather switch on id before touching the value.
type OnMessageFunc func(id MessageID, decoded Decoded)

// OnErrorFunc is invoked once for every frame that could not be delivered.
// id is the frame's id byte if one could be determined, or 0 otherwise.
type OnErrorFunc func(id MessageID, kind StreamError)

// Config pairs the two callbacks a Stream dispatches to.
type Config struct {
	OnMessage OnMessageFunc
	OnError   OnErrorFunc
}

// Stream scans byte buffers for GDL-90 frames and dispatches decoded
// messages or errors to a Config's callbacks. A Stream holds no
// cross-call state: a frame split across two Process calls is not
// reassembled; its bytes are discarded at the end of each call. Stream is safe
// to use from only one goroutine at a time; independent Streams share no
// state and may run concurrently.
type Stream struct {
	config Config
}

// NewStream constructs a Stream. Both callbacks must be non-nil.
func NewStream(config Config) (*Stream, bool) {
	if config.OnMessage == nil || config.OnError == nil {
		return nil, false
	}
	return &Stream{config: config}, true
}

// Process scans buf for flag-delimited frames and dispatches each to
// OnMessage or OnError, in the order the frames appear in buf. A flag
// byte immediately followed by another flag byte delimits an empty
// frame and is skipped with no callback; it still opens the next frame.
// Process returns only after every callback it triggers has returned.
// Returns false only on a nil buf.
func (s *Stream) Process(buf []byte) bool {
	if buf == nil {
		return false
	}

	start := -1
	for i, b := range buf {
		if b != flagByte {
			continue
		}
		if start < 0 {
			start = i
			continue
		}
		if i == start+1 {
			start = i
			continue
		}
		s.handleCandidate(buf[start : i+1])
		start = i
	}
	return true
}

func (s *Stream) handleCandidate(frame []byte) {
	unescaped, ok := unescapeFrame(frame)
	if !ok {
		s.config.OnError(0, ErrInvalidMessage)
		return
	}

	id := MessageID(unescaped[0])

	switch validateCRC(unescaped) {
	case CRCResultMismatch:
		s.config.OnError(id, ErrCRC)
		return
	case CRCResultInvalidInput:
		s.config.OnError(id, ErrInvalidMessage)
		return
	}

	m := newMessage(unescaped)
	decoded, known, okLen := decode(m)
	if !known {
		s.config.OnError(id, ErrUnknownMessageType)
		return
	}
	if !okLen {
		s.config.OnError(id, ErrInvalidMessage)
		return
	}
	s.config.OnMessage(id, decoded)
}

// decode dispatches m to the decoder for its id. known reports whether the
// id is recognized at all; ok reports whether the payload was long enough
// to decode once the id was recognized.
func decode(m message) (decoded Decoded, known bool, ok bool) {
	switch m.id {
	case MessageIDHeartbeat:
		v, ok := decodeHeartbeat(m)
		return v, true, ok
	case MessageIDInitialization:
		v, ok := decodeInitialization(m)
		return v, true, ok
	case MessageIDUplinkData:
		v, ok := decodeUplinkData(m)
		return v, true, ok
	case MessageIDHeightAboveTerrain:
		v, ok := decodeHeightAboveTerrain(m)
		return v, true, ok
	case MessageIDOwnshipGeometricAltitude:
		v, ok := decodeOwnshipGeometricAltitude(m)
		return v, true, ok
	case MessageIDOwnshipReport, MessageIDTrafficReport:
		v, ok := decodeTrafficReport(m)
		return v, true, ok
	case MessageIDBasicReport:
		v, ok := decodeBasicReport(m)
		return v, true, ok
	case MessageIDLongReport:
		v, ok := decodeLongReport(m)
		return v, true, ok
	default:
		return nil, false, false
	}
}
