/*
	Copyright (c) 2026 gdl90dec authors
	Distributable under the terms of The "BSD New" License
	that can be found in the LICENSE file.

	message.go: message id enumeration and the decoded-message interface
*/

package gdl90

// MessageID identifies a GDL-90 message variant (560-1058-00 Rev A §3).
type MessageID uint8

const (
	MessageIDHeartbeat                 MessageID = 0x00
	MessageIDInitialization            MessageID = 0x02
	MessageIDUplinkData                MessageID = 0x07
	MessageIDHeightAboveTerrain        MessageID = 0x09
	MessageIDOwnshipReport             MessageID = 0x0a
	MessageIDOwnshipGeometricAltitude  MessageID = 0x0b
	MessageIDTrafficReport             MessageID = 0x14
	MessageIDBasicReport               MessageID = 0x1e
	MessageIDLongReport                MessageID = 0x1f
)

// Decoded is implemented by every typed message the core can produce.
// Callers type-switch on the concrete type, or compare ID() against the
// MessageID constants, to dispatch. A Decoded value is only valid for the
// duration of the OnMessage callback that delivered it unless copied.
type Decoded interface {
	ID() MessageID
}

// message is the id-plus-unescaped-payload view handed to each per-id
// decoder. Index 0 is always the id byte.
type message struct {
	id      MessageID
	payload []byte // id | body | crc(2), unescaped
}

func newMessage(unescaped []byte) message {
	return message{id: MessageID(unescaped[0]), payload: unescaped}
}
