/*
	Copyright (c) 2026 gdl90dec authors
	Distributable under the terms of The "BSD New" License
	that can be found in the LICENSE file.

	uplink.go: 3.3 Uplink Data message (560-1058-00 Rev A)
*/

package gdl90

// torSentinel is the wire value of the time-of-reception field meaning
// "not available".
const torSentinel = 0xffffff

// torNanos converts a decoded time-of-reception count into nanoseconds,
// reporting whether it was the documented sentinel.
func torNanos(tor uint32) (ns uint32, valid bool) {
	if tor == torSentinel {
		return 0, false
	}
	return tor * 80, true
}

// UplinkData is the 3.3 Uplink Data message: an opaque RTCA/DO-282 uplink
// payload plus its reception timestamp.
type UplinkData struct {
	// TimeOfReception is in nanoseconds; valid only if HasValidTOR.
	TimeOfReception uint32
	HasValidTOR     bool
	// Payload is the opaque 432-byte uplink payload (see RTCA/DO-282 §2.2).
	Payload [432]byte
}

func (u UplinkData) ID() MessageID { return MessageIDUplinkData }

func decodeUplinkData(m message) (UplinkData, bool) {
	p := m.payload
	if len(p) < 436 {
		return UplinkData{}, false
	}

	tor := u24be(p[3], p[2], p[1])
	ns, valid := torNanos(tor)

	var out UplinkData
	out.TimeOfReception = ns
	out.HasValidTOR = valid
	copy(out.Payload[:], p[4:4+432])
	return out, true
}
