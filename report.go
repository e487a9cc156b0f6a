/*
	Copyright (c) 2026 gdl90dec authors
	Distributable under the terms of The "BSD New" License
	that can be found in the LICENSE file.

	report.go: 3.6 Basic Report / Long Report pass-through messages
	(560-1058-00 Rev A)
*/

package gdl90

// BasicReport is the 3.6 Basic Report pass-through message: an opaque
// 18-byte RTCA/DO-282 payload plus its reception timestamp.
type BasicReport struct {
	TimeOfReception uint32 // nanoseconds; valid only if HasValidTOR
	HasValidTOR     bool
	Payload         [18]byte
}

func (r BasicReport) ID() MessageID { return MessageIDBasicReport }

func decodeBasicReport(m message) (BasicReport, bool) {
	p := m.payload
	if len(p) < 22 {
		return BasicReport{}, false
	}

	tor := u24be(p[3], p[2], p[1])
	ns, valid := torNanos(tor)

	var out BasicReport
	out.TimeOfReception = ns
	out.HasValidTOR = valid
	copy(out.Payload[:], p[4:4+18])
	return out, true
}

// LongReport is the 3.6 Long Report pass-through message: an opaque
// 34-byte RTCA/DO-282 payload plus its reception timestamp.
type LongReport struct {
	TimeOfReception uint32 // nanoseconds; valid only if HasValidTOR
	HasValidTOR     bool
	Payload         [34]byte
}

func (r LongReport) ID() MessageID { return MessageIDLongReport }

func decodeLongReport(m message) (LongReport, bool) {
	p := m.payload
	if len(p) < 38 {
		return LongReport{}, false
	}

	tor := u24be(p[3], p[2], p[1])
	ns, valid := torNanos(tor)

	var out LongReport
	out.TimeOfReception = ns
	out.HasValidTOR = valid
	copy(out.Payload[:], p[4:4+34])
	return out, true
}
