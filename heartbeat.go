/*
	Copyright (c) 2026 gdl90dec authors
	Distributable under the terms of The "BSD New" License
	that can be found in the LICENSE file.

	heartbeat.go: 3.1 Heartbeat message (560-1058-00 Rev A)
*/

package gdl90

// Status Byte 1 bit positions.
const (
	heartbeatStatus1UATInitialized = 0
	heartbeatStatus1RATCS          = 1
	heartbeatStatus1GPSBattLow     = 3
	heartbeatStatus1AddrType       = 4
	heartbeatStatus1IDENT          = 5
	heartbeatStatus1MaintReqd      = 6
	heartbeatStatus1GPSPosValid    = 7
)

// Status Byte 2 bit positions.
const (
	heartbeatStatus2UTCOK           = 0
	heartbeatStatus2CSANotAvailable = 5
	heartbeatStatus2CSARequested    = 6
)

// Heartbeat is the 3.1 Heartbeat message. Sent once a second.
type Heartbeat struct {
	Status1 byte
	Status2 byte

	// Timestamp is the 17-bit UAT time-of-day stamp.
	Timestamp uint32
	// UplinkCount is the number of Uplink messages received during the
	// previous second (5-bit).
	UplinkCount uint8
	// BasicLongCount is the number of Basic and Long messages received
	// during the previous second (10-bit).
	BasicLongCount uint16
}

func (h Heartbeat) ID() MessageID { return MessageIDHeartbeat }

func (h Heartbeat) bit1(pos uint) bool { return h.Status1&(1<<pos) != 0 }
func (h Heartbeat) bit2(pos uint) bool { return h.Status2&(1<<pos) != 0 }

func (h Heartbeat) UATInitialized() bool      { return h.bit1(heartbeatStatus1UATInitialized) }
func (h Heartbeat) RATCS() bool               { return h.bit1(heartbeatStatus1RATCS) }
func (h Heartbeat) GPSBattLow() bool          { return h.bit1(heartbeatStatus1GPSBattLow) }
func (h Heartbeat) AddrTypeAnonymous() bool   { return h.bit1(heartbeatStatus1AddrType) }
func (h Heartbeat) IDENT() bool               { return h.bit1(heartbeatStatus1IDENT) }
func (h Heartbeat) MaintenanceRequired() bool { return h.bit1(heartbeatStatus1MaintReqd) }
func (h Heartbeat) GPSPosValid() bool         { return h.bit1(heartbeatStatus1GPSPosValid) }

func (h Heartbeat) UTCOK() bool           { return h.bit2(heartbeatStatus2UTCOK) }
func (h Heartbeat) CSANotAvailable() bool { return h.bit2(heartbeatStatus2CSANotAvailable) }
func (h Heartbeat) CSARequested() bool    { return h.bit2(heartbeatStatus2CSARequested) }

// decodeHeartbeat decodes m.payload (id | status1 | status2 | b3 | b4 | b5 | b6).
func decodeHeartbeat(m message) (Heartbeat, bool) {
	p := m.payload
	if len(p) < 7 {
		return Heartbeat{}, false
	}

	status1 := p[1]
	status2 := p[2]
	timestamp := uint32(status2>>7&1)<<16 | uint32(p[4])<<8 | uint32(p[3])

	return Heartbeat{
		Status1:        status1,
		Status2:        status2,
		Timestamp:      timestamp,
		UplinkCount:    p[5] >> 3,
		BasicLongCount: uint16(p[5]&0x03)<<8 | uint16(p[6]),
	}, true
}
