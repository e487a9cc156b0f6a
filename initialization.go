/*
	Copyright (c) 2026 gdl90dec authors
	Distributable under the terms of The "BSD New" License
	that can be found in the LICENSE file.

	initialization.go: 3.2 Initialization message (560-1058-00 Rev A)
*/

package gdl90

const (
	initConfig1CDTIOK       = 0
	initConfig1AudioInhibit = 1
	initConfig1AudioTest    = 6

	initConfig2CSADisable      = 0
	initConfig2CSAAudioDisable = 1
)

// Initialization is the 3.2 Initialization message, sent to the GDL 90 to
// configure CDTI/audio behavior.
type Initialization struct {
	Configuration1 byte
	Configuration2 byte
}

func (i Initialization) ID() MessageID { return MessageIDInitialization }

func (i Initialization) CDTIOK() bool          { return i.Configuration1&(1<<initConfig1CDTIOK) != 0 }
func (i Initialization) AudioInhibit() bool    { return i.Configuration1&(1<<initConfig1AudioInhibit) != 0 }
func (i Initialization) AudioTest() bool       { return i.Configuration1&(1<<initConfig1AudioTest) != 0 }
func (i Initialization) CSADisable() bool      { return i.Configuration2&(1<<initConfig2CSADisable) != 0 }
func (i Initialization) CSAAudioDisable() bool { return i.Configuration2&(1<<initConfig2CSAAudioDisable) != 0 }

// ToBytes renders the Initialization message as its unframed 3-byte wire
// form: id | configuration1 | configuration2.
func (i Initialization) ToBytes() []byte {
	return []byte{byte(MessageIDInitialization), i.Configuration1, i.Configuration2}
}

func decodeInitialization(m message) (Initialization, bool) {
	p := m.payload
	if len(p) < 3 {
		return Initialization{}, false
	}
	return Initialization{Configuration1: p[1], Configuration2: p[2]}, true
}
