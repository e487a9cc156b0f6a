/*
	Copyright (c) 2026 gdl90dec authors
	Distributable under the terms of The "BSD New" License
	that can be found in the LICENSE file.

	frame.go: flag-byte delimiting and byte-unescaping
*/

package gdl90

const (
	flagByte   byte = 0x7e
	escapeByte byte = 0x7d
)

// maxUnescapedPayload bounds the largest message (UplinkData: id + TOR(3)
// + payload(432) + CRC(2)). Only used as a capacity hint; append grows
// the buffer past this if a frame somehow unescapes longer.
const maxUnescapedPayload = 1 + 3 + 432 + 2

// unescapeFrame removes byte-stuffing from data, which must begin and end
// with the flag byte. The returned slice is id | payload | CRC(2), with
// the flags stripped. Reports ok=false on a trailing lone escape byte or
// an empty body.
func unescapeFrame(data []byte) (out []byte, ok bool) {
	n := len(data)
	if n < 3 {
		return nil, false
	}

	buf := make([]byte, 0, maxUnescapedPayload)
	for j := 1; j < n-1; j++ {
		b := data[j]
		if b == escapeByte {
			j++
			if j >= n-1 {
				return nil, false
			}
			b = data[j] ^ 0x20
		}
		buf = append(buf, b)
	}

	if len(buf) == 0 {
		return nil, false
	}
	return buf, true
}
