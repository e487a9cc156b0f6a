/*
	Copyright (c) 2026 gdl90dec authors
	Distributable under the terms of The "BSD New" License
	that can be found in the LICENSE file.

	obs.go: thin logging wrapper shared by the ambient and domain packages
*/

package obs

import "log"

// Verbose gates Debugf output. The two cmd/ binaries set this from a
// -verbose flag; it defaults to false for library use.
var Verbose bool

func Infof(format string, args ...interface{}) {
	log.Printf("INFO "+format, args...)
}

func Errf(format string, args ...interface{}) {
	log.Printf("ERROR "+format, args...)
}

func Debugf(format string, args ...interface{}) {
	if !Verbose {
		return
	}
	log.Printf("DEBUG "+format, args...)
}
