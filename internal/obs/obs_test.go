package obs

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func captureLog(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	orig := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(orig)
	fn()
	return buf.String()
}

func TestDebugfGatedByVerbose(t *testing.T) {
	Verbose = false
	out := captureLog(t, func() { Debugf("hidden %d", 1) })
	if out != "" {
		t.Errorf("Debugf should be silent when Verbose is false, got %q", out)
	}

	Verbose = true
	defer func() { Verbose = false }()
	out = captureLog(t, func() { Debugf("shown %d", 1) })
	if !strings.Contains(out, "shown 1") {
		t.Errorf("Debugf output = %q, want it to contain %q", out, "shown 1")
	}
}

func TestInfofAndErrfAlwaysLog(t *testing.T) {
	out := captureLog(t, func() { Infof("x=%d", 1) })
	if !strings.Contains(out, "INFO x=1") {
		t.Errorf("Infof output = %q", out)
	}
	out = captureLog(t, func() { Errf("y=%d", 2) })
	if !strings.Contains(out, "ERROR y=2") {
		t.Errorf("Errf output = %q", out)
	}
}
