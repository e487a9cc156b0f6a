/*
	Copyright (c) 2026 gdl90dec authors
	Distributable under the terms of The "BSD New" License
	that can be found in the LICENSE file.

	gdl90dec: decode GDL-90 frames from a hex argument, stdin, a serial
	port, or a UDP broadcast feed, and print the decoded fields.
*/

package main

import (
	"bufio"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tarm/serial"

	"github.com/stratux/gdl90dec"
	"github.com/stratux/gdl90dec/internal/archive"
	"github.com/stratux/gdl90dec/internal/metrics"
	"github.com/stratux/gdl90dec/internal/obs"
)

func main() {
	var (
		serialDev   = flag.String("serial", "", "read raw framed GDL-90 bytes from this serial device")
		serialBaud  = flag.Int("serial-baud", 38400, "baud rate for -serial")
		udpAddr     = flag.String("udp", "", "listen for UDP-broadcast GDL-90 frames on this address (host:port)")
		archivePath = flag.String("archive", "", "record decoded traffic/ownship reports and heartbeats to this SQLite file")
		metricsAddr = flag.String("metrics-addr", "", "serve Prometheus metrics on this address")
		verbose     = flag.Bool("verbose", false, "enable debug logging")
	)
	flag.Parse()
	obs.Verbose = *verbose

	config := gdl90.Config{
		OnMessage: printMessage,
		OnError:   printError,
	}

	var rec *metrics.Recorder
	if *metricsAddr != "" {
		rec = metrics.NewRecorder(prometheus.DefaultRegisterer)
		config = rec.Wrap(config)
		go serveMetrics(*metricsAddr)
	}

	var arc *archive.Archive
	if *archivePath != "" {
		a, err := archive.Open(*archivePath)
		if err != nil {
			obs.Errf("opening archive: %v", err)
			os.Exit(1)
		}
		arc = a
		defer arc.Close()
		config = withArchive(config, arc)
	}

	stream, ok := gdl90.NewStream(config)
	if !ok {
		obs.Errf("invalid stream configuration")
		os.Exit(1)
	}

	switch {
	case *serialDev != "":
		runSerial(stream, *serialDev, *serialBaud, rec)
	case *udpAddr != "":
		runUDP(stream, *udpAddr, rec)
	case flag.NArg() > 0:
		runHexArg(stream, flag.Arg(0))
	default:
		runStdin(stream)
	}
}

func withArchive(config gdl90.Config, arc *archive.Archive) gdl90.Config {
	inner := config.OnMessage
	config.OnMessage = func(id gdl90.MessageID, decoded gdl90.Decoded) {
		if err := arc.Record(decoded); err != nil {
			obs.Errf("archiving message %v: %v", id, err)
		}
		inner(id, decoded)
	}
	return config
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	obs.Infof("serving metrics on %s/metrics", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		obs.Errf("metrics server: %v", err)
	}
}

// runHexArg decodes a single hex string given as a command-line argument,
// matching the original CLI's argv[1] path.
func runHexArg(stream *gdl90.Stream, arg string) {
	packet := packetFromHexStr(arg)
	if len(packet) > 0 {
		stream.Process(packet)
	}
}

// runStdin decodes one hex-encoded frame per line from stdin, matching
// the original CLI's getline loop.
func runStdin(stream *gdl90.Stream) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		packet := packetFromHexStr(scanner.Text())
		if len(packet) > 0 {
			stream.Process(packet)
		}
	}
}

func runSerial(stream *gdl90.Stream, dev string, baud int, rec *metrics.Recorder) {
	port, err := serial.OpenPort(&serial.Config{Name: dev, Baud: baud})
	if err != nil {
		obs.Errf("opening serial port %s: %v", dev, err)
		os.Exit(1)
	}
	defer port.Close()

	buf := make([]byte, 4096)
	for {
		n, err := port.Read(buf)
		if err != nil {
			obs.Errf("reading from %s: %v", dev, err)
			return
		}
		if rec != nil {
			rec.ObserveProcessSize(n)
		}
		stream.Process(buf[:n])
	}
}

func runUDP(stream *gdl90.Stream, addr string, rec *metrics.Recorder) {
	udpAddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		obs.Errf("resolving %s: %v", addr, err)
		os.Exit(1)
	}
	conn, err := net.ListenUDP("udp", udpAddr)
	if err != nil {
		obs.Errf("listening on %s: %v", addr, err)
		os.Exit(1)
	}
	defer conn.Close()

	buf := make([]byte, 4096)
	for {
		n, _, err := conn.ReadFromUDP(buf)
		if err != nil {
			obs.Errf("reading from %s: %v", addr, err)
			return
		}
		if rec != nil {
			rec.ObserveProcessSize(n)
		}
		stream.Process(buf[:n])
	}
}

// hexNibble reports the 4-bit value of a hex digit character.
func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 0xa, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 0xa, true
	default:
		return 0, false
	}
}

// packetFromHexStr parses the contiguous runs of hex digits out of s,
// ignoring anything else (whitespace, separators, surrounding text),
// matching the original CLI's permissive scanner. A hex-valid letter
// adjacent to non-hex text (e.g. the 'e' in "end") is not mistaken for
// part of a byte: each run of hex digits is its own token, and only
// whole pairs of digits within a token become a byte. An odd trailing
// nibble at the end of a token is dropped.
func packetFromHexStr(s string) []byte {
	var packet []byte
	start := -1

	flush := func(end int) {
		if start < 0 {
			return
		}
		token := s[start:end]
		for i := 0; i+1 < len(token); i += 2 {
			hi, _ := hexNibble(token[i])
			lo, _ := hexNibble(token[i+1])
			packet = append(packet, hi<<4|lo)
		}
		start = -1
	}

	for i := 0; i < len(s); i++ {
		if _, ok := hexNibble(s[i]); ok {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
	}
	flush(len(s))

	if len(packet) == 0 || packet[0] != 0x7e || packet[len(packet)-1] != 0x7e {
		return nil
	}
	return packet
}

func printMessage(id gdl90.MessageID, decoded gdl90.Decoded) {
	switch v := decoded.(type) {
	case gdl90.Heartbeat:
		fmt.Printf("Heartbeat: UATInitialized=%v GPSPosValid=%v UTCOK=%v timestamp=%#x uplinkCount=%d basicLongCount=%#x\n",
			v.UATInitialized(), v.GPSPosValid(), v.UTCOK(), v.Timestamp, v.UplinkCount, v.BasicLongCount)
	case gdl90.Initialization:
		fmt.Printf("Initialization: CDTIOK=%v AudioInhibit=%v AudioTest=%v\n", v.CDTIOK(), v.AudioInhibit(), v.AudioTest())
	case gdl90.UplinkData:
		fmt.Printf("UplinkData: hasValidTOR=%v timeOfReception=%dns\n", v.HasValidTOR, v.TimeOfReception)
	case gdl90.HeightAboveTerrain:
		fmt.Printf("HeightAboveTerrain: %d ft (valid=%v)\n", v.HeightAboveTerrain, v.HasValidHeight())
	case gdl90.OwnshipGeometricAltitude:
		fmt.Printf("OwnshipGeometricAltitude: geoAltitude=%d ft verticalWarning=%v VFOM=%d (valid=%v)\n",
			v.GeoAltitude, v.VerticalWarning, v.VerticalFigureOfMerit, v.HasValidVFOM)
	case gdl90.TrafficReport:
		kind := "Traffic"
		if v.MsgID == gdl90.MessageIDOwnshipReport {
			kind = "Ownship"
		}
		fmt.Printf("%s Report: addr=%#x lat=%.5f lon=%.5f alt=%d(valid=%v) track=%.1f emitter=%s callsign=%q\n",
			kind, v.ParticipantAddress, v.Latitude, v.Longitude, v.Altitude, v.HasValidAltitude,
			v.TrackHeading, v.EmitterCategory, strings.TrimSpace(v.Callsign))
	case gdl90.BasicReport:
		fmt.Printf("BasicReport: hasValidTOR=%v timeOfReception=%dns\n", v.HasValidTOR, v.TimeOfReception)
	case gdl90.LongReport:
		fmt.Printf("LongReport: hasValidTOR=%v timeOfReception=%dns\n", v.HasValidTOR, v.TimeOfReception)
	default:
		fmt.Printf("%v: %+v\n", id, decoded)
	}
}

func printError(id gdl90.MessageID, kind gdl90.StreamError) {
	fmt.Fprintf(os.Stderr, "%s processing message with id %v\n", kind, id)
}
