/*
	Copyright (c) 2026 gdl90dec authors
	Distributable under the terms of The "BSD New" License
	that can be found in the LICENSE file.

	gdl90d: runs the GDL-90 decoder as a long-running OS service,
	installed/started/stopped the same way stratux manages its own
	receiver process.
*/

package main

import (
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	humanize "github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/takama/daemon"
	"github.com/tarm/serial"

	"github.com/stratux/gdl90dec"
	"github.com/stratux/gdl90dec/internal/archive"
	"github.com/stratux/gdl90dec/internal/metrics"
	"github.com/stratux/gdl90dec/internal/obs"
)

const (
	serviceName        = "gdl90d"
	serviceDescription = "GDL-90 decode daemon"
)

// service implements daemon.Executable: Start/Stop are called around
// Run by takama/daemon's service manager integration.
type service struct {
	cfg Config

	bytesIn     uint64
	framesOK    uint64
	framesError uint64

	stop chan struct{}
}

func (s *service) Start() {
	obs.Infof("%s starting", serviceName)
}

func (s *service) Stop() {
	obs.Infof("%s stopping", serviceName)
	close(s.stop)
}

func (s *service) Run() {
	s.stop = make(chan struct{})

	var rec *metrics.Recorder
	if s.cfg.MetricsAddr != "" {
		rec = metrics.NewRecorder(prometheus.DefaultRegisterer)
		go s.serveMetrics()
	}

	var arc *archive.Archive
	if s.cfg.ArchivePath != "" {
		a, err := archive.Open(s.cfg.ArchivePath)
		if err != nil {
			obs.Errf("opening archive: %v", err)
		} else {
			arc = a
			defer arc.Close()
		}
	}

	config := gdl90.Config{
		OnMessage: func(id gdl90.MessageID, decoded gdl90.Decoded) {
			atomic.AddUint64(&s.framesOK, 1)
			if arc != nil {
				if err := arc.Record(decoded); err != nil {
					obs.Errf("archiving message %v: %v", id, err)
				}
			}
		},
		OnError: func(id gdl90.MessageID, kind gdl90.StreamError) {
			atomic.AddUint64(&s.framesError, 1)
			obs.Debugf("%s processing message with id %v", kind, id)
		},
	}
	if rec != nil {
		config = rec.Wrap(config)
	}

	stream, ok := gdl90.NewStream(config)
	if !ok {
		obs.Errf("invalid stream configuration")
		return
	}

	go s.logStatus()

	switch {
	case s.cfg.SerialDevice != "":
		s.readSerial(stream, rec)
	case s.cfg.UDPAddr != "":
		s.readUDP(stream, rec)
	default:
		obs.Errf("no input configured: set udpAddr or serialDevice")
	}
}

func (s *service) serveMetrics() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	obs.Infof("serving metrics on %s/metrics", s.cfg.MetricsAddr)
	if err := http.ListenAndServe(s.cfg.MetricsAddr, mux); err != nil {
		obs.Errf("metrics server: %v", err)
	}
}

func (s *service) logStatus() {
	interval := time.Duration(s.cfg.StatusIntervalSeconds) * time.Second
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			obs.Infof("status: %s received, %s frames decoded, %s errors",
				humanize.Bytes(atomic.LoadUint64(&s.bytesIn)),
				humanize.Comma(int64(atomic.LoadUint64(&s.framesOK))),
				humanize.Comma(int64(atomic.LoadUint64(&s.framesError))))
		}
	}
}

func (s *service) readSerial(stream *gdl90.Stream, rec *metrics.Recorder) {
	port, err := serial.OpenPort(&serial.Config{Name: s.cfg.SerialDevice, Baud: s.cfg.SerialBaud})
	if err != nil {
		obs.Errf("opening serial port %s: %v", s.cfg.SerialDevice, err)
		return
	}
	defer port.Close()

	buf := make([]byte, 4096)
	for {
		select {
		case <-s.stop:
			return
		default:
		}
		n, err := port.Read(buf)
		if err != nil {
			obs.Errf("reading from %s: %v", s.cfg.SerialDevice, err)
			return
		}
		atomic.AddUint64(&s.bytesIn, uint64(n))
		if rec != nil {
			rec.ObserveProcessSize(n)
		}
		stream.Process(buf[:n])
	}
}

func (s *service) readUDP(stream *gdl90.Stream, rec *metrics.Recorder) {
	addr, err := net.ResolveUDPAddr("udp", s.cfg.UDPAddr)
	if err != nil {
		obs.Errf("resolving %s: %v", s.cfg.UDPAddr, err)
		return
	}
	conn, err := net.ListenUDP("udp", addr)
	if err != nil {
		obs.Errf("listening on %s: %v", s.cfg.UDPAddr, err)
		return
	}
	defer conn.Close()

	buf := make([]byte, 4096)
	for {
		select {
		case <-s.stop:
			return
		default:
		}
		n, _, err := conn.ReadFromUDP(buf)
		if err != nil {
			obs.Errf("reading from %s: %v", s.cfg.UDPAddr, err)
			return
		}
		atomic.AddUint64(&s.bytesIn, uint64(n))
		if rec != nil {
			rec.ObserveProcessSize(n)
		}
		stream.Process(buf[:n])
	}
}

func main() {
	configPath := flag.String("config", "", "path to a JSON configuration file")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()
	obs.Verbose = *verbose

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	d, err := daemon.New(serviceName, serviceDescription, daemon.SystemDaemon)
	if err != nil {
		fmt.Fprintln(os.Stderr, "creating daemon:", err)
		os.Exit(1)
	}

	svc := &service{cfg: cfg}

	var status string
	if len(flag.Args()) > 0 {
		status, err = handleControlCommand(d, flag.Args()[0])
	} else {
		status, err = d.Run(svc)
	}

	fmt.Println(status)
	if err != nil {
		os.Exit(1)
	}
}

func handleControlCommand(d daemon.Daemon, cmd string) (string, error) {
	switch cmd {
	case "install":
		return d.Install()
	case "remove":
		return d.Remove()
	case "start":
		return d.Start()
	case "stop":
		return d.Stop()
	case "status":
		return d.Status()
	default:
		return "", fmt.Errorf("unknown command %q", cmd)
	}
}
