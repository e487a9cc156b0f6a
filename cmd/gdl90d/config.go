/*
	Copyright (c) 2026 gdl90dec authors
	Distributable under the terms of The "BSD New" License
	that can be found in the LICENSE file.

	config.go: JSON configuration for the gdl90d daemon
*/

package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config is gdl90d's on-disk configuration, loaded once at startup.
type Config struct {
	// UDPAddr is the address to listen for UDP-broadcast GDL-90 frames
	// on, e.g. "0.0.0.0:4000". Mutually exclusive with SerialDevice.
	UDPAddr string `json:"udpAddr"`
	// SerialDevice reads raw framed bytes from a serial GDL-90 feed.
	SerialDevice string `json:"serialDevice"`
	SerialBaud   int    `json:"serialBaud"`
	// ArchivePath, if set, records decoded traffic/ownship reports and
	// heartbeats to this SQLite file.
	ArchivePath string `json:"archivePath"`
	// MetricsAddr, if set, serves Prometheus metrics on this address.
	MetricsAddr string `json:"metricsAddr"`
	// StatusIntervalSeconds controls how often a humanized status line
	// is logged.
	StatusIntervalSeconds int `json:"statusIntervalSeconds"`
}

func defaultConfig() Config {
	return Config{
		SerialBaud:            38400,
		StatusIntervalSeconds: 30,
	}
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("opening config %s: %w", path, err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
