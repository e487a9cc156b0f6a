/*
	Copyright (c) 2026 gdl90dec authors
	Distributable under the terms of The "BSD New" License
	that can be found in the LICENSE file.

	archive.go: optional SQLite-backed record of decoded messages, for
	later replay. The core gdl90 package still performs no I/O; this is
	wired from a caller's OnMessage callback, not from inside Stream.
*/

package archive

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/stratux/gdl90dec"
)

const schema = `
CREATE TABLE IF NOT EXISTS heartbeats (
	received_at INTEGER NOT NULL,
	status1 INTEGER NOT NULL,
	status2 INTEGER NOT NULL,
	timestamp INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS traffic_reports (
	received_at INTEGER NOT NULL,
	msg_id INTEGER NOT NULL,
	participant_address INTEGER NOT NULL,
	latitude REAL NOT NULL,
	longitude REAL NOT NULL,
	altitude INTEGER NOT NULL,
	has_valid_altitude INTEGER NOT NULL,
	callsign TEXT NOT NULL
);
`

// Archive persists decoded messages to a SQLite database at path. Use
// ":memory:" for an ephemeral in-process archive.
type Archive struct {
	db *sql.DB
}

// Open creates or opens the SQLite database at path and ensures its
// schema exists.
func Open(path string) (*Archive, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("archive: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("archive: create schema: %w", err)
	}
	return &Archive{db: db}, nil
}

func (a *Archive) Close() error {
	return a.db.Close()
}

// Record stores decoded if its type is one this archive understands.
// Unrecognized types (UplinkData, BasicReport, LongReport, ...) carry
// opaque uplink payloads and are silently ignored.
func (a *Archive) Record(decoded gdl90.Decoded) error {
	now := time.Now().Unix()
	switch v := decoded.(type) {
	case gdl90.Heartbeat:
		_, err := a.db.Exec(
			`INSERT INTO heartbeats (received_at, status1, status2, timestamp) VALUES (?, ?, ?, ?)`,
			now, v.Status1, v.Status2, v.Timestamp)
		return err
	case gdl90.TrafficReport:
		_, err := a.db.Exec(
			`INSERT INTO traffic_reports
				(received_at, msg_id, participant_address, latitude, longitude, altitude, has_valid_altitude, callsign)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			now, v.MsgID, v.ParticipantAddress, v.Latitude, v.Longitude, v.Altitude, v.HasValidAltitude, v.Callsign)
		return err
	default:
		return nil
	}
}

// CountTrafficReports returns the number of traffic/ownship reports
// recorded so far, for status reporting.
func (a *Archive) CountTrafficReports() (int, error) {
	var n int
	err := a.db.QueryRow(`SELECT COUNT(*) FROM traffic_reports`).Scan(&n)
	return n, err
}
