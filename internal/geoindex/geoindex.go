/*
	Copyright (c) 2026 gdl90dec authors
	Distributable under the terms of The "BSD New" License
	that can be found in the LICENSE file.

	geoindex.go: geohash-bucketed spatial index over decoded traffic and
	ownship reports, supporting radius queries. Adds back the
	traffic-proximity tracking stratux itself carries
	(traffic_priority.go's bearing/distance ranking) for callers that
	want nearby-traffic queries over a decoded stream.
*/

package geoindex

import (
	"github.com/gansidui/geohash"
	geo "github.com/kellydunn/golang-geo"
	"golang.org/x/exp/slices"

	"github.com/stratux/gdl90dec"
)

const bucketPrecision = 5

const nauticalMilesPerKM = 0.539957

// Entry pairs a decoded Traffic/Ownship Report with the point it was
// last seen at.
type Entry struct {
	Report gdl90.TrafficReport
	point  *geo.Point
	bucket string
}

// Index buckets entries by a coarse geohash prefix and tracks the latest
// entry per participant address. Nearby does not prune by bucket: it
// scans every bucket and checks the distance of every tracked entry.
type Index struct {
	buckets map[string][]*Entry
	byAddr  map[uint32]*Entry
}

func New() *Index {
	return &Index{
		buckets: make(map[string][]*Entry),
		byAddr:  make(map[uint32]*Entry),
	}
}

// Update inserts or replaces the tracked position for report's
// participant address. Reports with HasValidPosition false are ignored.
func (idx *Index) Update(report gdl90.TrafficReport) {
	if !report.HasValidPosition {
		return
	}

	bucket := geohash.Encode(report.Latitude, report.Longitude, bucketPrecision)
	entry := &Entry{
		Report: report,
		point:  geo.NewPoint(report.Latitude, report.Longitude),
		bucket: bucket,
	}

	if old, ok := idx.byAddr[report.ParticipantAddress]; ok {
		idx.removeFromBucket(old)
	}
	idx.byAddr[report.ParticipantAddress] = entry
	idx.buckets[bucket] = append(idx.buckets[bucket], entry)
}

func (idx *Index) removeFromBucket(e *Entry) {
	bucket := idx.buckets[e.bucket]
	for i, candidate := range bucket {
		if candidate == e {
			idx.buckets[e.bucket] = append(bucket[:i], bucket[i+1:]...)
			return
		}
	}
}

// Nearby returns every tracked report within radiusNM nautical miles of
// (lat, lon), nearest first.
func (idx *Index) Nearby(lat, lon, radiusNM float64) []Entry {
	origin := geo.NewPoint(lat, lon)

	var found []Entry
	for _, entries := range idx.buckets {
		for _, e := range entries {
			distanceNM := origin.GreatCircleDistance(e.point) * nauticalMilesPerKM
			if distanceNM <= radiusNM {
				found = append(found, *e)
			}
		}
	}

	slices.SortFunc(found, func(a, b Entry) int {
		da, db := origin.GreatCircleDistance(a.point), origin.GreatCircleDistance(b.point)
		switch {
		case da < db:
			return -1
		case da > db:
			return 1
		default:
			return 0
		}
	})
	return found
}

// BearingTo returns the initial great-circle bearing in degrees from
// (lat, lon) to e's last known position.
func BearingTo(lat, lon float64, e Entry) float64 {
	return geo.NewPoint(lat, lon).BearingTo(e.point)
}

// Len reports how many distinct participant addresses are tracked.
func (idx *Index) Len() int {
	return len(idx.byAddr)
}
