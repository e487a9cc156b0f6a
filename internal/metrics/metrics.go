/*
	Copyright (c) 2026 gdl90dec authors
	Distributable under the terms of The "BSD New" License
	that can be found in the LICENSE file.

	metrics.go: Prometheus counters/histogram wrapping a gdl90.Stream's
	callbacks
*/

package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/stratux/gdl90dec"
)

// Recorder counts decoded messages and errors by kind, and tracks how
// large each Process call's input buffer was.
type Recorder struct {
	messagesByID *prometheus.CounterVec
	errorsByKind *prometheus.CounterVec
	processSize  prometheus.Histogram
}

// NewRecorder builds a Recorder and registers its collectors with reg.
// Pass prometheus.DefaultRegisterer to use the global registry.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		messagesByID: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gdl90dec",
			Name:      "messages_decoded_total",
			Help:      "Number of GDL-90 messages successfully decoded, by message id.",
		}, []string{"id"}),
		errorsByKind: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gdl90dec",
			Name:      "decode_errors_total",
			Help:      "Number of frames that failed to decode, by error kind.",
		}, []string{"kind"}),
		processSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "gdl90dec",
			Name:      "process_bytes",
			Help:      "Size in bytes of each buffer passed to Stream.Process.",
			Buckets:   prometheus.ExponentialBuckets(16, 4, 8),
		}),
	}
	reg.MustRegister(r.messagesByID, r.errorsByKind, r.processSize)
	return r
}

// Wrap returns a gdl90.Config that records metrics and then delegates to
// inner's callbacks.
func (r *Recorder) Wrap(inner gdl90.Config) gdl90.Config {
	return gdl90.Config{
		OnMessage: func(id gdl90.MessageID, decoded gdl90.Decoded) {
			r.messagesByID.WithLabelValues(idLabel(id)).Inc()
			inner.OnMessage(id, decoded)
		},
		OnError: func(id gdl90.MessageID, kind gdl90.StreamError) {
			r.errorsByKind.WithLabelValues(kind.String()).Inc()
			inner.OnError(id, kind)
		},
	}
}

// ObserveProcessSize records the size of a buffer about to be passed to
// Stream.Process. Call this immediately before Process.
func (r *Recorder) ObserveProcessSize(n int) {
	r.processSize.Observe(float64(n))
}

func idLabel(id gdl90.MessageID) string {
	return "0x" + strconv.FormatUint(uint64(id), 16)
}
