// Package metrics exposes a logger's pipeline counters to
// Prometheus. Collection is pull based: scraping reads the atomic
// counters the pipeline already keeps, so the producer and drain hot
// paths pay nothing for observability.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/EmbeddedOS/logger"
)

// Collector implements prometheus.Collector over a Logger.
type Collector struct {
	l *logger.Logger

	enqueued    *prometheus.Desc
	filtered    *prometheus.Desc
	truncated   *prometheus.Desc
	rateLimited *prometheus.Desc
	dropped     *prometheus.Desc
	queued      *prometheus.Desc
	batches     *prometheus.Desc
	bytesOut    *prometheus.Desc
	writeErrors *prometheus.Desc
}

// NewCollector wraps l for registration with a prometheus registry.
func NewCollector(l *logger.Logger) *Collector {
	return &Collector{
		l: l,
		enqueued: prometheus.NewDesc(
			"logger_records_enqueued_total",
			"Records accepted into the ring.",
			nil, nil),
		filtered: prometheus.NewDesc(
			"logger_records_filtered_total",
			"Records rejected by the min-level gate.",
			nil, nil),
		truncated: prometheus.NewDesc(
			"logger_records_truncated_total",
			"Records whose message exceeded the slot capacity.",
			nil, nil),
		rateLimited: prometheus.NewDesc(
			"logger_records_rate_limited_total",
			"Records rejected by the rate limiter.",
			nil, nil),
		dropped: prometheus.NewDesc(
			"logger_records_dropped_total",
			"Records dropped on a full ring (drop_on_full mode).",
			nil, nil),
		queued: prometheus.NewDesc(
			"logger_ring_queued",
			"Records currently waiting in the ring.",
			nil, nil),
		batches: prometheus.NewDesc(
			"logger_sink_batches_total",
			"Vectored writes issued to the sink.",
			nil, nil),
		bytesOut: prometheus.NewDesc(
			"logger_sink_bytes_total",
			"Formatted bytes written to the sink.",
			nil, nil),
		writeErrors: prometheus.NewDesc(
			"logger_sink_write_errors_total",
			"Batches dropped on unrecoverable sink errors.",
			nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.enqueued
	ch <- c.filtered
	ch <- c.truncated
	ch <- c.rateLimited
	ch <- c.dropped
	ch <- c.queued
	ch <- c.batches
	ch <- c.bytesOut
	ch <- c.writeErrors
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.l.Stats()
	counter := func(d *prometheus.Desc, v uint64) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.CounterValue, float64(v))
	}
	counter(c.enqueued, s.Enqueued)
	counter(c.filtered, s.Filtered)
	counter(c.truncated, s.Truncated)
	counter(c.rateLimited, s.RateLimited)
	counter(c.dropped, s.Dropped)
	ch <- prometheus.MustNewConstMetric(c.queued, prometheus.GaugeValue, float64(s.Queued))
	counter(c.batches, s.Batches)
	counter(c.bytesOut, s.BytesOut)
	counter(c.writeErrors, s.WriteErrors)
}
