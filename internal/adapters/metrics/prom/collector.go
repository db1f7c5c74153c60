package prom

import (
	"fmt"
	"strconv"
	"time"

	"github.com/bnema/xthreads-cli/internal/domain"
	"github.com/bnema/xthreads-cli/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector records posting activity in a Prometheus registry. A CLI run
// is short-lived, so the registry is flushed to a node_exporter textfile
// instead of being scraped.
type Collector struct {
	gatherer       prometheus.Gatherer
	connections    *prometheus.CounterVec
	threads        *prometheus.CounterVec
	posts          *prometheus.CounterVec
	failures       *prometheus.CounterVec
	uploads        *prometheus.CounterVec
	threadLatency  prometheus.Histogram
	lastPostedUnix *prometheus.GaugeVec
	now            func() time.Time
}

var _ ports.PostingMetrics = (*Collector)(nil)

func NewCollector(reg *prometheus.Registry) *Collector {
	c := &Collector{
		gatherer: reg,
		connections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "xthreads_connections_total",
			Help: "Account verifications by outcome.",
		}, []string{"account", "ok"}),
		threads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "xthreads_threads_posted_total",
			Help: "Reply chains posted.",
		}, []string{"account"}),
		posts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "xthreads_posts_total",
			Help: "Individual posts published.",
		}, []string{"account"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "xthreads_posting_failures_total",
			Help: "Reply chains rejected by the posting service, by kind.",
		}, []string{"account", "kind"}),
		uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "xthreads_media_uploads_total",
			Help: "Media uploads by outcome.",
		}, []string{"ok"}),
		threadLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "xthreads_thread_latency_seconds",
			Help:    "Time spent creating a reply chain.",
			Buckets: prometheus.DefBuckets,
		}),
		lastPostedUnix: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "xthreads_last_posted_timestamp_seconds",
			Help: "Unix time of the last successful thread.",
		}, []string{"account"}),
		now: time.Now,
	}

	reg.MustRegister(
		c.connections,
		c.threads,
		c.posts,
		c.failures,
		c.uploads,
		c.threadLatency,
		c.lastPostedUnix,
	)

	return c
}

func (c *Collector) RecordConnection(accountID domain.AccountID, ok bool) {
	c.connections.WithLabelValues(string(accountID), strconv.FormatBool(ok)).Inc()
}

func (c *Collector) RecordThread(accountID domain.AccountID, posts int, latency time.Duration) {
	c.threads.WithLabelValues(string(accountID)).Inc()
	c.posts.WithLabelValues(string(accountID)).Add(float64(posts))
	c.threadLatency.Observe(latency.Seconds())
	c.lastPostedUnix.WithLabelValues(string(accountID)).Set(float64(c.now().Unix()))
}

func (c *Collector) RecordPostingFailure(accountID domain.AccountID, kind domain.PostingErrorKind) {
	c.failures.WithLabelValues(string(accountID), string(kind)).Inc()
}

func (c *Collector) RecordUpload(ok bool) {
	c.uploads.WithLabelValues(strconv.FormatBool(ok)).Inc()
}

// WriteTextfile writes the current registry contents to path atomically.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.gatherer); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
