package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector gathers gateway metrics: the HTTP surface, direct uploads, and
// payment status polling.
type Collector struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration prometheus.Histogram
	uploadSuccess   prometheus.Counter
	uploadFail      prometheus.Counter
	statusPolls     prometheus.Counter
	statusPollFail  prometheus.Counter
}

// NewCollector registers gateway metrics on the given registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_http_requests_total",
			Help: "HTTP requests served, by method and status code.",
		}, []string{"method", "status"}),
		requestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "storefront_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		uploadSuccess: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "storefront_upload_success_total",
			Help: "Files uploaded to object storage.",
		}),
		uploadFail: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "storefront_upload_fail_total",
			Help: "File uploads that failed.",
		}),
		statusPolls: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "storefront_status_polls_total",
			Help: "Payment status poll rounds executed.",
		}),
		statusPollFail: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "storefront_status_poll_failures_total",
			Help: "Individual payment status fetches that failed.",
		}),
	}

	reg.MustRegister(
		c.requestsTotal,
		c.requestDuration,
		c.uploadSuccess,
		c.uploadFail,
		c.statusPolls,
		c.statusPollFail,
	)

	return c
}

// RecordRequest counts one served HTTP request.
func (c *Collector) RecordRequest(method string, status int, duration time.Duration) {
	c.requestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
	c.requestDuration.Observe(duration.Seconds())
}

// RecordUpload counts one finished direct upload.
func (c *Collector) RecordUpload(ok bool) {
	if ok {
		c.uploadSuccess.Inc()
		return
	}
	c.uploadFail.Inc()
}

// RecordStatusPoll counts one poll round and its failed fetches.
func (c *Collector) RecordStatusPoll(failed int) {
	c.statusPolls.Inc()
	c.statusPollFail.Add(float64(failed))
}
