package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	reviewsTotal         atomic.Uint64
	lintFailuresTotal    atomic.Uint64
	modelFailuresTotal   atomic.Uint64
	modelParseFallbacks  atomic.Uint64
	lintIssuesReturned   atomic.Uint64
	aiFindingsReturned   atomic.Uint64

	reviewDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000, 120000})
)

// IncReviews increments the completed review counter.
func IncReviews() {
	reviewsTotal.Add(1)
}

// IncLintFailures counts lint passes that degraded to an empty result.
func IncLintFailures() {
	lintFailuresTotal.Add(1)
}

// IncModelFailures counts model calls replaced by the error fallback finding.
func IncModelFailures() {
	modelFailuresTotal.Add(1)
}

// IncModelParseFallbacks counts model replies that were not a findings list.
func IncModelParseFallbacks() {
	modelParseFallbacks.Add(1)
}

// AddFindings records how many lint issues and AI findings a review returned.
func AddFindings(lintIssues, aiFindings int) {
	if lintIssues > 0 {
		lintIssuesReturned.Add(uint64(lintIssues))
	}
	if aiFindings > 0 {
		aiFindingsReturned.Add(uint64(aiFindings))
	}
}

// ObserveReviewDurationMs records a review duration in milliseconds.
func ObserveReviewDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	reviewDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "review_requests_total", "Total reviews completed", reviewsTotal.Load())
	writeCounter(&buf, "review_lint_failures_total", "Lint passes degraded to an empty result", lintFailuresTotal.Load())
	writeCounter(&buf, "review_model_failures_total", "Model calls replaced by an error finding", modelFailuresTotal.Load())
	writeCounter(&buf, "review_model_parse_fallbacks_total", "Model replies wrapped as a raw-text finding", modelParseFallbacks.Load())
	writeCounter(&buf, "review_lint_issues_total", "Lint issues returned to callers", lintIssuesReturned.Load())
	writeCounter(&buf, "review_ai_findings_total", "AI findings returned to callers", aiFindingsReturned.Load())
	writeHistogram(&buf, "review_duration_ms", "Review duration in milliseconds", reviewDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

// Observe places value in the first bucket whose bound holds it.
func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			return
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

// writeHistogram emits cumulative buckets as Prometheus expects.
func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
