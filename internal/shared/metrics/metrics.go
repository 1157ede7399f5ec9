package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	critiqueStartedTotal   atomic.Uint64
	critiqueCompletedTotal atomic.Uint64
	critiqueFailedTotal    atomic.Uint64
	wireframeUploadsTotal  atomic.Uint64

	// Generation is an in-process pure function, so the interesting range is
	// single-digit milliseconds; the tail buckets catch storage stalls.
	critiqueDuration = newHistogram([]float64{1, 2, 5, 10, 25, 50, 100, 250, 1000, 5000})
)

// IncCritiqueStarted increments the started counter.
func IncCritiqueStarted() {
	critiqueStartedTotal.Add(1)
}

// IncCritiqueCompleted increments the completed counter.
func IncCritiqueCompleted() {
	critiqueCompletedTotal.Add(1)
}

// IncCritiqueFailed increments the failed counter.
func IncCritiqueFailed() {
	critiqueFailedTotal.Add(1)
}

// IncWireframeUploaded increments the upload counter.
func IncWireframeUploaded() {
	wireframeUploadsTotal.Add(1)
}

// ObserveCritiqueDurationMs records a generation duration in milliseconds.
func ObserveCritiqueDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	critiqueDuration.Observe(value)
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
	writeCounter(&buf, "critique_started_total", "Total critiques started", critiqueStartedTotal.Load())
	writeCounter(&buf, "critique_completed_total", "Total critiques completed", critiqueCompletedTotal.Load())
	writeCounter(&buf, "critique_failed_total", "Total critiques failed", critiqueFailedTotal.Load())
	writeCounter(&buf, "wireframe_uploads_total", "Total wireframe uploads", wireframeUploadsTotal.Load())
	writeHistogram(&buf, "critique_duration_ms", "Critique generation duration in milliseconds", critiqueDuration.Snapshot())
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

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
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

// NowMillis returns current time in milliseconds, useful for callers without time utilities.
func NowMillis() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Millisecond)
}
