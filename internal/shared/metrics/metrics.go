package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
)

// Facet call outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeEmpty    = "empty"
	OutcomeFailed   = "failed"
	OutcomeFallback = "fallback"
)

var (
	facetCalls    = newCounterVec()
	requests      = newCounterVec()
	httpRequests  = newCounterVec()
	facetDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000})
)

// IncFacet counts one completion call for a facet by outcome.
func IncFacet(facet, outcome string) {
	facetCalls.Inc(labelPair{"facet", facet}, labelPair{"outcome", outcome})
}

// IncRequest counts one request by kind (analyze, rebuild, checkout, export, panic) and outcome.
func IncRequest(kind, outcome string) {
	requests.Inc(labelPair{"kind", kind}, labelPair{"outcome", outcome})
}

// ObserveHTTP counts one served HTTP request.
func ObserveHTTP(method, route string, status int) {
	httpRequests.Inc(labelPair{"method", method}, labelPair{"route", route}, labelPair{"status", strconv.Itoa(status)})
}

// ObserveFacetDurationMs records a facet call duration in milliseconds.
func ObserveFacetDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	facetDuration.Observe(value)
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
	writeCounterVec(&buf, "facet_calls_total", "Completion calls per facet and outcome", facetCalls.Snapshot())
	writeCounterVec(&buf, "requests_total", "Requests per kind and outcome", requests.Snapshot())
	writeCounterVec(&buf, "http_requests_total", "HTTP requests by method, route and status", httpRequests.Snapshot())
	writeHistogram(&buf, "facet_duration_ms", "Facet completion duration in milliseconds", facetDuration.Snapshot())
	return buf.String()
}

type labelPair struct {
	name  string
	value string
}

type counterVec struct {
	mu     sync.Mutex
	values map[string]uint64
}

func newCounterVec() *counterVec {
	return &counterVec{values: map[string]uint64{}}
}

func (v *counterVec) Inc(labels ...labelPair) {
	var b bytes.Buffer
	for i, l := range labels {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%s=%q", l.name, l.value)
	}
	v.mu.Lock()
	v.values[b.String()]++
	v.mu.Unlock()
}

func (v *counterVec) Get(labels ...labelPair) uint64 {
	var b bytes.Buffer
	for i, l := range labels {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%s=%q", l.name, l.value)
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.values[b.String()]
}

func (v *counterVec) Snapshot() map[string]uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make(map[string]uint64, len(v.values))
	for k, n := range v.values {
		out[k] = n
	}
	return out
}

// RequestCount returns the current count for a request kind and outcome.
func RequestCount(kind, outcome string) uint64 {
	return requests.Get(labelPair{"kind", kind}, labelPair{"outcome", outcome})
}

// FacetCount returns the current count for a facet outcome.
func FacetCount(facet, outcome string) uint64 {
	return facetCalls.Get(labelPair{"facet", facet}, labelPair{"outcome", outcome})
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
			break
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

func writeCounterVec(buf *bytes.Buffer, name, help string, values map[string]uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(buf, "%s{%s} %d\n", name, k, values[k])
	}
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
