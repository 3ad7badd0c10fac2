package metrics

import "time"

// Business counter names.
const (
	LinksCreated      = "links_created"
	CodeCollisions    = "code_collisions"
	Redirects         = "redirects"
	ExpiredHits       = "expired_hits"
	NotFound          = "not_found"
	ClickLogFailed    = "click_log_failed"
	CacheHit          = "cache_hit"
	CacheMiss         = "cache_miss"
	ReferrerRedirects = "referrer_redirects"
)

// HTTPMetric is one row of http_metrics. Route is the registered route
// template, never the raw path, so each short code does not become its own series.
type HTTPMetric struct {
	Time       time.Time
	RequestID  string
	Method     string
	Route      string
	StatusCode int
	DurationMs float64
	ClientIP   string
	Error      string
}

type BusinessMetric struct {
	Time   time.Time
	Name   string
	Value  float64
	Labels map[string]string
}

// InfraMetric is a point-in-time sample of the store connection pool, the
// link cache and the Go runtime. Cache fields stay zero when caching is off.
type InfraMetric struct {
	Time          time.Time
	ConnsInUse    int
	ConnsIdle     int
	ConnsOpen     int
	ConnsMax      int
	CacheHits     int64
	CacheMisses   int64
	CacheHitRatio float64
	Goroutines    int
	HeapAllocMB   float64
}
