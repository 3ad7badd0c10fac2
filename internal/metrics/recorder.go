package metrics

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"encly/internal/config"
)

// CopyFromer is the bulk-load subset of *pgxpool.Pool used to persist batches.
type CopyFromer interface {
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// sink buffers metrics of one kind and writes them to a single table.
type sink[T any] struct {
	kind    string
	table   string
	columns []string
	row     func(T) []any
	ch      chan T
}

func (s *sink[T]) offer(m T, logger *slog.Logger) {
	select {
	case s.ch <- m:
	default:
		logger.Warn(s.kind + " metrics buffer full, dropping metric")
	}
}

type Recorder struct {
	db           CopyFromer
	logger       *slog.Logger
	cfg          *config.MetricsConfig
	enabled      bool
	http         *sink[HTTPMetric]
	business     *sink[BusinessMetric]
	infra        *sink[InfraMetric]
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

// NewRecorder returns a recorder writing to db. A nil db disables recording,
// which is the case for backends without a metrics schema.
func NewRecorder(db CopyFromer, cfg *config.MetricsConfig, logger *slog.Logger) *Recorder {
	return &Recorder{
		db:         db,
		logger:     logger,
		cfg:        cfg,
		enabled:    cfg.Enabled && db != nil,
		shutdownCh: make(chan struct{}),
		http: &sink[HTTPMetric]{
			kind:    "http",
			table:   "http_metrics",
			columns: []string{"time", "request_id", "method", "route", "status_code", "duration_ms", "client_ip", "error"},
			row: func(m HTTPMetric) []any {
				return []any{m.Time, m.RequestID, m.Method, m.Route, m.StatusCode, m.DurationMs, m.ClientIP, m.Error}
			},
			ch: make(chan HTTPMetric, cfg.BufferSize),
		},
		business: &sink[BusinessMetric]{
			kind:    "business",
			table:   "business_metrics",
			columns: []string{"time", "metric_name", "value", "labels"},
			row: func(m BusinessMetric) []any {
				labelsJSON, _ := json.Marshal(m.Labels)
				return []any{m.Time, m.Name, m.Value, labelsJSON}
			},
			ch: make(chan BusinessMetric, cfg.BufferSize),
		},
		infra: &sink[InfraMetric]{
			kind:  "infra",
			table: "infra_metrics",
			columns: []string{
				"time", "conns_in_use", "conns_idle", "conns_open", "conns_max",
				"cache_hits", "cache_misses", "cache_hit_ratio", "goroutines", "heap_alloc_mb",
			},
			row: func(m InfraMetric) []any {
				return []any{
					m.Time, m.ConnsInUse, m.ConnsIdle, m.ConnsOpen, m.ConnsMax,
					m.CacheHits, m.CacheMisses, m.CacheHitRatio, m.Goroutines, m.HeapAllocMB,
				}
			},
			ch: make(chan InfraMetric, cfg.BufferSize),
		},
	}
}

func (r *Recorder) Enabled() bool {
	return r.enabled
}

func (r *Recorder) RecordHTTP(m HTTPMetric) {
	if !r.enabled {
		return
	}
	r.http.offer(m, r.logger)
}

func (r *Recorder) RecordBusiness(name string, value float64, labels map[string]string) {
	if !r.enabled {
		return
	}
	r.business.offer(BusinessMetric{
		Time:   time.Now().UTC(),
		Name:   name,
		Value:  value,
		Labels: labels,
	}, r.logger)
}

func (r *Recorder) RecordInfra(m InfraMetric) {
	if !r.enabled {
		return
	}
	r.infra.offer(m, r.logger)
}

func (r *Recorder) Start(ctx context.Context) {
	if !r.enabled {
		r.logger.Info("metrics recording disabled")
		return
	}

	flushInterval := time.Duration(r.cfg.FlushInterval) * time.Millisecond

	r.wg.Add(3)
	go flushLoop(ctx, r, r.http, flushInterval)
	go flushLoop(ctx, r, r.business, flushInterval)
	go flushLoop(ctx, r, r.infra, flushInterval)

	r.logger.Info("metrics recorder started",
		slog.Int("buffer_size", r.cfg.BufferSize),
		slog.Int("flush_interval_ms", r.cfg.FlushInterval))
}

// Close stops the flush loops after draining buffered metrics.
func (r *Recorder) Close() {
	r.shutdownOnce.Do(func() {
		close(r.shutdownCh)
		r.wg.Wait()
	})
}

func flushLoop[T any](ctx context.Context, r *Recorder, s *sink[T], interval time.Duration) {
	defer r.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	batch := make([]T, 0, r.cfg.BufferSize)

	for {
		select {
		case <-ctx.Done():
			drainAndFlush(r, s, batch)
			return
		case <-r.shutdownCh:
			drainAndFlush(r, s, batch)
			return
		case m := <-s.ch:
			batch = append(batch, m)
			if len(batch) >= r.cfg.FlushThreshold {
				writeBatch(ctx, r, s, batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				writeBatch(ctx, r, s, batch)
				batch = batch[:0]
			}
		}
	}
}

func drainAndFlush[T any](r *Recorder, s *sink[T], batch []T) {
	for {
		select {
		case m := <-s.ch:
			batch = append(batch, m)
		default:
			if len(batch) > 0 {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				writeBatch(ctx, r, s, batch)
				cancel()
			}
			return
		}
	}
}

func writeBatch[T any](ctx context.Context, r *Recorder, s *sink[T], batch []T) {
	if len(batch) == 0 {
		return
	}

	rows := make([][]any, len(batch))
	for i, m := range batch {
		rows[i] = s.row(m)
	}

	_, err := r.db.CopyFrom(ctx, pgx.Identifier{s.table}, s.columns, pgx.CopyFromRows(rows))
	if err != nil {
		r.logger.Error("failed to write "+s.kind+" metrics batch", slog.String("error", err.Error()))
	}
}
