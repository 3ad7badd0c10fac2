package metrics

import (
	"database/sql"
	"log/slog"
	"runtime"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/robfig/cron/v3"
)

// PoolStats is the connection pool view shared by pgxpool and database/sql.
type PoolStats struct {
	InUse int
	Idle  int
	Open  int
	Max   int
}

type PoolStatsFunc func() PoolStats

func PgxPoolStats(pool *pgxpool.Pool) PoolStatsFunc {
	return func() PoolStats {
		stat := pool.Stat()
		return PoolStats{
			InUse: int(stat.AcquiredConns()),
			Idle:  int(stat.IdleConns()),
			Open:  int(stat.TotalConns()),
			Max:   int(stat.MaxConns()),
		}
	}
}

func SQLPoolStats(db *sql.DB) PoolStatsFunc {
	return func() PoolStats {
		stat := db.Stats()
		return PoolStats{
			InUse: stat.InUse,
			Idle:  stat.Idle,
			Open:  stat.OpenConnections,
			Max:   stat.MaxOpenConnections,
		}
	}
}

type CacheStats interface {
	Stats() (hits, misses uint64, ratio float64)
}

// InfraSampler records pool, cache and runtime gauges on a cron schedule.
type InfraSampler struct {
	recorder *Recorder
	pool     PoolStatsFunc
	cache    CacheStats
	logger   *slog.Logger
	cron     *cron.Cron
	now      func() time.Time
}

// NewInfraSampler builds a sampler. pool and cache may be nil.
func NewInfraSampler(recorder *Recorder, pool PoolStatsFunc, cache CacheStats, logger *slog.Logger) *InfraSampler {
	return &InfraSampler{
		recorder: recorder,
		pool:     pool,
		cache:    cache,
		logger:   logger,
		cron:     cron.New(),
		now:      time.Now,
	}
}

// Start schedules sampling with a cron expression such as "@every 10s".
func (s *InfraSampler) Start(schedule string) error {
	if _, err := s.cron.AddFunc(schedule, s.Sample); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("infra metrics sampling scheduled", slog.String("schedule", schedule))
	return nil
}

// Stop waits for a running sample to finish.
func (s *InfraSampler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *InfraSampler) Sample() {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	m := InfraMetric{
		Time:        s.now().UTC(),
		Goroutines:  runtime.NumGoroutine(),
		HeapAllocMB: float64(memStats.HeapAlloc) / 1024 / 1024,
	}
	if s.pool != nil {
		stat := s.pool()
		m.ConnsInUse = stat.InUse
		m.ConnsIdle = stat.Idle
		m.ConnsOpen = stat.Open
		m.ConnsMax = stat.Max
	}
	if s.cache != nil {
		hits, misses, ratio := s.cache.Stats()
		m.CacheHits = int64(hits)
		m.CacheMisses = int64(misses)
		m.CacheHitRatio = ratio
	}
	s.recorder.RecordInfra(m)
}
