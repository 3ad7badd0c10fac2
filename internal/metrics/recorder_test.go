package metrics_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encly/internal/config"
	"encly/internal/metrics"
)

type copyCall struct {
	table   string
	columns []string
	rows    [][]any
}

type fakeCopier struct {
	mu    sync.Mutex
	calls []copyCall
	err   error
}

func (f *fakeCopier) CopyFrom(_ context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	var rows [][]any
	for rowSrc.Next() {
		vals, err := rowSrc.Values()
		if err != nil {
			return 0, err
		}
		rows = append(rows, vals)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, copyCall{table: tableName[0], columns: columnNames, rows: rows})
	return int64(len(rows)), f.err
}

func (f *fakeCopier) rowsFor(table string) [][]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out [][]any
	for _, c := range f.calls {
		if c.table == table {
			out = append(out, c.rows...)
		}
	}
	return out
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.MetricsConfig {
	return &config.MetricsConfig{
		Enabled:        true,
		BufferSize:     100,
		FlushInterval:  60000,
		FlushThreshold: 1000,
	}
}

func TestRecorder_Disabled(t *testing.T) {
	db := &fakeCopier{}
	cfg := testConfig()
	cfg.Enabled = false

	r := metrics.NewRecorder(db, cfg, testLogger())
	assert.False(t, r.Enabled())
	r.Start(context.Background())
	r.RecordBusiness("redirects", 1, nil)
	r.Close()

	assert.Empty(t, db.calls)
}

func TestRecorder_NilDatabaseDisables(t *testing.T) {
	r := metrics.NewRecorder(nil, testConfig(), testLogger())
	assert.False(t, r.Enabled())

	r.Start(context.Background())
	r.RecordBusiness("redirects", 1, nil)
	r.Close()
}

func TestRecorder_CloseDrainsBuffers(t *testing.T) {
	db := &fakeCopier{}
	r := metrics.NewRecorder(db, testConfig(), testLogger())
	r.Start(context.Background())

	r.RecordHTTP(metrics.HTTPMetric{RequestID: "req-1", Method: "GET", Route: "/:shortCode", StatusCode: 302})
	r.RecordBusiness(metrics.LinksCreated, 1, map[string]string{"source": "batch"})
	r.RecordInfra(metrics.InfraMetric{Goroutines: 12})
	r.Close()

	httpRows := db.rowsFor("http_metrics")
	require.Len(t, httpRows, 1)
	assert.Equal(t, "req-1", httpRows[0][1])
	assert.Equal(t, "GET", httpRows[0][2])
	assert.Equal(t, "/:shortCode", httpRows[0][3])
	assert.Equal(t, 302, httpRows[0][4])

	businessRows := db.rowsFor("business_metrics")
	require.Len(t, businessRows, 1)
	assert.Equal(t, "links_created", businessRows[0][1])
	assert.Equal(t, float64(1), businessRows[0][2])
	assert.JSONEq(t, `{"source":"batch"}`, string(businessRows[0][3].([]byte)))

	infraRows := db.rowsFor("infra_metrics")
	require.Len(t, infraRows, 1)
	assert.Equal(t, 12, infraRows[0][8])
}

func TestRecorder_FlushOnThreshold(t *testing.T) {
	db := &fakeCopier{}
	cfg := testConfig()
	cfg.FlushThreshold = 3

	r := metrics.NewRecorder(db, cfg, testLogger())
	r.Start(context.Background())
	defer r.Close()

	for range 3 {
		r.RecordBusiness("redirects", 1, nil)
	}

	assert.Eventually(t, func() bool {
		return len(db.rowsFor("business_metrics")) == 3
	}, time.Second, 10*time.Millisecond)
}

func TestRecorder_FlushOnInterval(t *testing.T) {
	db := &fakeCopier{}
	cfg := testConfig()
	cfg.FlushInterval = 20

	r := metrics.NewRecorder(db, cfg, testLogger())
	r.Start(context.Background())
	defer r.Close()

	r.RecordBusiness("not_found", 1, nil)

	assert.Eventually(t, func() bool {
		return len(db.rowsFor("business_metrics")) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestRecorder_WriteErrorIsNotFatal(t *testing.T) {
	db := &fakeCopier{err: errors.New("copy failed")}
	r := metrics.NewRecorder(db, testConfig(), testLogger())
	r.Start(context.Background())

	r.RecordBusiness("redirects", 1, nil)
	r.Close()
	r.Close()

	assert.Len(t, db.rowsFor("business_metrics"), 1)
}

func TestRecorder_DropsWhenBufferFull(t *testing.T) {
	db := &fakeCopier{}
	cfg := testConfig()
	cfg.BufferSize = 2

	r := metrics.NewRecorder(db, cfg, testLogger())
	// Not started: nothing consumes the channel.
	for range 5 {
		r.RecordBusiness("redirects", 1, nil)
	}
	r.Start(context.Background())
	r.Close()

	assert.Len(t, db.rowsFor("business_metrics"), 2)
}
