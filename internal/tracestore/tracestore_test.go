package tracestore

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

func TestOpenRecordCloseWritesRows(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "trace.db")
	ctx := context.Background()

	s, err := Open(ctx, DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if s.RunID() == "" {
		t.Fatal("RunID() should be non-empty after Open")
	}

	s.Record(1, 2, '+', time.Now())
	s.Record(3, 4, '.', time.Now())

	if err := s.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	db, err := sql.Open(DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("reopening db: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM funge_trace WHERE run_id = ?`, s.RunID()).Scan(&count); err != nil {
		t.Fatalf("querying row count: %v", err)
	}
	if count != 2 {
		t.Fatalf("row count = %d, want 2", count)
	}
}

func TestRecordDropsUnderBackpressureWithoutBlocking(t *testing.T) {
	// A Store whose flush loop was never started (built directly rather
	// than via Open) has a full buffer after its capacity worth of
	// records; Record must still return immediately rather than block.
	s := &Store{
		runID:  "test-run",
		events: make(chan Event, 1),
	}
	s.Record(0, 0, '@', time.Now())
	done := make(chan struct{})
	go func() {
		s.Record(0, 0, '@', time.Now())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Record blocked instead of dropping the event under backpressure")
	}
}
