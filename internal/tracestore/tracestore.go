// Package tracestore optionally records a run's executed instructions to
// a SQL database for later inspection, adapted from the teacher's
// internal/database/database.go and db_manager.go: same
// open-one-of-several-drivers shape and the same pattern of batching
// writes behind a background flush loop, repurposed here from recording
// VM bytecode execution to recording Funge-98 grid-cell visits.
//
// This is an optional diagnostic feature, not part of Funge-Space or any
// fingerprint: a program's semantics never depend on whether a
// tracestore is attached.
package tracestore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	_ "github.com/denisenkom/go-mssqldb"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"
)

// Driver names this store knows how to open, mirroring database.go's
// switch over a configured engine name.
const (
	DriverSQLite   = "sqlite"   // modernc.org/sqlite, pure Go
	DriverSQLite3  = "sqlite3"  // mattn/go-sqlite3, cgo
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverMSSQL    = "sqlserver"
)

// Event is one recorded instruction execution.
type Event struct {
	RunID   string
	Seq     int64
	X, Y    int64
	Instr   byte
	At      time.Time
}

// Store batches Events and flushes them to the underlying database on a
// fixed interval via a background goroutine, same as the teacher's
// db_manager.go write-behind loop.
type Store struct {
	db      *sql.DB
	runID   string
	seq     int64
	events  chan Event
	done    chan struct{}
	flushed chan struct{}
}

// Open connects to driver/dsn, creates the trace table if absent, and
// starts the background flush loop. Callers must call Close when the run
// ends.
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("tracestore: open %s: %w", driver, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("tracestore: ping %s: %w", driver, err)
	}
	const schema = `CREATE TABLE IF NOT EXISTS funge_trace (
		run_id TEXT NOT NULL,
		seq INTEGER NOT NULL,
		x INTEGER NOT NULL,
		y INTEGER NOT NULL,
		instr INTEGER NOT NULL,
		at TIMESTAMP NOT NULL
	)`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("tracestore: create schema: %w", err)
	}

	s := &Store{
		db:      db,
		runID:   uuid.NewString(),
		events:  make(chan Event, 256),
		done:    make(chan struct{}),
		flushed: make(chan struct{}),
	}
	go s.flushLoop(ctx)
	return s, nil
}

// RunID identifies this run's rows in the trace table.
func (s *Store) RunID() string { return s.runID }

// Record enqueues one instruction visit. It never blocks the interpreter
// on database I/O; if the flush loop has fallen behind, Record drops the
// event rather than stall execution.
func (s *Store) Record(x, y int64, instr byte, at time.Time) {
	s.seq++
	select {
	case s.events <- Event{RunID: s.runID, Seq: s.seq, X: x, Y: y, Instr: instr, At: at}:
	default:
	}
}

func (s *Store) flushLoop(ctx context.Context) {
	defer close(s.flushed)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	var batch []Event
	flush := func() {
		if len(batch) == 0 {
			return
		}
		if err := s.writeBatch(ctx, batch); err == nil {
			batch = batch[:0]
		}
	}

	for {
		select {
		case e := <-s.events:
			batch = append(batch, e)
			if len(batch) >= 64 {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-s.done:
			for {
				select {
				case e := <-s.events:
					batch = append(batch, e)
				default:
					flush()
					return
				}
			}
		}
	}
}

// writeBatch inserts a batch within one transaction, run in a single
// errgroup goroutine whose context is cancelled if the insert fails. The
// writes are sequential and there is no timeout: the flush loop waits
// until the transaction finishes.
func (s *Store) writeBatch(ctx context.Context, batch []Event) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		stmt, err := tx.PrepareContext(ctx, `INSERT INTO funge_trace (run_id, seq, x, y, instr, at) VALUES (?, ?, ?, ?, ?, ?)`)
		if err != nil {
			tx.Rollback()
			return err
		}
		defer stmt.Close()
		for _, e := range batch {
			if _, err := stmt.ExecContext(ctx, e.RunID, e.Seq, e.X, e.Y, int(e.Instr), e.At); err != nil {
				tx.Rollback()
				return err
			}
		}
		return tx.Commit()
	})
	return g.Wait()
}

// Close flushes any remaining events and closes the database handle.
func (s *Store) Close() error {
	close(s.done)
	<-s.flushed
	return s.db.Close()
}
