// Package sqliteledger provides a SQLite-backed ledger. Each Update maps
// to one SQL transaction, committed only when the callback succeeds.
package sqliteledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/regnet-io/regnet/internal/ledger"
)

const schema = `
CREATE TABLE IF NOT EXISTS records (
    k BLOB PRIMARY KEY,
    v BLOB NOT NULL
) WITHOUT ROWID;
`

// Ledger is a SQLite-backed ledger.
type Ledger struct {
	sqlDB *sql.DB
}

// Open opens a SQLite ledger at the provided path and ensures the schema.
func Open(path string) (*Ledger, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("ledger path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return &Ledger{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (l *Ledger) Close() error {
	if l == nil || l.sqlDB == nil {
		return nil
	}
	return l.sqlDB.Close()
}

// View runs fn in a transaction that is always rolled back, so reads are
// consistent and writes cannot leak.
func (l *Ledger) View(ctx context.Context, fn func(ledger.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if l == nil || l.sqlDB == nil {
		return fmt.Errorf("ledger is not configured")
	}

	sqlTx, err := l.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		_ = sqlTx.Rollback()
	}()

	return fn(&tx{ctx: ctx, sqlTx: sqlTx})
}

// Update runs fn in a read-write transaction, committing iff fn succeeds.
func (l *Ledger) Update(ctx context.Context, fn func(ledger.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if l == nil || l.sqlDB == nil {
		return fmt.Errorf("ledger is not configured")
	}

	sqlTx, err := l.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(&tx{ctx: ctx, sqlTx: sqlTx, writable: true}); err != nil {
		_ = sqlTx.Rollback()
		return err
	}
	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

type tx struct {
	ctx      context.Context
	sqlTx    *sql.Tx
	writable bool
}

func (t *tx) Get(key ledger.Key) ([]byte, error) {
	var value []byte
	err := t.sqlTx.QueryRowContext(t.ctx,
		`SELECT v FROM records WHERE k = ?`, []byte(key)).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ledger.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read record: %w", err)
	}
	if value == nil {
		value = []byte{}
	}
	return value, nil
}

func (t *tx) Put(key ledger.Key, value []byte) error {
	if !t.writable {
		return fmt.Errorf("put inside a read-only transaction")
	}
	if value == nil {
		value = []byte{}
	}
	_, err := t.sqlTx.ExecContext(t.ctx,
		`INSERT INTO records (k, v) VALUES (?, ?)
		 ON CONFLICT (k) DO UPDATE SET v = excluded.v`,
		[]byte(key), value)
	if err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return nil
}
