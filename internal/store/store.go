package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a row scoped to a profile does not exist.
var ErrNotFound = errors.New("not found")

// Store owns the SQLite connection and hands out repositories.
type Store struct {
	db  *sql.DB
	drv *entsql.Driver
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and runs auto-migration.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", withPragmas(dsn))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// A single connection keeps per-connection pragmas in force.
	db.SetMaxOpenConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	if err := migrate(context.Background(), drv); err != nil {
		drv.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	return &Store{db: db, drv: drv}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.drv.Close()
}

func (s *Store) QuizRepo() QuizRepo {
	return &quizRepo{db: s.db}
}

func (s *Store) FlashcardRepo() FlashcardRepo {
	return &flashcardRepo{db: s.db}
}

func (s *Store) LimitRepo() LimitRepo {
	return &limitRepo{db: s.db}
}

func (s *Store) EventRepo() EventRepo {
	return &eventRepo{db: s.db}
}

// ResetProfile deletes every quiz and flashcard owned by userID and zeroes
// its usage counters in one transaction. Limits themselves are kept.
func (s *Store) ResetProfile(ctx context.Context, userID string) (quizRows, flashcards int, err error) {
	err = inTx(ctx, s.db, func(tx *sql.Tx) error {
		var err error
		if quizRows, err = (&quizRepo{db: tx}).DeleteAll(ctx, userID); err != nil {
			return err
		}
		if flashcards, err = (&flashcardRepo{db: tx}).DeleteAll(ctx, userID); err != nil {
			return err
		}
		return (&limitRepo{db: tx}).ResetUsage(ctx, userID)
	})
	if err != nil {
		return 0, 0, fmt.Errorf("reset profile %s: %w", userID, err)
	}
	return quizRows, flashcards, nil
}

// builder returns an ent SQL builder bound to the SQLite dialect.
func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// querySpec is satisfied by every ent SQL builder.
type querySpec interface {
	Query() (string, []any)
}

func execSpec(ctx context.Context, q querier, spec querySpec) (sql.Result, error) {
	query, args := spec.Query()
	return q.ExecContext(ctx, query, args...)
}

func querySpecRows(ctx context.Context, q querier, spec querySpec) (*sql.Rows, error) {
	query, args := spec.Query()
	return q.QueryContext(ctx, query, args...)
}

func queryRowSpec(ctx context.Context, q querier, spec querySpec) *sql.Row {
	query, args := spec.Query()
	return q.QueryRowContext(ctx, query, args...)
}

// inTx runs fn in a transaction, rolling back when fn fails.
func inTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// withPragmas appends modernc connection pragmas so every new connection
// enforces foreign keys, which the ent migrator requires.
func withPragmas(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. LEARNINGHUB_DB environment variable
// 2. $XDG_DATA_HOME/learninghub/learninghub.db
// 3. ~/.local/share/learninghub/learninghub.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("LEARNINGHUB_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "learninghub", "learninghub.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
