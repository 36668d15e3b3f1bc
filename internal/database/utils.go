package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"WooWithErp/pkg/logging"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

var (
	ErrNotFound       = errors.New("document not found")
	ErrDuplicateEntry = errors.New("duplicate entry")
)

const timeLayout = "2006-01-02 15:04:05"

func Exists(name string) bool {
	if _, err := os.Stat(name); err != nil {
		if os.IsNotExist(err) {
			return false
		}
	}
	return true
}

// Store owns the connection. Queries outside of InTx run on the pool directly.
type Store struct {
	*Queries
	db *sqlx.DB
}

// Queries are the document operations, bound either to the pool or to a transaction.
type Queries struct {
	q   sqlx.ExtContext
	now func() time.Time
}

// Open connects to the sqlite database and applies the schema.
func Open(dsn string) (*Store, error) {
	logger := logging.GetLogger()
	logger.Debug("Start database.Open")
	defer logger.Debug("End database.Open")

	if !strings.Contains(dsn, ":memory:") && !Exists(dsn) {
		logger.Info(dsn, " not exist, creating")
	}

	db, err := sqlx.Connect("sqlite3", withPragmas(dsn))
	if err != nil {
		return nil, errors.Wrapf(err, "failed sqlx.Connect(sqlite3, %s)", dsn)
	}
	// one writer at a time: every webhook event is a single transaction
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(DB_SCHEMA); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to apply DB_SCHEMA")
	}
	if err := ensureVersion(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		Queries: &Queries{q: db, now: time.Now},
		db:      db,
	}, nil
}

const SCHEMA_VERSION = 1

func ensureVersion(db *sqlx.DB) error {
	var count int
	if err := db.Get(&count, "SELECT COUNT(*) FROM Version WHERE Name=$1;", "schema"); err != nil {
		return errors.Wrap(err, "failed SELECT Version")
	}
	if count > 0 {
		return nil
	}
	if _, err := db.Exec("INSERT INTO Version (Name, Version) VALUES ($1, $2);", "schema", SCHEMA_VERSION); err != nil {
		return errors.Wrap(err, "failed INSERT Version")
	}
	return nil
}

func withPragmas(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=1&_busy_timeout=5000"
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SetClock replaces the time source used for Created/Modified stamps.
func (s *Store) SetClock(now func() time.Time) {
	s.Queries.now = now
}

// InTx runs fn inside one transaction; any error or panic rolls everything back.
func (s *Store) InTx(ctx context.Context, fn func(q *Queries) error) (err error) {
	logger := logging.GetLogger()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed BeginTxx")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.Errorf("failed in Rollback(); %v", rbErr)
			} else {
				logger.Info("Rollback() is done")
			}
		}
	}()

	if err = fn(&Queries{q: tx, now: s.Queries.now}); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return errors.Wrap(err, "failed Commit")
	}
	return nil
}

func (q *Queries) stamp() string {
	return q.now().Format(timeLayout)
}

func (q *Queries) exec(ctx context.Context, query string, args ...interface{}) error {
	if _, err := q.q.ExecContext(ctx, query, args...); err != nil {
		return mapError(err, query)
	}
	return nil
}

func (q *Queries) get(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	if err := sqlx.GetContext(ctx, q.q, dest, query, args...); err != nil {
		return mapError(err, query)
	}
	return nil
}

func (q *Queries) selectAll(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	if err := sqlx.SelectContext(ctx, q.q, dest, query, args...); err != nil {
		return mapError(err, query)
	}
	return nil
}

func mapError(err error, query string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return errors.WithStack(ErrNotFound)
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		if sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey {
			return errors.Wrapf(ErrDuplicateEntry, "%v; query:\n%s", sqliteErr, query)
		}
	}
	return errors.Wrapf(err, "failed query to dbsqlite; query:\n%s", query)
}

// IsNotFound reports whether err means the looked up document does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicate reports whether err is a unique constraint violation.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicateEntry)
}

// Table names a document table that is keyed by a Name column.
type Table string

const (
	TableContact  Table = "Contact"
	TableCustomer Table = "Customer"
	TableAddress  Table = "Address"
)

// UniqueName returns base, or base-1, base-2... whichever is free first.
func (q *Queries) UniqueName(ctx context.Context, table Table, base string) (string, error) {
	name := base
	for i := 1; ; i++ {
		var count int
		query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE Name=$1;", table)
		if err := q.get(ctx, &count, query, name); err != nil {
			return "", err
		}
		if count == 0 {
			return name, nil
		}
		name = fmt.Sprintf("%s-%d", base, i)
	}
}
