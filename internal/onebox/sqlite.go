package onebox

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/conneroisu/prettytext/internal/errors"
	"github.com/conneroisu/prettytext/internal/logging"
)

const schema = `
CREATE TABLE IF NOT EXISTS onebox_cache (
	url        TEXT PRIMARY KEY,
	html       TEXT NOT NULL,
	fetched_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS onebox_failures (
	url       TEXT PRIMARY KEY,
	failed_at INTEGER NOT NULL
);`

// SQLiteStore persists previews between runs. Store methods cannot report
// errors, so database failures are logged and treated as cache misses.
type SQLiteStore struct {
	db     *sql.DB
	logger logging.Logger
}

// OpenSQLiteStore opens (creating if needed) the cache database at path.
// ":memory:" gives a private in-memory cache.
func OpenSQLiteStore(path string, logger logging.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = logging.Nop()
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.NewIOError(errors.ErrCodeStore, "open onebox cache", err).
			WithContext("path", path).
			WithComponent("onebox")
	}
	// A single connection keeps ":memory:" databases shared and serialises
	// writers.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, errors.NewIOError(errors.ErrCodeStore, fmt.Sprintf("apply %q", pragma), err).
				WithComponent("onebox")
		}
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errors.NewIOError(errors.ErrCodeStore, "create onebox tables", err).
			WithComponent("onebox")
	}

	return &SQLiteStore{db: db, logger: logger.WithComponent("onebox_store")}, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Get(url string) (string, bool) {
	var html string
	err := s.db.QueryRow(`SELECT html FROM onebox_cache WHERE url = ?`, NormalizeURL(url)).Scan(&html)
	if err == sql.ErrNoRows {
		return "", false
	}
	if err != nil {
		s.warn(err, "read cached preview", url)
		return "", false
	}
	return html, true
}

func (s *SQLiteStore) Failed(url string) bool {
	var one int
	err := s.db.QueryRow(`SELECT 1 FROM onebox_failures WHERE url = ?`, NormalizeURL(url)).Scan(&one)
	if err == sql.ErrNoRows {
		return false
	}
	if err != nil {
		s.warn(err, "read failure entry", url)
		return false
	}
	return true
}

func (s *SQLiteStore) Put(url, html string) {
	key := NormalizeURL(url)
	err := s.tx(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT OR REPLACE INTO onebox_cache (url, html, fetched_at) VALUES (?, ?, ?)`,
			key, html, time.Now().Unix()); err != nil {
			return err
		}
		_, err := tx.Exec(`DELETE FROM onebox_failures WHERE url = ?`, key)
		return err
	})
	if err != nil {
		s.warn(err, "store preview", url)
	}
}

func (s *SQLiteStore) PutFailure(url string) {
	key := NormalizeURL(url)
	err := s.tx(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT OR REPLACE INTO onebox_failures (url, failed_at) VALUES (?, ?)`,
			key, time.Now().Unix()); err != nil {
			return err
		}
		_, err := tx.Exec(`DELETE FROM onebox_cache WHERE url = ?`, key)
		return err
	})
	if err != nil {
		s.warn(err, "store failure", url)
	}
}

func (s *SQLiteStore) Reset() {
	err := s.tx(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM onebox_cache`); err != nil {
			return err
		}
		_, err := tx.Exec(`DELETE FROM onebox_failures`)
		return err
	})
	if err != nil {
		s.warn(err, "reset cache", "")
	}
}

// Len returns the number of cached previews and recorded failures.
func (s *SQLiteStore) Len() (cached, failed int, err error) {
	if err = s.db.QueryRow(`SELECT COUNT(*) FROM onebox_cache`).Scan(&cached); err != nil {
		return 0, 0, err
	}
	if err = s.db.QueryRow(`SELECT COUNT(*) FROM onebox_failures`).Scan(&failed); err != nil {
		return 0, 0, err
	}
	return cached, failed, nil
}

func (s *SQLiteStore) tx(fn func(*sql.Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (s *SQLiteStore) warn(err error, msg, url string) {
	s.logger.Warn(context.Background(),
		errors.NewIOError(errors.ErrCodeStore, msg, err).WithComponent("onebox"),
		"onebox cache unavailable", "url", url)
}
