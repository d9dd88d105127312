// Package cache is the SQLite-backed build cache. Rendered pages are
// stored keyed by source path and content hash so watch-mode rebuilds
// only re-render what changed.
package cache

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Cache wraps the build-cache database.
type Cache struct {
	db   *sql.DB
	path string
}

// Open creates or opens the cache database at the given path.
func Open(path string) (*Cache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging cache: %w", err)
	}

	c := &Cache{db: db, path: path}
	if err := c.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating cache: %w", err)
	}
	return c, nil
}

// OpenMemory creates an in-memory cache, useful for tests.
func OpenMemory() (*Cache, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory cache: %w", err)
	}
	c := &Cache{db: db, path: ":memory:"}
	if err := c.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating cache: %w", err)
	}
	return c, nil
}

func (c *Cache) migrate() error {
	_, err := c.db.Exec(schema)
	return err
}

const schema = `
CREATE TABLE IF NOT EXISTS pages (
    path        TEXT PRIMARY KEY,
    hash        TEXT NOT NULL,
    page        BLOB NOT NULL,
    rendered_at TIMESTAMP NOT NULL
);
`

// Get returns the cached render for path if its hash still matches.
func (c *Cache) Get(path, hash string) ([]byte, bool, error) {
	var storedHash string
	var page []byte
	err := c.db.QueryRow(`SELECT hash, page FROM pages WHERE path = ?`, path).Scan(&storedHash, &page)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading cache entry: %w", err)
	}
	if storedHash != hash {
		return nil, false, nil
	}
	return page, true, nil
}

// Put stores or replaces the cached render for path.
func (c *Cache) Put(path, hash string, page []byte) error {
	_, err := c.db.Exec(`
		INSERT INTO pages (path, hash, page, rendered_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET hash = excluded.hash, page = excluded.page, rendered_at = excluded.rendered_at`,
		path, hash, page, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("writing cache entry: %w", err)
	}
	return nil
}

// Prune drops entries whose source paths are no longer present.
func (c *Cache) Prune(live map[string]bool) error {
	rows, err := c.db.Query(`SELECT path FROM pages`)
	if err != nil {
		return fmt.Errorf("listing cache entries: %w", err)
	}
	defer rows.Close()

	var stale []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return err
		}
		if !live[p] {
			stale = append(stale, p)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, p := range stale {
		if _, err := c.db.Exec(`DELETE FROM pages WHERE path = ?`, p); err != nil {
			return fmt.Errorf("pruning %s: %w", p, err)
		}
	}
	return nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}
