package analytics

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Store provides database operations for read counting.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at dbPath.
func NewStore(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create analytics dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open analytics db: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	db.SetConnMaxLifetime(time.Hour)

	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("configure analytics db: %w", err)
	}

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS reads (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			post_id TEXT NOT NULL,
			lang TEXT NOT NULL,
			visitor_id TEXT NOT NULL,
			timestamp DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_reads_timestamp ON reads(timestamp);
		CREATE INDEX IF NOT EXISTS idx_reads_post_id ON reads(post_id);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	return err
}

// GetSetting retrieves a setting value by key. Returns empty string if not found.
func (s *Store) GetSetting(key string) (string, error) {
	var val string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&val)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return val, err
}

// SetSetting stores a setting value by key (upsert).
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(`INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}

// RecordRead stores one read.
func (s *Store) RecordRead(r Read) error {
	_, err := s.db.Exec(`INSERT INTO reads (post_id, lang, visitor_id, timestamp) VALUES (?, ?, ?, ?)`,
		r.PostID, r.Lang, r.VisitorID, r.Timestamp.UTC())
	return err
}

// CountReads returns how many reads postID has.
func (s *Store) CountReads(postID string) (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM reads WHERE post_id = ?`, postID).Scan(&n)
	return n, err
}

// TopPosts returns the most read posts since the given time, most reads first.
func (s *Store) TopPosts(since time.Time, limit int) ([]PostStat, error) {
	rows, err := s.db.Query(`
		SELECT post_id, lang, COUNT(*) AS reads, COUNT(DISTINCT visitor_id) AS visitors
		FROM reads
		WHERE timestamp >= ?
		GROUP BY post_id, lang
		ORDER BY reads DESC, post_id ASC
		LIMIT ?`, since.UTC(), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []PostStat{}
	for rows.Next() {
		var ps PostStat
		if err := rows.Scan(&ps.PostID, &ps.Lang, &ps.Reads, &ps.Visitors); err != nil {
			return nil, err
		}
		stats = append(stats, ps)
	}
	return stats, rows.Err()
}

// CleanupOld removes reads older than the retention period.
func (s *Store) CleanupOld(retentionDays int) error {
	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays)
	if _, err := s.db.Exec(`DELETE FROM reads WHERE timestamp < ?`, cutoff); err != nil {
		return fmt.Errorf("cleanup reads: %w", err)
	}
	return nil
}

// StartCleanupScheduler runs periodic cleanup of old reads. Returns a stop function.
func (s *Store) StartCleanupScheduler(retentionDays int, interval time.Duration) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				if err := s.CleanupOld(retentionDays); err != nil {
					fmt.Fprintf(os.Stderr, "analytics cleanup: %v\n", err)
				}
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
	}
}
