package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang/snappy"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/cognicore/wordstats/pkg/wordstats/analytics"
	"github.com/cognicore/wordstats/pkg/wordstats/internalerr"
	"github.com/cognicore/wordstats/pkg/wordstats/report"
	"github.com/cognicore/wordstats/pkg/wordstats/store"
)

// Options configures the SQLite store
type Options struct {
	Logger zerolog.Logger
}

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db  *sql.DB
	log zerolog.Logger
}

// OpenSQLite opens a SQLite database with WAL mode enabled.
// Logging is disabled unless Options carries a logger.
func OpenSQLite(ctx context.Context, path string, opts ...Options) (store.Store, error) {
	o := Options{Logger: zerolog.Nop()}
	if len(opts) > 0 {
		o = opts[0]
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	o.Logger.Debug().Str("path", path).Msg("report store opened")
	return &sqliteStore{db: db, log: o.Logger}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS reports (
	id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	source TEXT,
	total_words INTEGER NOT NULL,
	sentiment REAL NOT NULL,
	reading_ease REAL NOT NULL,
	payload BLOB NOT NULL
);

CREATE TABLE IF NOT EXISTS report_words (
	report_id TEXT NOT NULL,
	word TEXT NOT NULL,
	count INTEGER NOT NULL,
	PRIMARY KEY(report_id, word),
	FOREIGN KEY(report_id) REFERENCES reports(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_report_words_word ON report_words(word);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveReport inserts or replaces a report. The full report is stored as
// snappy-compressed JSON; the word table is kept alongside for aggregation.
func (s *sqliteStore) SaveReport(ctx context.Context, r report.Report) error {
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("save report: %w: empty id", internalerr.ErrInvalidInput)
	}

	raw, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode report %s: %w", r.ID, err)
	}
	payload := snappy.Encode(nil, raw)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const stmt = `
INSERT INTO reports (id, created_at, source, total_words, sentiment, reading_ease, payload)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	created_at=excluded.created_at,
	source=excluded.source,
	total_words=excluded.total_words,
	sentiment=excluded.sentiment,
	reading_ease=excluded.reading_ease,
	payload=excluded.payload;
`
	_, err = tx.ExecContext(ctx, stmt,
		r.ID,
		r.CreatedAt.UTC().Format(time.RFC3339Nano),
		r.Source,
		r.Result.TotalWords,
		r.Result.SentimentScore,
		r.Result.Readability.FleschReadingEase,
		payload,
	)
	if err != nil {
		return err
	}

	if err := replaceReportWords(ctx, tx, r.ID, r.Result.WordFrequencies); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.log.Debug().
		Str("id", r.ID).
		Str("source", r.Source).
		Int("payload_bytes", len(payload)).
		Int("json_bytes", len(raw)).
		Msg("report saved")
	return nil
}

func replaceReportWords(ctx context.Context, tx *sql.Tx, id string, rows []analytics.WordFrequency) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM report_words WHERE report_id=?`, id); err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO report_words (report_id, word, count) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx, id, row.Text, row.Value); err != nil {
			return err
		}
	}
	return nil
}

// GetReport loads one report by ID
func (s *sqliteStore) GetReport(ctx context.Context, id string) (report.Report, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM reports WHERE id=?`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return report.Report{}, fmt.Errorf("report %s: %w", id, internalerr.ErrNotFound)
	}
	if err != nil {
		return report.Report{}, err
	}
	return decodeReport(id, payload)
}

// ListReports returns the newest reports first
func (s *sqliteStore) ListReports(ctx context.Context, limit int) ([]report.Report, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	rows, err := s.db.QueryContext(ctx, `SELECT id, payload FROM reports ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []report.Report
	for rows.Next() {
		var id string
		var payload []byte
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, err
		}
		r, err := decodeReport(id, payload)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// WordTotals sums word counts across all stored reports
func (s *sqliteStore) WordTotals(ctx context.Context, limit int) ([]analytics.WordFrequency, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT word, SUM(count) FROM report_words GROUP BY word`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[string]int)
	for rows.Next() {
		var word string
		var n int
		if err := rows.Scan(&word, &n); err != nil {
			return nil, err
		}
		totals[word] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return store.SortTotals(totals, limit), nil
}

func decodeReport(id string, payload []byte) (report.Report, error) {
	raw, err := snappy.Decode(nil, payload)
	if err != nil {
		return report.Report{}, fmt.Errorf("decompress report %s: %w", id, err)
	}
	var r report.Report
	if err := json.Unmarshal(raw, &r); err != nil {
		return report.Report{}, fmt.Errorf("decode report %s: %w", id, err)
	}
	return r, nil
}
