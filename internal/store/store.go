// Package store persists decoded translation results in a SQLite
// translation memory, so repeated requests for the same text skip the
// network entirely.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
	_ "modernc.org/sqlite"

	"github.com/BramscoChill/GoogleTranslateFreeApi/internal"
	"github.com/BramscoChill/GoogleTranslateFreeApi/internal/translator"
)

type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS translation_requests (
		id TEXT PRIMARY KEY,
		source_text TEXT NOT NULL,
		source_lang TEXT NOT NULL,
		target_lang TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	-- translation_memory caches fully decoded results, keyed by the exact
	-- request shape. lite results are stored separately from full ones so a
	-- lite hit never shadows the dictionary extras.
	CREATE TABLE IF NOT EXISTS translation_memory (
		id TEXT PRIMARY KEY,
		source_text TEXT NOT NULL,
		source_lang TEXT NOT NULL,
		target_lang TEXT NOT NULL,
		lite BOOLEAN NOT NULL DEFAULT FALSE,
		result_json TEXT NOT NULL,
		usage_count INTEGER DEFAULT 1,
		last_used TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(source_text, source_lang, target_lang, lite)
	);

	CREATE INDEX IF NOT EXISTS idx_memory_lookup ON translation_memory(source_text, source_lang, target_lang);
	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) SaveRequest(ctx context.Context, req internal.TranslationRequest) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO translation_requests (id, source_text, source_lang, target_lang, created_at) VALUES (?, ?, ?, ?, ?)`,
		req.ID, req.SourceText, req.SourceLang, req.TargetLang, req.Timestamp)
	return err
}

// Get returns the cached result for the request shape, if any. A hit bumps
// the usage counters.
func (s *Store) Get(ctx context.Context, sourceText, sourceLang, targetLang string, lite bool) (*translator.Result, bool, error) {
	key := normalizeText(sourceText)

	var resultJSON string
	err := s.db.QueryRowContext(ctx,
		`SELECT result_json FROM translation_memory WHERE source_text = ? AND source_lang = ? AND target_lang = ? AND lite = ?`,
		key, sourceLang, targetLang, lite).Scan(&resultJSON)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var res translator.Result
	if err := json.Unmarshal([]byte(resultJSON), &res); err != nil {
		return nil, false, fmt.Errorf("corrupt cached result: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`UPDATE translation_memory SET usage_count = usage_count + 1, last_used = ? WHERE source_text = ? AND source_lang = ? AND target_lang = ? AND lite = ?`,
		time.Now(), key, sourceLang, targetLang, lite)
	return &res, true, err
}

// Save stores a decoded result, replacing any previous entry for the same
// request shape.
func (s *Store) Save(ctx context.Context, sourceText, sourceLang, targetLang string, lite bool, res *translator.Result) error {
	resultJSON, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	id := fmt.Sprintf("mem_%d", time.Now().UnixNano())
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO translation_memory (id, source_text, source_lang, target_lang, lite, result_json, usage_count, last_used, created_at) VALUES (?, ?, ?, ?, ?, ?, 1, ?, ?)`,
		id, normalizeText(sourceText), sourceLang, targetLang, lite, string(resultJSON), time.Now(), time.Now())
	return err
}

// MemoryEntry is a row from the translation_memory table.
type MemoryEntry struct {
	ID         string
	SourceText string
	SourceLang string
	TargetLang string
	Lite       bool
	UsageCount int
	LastUsed   time.Time
}

// CacheStats summarises translation memory usage.
type CacheStats struct {
	TotalEntries int
	LiteEntries  int
	TotalUsage   int
}

// ListMemory returns all entries ordered by most recently used.
func (s *Store) ListMemory(ctx context.Context) ([]MemoryEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source_text, source_lang, target_lang, lite, usage_count, last_used FROM translation_memory ORDER BY last_used DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []MemoryEntry
	for rows.Next() {
		var e MemoryEntry
		if err := rows.Scan(&e.ID, &e.SourceText, &e.SourceLang, &e.TargetLang, &e.Lite, &e.UsageCount, &e.LastUsed); err != nil {
			return nil, err
		}
		results = append(results, e)
	}
	return results, rows.Err()
}

// DeleteMemory permanently removes an entry by ID.
func (s *Store) DeleteMemory(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM translation_memory WHERE id = ?`, id)
	return err
}

// ClearMemory removes all entries and returns how many were dropped.
func (s *Store) ClearMemory(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM translation_memory`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Stats returns summary statistics for the translation memory.
func (s *Store) Stats(ctx context.Context) (*CacheStats, error) {
	stats := &CacheStats{}
	err := s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN lite THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(usage_count), 0)
		FROM translation_memory`).Scan(&stats.TotalEntries, &stats.LiteEntries, &stats.TotalUsage)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// normalizeText trims whitespace and applies Unicode NFC normalization for
// consistent cache key comparison.
func normalizeText(text string) string {
	return norm.NFC.String(strings.TrimSpace(text))
}
