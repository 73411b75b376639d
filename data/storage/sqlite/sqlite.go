package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/xhd2015/shabda/data/storage"
	"github.com/xhd2015/shabda/models"
)

type SQLiteStore struct {
	db *sql.DB
}

var _ storage.WordService = (*SQLiteStore)(nil)

func New(filePath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{db: db}

	if err := store.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) createTables() error {
	createWordsTable := `
	CREATE TABLE IF NOT EXISTS words (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		sanskrit TEXT NOT NULL,
		gender TEXT NOT NULL DEFAULT 'unknown',
		english_meanings TEXT NOT NULL DEFAULT '[]',
		hindi_meanings TEXT NOT NULL DEFAULT '[]'
	);`

	createGenderIndex := `CREATE INDEX IF NOT EXISTS idx_words_gender ON words(gender);`

	if _, err := s.db.Exec(createWordsTable); err != nil {
		return err
	}
	if _, err := s.db.Exec(createGenderIndex); err != nil {
		return err
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Import inserts entries in a single transaction. With replace set,
// existing words are removed first.
func (s *SQLiteStore) Import(ctx context.Context, entries []models.DictionaryEntry, replace bool) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if replace {
		if _, err := tx.ExecContext(ctx, "DELETE FROM words"); err != nil {
			return 0, fmt.Errorf("failed to clear words: %w", err)
		}
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO words (sanskrit, gender, english_meanings, hindi_meanings) VALUES (?, ?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	var n int
	for _, entry := range entries {
		if entry.Sanskrit == "" {
			continue
		}
		gender := entry.Gender
		if gender == "" {
			gender = "unknown"
		}
		english, err := encodeList(entry.EnglishMeanings)
		if err != nil {
			return 0, err
		}
		hindi, err := encodeList(entry.HindiMeanings)
		if err != nil {
			return 0, err
		}
		if _, err := stmt.ExecContext(ctx, entry.Sanskrit, gender, english, hindi); err != nil {
			return 0, fmt.Errorf("failed to insert %s: %w", entry.Sanskrit, err)
		}
		n++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}
	return n, nil
}

func (s *SQLiteStore) Stats(ctx context.Context) (*models.StatsSnapshot, error) {
	var total int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM words").Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count words: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, "SELECT gender, COUNT(*) FROM words GROUP BY gender")
	if err != nil {
		return nil, fmt.Errorf("failed to query gender distribution: %w", err)
	}
	defer rows.Close()

	dist := make(map[string]int64)
	for rows.Next() {
		var gender string
		var count int64
		if err := rows.Scan(&gender, &count); err != nil {
			return nil, err
		}
		dist[gender] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &models.StatsSnapshot{
		TotalWords:         &total,
		GenderDistribution: dist,
	}, nil
}

func (s *SQLiteStore) Random(ctx context.Context, count int) ([]*models.WordEntry, error) {
	count = storage.ClampCount(count)
	words, err := s.queryWords(ctx, "SELECT sanskrit, gender, english_meanings, hindi_meanings FROM words ORDER BY RANDOM() LIMIT ?", count)
	if err != nil {
		return nil, fmt.Errorf("failed to query random words: %w", err)
	}
	if len(words) == 0 {
		return nil, &storage.ServerError{Msg: "dictionary is empty, run 'shabda import' first"}
	}
	return words, nil
}

func (s *SQLiteStore) Search(ctx context.Context, query string, options storage.SearchOptions) ([]*models.WordEntry, error) {
	limit := options.Limit
	if limit <= 0 {
		limit = storage.DefaultSearchLimit
	}
	// instr keeps the match case-sensitive, unlike LIKE
	words, err := s.queryWords(ctx, "SELECT sanskrit, gender, english_meanings, hindi_meanings FROM words WHERE instr(sanskrit, ?) > 0 ORDER BY id ASC LIMIT ?", query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search words: %w", err)
	}
	return words, nil
}

func (s *SQLiteStore) queryWords(ctx context.Context, query string, args ...any) ([]*models.WordEntry, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []*models.WordEntry
	for rows.Next() {
		var entry models.DictionaryEntry
		var english, hindi string
		if err := rows.Scan(&entry.Sanskrit, &entry.Gender, &english, &hindi); err != nil {
			return nil, err
		}
		if entry.EnglishMeanings, err = decodeList(english); err != nil {
			return nil, err
		}
		if entry.HindiMeanings, err = decodeList(hindi); err != nil {
			return nil, err
		}
		words = append(words, storage.FormatEntry(entry))
	}
	return words, rows.Err()
}

func encodeList(list []string) (string, error) {
	if list == nil {
		list = []string{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return "", fmt.Errorf("failed to encode meanings: %w", err)
	}
	return string(data), nil
}

func decodeList(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal([]byte(s), &list); err != nil {
		return nil, fmt.Errorf("failed to decode meanings: %w", err)
	}
	return list, nil
}
