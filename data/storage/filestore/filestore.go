package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/xhd2015/shabda/data/storage"
	"github.com/xhd2015/shabda/models"
)

// FileStore serves words from a dictionary JSON file, a list of
// models.DictionaryEntry as produced by the dictionary parser.
type FileStore struct {
	filePath string
	mu       sync.RWMutex
	entries  []models.DictionaryEntry
}

var _ storage.WordService = (*FileStore)(nil)

func New(filePath string) (*FileStore, error) {
	fs := &FileStore{filePath: filePath}
	if err := fs.load(); err != nil {
		return nil, fmt.Errorf("failed to load dictionary %s: %w", filePath, err)
	}
	return fs, nil
}

// NewFromEntries builds a store that is not backed by a file
func NewFromEntries(entries []models.DictionaryEntry) *FileStore {
	return &FileStore{entries: entries}
}

func (fs *FileStore) load() error {
	entries, err := ReadDictionary(fs.filePath)
	if err != nil {
		return err
	}
	fs.mu.Lock()
	fs.entries = entries
	fs.mu.Unlock()
	return nil
}

// ReadDictionary reads a dictionary JSON file
func ReadDictionary(filePath string) ([]models.DictionaryEntry, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var entries []models.DictionaryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (fs *FileStore) Stats(ctx context.Context) (*models.StatsSnapshot, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return storage.ComputeStats(fs.entries), nil
}

func (fs *FileStore) Random(ctx context.Context, count int) ([]*models.WordEntry, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	if len(fs.entries) == 0 {
		return nil, &storage.ServerError{Msg: "dictionary is empty"}
	}
	return storage.SampleEntries(fs.entries, count), nil
}

func (fs *FileStore) Search(ctx context.Context, query string, options storage.SearchOptions) ([]*models.WordEntry, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return storage.SearchEntries(fs.entries, query, options), nil
}
