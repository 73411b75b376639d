package storage

import (
	"context"

	"github.com/xhd2015/shabda/models"
)

const (
	MinCount           = 1
	MaxCount           = 100
	DefaultSearchLimit = 50
)

type SearchOptions struct {
	Limit int
}

// WordService is a source of dictionary words: the remote word API or
// one of the offline dictionary stores.
type WordService interface {
	Stats(ctx context.Context) (*models.StatsSnapshot, error)
	// Random returns up to count randomly chosen words
	Random(ctx context.Context, count int) ([]*models.WordEntry, error)
	// Search returns words whose headword contains query
	Search(ctx context.Context, query string, options SearchOptions) ([]*models.WordEntry, error)
}

// ServerError is an application-level failure reported by the source
// itself (success=false), as opposed to a transport failure.
type ServerError struct {
	Msg string
}

func (e *ServerError) Error() string {
	if e.Msg == "" {
		return "server error"
	}
	return e.Msg
}
