package data

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xhd2015/shabda/data/storage"
	"github.com/xhd2015/shabda/models"
)

const DefaultCount = 5

var ErrCountOutOfRange = fmt.Errorf("count must be between %d and %d", storage.MinCount, storage.MaxCount)

// GenericFetchError is shown when a failure carries no message of its own
const GenericFetchError = "Failed to fetch words"

const NetworkErrorPrefix = "Network error: "

type WordManager struct {
	WordService storage.WordService
}

func NewWordManager(wordService storage.WordService) *WordManager {
	return &WordManager{
		WordService: wordService,
	}
}

func ValidateCount(count int) error {
	if count < storage.MinCount || count > storage.MaxCount {
		return ErrCountOutOfRange
	}
	return nil
}

// ParseCount reads a count the way a lenient number field does: leading
// whitespace and an optional sign followed by digits, ignoring whatever
// comes after. Input without any digits yields DefaultCount.
func ParseCount(value string) int {
	s := strings.TrimSpace(value)
	sign := 1
	if strings.HasPrefix(s, "-") {
		sign = -1
		s = s[1:]
	} else if strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	n := 0
	digits := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			break
		}
		digits++
		if n > storage.MaxCount*10 {
			// already out of range, avoid overflow
			continue
		}
		n = n*10 + int(c-'0')
	}
	if digits == 0 {
		return DefaultCount
	}
	return sign * n
}

func (m *WordManager) Random(ctx context.Context, count int) ([]*models.WordEntry, error) {
	if err := ValidateCount(count); err != nil {
		return nil, err
	}
	return m.WordService.Random(ctx, count)
}

func (m *WordManager) Stats(ctx context.Context) (*models.StatsSnapshot, error) {
	return m.WordService.Stats(ctx)
}

func (m *WordManager) Search(ctx context.Context, query string) ([]*models.WordEntry, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, &storage.ServerError{Msg: "Search query is required"}
	}
	return m.WordService.Search(ctx, query, storage.SearchOptions{Limit: storage.DefaultSearchLimit})
}

// ErrorMessage extracts the text shown in the error block: the source's
// own message for application failures, "Network error: <text>" for
// transport failures.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var serverErr *storage.ServerError
	if errors.As(err, &serverErr) {
		if serverErr.Msg == "" {
			return GenericFetchError
		}
		return serverErr.Msg
	}
	if errors.Is(err, ErrCountOutOfRange) {
		return err.Error()
	}
	msg := err.Error()
	if msg == "" {
		return GenericFetchError
	}
	return NetworkErrorPrefix + msg
}
