package storage

import (
	"strings"

	"github.com/samber/lo"
	"github.com/xhd2015/shabda/models"
)

const NotAvailable = "N/A"

// FormatEntry converts a dictionary record into the shape served by the
// word API: the first meaning of each language plus the full lists.
func FormatEntry(entry models.DictionaryEntry) *models.WordEntry {
	return &models.WordEntry{
		Sanskrit:           entry.Sanskrit,
		Gender:             entry.Gender,
		EnglishMeaning:     firstOrNA(entry.EnglishMeanings),
		HindiMeaning:       firstOrNA(entry.HindiMeanings),
		AllEnglishMeanings: entry.EnglishMeanings,
		AllHindiMeanings:   entry.HindiMeanings,
	}
}

func firstOrNA(list []string) string {
	if len(list) == 0 {
		return NotAvailable
	}
	return list[0]
}

// ClampCount limits count to [MinCount, MaxCount], the same way the word
// API treats its count parameter.
func ClampCount(count int) int {
	if count < MinCount {
		return MinCount
	}
	if count > MaxCount {
		return MaxCount
	}
	return count
}

// SampleEntries picks count entries at random. When count covers the whole
// dictionary every entry is returned in original order.
func SampleEntries(entries []models.DictionaryEntry, count int) []*models.WordEntry {
	count = ClampCount(count)
	var picked []models.DictionaryEntry
	if count >= len(entries) {
		picked = entries
	} else {
		picked = lo.Samples(entries, count)
	}
	return lo.Map(picked, func(entry models.DictionaryEntry, _ int) *models.WordEntry {
		return FormatEntry(entry)
	})
}

func ComputeStats(entries []models.DictionaryEntry) *models.StatsSnapshot {
	total := int64(len(entries))
	dist := make(map[string]int64)
	for _, entry := range entries {
		dist[entry.Gender]++
	}
	return &models.StatsSnapshot{
		TotalWords:         &total,
		GenderDistribution: dist,
	}
}

// SearchEntries does a case-sensitive substring match on the headword.
func SearchEntries(entries []models.DictionaryEntry, query string, options SearchOptions) []*models.WordEntry {
	limit := options.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	var results []*models.WordEntry
	for _, entry := range entries {
		if !strings.Contains(entry.Sanskrit, query) {
			continue
		}
		results = append(results, FormatEntry(entry))
		if len(results) >= limit {
			break
		}
	}
	return results
}
