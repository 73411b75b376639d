package app

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const StatsErrorLabel = "Error loading stats"

var printer = message.NewPrinter(language.English)

// FormatCount formats n with thousands separators, e.g. 12,345
func FormatCount(n int64) string {
	return printer.Sprintf("%d", n)
}

func FormatTotalWords(n int64) string {
	if n == 1 {
		return "1 word"
	}
	return FormatCount(n) + " words"
}

// GenderSummary lists each gender with its count, largest first.
func GenderSummary(dist map[string]int64) string {
	genders := lo.Keys(dist)
	sort.Slice(genders, func(i, j int) bool {
		a, b := genders[i], genders[j]
		if dist[a] != dist[b] {
			return dist[a] > dist[b]
		}
		return a < b
	})
	parts := lo.Map(genders, func(g string, _ int) string {
		return fmt.Sprintf("%s: %s", g, FormatCount(dist[g]))
	})
	return strings.Join(parts, ", ")
}
