package gender

import (
	"strings"

	"github.com/xhd2015/go-dom-tui/colors"
)

const Unknown = "unknown"

var variantColors = map[string]string{
	"masculine":    "4",
	"feminine":     "5",
	"neuter":       "2",
	"adjective":    "3",
	"indeclinable": "6",
	"adverb":       colors.PURPLE_PRIMARY,
}

// Variant maps a gender to one of the known badge variants,
// case-insensitively. Anything else is Unknown.
func Variant(gender string) string {
	g := strings.ToLower(strings.TrimSpace(gender))
	if _, ok := variantColors[g]; ok {
		return g
	}
	return Unknown
}

func Color(gender string) string {
	if c, ok := variantColors[Variant(gender)]; ok {
		return c
	}
	return colors.GREY_TEXT
}

// Label is the badge text, Unknown when gender is empty
func Label(gender string) string {
	if strings.TrimSpace(gender) == "" {
		return Unknown
	}
	return gender
}
