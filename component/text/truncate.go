package text

const (
	MaxMeaningLength = 200
	Ellipsis         = "..."
)

// Truncate keeps the first max characters of s and appends Ellipsis when
// anything was cut. Characters are runes, so Devanagari text is never
// split inside a code point.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + Ellipsis
}

// Display prepares word-derived text for the terminal: truncated to
// MaxMeaningLength and with control characters escaped.
func Display(s string) string {
	return EscapeControlChars(Truncate(s, MaxMeaningLength))
}
