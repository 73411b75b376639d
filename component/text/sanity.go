package text

import (
	"fmt"
	"strings"
)

// EscapeControlChars makes untrusted text render literally in a terminal.
// ASCII control chars become escape sequences (\e, \a, \xNN), C1 controls
// become U+xxxx. Newline, tab and carriage return pass through.
func EscapeControlChars(content string) string {
	var result strings.Builder
	result.Grow(len(content))

	for _, r := range content {
		if r == '\n' || r == '\t' || r == '\r' {
			result.WriteRune(r)
			continue
		}

		if r < 32 {
			switch r {
			case 0:
				result.WriteString("\\0")
			case 7:
				result.WriteString("\\a")
			case 8:
				result.WriteString("\\b")
			case 12:
				result.WriteString("\\f")
			case 11:
				result.WriteString("\\v")
			case 27:
				result.WriteString("\\e")
			default:
				result.WriteString(fmt.Sprintf("\\x%02X", r))
			}
			continue
		}

		// DEL
		if r == 127 {
			result.WriteString("\\x7F")
			continue
		}

		// C1 control codes
		if r >= 0x80 && r <= 0x9F {
			result.WriteString(fmt.Sprintf("U+%04X", r))
			continue
		}

		result.WriteRune(r)
	}

	return result.String()
}
