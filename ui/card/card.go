package card

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/xhd2015/shabda/component/gender"
	"github.com/xhd2015/shabda/component/text"
	"github.com/xhd2015/shabda/models"
)

const indent = "   "

type Options struct {
	// Styled enables colors, only wanted on a terminal
	Styled bool
	// Width wraps meanings, 0 disables wrapping
	Width int
	// All lists every meaning below the first ones
	All bool
}

// RenderWord renders a word as plain text lines for the command line.
func RenderWord(index int, word *models.WordEntry, opts Options) string {
	headStyle := lipgloss.NewStyle().Bold(true)
	badgeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(gender.Color(word.Gender)))
	labelStyle := lipgloss.NewStyle().Faint(true)
	render := func(style lipgloss.Style, s string) string {
		if !opts.Styled {
			return s
		}
		return style.Render(s)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d. %s %s\n", index+1,
		render(headStyle, text.EscapeControlChars(word.Sanskrit)),
		render(badgeStyle, "["+text.EscapeControlChars(gender.Label(word.Gender))+"]"),
	)
	writeMeaning(&b, render(labelStyle, "English:"), text.Display(word.EnglishMeaning), opts.Width)
	writeMeaning(&b, render(labelStyle, "Hindi:  "), text.Display(word.HindiMeaning), opts.Width)

	if opts.All {
		writeList(&b, render(labelStyle, "All English meanings:"), word.AllEnglishMeanings, opts.Width)
		writeList(&b, render(labelStyle, "All Hindi meanings:"), word.AllHindiMeanings, opts.Width)
	}
	return b.String()
}

func writeMeaning(b *strings.Builder, label string, meaning string, width int) {
	b.WriteString(indent + label + " ")
	b.WriteString(wrap(meaning, width, len(indent)+len("English: ")))
	b.WriteString("\n")
}

// writeList skips lists of a single meaning, those are already shown
func writeList(b *strings.Builder, label string, meanings []string, width int) {
	if len(meanings) <= 1 {
		return
	}
	b.WriteString(indent + label + "\n")
	for _, meaning := range meanings {
		b.WriteString(indent + "  • ")
		b.WriteString(wrap(text.EscapeControlChars(meaning), width, len(indent)+4))
		b.WriteString("\n")
	}
}

// wrap wraps s to width and indents continuation lines by pad columns
func wrap(s string, width int, pad int) string {
	if width <= pad+10 {
		return s
	}
	wrapped := wordwrap.String(s, width-pad)
	return strings.ReplaceAll(wrapped, "\n", "\n"+strings.Repeat(" ", pad))
}

// RenderWords renders words separated by blank lines
func RenderWords(words []*models.WordEntry, opts Options) string {
	var b strings.Builder
	for i, word := range words {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(RenderWord(i, word, opts))
	}
	return b.String()
}
