package app

import (
	"fmt"

	"github.com/xhd2015/go-dom-tui/colors"
	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"
	"github.com/xhd2015/shabda/component/gender"
	"github.com/xhd2015/shabda/component/text"
	"github.com/xhd2015/shabda/models"
)

const (
	ShowMoreLabel = "[+ Show all meanings]"
	ShowLessLabel = "[- Show less]"

	EnglishLabel    = "English Meaning"
	HindiLabel      = "हिन्दी अर्थ"
	AllEnglishLabel = "All English Meanings:"
	AllHindiLabel   = "सभी हिन्दी अर्थ:"

	cardIndent = "   "
)

type CardProps struct {
	Index    int
	Word     *models.WordEntry
	Expand   ExpandState
	Selected bool
}

// WordCard renders one word. All word-derived text goes through
// text.EscapeControlChars so it can never act on the terminal.
func WordCard(props CardProps) *dom.Node {
	word := props.Word

	marker := "  "
	headStyle := styles.Style{Bold: true}
	if props.Selected {
		marker = "▶ "
		headStyle.Color = colors.GREEN_SUCCESS
	}

	nodes := []*dom.Node{
		dom.Text(marker, styles.Style{Bold: true, Color: colors.GREEN_SUCCESS}),
		dom.Text(fmt.Sprintf("%d. ", props.Index+1), styles.Style{Color: colors.GREY_TEXT}),
		dom.Text(text.EscapeControlChars(word.Sanskrit), headStyle),
		dom.Text(" ", styles.Style{}),
		dom.Text("["+text.EscapeControlChars(gender.Label(word.Gender))+"]", styles.Style{
			Bold:  true,
			Color: gender.Color(word.Gender),
		}),
		dom.Br(),
	}
	nodes = append(nodes, meaningSection(EnglishLabel, word.EnglishMeaning)...)
	nodes = append(nodes, meaningSection(HindiLabel, word.HindiMeaning)...)

	if word.HasMoreMeanings() {
		label := ShowMoreLabel
		if props.Expand == ExpandState_Expanded {
			label = ShowLessLabel
		}
		nodes = append(nodes,
			dom.Text(cardIndent, styles.Style{}),
			dom.Text(label, styles.Style{
				Bold:  props.Selected,
				Color: colors.PURPLE_PRIMARY,
			}),
			dom.Br(),
		)
		if props.Expand == ExpandState_Expanded {
			nodes = append(nodes, meaningList(AllEnglishLabel, word.AllEnglishMeanings)...)
			nodes = append(nodes, meaningList(AllHindiLabel, word.AllHindiMeanings)...)
		}
	}
	nodes = append(nodes, dom.Br())

	return dom.Div(dom.DivProps{}, nodes...)
}

func meaningSection(label string, meaning string) []*dom.Node {
	return []*dom.Node{
		dom.Text(cardIndent, styles.Style{}),
		dom.Text(label+": ", styles.Style{Color: colors.GREY_TEXT}),
		dom.Text(text.Display(meaning), styles.Style{}),
		dom.Br(),
	}
}

// meaningList renders nothing for lists of one meaning or fewer
func meaningList(label string, meanings []string) []*dom.Node {
	if len(meanings) <= 1 {
		return nil
	}
	nodes := []*dom.Node{
		dom.Text(cardIndent, styles.Style{}),
		dom.Text(label, styles.Style{Bold: true}),
		dom.Br(),
	}
	for _, meaning := range meanings {
		nodes = append(nodes,
			dom.Text(cardIndent+"  • ", styles.Style{Color: colors.GREY_TEXT}),
			dom.Text(text.EscapeControlChars(meaning), styles.Style{}),
			dom.Br(),
		)
	}
	return nodes
}
