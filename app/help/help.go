package help

import (
	_ "embed"
	"strings"

	"github.com/xhd2015/go-dom-tui/colors"
	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"
)

//go:embed help.md
var helpContent string

type HelpProps struct {
	ScrollOffset   int // line offset from top
	ViewportHeight int
}

// Help renders the embedded key reference, a small markdown subset:
// headers, "- key - description" items and plain lines
func Help(props HelpProps) *dom.Node {
	lines := strings.Split(helpContent, "\n")

	totalLines := len(lines)
	startLine := props.ScrollOffset
	endLine := startLine + props.ViewportHeight

	if startLine < 0 {
		startLine = 0
	}
	if endLine > totalLines {
		endLine = totalLines
	}
	if startLine >= totalLines {
		startLine = totalLines - 1
		if startLine < 0 {
			startLine = 0
		}
	}
	if endLine < startLine {
		endLine = startLine
	}

	var nodes []*dom.Node
	if startLine > 0 {
		nodes = append(nodes, dom.Text("↑ (more content above)", styles.Style{
			Color: colors.GREY_TEXT,
		}))
		nodes = append(nodes, dom.Br())
	}

	for _, line := range lines[startLine:endLine] {
		nodes = append(nodes, renderLine(strings.TrimSpace(line))...)
	}

	if endLine < totalLines {
		nodes = append(nodes, dom.Text("↓ (more content below)", styles.Style{
			Color: colors.GREY_TEXT,
		}))
	}

	return dom.Div(dom.DivProps{}, nodes...)
}

func renderLine(line string) []*dom.Node {
	switch {
	case line == "":
		return []*dom.Node{dom.Br()}
	case strings.HasPrefix(line, "# "):
		return []*dom.Node{
			dom.Text(strings.TrimPrefix(line, "# "), styles.Style{
				Bold:  true,
				Color: colors.GREEN_SUCCESS,
			}),
			dom.Br(),
		}
	case strings.HasPrefix(line, "## "):
		return []*dom.Node{
			dom.Text(strings.TrimPrefix(line, "## "), styles.Style{
				Bold:  true,
				Color: "cyan",
			}),
			dom.Br(),
		}
	case strings.HasPrefix(line, "- "):
		item := strings.TrimPrefix(line, "- ")
		key, desc, ok := strings.Cut(item, " - ")
		if !ok {
			return []*dom.Node{
				dom.Text("  • "+item, styles.Style{Color: colors.GREY_TEXT}),
				dom.Br(),
			}
		}
		return []*dom.Node{
			dom.Text("  ", styles.Style{}),
			dom.Text(key, styles.Style{
				Bold:  true,
				Color: "yellow",
			}),
			dom.Text(" - "+desc, styles.Style{
				Color: colors.GREY_TEXT,
			}),
			dom.Br(),
		}
	}
	return []*dom.Node{dom.Text(line, styles.Style{}), dom.Br()}
}

func GetTotalLines() int {
	return len(strings.Split(helpContent, "\n"))
}
