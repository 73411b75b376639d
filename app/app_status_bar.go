package app

import (
	"time"

	"github.com/xhd2015/go-dom-tui/colors"
	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"
)

// AppStatusBar renders the source, the last status message and the
// request indicator
func AppStatusBar(state *State) *dom.Node {
	var nodes []*dom.Node

	nodes = append(nodes, dom.Text("•", styles.Style{
		Bold:  true,
		Color: colors.GREEN_SUCCESS,
	}))
	if state.StatusBar.Source != "" {
		nodes = append(nodes, dom.Text(state.StatusBar.Source, styles.Style{
			Bold:  true,
			Color: colors.GREY_TEXT,
		}))
	}
	if state.StatusBar.Error != "" {
		nodes = append(nodes, dom.Text("  "+state.StatusBar.Error, styles.Style{
			Bold:  true,
			Color: colors.RED_ERROR,
		}))
	} else if state.StatusBar.Message != "" {
		nodes = append(nodes, dom.Text("  "+state.StatusBar.Message, styles.Style{
			Color: colors.GREY_TEXT,
		}))
	}
	if state.Loading {
		nodes = append(nodes, dom.Text("  "+SpinnerFrame(time.Since(state.LoadingSince)), styles.Style{
			Bold:  true,
			Color: colors.GREEN_SUCCESS,
		}))
		nodes = append(nodes, dom.Text("Request...", styles.Style{
			Bold:  true,
			Color: colors.GREEN_SUCCESS,
		}))
	}

	if state.Stats.CountLabel != "" {
		nodes = append(nodes, dom.Spacer(dom.WithMaxSize(40)))
		nodes = append(nodes, dom.Text(state.Stats.CountLabel, styles.Style{
			Bold:  true,
			Color: "cyan",
		}))
	}

	return dom.HDiv(dom.DivProps{Width: UIWidth}, nodes...)
}
