package app

import (
	"time"

	"github.com/xhd2015/go-dom-tui/colors"
	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"
	"github.com/xhd2015/shabda/app/help"
	"github.com/xhd2015/shabda/component/dialog"
)

const (
	CtrlCExitDelayMs = 1000

	UIWidth = 80
)

func App(state *State, window *dom.Window) *dom.Node {
	return dom.Div(dom.DivProps{
		OnKeyDown: func(event *dom.DOMEvent) {
			keyEvent := event.KeydownEvent
			if keyEvent == nil {
				return
			}
			switch keyEvent.KeyType {
			case dom.KeyTypeCtrlC:
				if time.Since(state.LastCtrlC) < time.Millisecond*CtrlCExitDelayMs {
					state.Quit()
					return
				}
				state.LastCtrlC = time.Now()

				go func() {
					time.Sleep(time.Millisecond * CtrlCExitDelayMs)
					state.Refresh()
				}()
			case dom.KeyTypeEsc:
				if state.Loading && state.OnCancel != nil {
					state.OnCancel()
				}
			}
		},
	},
		dom.H1(dom.DivProps{}, dom.Text("शब्द shabda · random Sanskrit words", styles.Style{
			Bold:        true,
			BorderColor: "orange",
		})),
		func() *dom.Node {
			if state.ShowHelp {
				return HelpPage(state, window)
			}
			return MainPage(state, window)
		}(),
		AppStatusBar(state),
		func() *dom.Node {
			if time.Since(state.LastCtrlC) < time.Millisecond*CtrlCExitDelayMs {
				return dom.Text("press Ctrl-C again to exit", styles.Style{
					Bold:  true,
					Color: "1",
				})
			}
			return dom.Text("type 'exit','quit' or 'q' to exit, '/help' for keys", styles.Style{
				Color: colors.GREY_TEXT,
			})
		}(),
	)
}

func HelpPage(state *State, window *dom.Window) *dom.Node {
	height := window.Height - 6
	if height < 5 {
		height = 5
	}
	return dom.Div(dom.DivProps{
		Focusable: true,
		Focused:   true,
		OnKeyDown: func(event *dom.DOMEvent) {
			keyEvent := event.KeydownEvent
			if keyEvent == nil {
				return
			}
			switch keyEvent.KeyType {
			case dom.KeyTypeEsc:
				state.ShowHelp = false
				event.PreventDefault()
				event.StopPropagation()
			case dom.KeyTypeUp:
				if state.HelpScroll > 0 {
					state.HelpScroll--
				}
				event.PreventDefault()
			case dom.KeyTypeDown:
				if state.HelpScroll < help.GetTotalLines()-height {
					state.HelpScroll++
				}
				event.PreventDefault()
			default:
				if string(keyEvent.Runes) == "q" {
					state.ShowHelp = false
					event.PreventDefault()
				}
			}
		},
	}, help.Help(help.HelpProps{
		ScrollOffset:   state.HelpScroll,
		ViewportHeight: height,
	}))
}

// AlertModal blocks the page until dismissed
func AlertModal(state *State) *dom.Node {
	return dialog.AlertDialog(dialog.AlertDialogProps{
		Message: state.Alert,
		OnDismiss: func() {
			state.OnDismiss()
		},
	})
}
