package app

import (
	"github.com/xhd2015/go-dom-tui/colors"
	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"
	"github.com/xhd2015/shabda/component"
)

// lines used by everything but the results
const chromeHeight = 8

func MainPage(state *State, window *dom.Window) *dom.Node {
	resultsHeight := window.Height - chromeHeight
	if resultsHeight < 4 {
		resultsHeight = 4
	}

	blocked := state.HasAlert()
	state.CountInput.Focused = state.Focus == Focus_Input && !blocked

	return dom.Fragment(
		StatsLine(state),
		dom.Div(dom.DivProps{},
			dom.Text("Words (1-100): ", styles.Style{Bold: true}),
			component.CountInput(component.InputProps{
				Placeholder: "5",
				State:       &state.CountInput,
				Disabled:    blocked,
				Width:       30,
				OnFocus: func() {
					state.Focus = Focus_Input
				},
				OnEnter: func(s string) bool {
					return state.OnCommand(s)
				},
				OnKeyDown: func(event *dom.DOMEvent) bool {
					keyEvent := event.KeydownEvent
					if keyEvent == nil {
						return false
					}
					switch keyEvent.KeyType {
					case dom.KeyTypeDown:
						if len(state.Words()) > 0 {
							focusResults(state)
							event.PreventDefault()
							return true
						}
					case dom.KeyTypeRight:
						if state.CountInput.CursorPosition >= len([]rune(state.CountInput.Value)) {
							state.Focus = Focus_Generate
							state.CountInput.Focused = false
							event.PreventDefault()
							return true
						}
					}
					return false
				},
			}),
			dom.Text(" ", styles.Style{}),
			GenerateButton(state),
		),
		func() *dom.Node {
			if blocked {
				return AlertModal(state)
			}
			return dom.Br()
		}(),
		ResultsView(state, resultsHeight),
	)
}

func StatsLine(state *State) *dom.Node {
	label := state.Stats.TotalLabel
	if label == "" {
		label = "loading stats..."
	}
	color := colors.GREY_TEXT
	if label == StatsErrorLabel {
		color = colors.RED_ERROR
	}
	return dom.Div(dom.DivProps{},
		dom.Text("Dictionary: ", styles.Style{Color: colors.GREY_TEXT}),
		dom.Text(label, styles.Style{Bold: true, Color: color}),
	)
}

// GenerateButton is disabled while a request is in flight.
func GenerateButton(state *State) *dom.Node {
	disabled := state.Loading || state.HasAlert()
	style := styles.Style{Bold: true, Color: colors.GREEN_SUCCESS}
	if disabled {
		style = styles.Style{Color: colors.GREY_TEXT}
	}
	focused := state.Focus == Focus_Generate && !disabled
	if focused {
		style.BorderColor = colors.GREEN_SUCCESS
	}
	return dom.TextWithProps("[Generate]", dom.TextNodeProps{
		Style:     style,
		Focused:   focused,
		Focusable: !disabled,
		OnFocus: func() {
			state.Focus = Focus_Generate
		},
		OnKeyDown: func(event *dom.DOMEvent) {
			keyEvent := event.KeydownEvent
			if keyEvent == nil {
				return
			}
			switch keyEvent.KeyType {
			case dom.KeyTypeEnter, dom.KeyTypeSpace:
				state.OnGenerate()
				event.PreventDefault()
			case dom.KeyTypeLeft, dom.KeyTypeEsc:
				focusInput(state)
				event.PreventDefault()
			case dom.KeyTypeDown:
				if len(state.Words()) > 0 {
					focusResults(state)
					event.PreventDefault()
				}
			}
		},
	})
}
