package app

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/xhd2015/go-dom-tui/colors"
	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"
	"github.com/xhd2015/shabda/component/layout"
	"github.com/xhd2015/shabda/component/text"
)

const ErrorPrefix = "Error: "

// SpinnerFrame picks the loading spinner frame for the time elapsed
// since loading started.
func SpinnerFrame(elapsed time.Duration) string {
	frames := spinner.MiniDot.Frames
	if elapsed < 0 {
		elapsed = 0
	}
	i := int(elapsed/spinner.MiniDot.FPS) % len(frames)
	return frames[i]
}

// ResultCards builds one card per word of the current results.
func ResultCards(state *State) []*dom.Node {
	words := state.Words()
	cards := make([]*dom.Node, 0, len(words))
	for i, word := range words {
		cards = append(cards, WordCard(CardProps{
			Index:    i,
			Word:     word,
			Expand:   state.CardState(i),
			Selected: i == state.SelectedCard,
		}))
	}
	return cards
}

func ErrorBlock(msg string) *dom.Node {
	return dom.Div(dom.DivProps{},
		dom.Text(ErrorPrefix, styles.Style{
			Bold:  true,
			Color: colors.RED_ERROR,
		}),
		dom.Text(text.EscapeControlChars(msg), styles.Style{
			Color: colors.RED_ERROR,
		}),
	)
}

// ResultsView is the results container: a spinner while loading, the
// error block, or the cards. It handles card navigation when focused.
func ResultsView(state *State, height int) *dom.Node {
	content := resultsContent(state, height)
	if len(state.Words()) == 0 || state.HasAlert() {
		return dom.Div(dom.DivProps{}, content)
	}

	return dom.Div(dom.DivProps{
		Focusable: true,
		Focused:   state.Focus == Focus_Results,
		OnKeyDown: func(event *dom.DOMEvent) {
			keyEvent := event.KeydownEvent
			if keyEvent == nil {
				return
			}
			switch keyEvent.KeyType {
			case dom.KeyTypeUp:
				if state.SelectedCard > 0 {
					state.SelectedCard--
				}
				event.PreventDefault()
			case dom.KeyTypeDown:
				if state.SelectedCard < len(state.Words())-1 {
					state.SelectedCard++
				}
				event.PreventDefault()
			case dom.KeyTypeEnter, dom.KeyTypeSpace:
				state.OnToggleCard(state.SelectedCard)
				event.PreventDefault()
			case dom.KeyTypeEsc:
				focusInput(state)
				event.PreventDefault()
				event.StopPropagation()
			default:
				switch string(keyEvent.Runes) {
				case "k":
					if state.SelectedCard > 0 {
						state.SelectedCard--
					}
				case "j":
					if state.SelectedCard < len(state.Words())-1 {
						state.SelectedCard++
					}
				case "m":
					state.OnToggleCard(state.SelectedCard)
				case "c":
					state.OnCopyCard(state.SelectedCard)
				case "g":
					state.OnGenerate()
				case "i", "/":
					focusInput(state)
				case "?":
					state.ShowHelp = true
					state.HelpScroll = 0
				default:
					return
				}
				event.PreventDefault()
			}
		},
	}, content)
}

func resultsContent(state *State, height int) *dom.Node {
	if state.Loading {
		return dom.Div(dom.DivProps{},
			dom.Text(SpinnerFrame(time.Since(state.LoadingSince))+" Loading words...", styles.Style{
				Color: colors.PURPLE_PRIMARY,
			}),
		)
	}

	switch state.Results.Kind {
	case ResultsKind_Error:
		return ErrorBlock(state.Results.Error)
	case ResultsKind_Words:
		if len(state.Results.Words) == 0 {
			return dom.Div(dom.DivProps{},
				dom.Text("No words found", styles.Style{Color: colors.GREY_TEXT}),
			)
		}
		return dom.Div(dom.DivProps{},
			dom.Div(dom.DivProps{},
				dom.Text(text.EscapeControlChars(state.Results.Title), styles.Style{Bold: true}),
			),
			layout.VScroller(layout.VScrollerProps{
				Children:      ResultCards(state),
				Height:        height - 1,
				BeginIndex:    state.ScrollTop,
				SelectedIndex: state.SelectedCard,
				OnScroll: func(beginIndex int) {
					state.ScrollTop = beginIndex
				},
			}),
		)
	}
	return dom.Div(dom.DivProps{},
		dom.Text("Enter a count and press Enter to generate words", styles.Style{Color: colors.GREY_TEXT}),
	)
}

func focusInput(state *State) {
	state.Focus = Focus_Input
	state.CountInput.Focused = true
}

func focusResults(state *State) {
	state.Focus = Focus_Results
	state.CountInput.Focused = false
}
