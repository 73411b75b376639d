package component

import (
	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/shabda/models"
)

type InputProps struct {
	Placeholder string
	State       *models.InputState
	Disabled    bool
	// OnEnter returns true when the value was consumed and should be cleared
	OnEnter   func(string) bool
	OnKeyDown func(event *dom.DOMEvent) bool
	OnFocus   func()
	Width     int
}

// CountInput is the single-line field holding the number of words to
// generate. It also accepts /commands.
func CountInput(props InputProps) *dom.Node {
	width := props.Width
	if width == 0 {
		width = 40
	}

	return dom.Input(dom.InputProps{
		Placeholder:    props.Placeholder,
		Value:          props.State.Value,
		Focused:        props.State.Focused && !props.Disabled,
		CursorPosition: props.State.CursorPosition,
		Focusable:      dom.Focusable(!props.Disabled),
		Width:          width,
		OnFocus: func() {
			props.State.Focused = true
			if props.OnFocus != nil {
				props.OnFocus()
			}
		},
		OnBlur: func() {
			props.State.Focused = false
		},
		OnChange: func(value string) {
			props.State.Value = value
		},
		OnCursorMove: func(position int) {
			if position < 0 {
				position = 0
			}
			rnLen := len([]rune(props.State.Value))
			if position > rnLen+1 {
				position = rnLen + 1
			}
			props.State.CursorPosition = position
		},
		OnKeyDown: func(event *dom.DOMEvent) {
			if props.OnKeyDown != nil {
				if props.OnKeyDown(event) {
					return
				}
			}
			keyEvent := event.KeydownEvent
			if keyEvent == nil {
				return
			}
			if keyEvent.KeyType == dom.KeyTypeEnter {
				if props.OnEnter != nil && props.OnEnter(props.State.Value) {
					props.State.Reset()
				}
				event.PreventDefault()
			}
		},
	})
}
