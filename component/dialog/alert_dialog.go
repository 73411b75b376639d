package dialog

import (
	"github.com/xhd2015/go-dom-tui/colors"
	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"
)

type AlertDialogProps struct {
	Message   string
	OKText    string
	OnDismiss func()
}

// AlertDialog is a blocking message with a single [OK] button.
// The button holds focus until Enter or Esc dismisses it.
func AlertDialog(props AlertDialogProps) *dom.Node {
	okText := props.OKText
	if okText == "" {
		okText = "[OK]"
	}

	return dom.Div(dom.DivProps{},
		dom.Text("⚠ "+props.Message, styles.Style{
			Bold:  true,
			Color: colors.RED_ERROR,
		}),
		dom.Br(),
		dom.TextWithProps(okText, dom.TextNodeProps{
			Focused:   true,
			Focusable: true,
			Style: styles.Style{
				Bold:  true,
				Color: colors.GREEN_SUCCESS,
			},
			OnKeyDown: func(d *dom.DOMEvent) {
				keyEvent := d.KeydownEvent
				if keyEvent == nil {
					return
				}
				switch keyEvent.KeyType {
				case dom.KeyTypeEnter, dom.KeyTypeEsc:
					if props.OnDismiss != nil {
						props.OnDismiss()
					}
					d.PreventDefault()
					d.StopPropagation()
				}
			},
		}),
	)
}
