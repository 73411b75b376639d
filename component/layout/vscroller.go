package layout

import (
	"fmt"

	domLayout "github.com/xhd2015/go-dom-tui/charm/layout"
	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"
)

type VScrollerProps struct {
	Children      []*dom.Node
	Height        int
	BeginIndex    int
	SelectedIndex int
	// OnScroll receives the begin index actually used
	OnScroll func(beginIndex int)
}

// VScroller shows the window of Children that fits in Height, starting at
// BeginIndex and always containing SelectedIndex. Hidden children are
// summarised by a header and footer line.
func VScroller(props VScrollerProps) *dom.Node {
	if len(props.Children) == 0 {
		return dom.Div(dom.DivProps{})
	}

	heights := make([]int, len(props.Children))
	for i, child := range props.Children {
		heights[i] = domLayout.GetNodeRenderedHeight(child)
	}
	result := SliceVertical(heights, props.BeginIndex, props.SelectedIndex, props.Height)
	if props.OnScroll != nil && result.BeginIndex != props.BeginIndex {
		props.OnScroll(result.BeginIndex)
	}

	var nodes []*dom.Node
	if result.ItemsAbove > 0 {
		nodes = append(nodes, dom.Div(dom.DivProps{},
			dom.Text(fmt.Sprintf("↑ (%d more above)", result.ItemsAbove), styles.Style{Color: "8"}),
		))
	}
	nodes = append(nodes, props.Children[result.BeginIndex:result.EndIndex]...)
	if result.ItemsBelow > 0 {
		nodes = append(nodes, dom.Div(dom.DivProps{},
			dom.Text(fmt.Sprintf("↓ (%d more below)", result.ItemsBelow), styles.Style{Color: "8"}),
		))
	}
	return dom.Div(dom.DivProps{}, nodes...)
}

type SliceVerticalResult struct {
	BeginIndex int
	EndIndex   int // exclusive
	ItemsAbove int
	ItemsBelow int
}

const indicatorHeight = 1

// SliceVertical picks the visible range [BeginIndex, EndIndex) for items of
// the given heights. It scrolls the minimum amount needed to keep
// selectedIndex visible and reserves a line for each indicator shown.
func SliceVertical(heights []int, beginIndex int, selectedIndex int, height int) SliceVerticalResult {
	n := len(heights)
	if n == 0 {
		return SliceVerticalResult{}
	}
	beginIndex = clamp(beginIndex, 0, n-1)
	selectedIndex = clamp(selectedIndex, 0, n-1)
	if selectedIndex < beginIndex {
		beginIndex = selectedIndex
	}

	end := fitFrom(heights, beginIndex, height)
	for selectedIndex >= end && beginIndex < selectedIndex {
		beginIndex++
		end = fitFrom(heights, beginIndex, height)
	}
	if end <= selectedIndex {
		end = selectedIndex + 1
	}

	return SliceVerticalResult{
		BeginIndex: beginIndex,
		EndIndex:   end,
		ItemsAbove: beginIndex,
		ItemsBelow: n - end,
	}
}

// fitFrom returns the end index of the items starting at begin that fit in
// height, after reserving room for the indicators that will be needed.
func fitFrom(heights []int, begin int, height int) int {
	available := height
	if begin > 0 {
		available -= indicatorHeight
	}

	end := fill(heights, begin, available)
	if end < len(heights) {
		// a footer is needed too
		end = fill(heights, begin, available-indicatorHeight)
	}
	if end == begin {
		// always show at least one item, even if it overflows
		end = begin + 1
	}
	return end
}

func fill(heights []int, begin int, available int) int {
	used := 0
	end := begin
	for i := begin; i < len(heights); i++ {
		if used+heights[i] > available {
			break
		}
		used += heights[i]
		end = i + 1
	}
	return end
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
