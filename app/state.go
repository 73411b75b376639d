package app

import (
	"time"

	"github.com/xhd2015/shabda/models"
)

type Focus int

const (
	Focus_Input Focus = iota
	Focus_Generate
	Focus_Results
)

// ExpandState is the state of a card's show more/less control
type ExpandState int

const (
	ExpandState_Collapsed ExpandState = iota
	ExpandState_Expanded
)

func (s ExpandState) Toggle() ExpandState {
	if s == ExpandState_Expanded {
		return ExpandState_Collapsed
	}
	return ExpandState_Expanded
}

func (s ExpandState) String() string {
	if s == ExpandState_Expanded {
		return "expanded"
	}
	return "collapsed"
}

// CardID identifies a card within one generation of results
type CardID struct {
	Generation uint64
	Index      int
}

type ResultsKind int

const (
	ResultsKind_None ResultsKind = iota
	ResultsKind_Words
	ResultsKind_Error
)

type Results struct {
	Kind  ResultsKind
	Title string
	Words []*models.WordEntry
	Error string

	ScrolledIntoView bool
}

type StatsLabels struct {
	TotalLabel string
	CountLabel string
}

type StatusBar struct {
	Source  string
	Message string
	Error   string
}

type State struct {
	CountInput models.InputState
	Focus      Focus

	Loading      bool
	LoadingSince time.Time
	// Generation increases with every request; completions carrying an
	// older value are discarded
	Generation uint64

	Results      Results
	CardStates   map[CardID]ExpandState
	SelectedCard int
	ScrollTop    int

	// Alert blocks all other input while non-empty
	Alert string

	ShowHelp   bool
	HelpScroll int

	Stats     StatsLabels
	StatusBar StatusBar

	LastCtrlC time.Time

	Quit    func()
	Refresh func()

	OnGenerate   func()
	OnCommand    func(string) bool
	OnToggleCard func(index int)
	OnCopyCard   func(index int)
	OnDismiss    func()
	OnCancel     func()
}

func (state *State) CardID(index int) CardID {
	return CardID{Generation: state.Generation, Index: index}
}

func (state *State) CardState(index int) ExpandState {
	return state.CardStates[state.CardID(index)]
}

func (state *State) Words() []*models.WordEntry {
	if state.Results.Kind != ResultsKind_Words {
		return nil
	}
	return state.Results.Words
}

func (state *State) HasAlert() bool {
	return state.Alert != ""
}
