package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/xhd2015/shabda/data"
	"github.com/xhd2015/shabda/log"
	"github.com/xhd2015/shabda/models"
)

const CountAlertMessage = "Please enter a number between 1 and 100"

// Controller drives the word cards page: it issues requests through the
// manager and applies their outcome to State.
//
// Spawn runs blocking work off the UI loop and Post hands a closure back to
// it. All State mutation happens inside Post, so the UI loop is the only
// writer. Both default to running inline; a caller moving Spawn onto a
// goroutine must also route Post to the UI loop.
type Controller struct {
	State   *State
	Manager *data.WordManager

	Spawn func(fn func())
	Post  func(fn func())

	CopyToClipboard func(text string) error
	OnGenderSummary func(summary string)
	Now             func() time.Time

	cancel context.CancelFunc
}

func NewController(state *State, manager *data.WordManager) *Controller {
	c := &Controller{
		State:   state,
		Manager: manager,
		Spawn: func(fn func()) {
			fn()
		},
		Post: func(fn func()) {
			fn()
		},
		CopyToClipboard: clipboard.WriteAll,
		Now:             time.Now,
	}
	if state.CardStates == nil {
		state.CardStates = make(map[CardID]ExpandState)
	}
	if state.CountInput.Value == "" {
		state.CountInput.SetValue(fmt.Sprint(data.DefaultCount))
	}

	state.OnGenerate = func() {
		c.Generate(context.Background())
	}
	state.OnCommand = func(s string) bool {
		return c.RunCommand(context.Background(), s)
	}
	state.OnToggleCard = c.ToggleCard
	state.OnCopyCard = c.CopyCard
	state.OnDismiss = c.DismissAlert
	state.OnCancel = c.Cancel
	return c
}

// Init loads stats once and runs the first generation.
func (c *Controller) Init(ctx context.Context) {
	c.LoadStats(ctx)
	c.Generate(ctx)
}

func (c *Controller) LoadStats(ctx context.Context) {
	c.Spawn(func() {
		stats, err := c.Manager.Stats(ctx)
		c.Post(func() {
			c.applyStats(ctx, stats, err)
		})
	})
}

func (c *Controller) applyStats(ctx context.Context, stats *models.StatsSnapshot, err error) {
	if err == nil && (stats == nil || stats.TotalWords == nil) {
		err = errors.New("stats carry no total_words")
	}
	if err != nil {
		log.Errorf(ctx, "load stats: %v", err)
		c.State.Stats = StatsLabels{TotalLabel: StatsErrorLabel}
		return
	}

	log.Infof(ctx, "stats loaded: %v", log.JSON(stats))
	total := *stats.TotalWords
	c.State.Stats = StatsLabels{
		TotalLabel: FormatTotalWords(total),
		CountLabel: FormatCount(total),
	}
	if stats.GenderDistribution != nil {
		summary := GenderSummary(stats.GenderDistribution)
		log.Infof(ctx, "gender distribution: %s", summary)
		if c.OnGenderSummary != nil {
			c.OnGenderSummary(summary)
		}
	}
}

// Generate reads the count input and requests that many random words.
// It is ignored while a request is in flight.
func (c *Controller) Generate(ctx context.Context) {
	if c.State.Loading {
		return
	}
	count := data.ParseCount(c.State.CountInput.Value)
	if err := data.ValidateCount(count); err != nil {
		log.Infof(ctx, "reject count %d: %v", count, err)
		c.ShowAlert(CountAlertMessage)
		return
	}

	c.request(ctx, func(ctx context.Context) ([]*models.WordEntry, error) {
		return c.Manager.Random(ctx, count)
	}, func(words []*models.WordEntry) string {
		return fmt.Sprintf("%d random words", len(words))
	})
}

// Search lists words whose headword contains query.
func (c *Controller) Search(ctx context.Context, query string) {
	if c.State.Loading {
		return
	}
	c.request(ctx, func(ctx context.Context) ([]*models.WordEntry, error) {
		return c.Manager.Search(ctx, query)
	}, func(words []*models.WordEntry) string {
		return fmt.Sprintf("%d matches for %q", len(words), strings.TrimSpace(query))
	})
}

func (c *Controller) request(ctx context.Context, fetch func(ctx context.Context) ([]*models.WordEntry, error), title func(words []*models.WordEntry) string) {
	c.SetLoading(true)
	c.State.Generation++
	token := c.State.Generation

	reqCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	c.Spawn(func() {
		words, err := fetch(reqCtx)
		c.Post(func() {
			cancel()
			if token != c.State.Generation {
				log.Infof(ctx, "discard stale result of generation %d, current %d", token, c.State.Generation)
				return
			}
			c.cancel = nil
			if err != nil {
				log.Errorf(ctx, "fetch words: %v", err)
				c.RenderError(data.ErrorMessage(err))
			} else {
				c.RenderResults(title(words), words)
			}
			c.SetLoading(false)
		})
	})
}

// Cancel abandons the request in flight. Its completion will be discarded.
func (c *Controller) Cancel() {
	if !c.State.Loading {
		return
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.State.Generation++
	c.SetLoading(false)
	c.State.StatusBar.Message = "request cancelled"
}

// SetLoading enters or leaves the loading state. Entering it clears the
// previous results and every card's expand state.
func (c *Controller) SetLoading(loading bool) {
	state := c.State
	if !loading {
		state.Loading = false
		return
	}
	state.Loading = true
	state.LoadingSince = c.Now()
	state.Results = Results{}
	state.CardStates = make(map[CardID]ExpandState)
	state.SelectedCard = 0
	state.ScrollTop = 0
}

// RenderResults replaces the results with one card per word, in order,
// then scrolls the first card into view.
func (c *Controller) RenderResults(title string, words []*models.WordEntry) {
	state := c.State
	state.Results = Results{
		Kind:  ResultsKind_Words,
		Title: title,
		Words: words,
	}
	state.CardStates = make(map[CardID]ExpandState, len(words))
	for i := range words {
		state.CardStates[state.CardID(i)] = ExpandState_Collapsed
	}
	state.SelectedCard = 0
	if len(words) > 0 {
		state.ScrollTop = 0
		state.Results.ScrolledIntoView = true
	}
}

// RenderError replaces the results with a single error block.
func (c *Controller) RenderError(msg string) {
	c.State.Results = Results{
		Kind:  ResultsKind_Error,
		Error: msg,
	}
	c.State.CardStates = make(map[CardID]ExpandState)
	c.State.SelectedCard = 0
}

func (c *Controller) ShowAlert(msg string) {
	c.State.Alert = msg
}

func (c *Controller) DismissAlert() {
	c.State.Alert = ""
	c.State.Focus = Focus_Input
	c.State.CountInput.Focused = true
}

// ToggleCard flips the expand state of a card that has more meanings.
func (c *Controller) ToggleCard(index int) {
	words := c.State.Words()
	if index < 0 || index >= len(words) || !words[index].HasMoreMeanings() {
		return
	}
	id := c.State.CardID(index)
	c.State.CardStates[id] = c.State.CardStates[id].Toggle()
}

func (c *Controller) CopyCard(index int) {
	words := c.State.Words()
	if index < 0 || index >= len(words) {
		return
	}
	word := words[index]
	text := fmt.Sprintf("%s — %s", word.Sanskrit, word.EnglishMeaning)
	if err := c.CopyToClipboard(text); err != nil {
		log.Errorf(context.Background(), "copy %s: %v", word.Sanskrit, err)
		c.setStatusError(fmt.Sprintf("copy failed: %v", err))
		return
	}
	c.setStatus(fmt.Sprintf("copied %s", word.Sanskrit))
}

// Export writes the current cards to filename.
func (c *Controller) Export(filename string) error {
	words := c.State.Words()
	if len(words) == 0 {
		return errors.New("nothing to export")
	}
	return ExportCards(filename, c.State.Results.Title, words)
}

// RunCommand handles Enter in the count input. It returns true when the
// input was a command and should be cleared; a plain count is kept.
func (c *Controller) RunCommand(ctx context.Context, s string) bool {
	s = strings.TrimSpace(s)
	switch s {
	case "exit", "quit", "q":
		if c.State.Quit != nil {
			c.State.Quit()
		}
		return true
	case "/help":
		c.State.ShowHelp = true
		c.State.HelpScroll = 0
		return true
	}

	if !strings.HasPrefix(s, "/") {
		c.Generate(ctx)
		return false
	}

	name, arg, _ := strings.Cut(s, " ")
	arg = strings.TrimSpace(arg)
	switch name {
	case "/export":
		if err := c.Export(arg); err != nil {
			log.Errorf(ctx, "export %s: %v", arg, err)
			c.setStatusError(fmt.Sprintf("export failed: %v", err))
			return true
		}
		c.setStatus(fmt.Sprintf("exported %d words to %s", len(c.State.Words()), arg))
	case "/search":
		c.Search(ctx, arg)
	case "/stats":
		c.LoadStats(ctx)
	default:
		c.setStatusError(fmt.Sprintf("unknown command: %s", name))
	}
	return true
}

func (c *Controller) setStatus(msg string) {
	c.State.StatusBar.Message = msg
	c.State.StatusBar.Error = ""
}

func (c *Controller) setStatusError(msg string) {
	c.State.StatusBar.Error = msg
	c.State.StatusBar.Message = ""
}
