package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/xhd2015/go-dom-tui/charm/renderer"
	"github.com/xhd2015/shabda/data"
	"github.com/xhd2015/shabda/data/storage"
	"github.com/xhd2015/shabda/models"
)

type fakeWordService struct {
	randomCalls int
	lastCount   int
	randomErr   error

	stats    *models.StatsSnapshot
	statsErr error

	searchResult []*models.WordEntry
	lastQuery    string
}

func (f *fakeWordService) Stats(ctx context.Context) (*models.StatsSnapshot, error) {
	return f.stats, f.statsErr
}

func (f *fakeWordService) Random(ctx context.Context, count int) ([]*models.WordEntry, error) {
	f.randomCalls++
	f.lastCount = count
	if f.randomErr != nil {
		return nil, f.randomErr
	}
	return createTestWords(count), nil
}

func (f *fakeWordService) Search(ctx context.Context, query string, opts storage.SearchOptions) ([]*models.WordEntry, error) {
	f.lastQuery = query
	return f.searchResult, nil
}

func createTestWords(count int) []*models.WordEntry {
	words := make([]*models.WordEntry, count)
	for i := range words {
		words[i] = &models.WordEntry{
			Sanskrit:       fmt.Sprintf("word%d", i+1),
			Gender:         "masculine",
			EnglishMeaning: fmt.Sprintf("meaning %d", i+1),
			HindiMeaning:   fmt.Sprintf("arth %d", i+1),
		}
	}
	return words
}

// createTestController runs spawned work synchronously
func createTestController(svc *fakeWordService, countValue string) (*Controller, *State) {
	state := &State{}
	state.CountInput.SetValue(countValue)
	c := NewController(state, data.NewWordManager(svc))
	c.Spawn = func(fn func()) { fn() }
	c.Post = func(fn func()) { fn() }
	return c, state
}

func TestNewController_DefaultsApplyInline(t *testing.T) {
	svc := &fakeWordService{}
	state := &State{}
	state.CountInput.SetValue("3")
	c := NewController(state, data.NewWordManager(svc))

	c.Generate(context.Background())

	if state.Loading {
		t.Error("expected loading to be cleared when Generate returns")
	}
	if len(state.Words()) != 3 {
		t.Errorf("expected 3 words applied when Generate returns, got %d", len(state.Words()))
	}
}

func int64Ptr(v int64) *int64 {
	return &v
}

func TestGenerate_CountInRange(t *testing.T) {
	for _, count := range []int{1, 5, 42, 100} {
		t.Run(strconv.Itoa(count), func(t *testing.T) {
			svc := &fakeWordService{}
			c, state := createTestController(svc, strconv.Itoa(count))

			c.Generate(context.Background())

			if svc.randomCalls != 1 {
				t.Fatalf("expected 1 request, got %d", svc.randomCalls)
			}
			if svc.lastCount != count {
				t.Errorf("expected count %d, got %d", count, svc.lastCount)
			}
			if got := len(ResultCards(state)); got != count {
				t.Errorf("expected %d cards, got %d", count, got)
			}
			if len(state.CardStates) != count {
				t.Errorf("expected %d card states, got %d", count, len(state.CardStates))
			}
			if state.Loading {
				t.Error("expected loading to be cleared")
			}
			if state.Alert != "" {
				t.Errorf("unexpected alert: %s", state.Alert)
			}
		})
	}
}

func TestGenerate_OutOfRangeShowsAlert(t *testing.T) {
	for _, value := range []string{"0", "101", "-3", "1000"} {
		t.Run(value, func(t *testing.T) {
			svc := &fakeWordService{}
			c, state := createTestController(svc, value)

			c.Generate(context.Background())

			if svc.randomCalls != 0 {
				t.Errorf("expected no request, got %d", svc.randomCalls)
			}
			if state.Alert != CountAlertMessage {
				t.Errorf("expected alert %q, got %q", CountAlertMessage, state.Alert)
			}
			if state.Loading {
				t.Error("alert must not enter loading state")
			}
		})
	}
}

func TestGenerate_NonNumericDefaultsToFive(t *testing.T) {
	svc := &fakeWordService{}
	c, _ := createTestController(svc, "abc")

	c.Generate(context.Background())

	if svc.lastCount != data.DefaultCount {
		t.Errorf("expected count %d, got %d", data.DefaultCount, svc.lastCount)
	}
}

func TestGenerate_IgnoredWhileLoading(t *testing.T) {
	svc := &fakeWordService{}
	c, state := createTestController(svc, "3")
	var pending []func()
	c.Spawn = func(fn func()) { pending = append(pending, fn) }

	c.Generate(context.Background())
	c.Generate(context.Background())

	if len(pending) != 1 {
		t.Fatalf("expected 1 pending request, got %d", len(pending))
	}
	if !state.Loading {
		t.Fatal("expected loading")
	}
	pending[0]()
	if state.Loading {
		t.Error("expected loading to be cleared")
	}
}

func TestGenerate_ScrollsFirstCardIntoView(t *testing.T) {
	svc := &fakeWordService{}
	c, state := createTestController(svc, "3")
	state.ScrollTop = 7
	state.SelectedCard = 2

	c.Generate(context.Background())

	if len(state.Words()) != 3 {
		t.Fatalf("expected 3 words, got %d", len(state.Words()))
	}
	if !state.Results.ScrolledIntoView {
		t.Error("expected results to be scrolled into view")
	}
	if state.ScrollTop != 0 || state.SelectedCard != 0 {
		t.Errorf("expected first card in view, got scroll=%d selected=%d", state.ScrollTop, state.SelectedCard)
	}
}

func TestRenderResults_EmptyDoesNotScroll(t *testing.T) {
	c, state := createTestController(&fakeWordService{}, "5")

	c.RenderResults("0 matches", nil)

	if state.Results.ScrolledIntoView {
		t.Error("empty results must not scroll")
	}
	output := renderer.NewInteractiveCharmRenderer().Render(ResultsView(state, 20))
	if !strings.Contains(output, "No words found") {
		t.Errorf("expected empty message, got:\n%s", output)
	}
}

func TestGenerate_ServerFailure(t *testing.T) {
	svc := &fakeWordService{randomErr: &storage.ServerError{Msg: "db down"}}
	c, state := createTestController(svc, "5")

	c.Generate(context.Background())

	if state.Results.Kind != ResultsKind_Error {
		t.Fatalf("expected error results, got %v", state.Results.Kind)
	}
	if state.Loading {
		t.Error("expected loading to be cleared")
	}
	output := renderer.NewInteractiveCharmRenderer().Render(ResultsView(state, 20))
	if strings.Count(output, "Error:") != 1 {
		t.Errorf("expected exactly one error block, got:\n%s", output)
	}
	if !strings.Contains(output, "db down") {
		t.Errorf("expected server message, got:\n%s", output)
	}
}

func TestGenerate_EmptyServerMessageUsesGenericText(t *testing.T) {
	svc := &fakeWordService{randomErr: &storage.ServerError{}}
	c, state := createTestController(svc, "5")

	c.Generate(context.Background())

	if state.Results.Error != data.GenericFetchError {
		t.Errorf("expected %q, got %q", data.GenericFetchError, state.Results.Error)
	}
}

func TestGenerate_TransportFailure(t *testing.T) {
	svc := &fakeWordService{randomErr: fmt.Errorf("failed to fetch random words: %w", errors.New("connection refused"))}
	c, state := createTestController(svc, "5")

	c.Generate(context.Background())

	if state.Results.Kind != ResultsKind_Error || !strings.Contains(state.Results.Error, "connection refused") {
		t.Errorf("unexpected results: %+v", state.Results)
	}
	if !strings.HasPrefix(state.Results.Error, data.NetworkErrorPrefix) {
		t.Errorf("expected %q prefix, got %q", data.NetworkErrorPrefix, state.Results.Error)
	}
	if state.Loading {
		t.Error("expected loading to be cleared")
	}
}

func TestInit_StatsFailureDoesNotBlockGeneration(t *testing.T) {
	svc := &fakeWordService{statsErr: errors.New("connection refused")}
	c, state := createTestController(svc, "4")

	c.Init(context.Background())

	if state.Stats.TotalLabel != StatsErrorLabel {
		t.Errorf("expected %q, got %q", StatsErrorLabel, state.Stats.TotalLabel)
	}
	if len(state.Words()) != 4 {
		t.Errorf("expected 4 words, got %d", len(state.Words()))
	}
}

func TestLoadStats_MissingTotal(t *testing.T) {
	svc := &fakeWordService{stats: &models.StatsSnapshot{}}
	c, state := createTestController(svc, "5")

	c.LoadStats(context.Background())

	if state.Stats.TotalLabel != StatsErrorLabel {
		t.Errorf("expected %q, got %q", StatsErrorLabel, state.Stats.TotalLabel)
	}
}

func TestLoadStats_Labels(t *testing.T) {
	svc := &fakeWordService{stats: &models.StatsSnapshot{
		TotalWords: int64Ptr(12345),
		GenderDistribution: map[string]int64{
			"feminine":  4,
			"masculine": 10,
		},
	}}
	c, state := createTestController(svc, "5")
	var summary string
	c.OnGenderSummary = func(s string) { summary = s }

	c.LoadStats(context.Background())

	if state.Stats.TotalLabel != "12,345 words" {
		t.Errorf("unexpected total label %q", state.Stats.TotalLabel)
	}
	if state.Stats.CountLabel != "12,345" {
		t.Errorf("unexpected count label %q", state.Stats.CountLabel)
	}
	if summary != "masculine: 10, feminine: 4" {
		t.Errorf("unexpected summary %q", summary)
	}
}

func TestCancel_DiscardsLateResult(t *testing.T) {
	svc := &fakeWordService{}
	c, state := createTestController(svc, "3")
	var pending []func()
	c.Spawn = func(fn func()) { pending = append(pending, fn) }

	c.Generate(context.Background())
	c.Cancel()
	if state.Loading {
		t.Fatal("expected cancel to clear loading")
	}

	state.CountInput.SetValue("4")
	c.Generate(context.Background())
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending requests, got %d", len(pending))
	}

	pending[1]()
	pending[0]()

	if got := len(state.Words()); got != 4 {
		t.Errorf("expected the latest 4 words to win, got %d", got)
	}
	if state.Loading {
		t.Error("expected loading to be cleared")
	}
}

func TestSetLoading_ClearsCardStates(t *testing.T) {
	c, state := createTestController(&fakeWordService{}, "2")
	words := createTestWords(2)
	words[0].AllEnglishMeanings = []string{"a", "b"}
	c.RenderResults("2 random words", words)
	c.ToggleCard(0)

	c.SetLoading(true)

	if len(state.CardStates) != 0 {
		t.Errorf("expected card states cleared, got %d", len(state.CardStates))
	}
	if len(state.Words()) != 0 {
		t.Errorf("expected results cleared, got %d", len(state.Words()))
	}
}

func TestToggleCard_OnlyWithMoreMeanings(t *testing.T) {
	c, state := createTestController(&fakeWordService{}, "2")
	words := createTestWords(2)
	words[1].AllHindiMeanings = []string{"x", "y"}
	c.RenderResults("2 random words", words)

	c.ToggleCard(0)
	c.ToggleCard(1)
	c.ToggleCard(5)

	if state.CardState(0) != ExpandState_Collapsed {
		t.Error("card without more meanings must stay collapsed")
	}
	if state.CardState(1) != ExpandState_Expanded {
		t.Error("expected card 1 expanded")
	}
}

func TestCopyCard(t *testing.T) {
	c, state := createTestController(&fakeWordService{}, "1")
	var copied string
	c.CopyToClipboard = func(text string) error {
		copied = text
		return nil
	}
	c.RenderResults("1 random words", createTestWords(1))

	c.CopyCard(0)

	if copied != "word1 — meaning 1" {
		t.Errorf("unexpected clipboard text %q", copied)
	}
	if state.StatusBar.Message != "copied word1" {
		t.Errorf("unexpected status %q", state.StatusBar.Message)
	}

	c.CopyToClipboard = func(text string) error { return errors.New("no clipboard") }
	c.CopyCard(0)
	if !strings.Contains(state.StatusBar.Error, "no clipboard") {
		t.Errorf("unexpected status error %q", state.StatusBar.Error)
	}
}

func TestRunCommand(t *testing.T) {
	svc := &fakeWordService{searchResult: createTestWords(2)}
	c, state := createTestController(svc, "3")
	quit := false
	state.Quit = func() { quit = true }

	if c.RunCommand(context.Background(), "3") {
		t.Error("a count must stay in the input")
	}
	if svc.randomCalls != 1 {
		t.Errorf("expected 1 request, got %d", svc.randomCalls)
	}

	if !c.RunCommand(context.Background(), "/search agni") {
		t.Error("expected /search to be consumed")
	}
	if svc.lastQuery != "agni" || len(state.Words()) != 2 {
		t.Errorf("unexpected search: query=%q words=%d", svc.lastQuery, len(state.Words()))
	}

	c.RunCommand(context.Background(), "/bogus")
	if state.StatusBar.Error != "unknown command: /bogus" {
		t.Errorf("unexpected status error %q", state.StatusBar.Error)
	}

	c.RunCommand(context.Background(), "/help")
	if !state.ShowHelp {
		t.Error("expected help page")
	}

	c.RunCommand(context.Background(), "q")
	if !quit {
		t.Error("expected quit")
	}
}

func TestRunCommand_Export(t *testing.T) {
	c, state := createTestController(&fakeWordService{}, "2")
	c.Generate(context.Background())
	file := filepath.Join(t.TempDir(), "words.json")

	c.RunCommand(context.Background(), "/export "+file)

	if state.StatusBar.Error != "" {
		t.Fatalf("unexpected error %q", state.StatusBar.Error)
	}
	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), `"sanskrit": "word2"`) {
		t.Errorf("unexpected export:\n%s", content)
	}

	c.RunCommand(context.Background(), "/export "+file)
	if !strings.Contains(state.StatusBar.Error, "already exists") {
		t.Errorf("expected refusal, got %q", state.StatusBar.Error)
	}
}

func TestDismissAlert(t *testing.T) {
	c, state := createTestController(&fakeWordService{}, "0")
	c.Generate(context.Background())

	state.OnDismiss()

	if state.HasAlert() {
		t.Error("expected alert dismissed")
	}
	if state.Focus != Focus_Input {
		t.Error("expected focus back on the input")
	}
}
