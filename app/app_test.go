package app

import (
	"context"
	"strings"
	"testing"

	"github.com/xhd2015/go-dom-tui/charm/renderer"
	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/shabda/models"
)

func renderApp(state *State) string {
	return renderer.NewInteractiveCharmRenderer().Render(App(state, &dom.Window{Width: 100, Height: 40}))
}

func TestApp_RendersCardsAndStats(t *testing.T) {
	svc := &fakeWordService{stats: &models.StatsSnapshot{TotalWords: int64Ptr(1)}}
	c, state := createTestController(svc, "3")
	state.StatusBar.Source = "server"

	c.Init(context.Background())
	output := renderApp(state)

	for _, want := range []string{"1 word", "[Generate]", "3 random words", "word1", "word2", "word3", "server"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in\n%s", want, output)
		}
	}
}

func TestApp_AlertBlocksPage(t *testing.T) {
	c, state := createTestController(&fakeWordService{}, "500")

	c.Generate(context.Background())
	output := renderApp(state)

	if !strings.Contains(output, CountAlertMessage) || !strings.Contains(output, "[OK]") {
		t.Errorf("expected alert in\n%s", output)
	}
}

func TestApp_HelpPage(t *testing.T) {
	_, state := createTestController(&fakeWordService{}, "5")
	state.ShowHelp = true

	output := renderApp(state)

	if !strings.Contains(output, "/export") {
		t.Errorf("expected key reference in\n%s", output)
	}
}

func TestApp_LoadingShowsSpinner(t *testing.T) {
	c, state := createTestController(&fakeWordService{}, "5")
	c.Spawn = func(fn func()) {}

	c.Generate(context.Background())
	output := renderApp(state)

	if !strings.Contains(output, "Loading words...") || !strings.Contains(output, "Request...") {
		t.Errorf("expected loading indicators in\n%s", output)
	}
}
