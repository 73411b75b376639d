package run

import (
	"testing"

	"github.com/xhd2015/shabda/models"
)

func TestMergeConfig_Precedence(t *testing.T) {
	saved := &models.Config{
		Source:       "sqlite",
		ServerAddr:   "http://saved:5000",
		DictFile:     "saved.json",
		DefaultCount: 7,
	}
	env := SourceConfig{ServerAddr: "http://env:5000"}
	flagConfig := SourceConfig{DictFile: "flag.json"}

	got := mergeConfig(flagConfig, env, saved)

	if got.Source != "sqlite" {
		t.Errorf("expected saved source, got %q", got.Source)
	}
	if got.ServerAddr != "http://env:5000" {
		t.Errorf("expected env server addr, got %q", got.ServerAddr)
	}
	if got.DictFile != "flag.json" {
		t.Errorf("expected flag dict file, got %q", got.DictFile)
	}
	if got.DefaultCount != 7 {
		t.Errorf("expected saved count, got %d", got.DefaultCount)
	}
}

func TestMergeConfig_Defaults(t *testing.T) {
	got := mergeConfig(SourceConfig{}, SourceConfig{}, nil)

	want := SourceConfig{
		Source:       DEFAULT_SOURCE,
		ServerAddr:   DEFAULT_SERVER_ADDR,
		DictFile:     DEFAULT_DICT_FILE,
		DefaultCount: 5,
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestCreateWordService_UnknownSource(t *testing.T) {
	_, _, err := createWordService(SourceConfig{Source: "ftp"})
	if err == nil {
		t.Fatal("expected error")
	}
}
