package run

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xhd2015/less-gen/flags"
	"github.com/xhd2015/shabda/app"
	"github.com/xhd2015/shabda/data"
	"github.com/xhd2015/shabda/models"
	"github.com/xhd2015/shabda/ui/card"
	"golang.org/x/term"
)

const sourceOptionsHelp = `  --source <type>              Word source: server (default), file or sqlite
  --server-addr <addr>         Server address
  --dict-file <file>           Dictionary JSON file for --source=file
  --db <file>                  Sqlite database for --source=sqlite
  -h,--help                    Show this help message`

const randomHelp = `
random - Print random words

Options:
  --count <n>                  Number of words, 1-100 (default 5)
  --all                        Also list every meaning
  --json                       Output raw JSON data
` + sourceOptionsHelp + `

Examples:
  shabda random                          Print 5 words
  shabda random --count 20 --all         Print 20 words with all meanings
  shabda random --source file --dict-file dict.json --json
`

const statsHelp = `
stats - Print dictionary statistics

Options:
  --json                       Output raw JSON data
` + sourceOptionsHelp + `
`

const searchHelp = `
search <query> - Print words whose headword contains query

Options:
  --all                        Also list every meaning
  --json                       Output raw JSON data
` + sourceOptionsHelp + `
`

// printOptions controls how words reach stdout
type printOptions struct {
	JSON bool
	All  bool
}

func handleRandom(args []string) error {
	var cfg SourceConfig
	var opts printOptions
	var count int64

	args, err := flags.String("--source", &cfg.Source).
		String("--server-addr", &cfg.ServerAddr).
		String("--dict-file", &cfg.DictFile).
		String("--db", &cfg.DBFile).
		Int("--count", &count).
		Bool("--all", &opts.All).
		Bool("--json", &opts.JSON).
		Help("-h,--help", randomHelp).
		Parse(args)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		return fmt.Errorf("unrecognized extra argument: %s", strings.Join(args, " "))
	}

	cfg.DefaultCount = int(count)
	cfg, err = ApplyConfigDefaults(cfg)
	if err != nil {
		return err
	}
	return withManager(cfg, func(manager *data.WordManager) error {
		return runRandom(context.Background(), os.Stdout, manager, cfg.DefaultCount, opts)
	})
}

func runRandom(ctx context.Context, out io.Writer, manager *data.WordManager, count int, opts printOptions) error {
	words, err := manager.Random(ctx, count)
	if err != nil {
		return errors.New(data.ErrorMessage(err))
	}
	return printWords(out, words, opts)
}

func handleStats(args []string) error {
	var cfg SourceConfig
	var jsonOutput bool

	args, err := flags.String("--source", &cfg.Source).
		String("--server-addr", &cfg.ServerAddr).
		String("--dict-file", &cfg.DictFile).
		String("--db", &cfg.DBFile).
		Bool("--json", &jsonOutput).
		Help("-h,--help", statsHelp).
		Parse(args)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		return fmt.Errorf("unrecognized extra argument: %s", strings.Join(args, " "))
	}

	cfg, err = ApplyConfigDefaults(cfg)
	if err != nil {
		return err
	}
	return withManager(cfg, func(manager *data.WordManager) error {
		return runStats(context.Background(), os.Stdout, manager, jsonOutput)
	})
}

func runStats(ctx context.Context, out io.Writer, manager *data.WordManager, jsonOutput bool) error {
	stats, err := manager.Stats(ctx)
	if err != nil {
		return err
	}
	if jsonOutput {
		return outputJSON(out, stats)
	}
	if stats.TotalWords == nil {
		fmt.Fprintln(out, app.StatsErrorLabel)
		return nil
	}
	fmt.Fprintln(out, app.FormatTotalWords(*stats.TotalWords))
	if len(stats.GenderDistribution) > 0 {
		fmt.Fprintln(out, app.GenderSummary(stats.GenderDistribution))
	}
	return nil
}

func handleSearch(args []string) error {
	var cfg SourceConfig
	var opts printOptions

	args, err := flags.String("--source", &cfg.Source).
		String("--server-addr", &cfg.ServerAddr).
		String("--dict-file", &cfg.DictFile).
		String("--db", &cfg.DBFile).
		Bool("--all", &opts.All).
		Bool("--json", &opts.JSON).
		Help("-h,--help", searchHelp).
		Parse(args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("requires query")
	}
	query := strings.Join(args, " ")

	cfg, err = ApplyConfigDefaults(cfg)
	if err != nil {
		return err
	}
	return withManager(cfg, func(manager *data.WordManager) error {
		return runSearch(context.Background(), os.Stdout, manager, query, opts)
	})
}

func runSearch(ctx context.Context, out io.Writer, manager *data.WordManager, query string, opts printOptions) error {
	words, err := manager.Search(ctx, query)
	if err != nil {
		return errors.New(data.ErrorMessage(err))
	}
	if len(words) == 0 && !opts.JSON {
		fmt.Fprintf(out, "no words contain %q\n", query)
		return nil
	}
	return printWords(out, words, opts)
}

func withManager(cfg SourceConfig, fn func(manager *data.WordManager) error) error {
	wordService, closeService, err := createWordService(cfg)
	if err != nil {
		return err
	}
	defer closeService()
	return fn(data.NewWordManager(wordService))
}

func printWords(out io.Writer, words []*models.WordEntry, opts printOptions) error {
	if opts.JSON {
		return outputJSON(out, words)
	}

	cardOpts := card.Options{All: opts.All}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		cardOpts.Styled = true
		if width, _, err := term.GetSize(int(f.Fd())); err == nil {
			cardOpts.Width = width
		}
	}
	_, err := io.WriteString(out, card.RenderWords(words, cardOpts))
	return err
}

func outputJSON(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
