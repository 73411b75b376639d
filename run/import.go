package run

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xhd2015/less-gen/flags"
	"github.com/xhd2015/shabda/data/storage/filestore"
	"github.com/xhd2015/shabda/internal/config"
)

const importHelp = `
import <dictionary.json>

Load a parsed dictionary (a list of {sanskrit, gender, english_meanings,
hindi_meanings}) into the sqlite source used by --source=sqlite.

Options:
  --replace                    Remove existing words first
  --db <file>                  Sqlite database (default <config dir>/shabda.db)
  -h,--help                    Show this help message
`

func handleImport(args []string) error {
	var cfg SourceConfig
	var replace bool

	args, err := flags.Bool("--replace", &replace).
		String("--db", &cfg.DBFile).
		Help("-h,--help", importHelp).
		Parse(args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("requires dictionary JSON file")
	}
	if len(args) > 1 {
		return fmt.Errorf("unrecognized extra argument: %s", strings.Join(args[1:], " "))
	}

	if cfg.DBFile == "" {
		confDir, err := config.GetConfigDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(confDir, 0755); err != nil {
			return fmt.Errorf("failed to create config dir: %w", err)
		}
	}
	return runImport(context.Background(), os.Stdout, cfg, args[0], replace)
}

func runImport(ctx context.Context, out io.Writer, cfg SourceConfig, jsonFile string, replace bool) error {
	entries, err := filestore.ReadDictionary(jsonFile)
	if err != nil {
		return fmt.Errorf("failed to read dictionary: %w", err)
	}

	store, err := openSqlite(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.Import(ctx, entries, replace)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Imported %d words, skipped %d without headword from %s\n", n, len(entries)-n, jsonFile)
	return nil
}
