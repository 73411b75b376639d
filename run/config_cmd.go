package run

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/xhd2015/less-gen/flags"
	"github.com/xhd2015/shabda/data"
	"github.com/xhd2015/shabda/internal/config"
	"github.com/xhd2015/shabda/models"
)

const configHelp = `
config - Show or update saved defaults

Without options, prints the config file path and the effective settings.

Options:
  --source <type>              Save the default word source
  --server-addr <addr>         Save the default server address
  --dict-file <file>           Save the default dictionary file
  --count <n>                  Save the default number of words
  -h,--help                    Show this help message
`

func handleConfig(args []string) error {
	var update models.Config
	var count int64

	args, err := flags.String("--source", &update.Source).
		String("--server-addr", &update.ServerAddr).
		String("--dict-file", &update.DictFile).
		Int("--count", &count).
		Help("-h,--help", configHelp).
		Parse(args)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		return fmt.Errorf("unrecognized extra argument: %s", args[0])
	}

	update.DefaultCount = int(count)
	configPath, err := config.GetConfigJSONFile()
	if err != nil {
		return err
	}
	return runConfig(os.Stdout, configPath, update)
}

func runConfig(out io.Writer, configPath string, update models.Config) error {
	saved, err := data.LoadConfigFile(configPath)
	if err != nil {
		return err
	}
	if saved == nil {
		saved = &models.Config{}
	}

	changed, err := applyConfigUpdate(saved, update)
	if err != nil {
		return err
	}
	if changed {
		if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
			return fmt.Errorf("failed to create config dir: %w", err)
		}
		if err := data.SaveConfigFile(configPath, saved); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
	}

	effective := mergeConfig(SourceConfig{}, envConfig(), saved)
	fmt.Fprintln(out, configPath)
	fmt.Fprintf(out, "source: %s\n", effective.Source)
	fmt.Fprintf(out, "server-addr: %s\n", effective.ServerAddr)
	fmt.Fprintf(out, "dict-file: %s\n", effective.DictFile)
	fmt.Fprintf(out, "count: %d\n", effective.DefaultCount)
	return nil
}

func applyConfigUpdate(saved *models.Config, update models.Config) (bool, error) {
	var changed bool
	if update.Source != "" {
		switch update.Source {
		case "server", "file", "sqlite":
		default:
			return false, fmt.Errorf("unsupported source: %s, available: server, file, sqlite", update.Source)
		}
		saved.Source = update.Source
		changed = true
	}
	if update.ServerAddr != "" {
		saved.ServerAddr = update.ServerAddr
		changed = true
	}
	if update.DictFile != "" {
		saved.DictFile = update.DictFile
		changed = true
	}
	if update.DefaultCount != 0 {
		if err := data.ValidateCount(update.DefaultCount); err != nil {
			return false, fmt.Errorf("invalid --count %d: %w", update.DefaultCount, err)
		}
		saved.DefaultCount = update.DefaultCount
		changed = true
	}
	return changed, nil
}
