package run

import (
	"os"

	"github.com/samber/lo"
	"github.com/xhd2015/shabda/data"
	"github.com/xhd2015/shabda/models"
)

const (
	DEFAULT_SOURCE      = "server"
	DEFAULT_SERVER_ADDR = "http://localhost:5000"
	DEFAULT_DICT_FILE   = "sanskrit_dictionary.json"

	ENV_SOURCE      = "SHABDA_SOURCE"
	ENV_SERVER_ADDR = "SHABDA_SERVER_ADDR"
	ENV_DICT_FILE   = "SHABDA_DICT_FILE"
)

// SourceConfig selects the word source
type SourceConfig struct {
	Source     string
	ServerAddr string
	DictFile   string
	// DBFile overrides the sqlite database location
	DBFile string

	DefaultCount int
}

// ApplyConfigDefaults fills values not given on the command line from the
// environment, then the saved config, then built-in defaults.
func ApplyConfigDefaults(flagConfig SourceConfig) (SourceConfig, error) {
	savedConfig, err := data.LoadConfig()
	if err != nil {
		return SourceConfig{}, err
	}
	return mergeConfig(flagConfig, envConfig(), savedConfig), nil
}

func envConfig() SourceConfig {
	return SourceConfig{
		Source:     os.Getenv(ENV_SOURCE),
		ServerAddr: os.Getenv(ENV_SERVER_ADDR),
		DictFile:   os.Getenv(ENV_DICT_FILE),
	}
}

func mergeConfig(flagConfig SourceConfig, env SourceConfig, saved *models.Config) SourceConfig {
	if saved == nil {
		saved = &models.Config{}
	}
	source, _ := lo.Coalesce(flagConfig.Source, env.Source, saved.Source, DEFAULT_SOURCE)
	serverAddr, _ := lo.Coalesce(flagConfig.ServerAddr, env.ServerAddr, saved.ServerAddr, DEFAULT_SERVER_ADDR)
	dictFile, _ := lo.Coalesce(flagConfig.DictFile, env.DictFile, saved.DictFile, DEFAULT_DICT_FILE)
	count, _ := lo.Coalesce(flagConfig.DefaultCount, saved.DefaultCount, data.DefaultCount)

	return SourceConfig{
		Source:       source,
		ServerAddr:   serverAddr,
		DictFile:     dictFile,
		DBFile:       flagConfig.DBFile,
		DefaultCount: count,
	}
}
