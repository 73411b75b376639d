package run

import (
	"fmt"

	"github.com/xhd2015/shabda/data/storage"
	"github.com/xhd2015/shabda/data/storage/filestore"
	"github.com/xhd2015/shabda/data/storage/http"
	"github.com/xhd2015/shabda/data/storage/sqlite"
	"github.com/xhd2015/shabda/internal/config"
)

func createWordService(cfg SourceConfig) (storage.WordService, func() error, error) {
	noClose := func() error { return nil }

	switch cfg.Source {
	case "server":
		if cfg.ServerAddr == "" {
			return nil, nil, fmt.Errorf("--server-addr is required when --source=server")
		}
		return http.NewWordService(cfg.ServerAddr), noClose, nil
	case "file":
		store, err := filestore.New(cfg.DictFile)
		if err != nil {
			return nil, nil, err
		}
		return store, noClose, nil
	case "sqlite":
		store, err := openSqlite(cfg)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported source: %s, available: server, file, sqlite", cfg.Source)
	}
}

func openSqlite(cfg SourceConfig) (*sqlite.SQLiteStore, error) {
	dbFile := cfg.DBFile
	if dbFile == "" {
		var err error
		dbFile, err = config.GetSqliteFile()
		if err != nil {
			return nil, err
		}
	}
	return sqlite.New(dbFile)
}

// describeSource is shown in the status bar
func describeSource(cfg SourceConfig) string {
	switch cfg.Source {
	case "server":
		return "server " + cfg.ServerAddr
	case "file":
		return "file " + cfg.DictFile
	}
	return cfg.Source
}
