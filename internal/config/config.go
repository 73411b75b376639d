package config

import (
	"os"
	"path/filepath"
)

const AppName = "shabda"

func GetConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, AppName), nil
}

func GetConfigFile(name string) (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

func GetConfigJSONFile() (string, error) {
	return GetConfigFile("config.json")
}

// GetSqliteFile is the database of the sqlite word source
func GetSqliteFile() (string, error) {
	return GetConfigFile("shabda.db")
}
