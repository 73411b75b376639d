package models

type Config struct {
	Source       string `json:"source,omitempty"`
	ServerAddr   string `json:"server_addr,omitempty"`
	DictFile     string `json:"dict_file,omitempty"`
	DefaultCount int    `json:"default_count,omitempty"`

	RunningPID int `json:"running_pid,omitempty"`
}
