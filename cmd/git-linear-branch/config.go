package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mrbonezy/git-linear-branch/branch"
)

const (
	gitBackendExec  = "exec"
	gitBackendGoGit = "go-git"
)

// Config is optional; a missing file means defaults.
type Config struct {
	Retention  int    `json:"retention,omitempty"`
	GitBackend string `json:"git_backend,omitempty"`
	Color      *bool  `json:"color,omitempty"`
}

func defaultConfig() Config {
	return Config{
		Retention:  branch.Retention,
		GitBackend: gitBackendExec,
	}
}

func LoadConfig() (Config, error) {
	path, err := configPath()
	if err != nil {
		return defaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Retention <= 0 {
		cfg.Retention = branch.Retention
	}
	cfg.GitBackend = strings.ToLower(strings.TrimSpace(cfg.GitBackend))
	switch cfg.GitBackend {
	case "":
		cfg.GitBackend = gitBackendExec
	case gitBackendExec, gitBackendGoGit:
	default:
		return Config{}, fmt.Errorf("config %s: unknown git_backend %q", path, cfg.GitBackend)
	}
	return cfg, nil
}

func configPath() (string, error) {
	home := os.Getenv("HOME")
	if strings.TrimSpace(home) == "" {
		return "", errors.New("HOME not set")
	}
	return filepath.Join(home, ".git-linear-branch", "config.json"), nil
}

func colorEnabled(cfg Config) bool {
	if colorDisabledByEnv() {
		return false
	}
	if cfg.Color != nil {
		return *cfg.Color
	}
	return true
}
