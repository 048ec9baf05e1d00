package sieve

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const defaultConfigFile = "config.json"

// WindowConfig stores the desktop window size.
type WindowConfig struct {
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

// Config aggregates runtime settings persisted to config.json.
type Config struct {
	KnowledgePath string       `json:"knowledgePath"`
	Language      string       `json:"language"`
	LogLevel      string       `json:"logLevel"`
	ExportDir     string       `json:"exportDir"`
	Window        WindowConfig `json:"window"`
	// Columns lists header names recognized in CSV/TSV knowledge files.
	Columns ColumnCandidates `json:"columns"`
	// KnowledgeColumns pins the CSV/TSV columns and header handling.
	KnowledgeColumns KnowledgeParseOptions `json:"knowledgeColumns"`
}

// ApplyDefaults populates zero values with sensible defaults.
func (c *Config) ApplyDefaults() {
	c.KnowledgePath = strings.TrimSpace(c.KnowledgePath)
	if c.KnowledgePath == "" {
		c.KnowledgePath = filepath.Join("config", "knowledge.json")
	}
	c.Language = strings.TrimSpace(c.Language)
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug", "info", "warn", "error":
		c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	default:
		c.LogLevel = "info"
	}
	if strings.TrimSpace(c.ExportDir) == "" {
		c.ExportDir = "csv"
	}
	if c.Window.Width <= 0 {
		c.Window.Width = 1100
	}
	if c.Window.Height <= 0 {
		c.Window.Height = 720
	}
	c.Columns = c.Columns.withDefaults()
	c.KnowledgeColumns.Header = HeaderMode(strings.ToLower(strings.TrimSpace(string(c.KnowledgeColumns.Header))))
}

// LoadConfig loads configuration from the given path or the default
// config.json. A missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		path = defaultConfigFile
	}
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.ApplyDefaults()
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// SaveConfig persists configuration to disk.
func SaveConfig(path string, cfg Config) error {
	if path == "" {
		path = defaultConfigFile
	}
	tmp := path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	cfg.ApplyDefaults()
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp config: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename config: %w", err)
	}
	return nil
}

// LoadKnowledge returns the knowledge base named by cfg. When the file does
// not exist the built-in table is used and fromFile is false.
func LoadKnowledge(cfg Config) (kb *KnowledgeBase, fromFile bool, err error) {
	path := strings.TrimSpace(cfg.KnowledgePath)
	if path == "" {
		return DefaultKnowledgeBase(), false, nil
	}
	if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
		return DefaultKnowledgeBase(), false, nil
	}
	opts := cfg.KnowledgeColumns
	opts.Candidates = cfg.Columns
	kb, err = LoadKnowledgeFileWithOptions(path, opts)
	if err != nil {
		return nil, false, fmt.Errorf("load knowledge: %w", err)
	}
	return kb, true, nil
}
