package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Card sources for the CLI and MCP tools.
const (
	SourceDirect  = "direct"
	SourceBackend = "backend"
)

// Client is the CLI and MCP configuration, stored as TOML.
type Client struct {
	Source      string `toml:"source"`
	BackendURL  string `toml:"backend_url"`
	CardDBURL   string `toml:"card_db_url"`
	BoredAPIURL string `toml:"bored_api_url"`
	Language    string `toml:"language"`
}

// DefaultClient returns the configuration written on first run.
func DefaultClient() Client {
	return Client{
		Source:      SourceDirect,
		BackendURL:  "http://localhost:8080",
		CardDBURL:   "https://db.ygoprodeck.com/api/v7",
		BoredAPIURL: "https://www.boredapi.com/api",
		Language:    "en",
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "duelforge", "config.toml")
}

// LoadClient loads the config file, creating it with defaults if missing.
func LoadClient() (*Client, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultClient(configPath)
	}

	cfg := DefaultClient()
	if _, err := toml.DecodeFile(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	return &cfg, nil
}

// Validate checks the card source setting.
func (c Client) Validate() error {
	switch c.Source {
	case SourceDirect, SourceBackend:
		return nil
	default:
		return fmt.Errorf("source must be %q or %q, got %q", SourceDirect, SourceBackend, c.Source)
	}
}

func createDefaultClient(configPath string) (*Client, error) {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return nil, fmt.Errorf("create config directory: %w", err)
	}

	cfg := DefaultClient()

	file, err := os.Create(configPath)
	if err != nil {
		return nil, fmt.Errorf("create config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(cfg); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	return &cfg, nil
}
