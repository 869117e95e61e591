// Package config persists the client's settings and session under the home
// directory as YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"fnotes/internal/constants"
)

// User is the account object stored alongside the bearer token. Token and
// user are the session's only two persisted values and are always written
// and cleared together.
type User struct {
	ID    string `yaml:"id"    json:"id"`
	Email string `yaml:"email" json:"email"`
	Name  string `yaml:"name"  json:"name"`
}

// ShareConfig selects export share capabilities.
type ShareConfig struct {
	Clipboard bool   `yaml:"clipboard"  json:"clipboard"`
	S3Bucket  string `yaml:"s3_bucket"  json:"s3_bucket"`
	S3Region  string `yaml:"s3_region"  json:"s3_region"`
	S3Prefix  string `yaml:"s3_prefix"  json:"s3_prefix"`
	S3Access  string `yaml:"s3_access"  json:"s3_access"`
	S3Secret  string `yaml:"s3_secret"  json:"s3_secret"`
}

type Config struct {
	ServerURL      string      `yaml:"server_url"      json:"server_url"`
	ExportDir      string      `yaml:"export_dir"      json:"export_dir"`
	ArchiveExports bool        `yaml:"archive_exports" json:"archive_exports"`
	AutosaveMillis int         `yaml:"autosave_ms"     json:"autosave_ms"`
	Share          ShareConfig `yaml:"share"           json:"share"`
	Token          string      `yaml:"token"           json:"token"`
	User           *User       `yaml:"user"            json:"user"`

	path string `yaml:"-"`
}

func GetConfigPath(homeDir string) string {
	return filepath.Join(
		homeDir,
		constants.ConfigDir,
		constants.ConfigFile+"."+constants.ConfigFileType,
	)
}

// EnsureConfigExists creates the config directory and an empty config file
// on first run.
func EnsureConfigExists(homeDir string) error {
	configPath := GetConfigPath(homeDir)
	configDir := filepath.Dir(configPath)

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		file, err := os.Create(configPath)
		if err != nil {
			return fmt.Errorf("failed to create config file: %w", err)
		}
		file.Close()
	} else if err != nil {
		return fmt.Errorf("failed to check config file existence: %w", err)
	}

	return nil
}

// Load reads the config from the home directory, filling defaults for
// anything unset.
func Load(homeDir string) (*Config, error) {
	path := GetConfigPath(homeDir)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{path: path}
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	cfg.ensureDefaults(homeDir)
	cfg.syncViper()

	return cfg, nil
}

func (cfg *Config) ensureDefaults(homeDir string) {
	if cfg.ServerURL == "" {
		cfg.ServerURL = constants.DefaultServerURL
	}
	if cfg.ExportDir == "" {
		cfg.ExportDir = filepath.Join(homeDir, strings.Trim(constants.ConfigDir, "/"), "exports")
	}
	if cfg.AutosaveMillis <= 0 {
		cfg.AutosaveMillis = constants.DefaultAutosaveMillis
	}
}

func (cfg *Config) syncViper() {
	viper.Set("server_url", cfg.ServerURL)
	viper.Set("export_dir", cfg.ExportDir)
	viper.Set("autosave_ms", cfg.AutosaveMillis)
}

// Save writes the config back to disk.
func (cfg *Config) Save() error {
	if cfg.path == "" {
		return &ConfigInitError{msg: "config has no backing file"}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(cfg.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// SetCredentials stores the session's token and user together.
func (cfg *Config) SetCredentials(token string, user User) error {
	cfg.Token = token
	cfg.User = &user
	return cfg.Save()
}

// ClearCredentials removes both session values together.
func (cfg *Config) ClearCredentials() error {
	cfg.Token = ""
	cfg.User = nil
	return cfg.Save()
}

// Authenticated reports whether a session token is stored.
func (cfg *Config) Authenticated() bool {
	return cfg.Token != ""
}
