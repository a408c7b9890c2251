// Package config handles the XDG configuration directory, file paths and
// the optional config.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application directory name.
	AppName = "todo"

	// SettingsFile is the optional settings filename.
	SettingsFile = "config.toml"

	// OAuthClientFile is the OAuth client credentials filename.
	OAuthClientFile = "oauth_client.json"

	// TokenFile is the stored OAuth token filename.
	TokenFile = "token.json"
)

// Default screen texts.
const (
	DefaultTitle   = "MY TASK LIST"
	DefaultHint    = "Type a new task..."
	DefaultWarning = "⚠ Enter a valid task!"
	DefaultBullet  = "•"
)

// Settings are the user-tunable values read from config.toml.
type Settings struct {
	// Title is shown above the list.
	Title string `toml:"title"`

	// Hint is the input placeholder text.
	Hint string `toml:"hint"`

	// Warning replaces the hint after an empty submission.
	Warning string `toml:"warning"`

	// Bullet prefixes every rendered task.
	Bullet string `toml:"bullet"`

	// List is the Google Tasks list name used by push when none is given.
	// Empty means the account's default list.
	List string `toml:"list"`

	// Font is a UTF-8 TrueType font file for :print. Empty uses the
	// built-in font, which only covers Western European text.
	Font string `toml:"font"`
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		Title:   DefaultTitle,
		Hint:    DefaultHint,
		Warning: DefaultWarning,
		Bullet:  DefaultBullet,
	}
}

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	Settings Settings
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/todo or $HOME/.config/todo.
// Settings start at their defaults; call Load to read config.toml.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{Dir: dir, Settings: DefaultSettings()}, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// Load reads config.toml from the config directory, if present.
// Keys left empty keep their defaults. Unknown keys are an error.
func (c *Config) Load() error {
	path := c.SettingsPath()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", SettingsFile, err)
	}

	var s Settings
	md, err := toml.Decode(string(data), &s)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", SettingsFile, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("invalid %s: unknown key: %s", SettingsFile, strings.Join(keys, ", "))
	}

	c.Settings.merge(s)
	return nil
}

func (s *Settings) merge(o Settings) {
	if o.Title != "" {
		s.Title = o.Title
	}
	if o.Hint != "" {
		s.Hint = o.Hint
	}
	if o.Warning != "" {
		s.Warning = o.Warning
	}
	if o.Bullet != "" {
		s.Bullet = o.Bullet
	}
	s.List = strings.TrimSpace(o.List)
	s.Font = strings.TrimSpace(o.Font)
}

// SettingsPath returns the path to config.toml.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.Dir, SettingsFile)
}

// OAuthClientPath returns the path to the OAuth client credentials file.
func (c *Config) OAuthClientPath() string {
	return filepath.Join(c.Dir, OAuthClientFile)
}

// TokenPath returns the path to the stored OAuth token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasOAuthClient checks if the OAuth client credentials file exists.
func (c *Config) HasOAuthClient() bool {
	_, err := os.Stat(c.OAuthClientPath())
	return err == nil
}

// HasToken checks if the token file exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}

// RemoveToken deletes the token file.
func (c *Config) RemoveToken() error {
	return os.Remove(c.TokenPath())
}
