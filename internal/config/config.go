package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	perrors "github.com/zhubert/murmur/internal/errors"
	"github.com/zhubert/murmur/internal/logger"
)

// Defaults applied before the config file and environment are read.
const (
	DefaultTheme          = "dark-green"
	DefaultUserName       = "current user"
	DefaultStatusDuration = 5 * time.Second
	DefaultTickInterval   = 100 * time.Millisecond
	DefaultReplyDelay     = 2 * time.Second
	DefaultCensorChar     = "*"

	maxUserNameRunes = 40
)

// Duration is a time.Duration that reads and writes as "5s" in JSON.
type Duration time.Duration

// D returns the value as a time.Duration.
func (d Duration) D() time.Duration { return time.Duration(d) }

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		// Bare numbers are milliseconds.
		var ms int64
		if err2 := json.Unmarshal(b, &ms); err2 != nil {
			return err
		}
		*d = Duration(time.Duration(ms) * time.Millisecond)
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Config holds the user's preferences. Chats and statuses are never stored
// here; they live only for the lifetime of the process.
type Config struct {
	Theme                string   `json:"theme,omitempty"`
	UserName             string   `json:"user_name,omitempty" validate:"max=40"`
	StatusDuration       Duration `json:"status_duration" validate:"gt=0"`
	TickInterval         Duration `json:"tick_interval" validate:"gt=0,ltefield=StatusDuration"`
	AutoReply            bool     `json:"auto_reply"`
	ReplyDelay           Duration `json:"reply_delay" validate:"gte=0"`
	NotificationsEnabled bool     `json:"notifications_enabled"`
	BlockedWords         []string `json:"blocked_words,omitempty"`
	CensorChar           string   `json:"censor_char,omitempty" validate:"len=1"`
	WelcomeShown         bool     `json:"welcome_shown,omitempty"`

	mu       sync.RWMutex
	filePath string
}

// envConfig mirrors the MURMUR_* environment. Every field is a string so an
// unset variable is distinguishable from a zero value.
type envConfig struct {
	Theme          string `env:"MURMUR_THEME"`
	UserName       string `env:"MURMUR_USER_NAME"`
	StatusDuration string `env:"MURMUR_STATUS_DURATION"`
	TickInterval   string `env:"MURMUR_TICK_INTERVAL"`
	AutoReply      string `env:"MURMUR_AUTO_REPLY"`
	ReplyDelay     string `env:"MURMUR_REPLY_DELAY"`
	Notifications  string `env:"MURMUR_NOTIFICATIONS"`
	BlockedWords   string `env:"MURMUR_BLOCKED_WORDS"`
	CensorChar     string `env:"MURMUR_CENSOR_CHAR"`
}

var validate = validator.New()

// dotenvFiles are loaded into the process environment before env binding.
var dotenvFiles = []string{".env"}

// Default returns a config holding only defaults.
func Default() *Config {
	return &Config{
		Theme:                DefaultTheme,
		UserName:             DefaultUserName,
		StatusDuration:       Duration(DefaultStatusDuration),
		TickInterval:         Duration(DefaultTickInterval),
		AutoReply:            true,
		ReplyDelay:           Duration(DefaultReplyDelay),
		NotificationsEnabled: false,
		CensorChar:           DefaultCensorChar,
	}
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".murmur"), nil
}

// DefaultPath returns ~/.murmur/config.json.
func DefaultPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load builds the config from defaults, the JSON file at path (or the
// default path when empty), a .env file and the MURMUR_* environment, in
// that order, then validates it. A missing file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, perrors.ConfigLoadFailed("~/.murmur/config.json", err)
		}
		path = p
	}

	cfg := Default()
	cfg.filePath = path

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		logger.Debug("no config file at %s, using defaults", path)
	case err != nil:
		return nil, perrors.ConfigLoadFailed(path, err)
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, perrors.ConfigLoadFailed(path, err)
		}
	}

	loadDotEnv()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadDotEnv() {
	existing := make([]string, 0, len(dotenvFiles))
	for _, f := range dotenvFiles {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return
	}
	if err := godotenv.Load(existing...); err != nil {
		logger.Warn("failed to load %v: %v", existing, err)
	}
}

// applyEnv overlays the MURMUR_* variables on c.
func (c *Config) applyEnv() error {
	var e envConfig
	if _, err := env.UnmarshalFromEnviron(&e); err != nil {
		return perrors.E(perrors.Op("config.Env"), perrors.KindConfig, err)
	}

	if e.Theme != "" {
		c.Theme = e.Theme
	}
	if e.UserName != "" {
		c.UserName = e.UserName
	}
	for _, d := range []struct {
		name string
		raw  string
		dst  *Duration
	}{
		{"MURMUR_STATUS_DURATION", e.StatusDuration, &c.StatusDuration},
		{"MURMUR_TICK_INTERVAL", e.TickInterval, &c.TickInterval},
		{"MURMUR_REPLY_DELAY", e.ReplyDelay, &c.ReplyDelay},
	} {
		if d.raw == "" {
			continue
		}
		v, err := time.ParseDuration(d.raw)
		if err != nil {
			return perrors.ConfigInvalid(fmt.Sprintf("%s: %v", d.name, err))
		}
		*d.dst = Duration(v)
	}
	for _, b := range []struct {
		name string
		raw  string
		dst  *bool
	}{
		{"MURMUR_AUTO_REPLY", e.AutoReply, &c.AutoReply},
		{"MURMUR_NOTIFICATIONS", e.Notifications, &c.NotificationsEnabled},
	} {
		if b.raw == "" {
			continue
		}
		v, err := strconv.ParseBool(b.raw)
		if err != nil {
			return perrors.ConfigInvalid(fmt.Sprintf("%s: %v", b.name, err))
		}
		*b.dst = v
	}
	if e.BlockedWords != "" {
		c.BlockedWords = splitWords(e.BlockedWords)
	}
	if e.CensorChar != "" {
		c.CensorChar = e.CensorChar
	}
	return nil
}

func splitWords(s string) []string {
	var out []string
	for _, w := range strings.Split(s, ",") {
		if w = strings.TrimSpace(w); w != "" {
			out = append(out, w)
		}
	}
	return out
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := validate.Struct(c); err != nil {
		return perrors.ConfigInvalid(err.Error())
	}
	return nil
}

// Path returns the file the config was loaded from and saves to.
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// SetFilePath sets the file Save writes to.
func (c *Config) SetFilePath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filePath = path
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.filePath == "" {
		return perrors.E(perrors.Op("config.Save"), perrors.KindConfig, "config has no file path")
	}
	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return perrors.E(perrors.Op("config.Save"), perrors.KindIO, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return perrors.E(perrors.Op("config.Save"), perrors.KindIO, err)
	}
	return nil
}

// HasSeenWelcome returns whether the welcome modal has been shown
func (c *Config) HasSeenWelcome() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.WelcomeShown
}

// MarkWelcomeShown marks the welcome modal as shown
func (c *Config) MarkWelcomeShown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.WelcomeShown = true
}

// GetTheme returns the current theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the current theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled sets whether desktop notifications are enabled
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}

// GetUserName returns the display name used for published statuses.
func (c *Config) GetUserName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.UserName
}

// SetUserName sets the display name; empty names are ignored.
func (c *Config) SetUserName(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	if len([]rune(name)) > maxUserNameRunes {
		name = string([]rune(name)[:maxUserNameRunes])
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.UserName = name
}

// GetBlockedWords returns a copy of the moderation word list.
func (c *Config) GetBlockedWords() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	words := make([]string, len(c.BlockedWords))
	copy(words, c.BlockedWords)
	return words
}

// GetCensorRune returns the rune used to mask blocked words.
func (c *Config) GetCensorRune() rune {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, r := range c.CensorChar {
		return r
	}
	return '*'
}
