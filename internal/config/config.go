package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/farooque06/portfolio/internal/relay"
	"github.com/farooque06/portfolio/internal/typing"
)

// EnvPrefix is stripped from environment overrides. Nested keys use a
// double underscore: PORTFOLIO_RELAY__ACCESS_KEY -> relay.access_key.
const EnvPrefix = "PORTFOLIO_"

// Config is the site configuration.
type Config struct {
	Port        int          `koanf:"port" yaml:"port"`
	Mode        string       `koanf:"mode" yaml:"mode"`
	ContentFile string       `koanf:"content_file" yaml:"content_file"`
	Intro       bool         `koanf:"intro" yaml:"intro"`
	Typing      TypingConfig `koanf:"typing" yaml:"typing"`
	Relay       RelayConfig  `koanf:"relay" yaml:"relay"`
	CORS        CORSConfig   `koanf:"cors" yaml:"cors"`
}

// TypingConfig sets the hero typing cadence.
type TypingConfig struct {
	TypingInterval   time.Duration `koanf:"typing_interval" yaml:"typing_interval"`
	DeletingInterval time.Duration `koanf:"deleting_interval" yaml:"deleting_interval"`
	PauseAtFull      time.Duration `koanf:"pause_at_full" yaml:"pause_at_full"`
}

// RelayConfig points the contact form at the form relay.
type RelayConfig struct {
	Endpoint  string        `koanf:"endpoint" yaml:"endpoint"`
	AccessKey string        `koanf:"access_key" yaml:"access_key"`
	Timeout   time.Duration `koanf:"timeout" yaml:"timeout"`
}

// CORSConfig lists origins allowed to call the JSON contact API. Empty
// disables CORS handling.
type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins" yaml:"allowed_origins"`
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() *Config {
	t := typing.DefaultConfig()
	return &Config{
		Port:  8080,
		Intro: true,
		Typing: TypingConfig{
			TypingInterval:   t.TypingInterval,
			DeletingInterval: t.DeletingInterval,
			PauseAtFull:      t.PauseAtFull,
		},
		Relay: RelayConfig{
			Endpoint: relay.DefaultEndpoint,
			Timeout:  10 * time.Second,
		},
	}
}

// Load builds the configuration from defaults, the optional YAML file at
// path, PORTFOLIO_* environment variables and finally a bare PORT.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		cfg.Port = p
	}

	return cfg, nil
}

func envKey(key, value string) (string, interface{}) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	key = strings.ReplaceAll(key, "__", ".")
	if key == "cors.allowed_origins" {
		var origins []string
		for _, origin := range strings.Split(value, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
		return key, origins
	}
	return key, value
}

var validModes = map[string]bool{
	"":        true,
	"debug":   true,
	"release": true,
	"test":    true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if !validModes[c.Mode] {
		return fmt.Errorf("invalid mode %q: must be one of debug, release, test", c.Mode)
	}
	if err := c.TypingAnimator().Validate(); err != nil {
		return err
	}
	if c.Relay.Endpoint != "" {
		u, err := url.Parse(c.Relay.Endpoint)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("invalid relay endpoint %q", c.Relay.Endpoint)
		}
	}
	if c.Relay.Timeout < 0 {
		return fmt.Errorf("relay timeout must be non-negative")
	}
	return nil
}

// TypingAnimator converts the typing section to the animator's config.
func (c *Config) TypingAnimator() typing.Config {
	return typing.Config{
		TypingInterval:   c.Typing.TypingInterval,
		DeletingInterval: c.Typing.DeletingInterval,
		PauseAtFull:      c.Typing.PauseAtFull,
	}
}

// RelayClient converts the relay section to the relay client's config.
func (c *Config) RelayClient() relay.Config {
	return relay.Config{
		Endpoint:  c.Relay.Endpoint,
		AccessKey: c.Relay.AccessKey,
		Timeout:   c.Relay.Timeout,
	}
}
