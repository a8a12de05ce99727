package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/redjax/weathercli/internal/utils/path"
)

const (
	// EnvPrefix is stripped from environment variables, i.e. WEATHERCLI_API_KEY -> api.key
	EnvPrefix = "WEATHERCLI_"
	// LegacyKeyVar is the bare variable name the API key has always been read from.
	LegacyKeyVar = "API"
	// DotEnvFile is loaded from the working directory when it exists.
	DotEnvFile = ".env"

	DefaultBaseURL = "https://api.openweathermap.org"
)

// ErrMissingAPIKey is returned by Load when no source provided api.key.
var ErrMissingAPIKey = errors.New("API key not found")

// ErrInvalidBaseURL is returned by Load when api.base_url is not an absolute
// http(s) URL.
var ErrInvalidBaseURL = errors.New("invalid base URL")

type Config struct {
	API  APIConfig  `koanf:"api"`
	HTTP HTTPConfig `koanf:"http"`
}

type APIConfig struct {
	Key     string `koanf:"key"`
	BaseURL string `koanf:"base_url"`
}

type HTTPConfig struct {
	// 0 leaves the http.Client without a timeout.
	Timeout time.Duration `koanf:"timeout"`
}

// flagKeys maps CLI flag names to config keys. Flags not listed here are
// ignored by the config layer.
var flagKeys = map[string]string{
	"api-key":  "api.key",
	"base-url": "api.base_url",
	"timeout":  "http.timeout",
}

// RegisterFlags adds the config-backed flags to a flag set.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("api-key", "", "OpenWeatherMap API key (overrides $API and .env)")
	fs.String("base-url", DefaultBaseURL, "Base URL of the weather provider")
	fs.Duration("timeout", 0, "HTTP request timeout, e.g. 10s (0 = no timeout)")
}

// Load builds a Config from, in increasing precedence: defaults, the optional
// config file, a .env file in the working directory, environment variables,
// and command-line flags.
func Load(flagSet *pflag.FlagSet, configFile string) (Config, error) {
	k := koanf.New(".")

	if err := k.Set("api.base_url", DefaultBaseURL); err != nil {
		return Config{}, err
	}

	// Load from config file if provided
	if configFile != "" {
		expanded, err := path.ExpandPath(configFile)
		if err != nil {
			return Config{}, fmt.Errorf("invalid config path: %w", err)
		}
		if err := loadFile(k, expanded); err != nil {
			return Config{}, err
		}
	}

	if _, err := os.Stat(DotEnvFile); err == nil {
		if err := loadDotEnv(k, DotEnvFile); err != nil {
			return Config{}, err
		}
	}

	// Load from environment variables, API and WEATHERCLI_*
	if err := k.Load(env.Provider("", ".", envKey), nil); err != nil {
		return Config{}, fmt.Errorf("error loading environment: %w", err)
	}

	// Load from command-line flags (highest precedence)
	if flagSet != nil {
		err := k.Load(posflag.ProviderWithFlag(flagSet, ".", k, func(f *pflag.Flag) (string, interface{}) {
			key, ok := flagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(flagSet, f)
		}), nil)
		if err != nil {
			return Config{}, fmt.Errorf("error loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}

	cfg.API.Key = strings.TrimSpace(cfg.API.Key)
	if cfg.API.Key == "" {
		return Config{}, ErrMissingAPIKey
	}
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = DefaultBaseURL
	}
	cfg.API.BaseURL = strings.TrimRight(cfg.API.BaseURL, "/")
	if err := validateBaseURL(cfg.API.BaseURL); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// validateBaseURL rejects base URLs that can't be turned into requests.
func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q needs an http or https scheme and a host", ErrInvalidBaseURL, raw)
	}

	return nil
}

func loadFile(k *koanf.Koanf, filePath string) error {
	parser, err := parserForFile(filePath)
	if err != nil {
		return fmt.Errorf("unsupported config file format: %w", err)
	}

	if _, ok := parser.(*dotenv.DotEnv); ok {
		return loadDotEnv(k, filePath)
	}

	if err := k.Load(file.Provider(filePath), parser); err != nil {
		return fmt.Errorf("error loading config file %s: %w", filePath, err)
	}

	return nil
}

// loadDotEnv reads a dotenv file and maps its variables with the same rules
// as the process environment.
func loadDotEnv(k *koanf.Koanf, filePath string) error {
	scratch := koanf.New(".")
	if err := scratch.Load(file.Provider(filePath), dotenv.Parser()); err != nil {
		return fmt.Errorf("error loading %s: %w", filePath, err)
	}

	for name, val := range scratch.All() {
		key := envKey(name)
		if key == "" {
			continue
		}
		if err := k.Set(key, val); err != nil {
			return err
		}
	}

	return nil
}

// envKey converts API to api.key and WEATHERCLI_HTTP_TIMEOUT to http.timeout.
// Anything else returns "" and is skipped.
func envKey(s string) string {
	if s == LegacyKeyVar {
		return "api.key"
	}
	if !strings.HasPrefix(s, EnvPrefix) {
		return ""
	}

	name := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if name == "" {
		return ""
	}

	// Only the section separator becomes a dot, so api_base_url -> api.base_url
	return strings.Replace(name, "_", ".", 1)
}

func parserForFile(filePath string) (koanf.Parser, error) {
	ext := strings.ToLower(filepath.Ext(filePath))

	switch ext {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".env":
		return dotenv.Parser(), nil
	default:
		return nil, fmt.Errorf("unknown file extension: %s", ext)
	}
}

// RedactKey masks all but the last 4 characters of an API key.
func RedactKey(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}

	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}
