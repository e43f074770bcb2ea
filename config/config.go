package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "10MB"
	defaultCookieName         = "auth-token"
	defaultTokenTTL           = 24 * time.Hour
	defaultUploadsDir         = "public/uploads"
	defaultUploadsPublicPath  = "/uploads"

	// InsecureFallbackSecret is used when auth.tokenSecret is left empty.
	// It keeps development setups working out of the box; startup logs a
	// warning whenever it is in effect.
	InsecureFallbackSecret = "your-secret-key-change-in-production"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port"`

		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`

		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Auth AuthConfig `json:"auth" yaml:"auth"`

	// Admin holds the credentials seeded into the store on first boot.
	Admin AdminConfig `json:"admin" yaml:"admin"`

	Uploads UploadsConfig `json:"uploads" yaml:"uploads"`

	Web WebConfig `json:"web" yaml:"web"`
}

// AuthConfig defines token and password-hashing configuration.
type AuthConfig struct {
	TokenSecret  string        `json:"tokenSecret" yaml:"tokenSecret"`
	TokenTTL     time.Duration `json:"tokenTtl" yaml:"tokenTtl"`
	CookieName   string        `json:"cookieName" yaml:"cookieName"`
	CookieSecure bool          `json:"cookieSecure" yaml:"cookieSecure"`
	BcryptCost   int           `json:"bcryptCost" yaml:"bcryptCost"`
}

// AdminConfig defines the default administrator account created at bootstrap.
type AdminConfig struct {
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
}

// UploadsConfig defines where uploaded images land and how they are served.
type UploadsConfig struct {
	Dir        string `json:"dir" yaml:"dir"`
	PublicPath string `json:"publicPath" yaml:"publicPath"`
}

// WebConfig points at the static admin dashboard bundle.
type WebConfig struct {
	AdminDir string `json:"adminDir" yaml:"adminDir"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// UsingFallbackSecret reports whether the insecure development secret is active.
func (c *Config) UsingFallbackSecret() bool {
	return c.Auth.TokenSecret == InsecureFallbackSecret
}

// LoadWithEnv loads .yaml files through koanf, overlaying environment variables.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: AUTH_TOKENSECRET -> auth.tokenSecret (not auth.tokensecret)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if strings.TrimSpace(c.Auth.TokenSecret) == "" {
		c.Auth.TokenSecret = InsecureFallbackSecret
	}
	if c.Auth.TokenTTL <= 0 {
		c.Auth.TokenTTL = defaultTokenTTL
	}
	if strings.TrimSpace(c.Auth.CookieName) == "" {
		c.Auth.CookieName = defaultCookieName
	}
	if strings.TrimSpace(c.Uploads.Dir) == "" {
		c.Uploads.Dir = defaultUploadsDir
	}
	if strings.TrimSpace(c.Uploads.PublicPath) == "" {
		c.Uploads.PublicPath = defaultUploadsPublicPath
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
