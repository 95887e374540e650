package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"oneday-todo/internal/model"
)

type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	Storage   StorageConfig
	Static    StaticConfig
	RateLimit RateLimitConfig

	Offline OfflineConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// StorageConfig locates the durable to-do store.
type StorageConfig struct {
	SQLitePath  string
	SnapshotKey string
}

// StaticConfig is the web client served for unmatched routes.
type StaticConfig struct {
	Root string
	Gzip bool
}

type RateLimitConfig struct {
	RequestsPerMin int
	Burst          int
}

// OfflineConfig drives cmd/offline: the caching proxy in front of the API.
type OfflineConfig struct {
	Port         int
	OriginURL    string
	CachePrefix  string
	CacheVersion string
	Assets       []string
	ShellPath    string
	SkipWaiting  bool
	MaxEntries   int
	InstallRetry time.Duration
	FetchTimeout time.Duration
}

// Load reads config.yaml and environment overrides.
// Env keys use "_" in place of "." (e.g. OFFLINE_ORIGIN_URL).
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Storage.SQLitePath = viper.GetString("storage.sqlite_path")
	cfg.Storage.SnapshotKey = viper.GetString("storage.snapshot_key")

	cfg.Static.Root = viper.GetString("static.root")
	cfg.Static.Gzip = viper.GetBool("static.gzip")

	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	cfg.Offline.Port = viper.GetInt("offline.port")
	cfg.Offline.OriginURL = viper.GetString("offline.origin_url")
	cfg.Offline.CachePrefix = viper.GetString("offline.cache_prefix")
	cfg.Offline.CacheVersion = viper.GetString("offline.cache_version")
	cfg.Offline.Assets = getStringList("offline.assets")
	cfg.Offline.ShellPath = viper.GetString("offline.shell_path")
	cfg.Offline.SkipWaiting = viper.GetBool("offline.skip_waiting")
	cfg.Offline.MaxEntries = viper.GetInt("offline.max_entries")
	cfg.Offline.InstallRetry = viper.GetDuration("offline.install_retry")
	cfg.Offline.FetchTimeout = viper.GetDuration("offline.fetch_timeout")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Offline.CachePrefix == "" || c.Offline.CacheVersion == "" {
		return fmt.Errorf("offline.cache_prefix and offline.cache_version are required")
	}
	if len(c.Offline.Assets) == 0 {
		return fmt.Errorf("offline.assets must list at least one path")
	}
	for _, a := range c.Offline.Assets {
		if !strings.HasPrefix(a, "/") {
			return fmt.Errorf("offline asset %q must be an absolute path", a)
		}
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", string(model.EnvironmentDevelopment))
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("storage.sqlite_path", "data/oneday.db")
	viper.SetDefault("storage.snapshot_key", "oneday.todos.v1")

	viper.SetDefault("static.root", "web")
	viper.SetDefault("static.gzip", true)

	viper.SetDefault("rate_limit.requests_per_min", 600)
	viper.SetDefault("rate_limit.burst", 60)

	viper.SetDefault("offline.port", 8081)
	viper.SetDefault("offline.origin_url", "http://localhost:8080")
	viper.SetDefault("offline.cache_prefix", "oneday-pwa")
	viper.SetDefault("offline.cache_version", "v2")
	viper.SetDefault("offline.assets", []string{
		"/",
		"/index.html",
		"/style.css",
		"/app.js",
		"/manifest.json",
		"/icons/icon-192.png",
		"/icons/icon-512.png",
	})
	viper.SetDefault("offline.shell_path", "/index.html")
	viper.SetDefault("offline.skip_waiting", true)
	viper.SetDefault("offline.max_entries", 512)
	viper.SetDefault("offline.install_retry", "30s")
	viper.SetDefault("offline.fetch_timeout", "10s")
}

// getStringList accepts a YAML list or a comma-separated env value.
func getStringList(key string) []string {
	var raw []string
	if s, ok := viper.Get(key).(string); ok {
		raw = strings.Split(s, ",")
	} else {
		raw = viper.GetStringSlice(key)
	}

	var out []string
	for _, v := range raw {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
