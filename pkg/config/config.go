package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config groups the application configuration (read via Viper from env vars
// and optionally a file).
type Config struct {
	App         AppConfig
	API         APIConfig
	Credentials CredentialsConfig
	Log         LogConfig
}

// AppConfig general application settings.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// APIConfig settings for the super-admin backend.
type APIConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// Timeout returns the request timeout as a duration.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// CredentialsConfig location of the on-disk credential store.
type CredentialsConfig struct {
	Path string
}

// LogConfig logging settings.
type LogConfig struct {
	Level string
}

// Load reads configuration from environment variables (and optionally a
// file). Env vars take priority. Expected names: MDB_ENV, MDB_API_BASE_URL,
// MDB_API_TIMEOUT_SECONDS, MDB_CREDENTIALS_PATH, MDB_LOG_LEVEL.
func Load() (*Config, error) {
	v := viper.New()

	// Optional config file (.env next to the binary or in ./config)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // missing file is fine

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // missing file is fine

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "MDB_ENV", "production"),
			Name: getString(v, "MDB_APP_NAME", "mdb-admin"),
		},
		API: APIConfig{
			BaseURL:        getString(v, "MDB_API_BASE_URL", "https://mydailybill.com/api/super-admin"),
			TimeoutSeconds: getInt(v, "MDB_API_TIMEOUT_SECONDS", 10),
		},
		Credentials: CredentialsConfig{
			Path: getString(v, "MDB_CREDENTIALS_PATH", defaultCredentialsPath()),
		},
		Log: LogConfig{
			Level: getString(v, "MDB_LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

// defaultCredentialsPath stores the session under the user config dir,
// falling back to the working directory when it cannot be resolved.
func defaultCredentialsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".mdb-admin-credentials.json"
	}
	return filepath.Join(dir, "mdb-admin", "credentials.json")
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
