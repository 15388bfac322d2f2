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

	"github.com/joho/godotenv"
)

const (
	defaultAPIBaseURL  = "http://localhost:8080/api"
	defaultAppEnv      = "local"
	defaultHTTPTimeout = "30s"
	defaultCacheTTL    = "5m"
	defaultDevPort     = "8080"
	defaultJWTSecret   = "change-me-in-production"
)

var (
	loadOnce sync.Once
	loadErr  error

	mu     sync.RWMutex
	values = defaultValues()
)

// Load reads config/app.json and .env once. Values from .env win over
// app.json, which wins over the built-in defaults. Missing files are fine.
func Load() error {
	loadOnce.Do(func() {
		loadErr = loadFromFiles("config/app.json", ".env")
	})
	return loadErr
}

func defaultValues() map[string]string {
	return map[string]string{
		"API_BASE_URL":   defaultAPIBaseURL,
		"APP_ENV":        defaultAppEnv,
		"APP_KEY":        "",
		"TOKEN_PATH":     "",
		"HTTP_TIMEOUT":   defaultHTTPTimeout,
		"REDIS_ADDR":     "",
		"REDIS_PASSWORD": "",
		"CACHE_TTL":      defaultCacheTTL,
		"DEV_PORT":       defaultDevPort,
		"JWT_SECRET":     defaultJWTSecret,
		"UPLOAD_ROOT":    "uploads",
	}
}

// APIBaseURL is the backend REST root, without a trailing slash.
func APIBaseURL() string {
	_ = Load()
	return strings.TrimRight(get("API_BASE_URL", defaultAPIBaseURL), "/")
}

func AppEnv() string {
	_ = Load()
	return get("APP_ENV", defaultAppEnv)
}

// AppKey is the secret used to encrypt the token file at rest.
// Empty means the token is stored in plain text.
func AppKey() string {
	_ = Load()
	return get("APP_KEY", "")
}

// TokenPath is where the auth token is persisted. Defaults to
// $XDG_CONFIG_HOME/flashpos/token (or the OS equivalent).
func TokenPath() string {
	_ = Load()
	if p := get("TOKEN_PATH", ""); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "flashpos", "token")
}

// HTTPTimeout is the per-attempt timeout for outgoing API calls.
func HTTPTimeout() time.Duration {
	_ = Load()
	d, err := time.ParseDuration(get("HTTP_TIMEOUT", defaultHTTPTimeout))
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// RedisAddr is the optional options-cache address. Empty disables caching.
func RedisAddr() string {
	_ = Load()
	return get("REDIS_ADDR", "")
}

func RedisPassword() string {
	_ = Load()
	return get("REDIS_PASSWORD", "")
}

// CacheTTL is how long cached /options responses stay fresh.
func CacheTTL() time.Duration {
	_ = Load()
	d, err := time.ParseDuration(get("CACHE_TTL", defaultCacheTTL))
	if err != nil || d <= 0 {
		return 5 * time.Minute
	}
	return d
}

// DevPort is the port the bundled dev backend listens on.
func DevPort() int {
	_ = Load()
	n, err := strconv.Atoi(get("DEV_PORT", defaultDevPort))
	if err != nil || n <= 0 {
		return 8080
	}
	return n
}

// JWTSecret signs dev backend tokens. Never used against a real backend.
func JWTSecret() string {
	_ = Load()
	return get("JWT_SECRET", defaultJWTSecret)
}

// UploadRoot is where the dev backend stores uploaded images.
func UploadRoot() string {
	_ = Load()
	return get("UPLOAD_ROOT", "uploads")
}

func loadFromFiles(configPath, envPath string) error {
	loaded := defaultValues()

	if err := mergeJSONConfig(configPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	if err := mergeDotEnv(envPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	mu.Lock()
	values = loaded
	mu.Unlock()

	return nil
}

func mergeJSONConfig(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var raw map[string]interface{}
	if err := json.NewDecoder(file).Decode(&raw); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	for key, val := range raw {
		s, ok := val.(string)
		if !ok {
			continue
		}

		k := strings.ToUpper(strings.TrimSpace(key))
		if k == "" {
			continue
		}
		out[k] = strings.TrimSpace(s)
	}

	return nil
}

func mergeDotEnv(path string, out map[string]string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	env, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	for key, value := range env {
		k := strings.ToUpper(strings.TrimSpace(key))
		if k == "" {
			continue
		}
		out[k] = strings.TrimSpace(value)
	}

	return nil
}

func get(key, fallback string) string {
	mu.RLock()
	defer mu.RUnlock()

	if value := strings.TrimSpace(values[key]); value != "" {
		return value
	}

	return fallback
}

// Get reads any config key by name with an optional fallback.
// Keys from .env and app.json are available after config.Load().
func Get(key, fallback string) string {
	_ = Load()
	return get(key, fallback)
}

// Set overrides a config key at runtime. Used by tests and by CLI flags
// such as --api overriding API_BASE_URL.
func Set(key, value string) {
	_ = Load()
	mu.Lock()
	values[strings.ToUpper(strings.TrimSpace(key))] = value
	mu.Unlock()
}
