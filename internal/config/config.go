package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	Cache     CacheConfig     `yaml:"cache"`
	RateLimit RateLimitConfig `yaml:"ratelimit"`
	Lexicon   LexiconConfig   `yaml:"lexicon"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBatch        int           `yaml:"max_batch"        env:"SERVER_MAX_BATCH"        env-default:"200"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Enabled bool   `yaml:"enabled" env:"LOG_ENABLED" env-default:"true"`
	Level   string `yaml:"level"   env:"LOG_LEVEL"   env-default:"info"`
	Format  string `yaml:"format"  env:"LOG_FORMAT"  env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// CacheConfig holds the paradigm-table response cache settings.
type CacheConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"CACHE_ENABLED"          env-default:"true"`
	TTL             time.Duration `yaml:"ttl"              env:"CACHE_TTL"              env-default:"1h"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"CACHE_CLEANUP_INTERVAL" env-default:"10m"`
}

// RateLimitConfig holds per-client rate limiting settings.
// PerMinute 0 disables the limiter.
type RateLimitConfig struct {
	PerMinute       int           `yaml:"per_minute"       env:"RATELIMIT_PER_MINUTE"       env-default:"600"`
	Burst           int           `yaml:"burst"            env:"RATELIMIT_BURST"            env-default:"50"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATELIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// LexiconConfig locates the verb data files.
type LexiconConfig struct {
	DataDir string `yaml:"data_dir" env:"LEXICON_DATA_DIR" env-default:"data"`
}
