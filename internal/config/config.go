package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Queue drivers.
const (
	QueueDriverMemory = "memory"
	QueueDriverRedis  = "redis"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort      string        `yaml:"server_port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// Database configuration
	DBHost              string        `yaml:"db_host"`
	DBPort              int           `yaml:"db_port"`
	DBUser              string        `yaml:"db_user"`
	DBPassword          string        `yaml:"db_password"`
	DBName              string        `yaml:"db_name"`
	DBSSLMode           string        `yaml:"db_ssl_mode"`
	DBMaxConns          int32         `yaml:"db_max_conns"`
	DBMinConns          int32         `yaml:"db_min_conns"`
	DBMaxConnLifetime   time.Duration `yaml:"db_max_conn_lifetime"`
	DBMaxConnIdleTime   time.Duration `yaml:"db_max_conn_idle_time"`
	DBHealthCheckPeriod time.Duration `yaml:"db_health_check_period"`

	// Redis configuration, used by the redis queue driver and progress events
	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`

	// Queue configuration
	QueueDriver      string        `yaml:"queue_driver"`
	QueueName        string        `yaml:"queue_name"`
	QueueCapacity    int           `yaml:"queue_capacity"`
	QueueMaxAttempts int           `yaml:"queue_max_attempts"`
	QueueRetryDelay  time.Duration `yaml:"queue_retry_delay"`

	// Worker configuration
	WorkerPoolSize int           `yaml:"worker_pool_size"`
	WorkerID       string        `yaml:"worker_id"`
	BatchSize      int           `yaml:"batch_size"`
	BatchPause     time.Duration `yaml:"batch_pause"`
	ErrorCap       int           `yaml:"error_cap"`

	// Import intake configuration
	MaxUploadSize int64 `yaml:"max_upload_size"`
	MaxRecords    int   `yaml:"max_records"`

	// Source archive configuration; archiving is off without a bucket
	S3Endpoint  string `yaml:"s3_endpoint"`
	S3Region    string `yaml:"s3_region"`
	S3Bucket    string `yaml:"s3_bucket"`
	S3AccessKey string `yaml:"s3_access_key"`
	S3SecretKey string `yaml:"s3_secret_key"`
	S3UseSSL    bool   `yaml:"s3_use_ssl"`

	// Per-tenant submission rate limit
	RateLimitPerSecond float64 `yaml:"rate_limit_per_second"`
	RateLimitBurst     int     `yaml:"rate_limit_burst"`

	// Logging configuration
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() *Config {
	hostname, _ := os.Hostname()
	if hostname == "" {
		hostname = "worker"
	}
	return &Config{
		ServerPort:          "8080",
		ReadTimeout:         30 * time.Second,
		WriteTimeout:        time.Minute,
		IdleTimeout:         120 * time.Second,
		ShutdownTimeout:     30 * time.Second,
		DBHost:              "localhost",
		DBPort:              5432,
		DBUser:              "postgres",
		DBPassword:          "postgres",
		DBName:              "schoolos",
		DBSSLMode:           "disable",
		DBMaxConns:          25,
		DBMinConns:          5,
		DBMaxConnLifetime:   time.Hour,
		DBMaxConnIdleTime:   30 * time.Minute,
		DBHealthCheckPeriod: time.Minute,
		RedisAddr:           "localhost:6379",
		QueueDriver:         QueueDriverMemory,
		QueueName:           "imports",
		QueueCapacity:       100,
		QueueMaxAttempts:    3,
		QueueRetryDelay:     2 * time.Second,
		WorkerPoolSize:      4,
		WorkerID:            hostname,
		BatchSize:           50,
		BatchPause:          25 * time.Millisecond,
		ErrorCap:            500,
		MaxUploadSize:       10 << 20,
		MaxRecords:          5000,
		S3Region:            "us-east-1",
		S3UseSSL:            true,
		RateLimitPerSecond:  1,
		RateLimitBurst:      5,
		LogLevel:            "info",
		LogFormat:           "json",
	}
}

// Load builds the configuration from defaults, an optional YAML file named by
// CONFIG_FILE, and environment variables, in increasing precedence.
func Load() (*Config, error) {
	cfg := Defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	c.ServerPort = getEnv("SERVER_PORT", c.ServerPort)
	c.ReadTimeout = getEnvDuration("HTTP_READ_TIMEOUT", c.ReadTimeout)
	c.WriteTimeout = getEnvDuration("HTTP_WRITE_TIMEOUT", c.WriteTimeout)
	c.IdleTimeout = getEnvDuration("HTTP_IDLE_TIMEOUT", c.IdleTimeout)
	c.ShutdownTimeout = getEnvDuration("SHUTDOWN_TIMEOUT", c.ShutdownTimeout)

	c.DBHost = getEnv("DB_HOST", c.DBHost)
	c.DBPort = getEnvInt("DB_PORT", c.DBPort)
	c.DBUser = getEnv("DB_USER", c.DBUser)
	c.DBPassword = getEnv("DB_PASSWORD", c.DBPassword)
	c.DBName = getEnv("DB_NAME", c.DBName)
	c.DBSSLMode = getEnv("DB_SSL_MODE", c.DBSSLMode)
	c.DBMaxConns = int32(getEnvInt("DB_MAX_CONNS", int(c.DBMaxConns)))
	c.DBMinConns = int32(getEnvInt("DB_MIN_CONNS", int(c.DBMinConns)))
	c.DBMaxConnLifetime = getEnvDuration("DB_MAX_CONN_LIFETIME", c.DBMaxConnLifetime)
	c.DBMaxConnIdleTime = getEnvDuration("DB_MAX_CONN_IDLE_TIME", c.DBMaxConnIdleTime)
	c.DBHealthCheckPeriod = getEnvDuration("DB_HEALTH_CHECK_PERIOD", c.DBHealthCheckPeriod)

	c.RedisAddr = getEnv("REDIS_ADDR", c.RedisAddr)
	c.RedisPassword = getEnv("REDIS_PASSWORD", c.RedisPassword)
	c.RedisDB = getEnvInt("REDIS_DB", c.RedisDB)

	c.QueueDriver = getEnv("QUEUE_DRIVER", c.QueueDriver)
	c.QueueName = getEnv("QUEUE_NAME", c.QueueName)
	c.QueueCapacity = getEnvInt("QUEUE_CAPACITY", c.QueueCapacity)
	c.QueueMaxAttempts = getEnvInt("QUEUE_MAX_ATTEMPTS", c.QueueMaxAttempts)
	c.QueueRetryDelay = getEnvDuration("QUEUE_RETRY_DELAY", c.QueueRetryDelay)

	c.WorkerPoolSize = getEnvInt("WORKER_POOL_SIZE", c.WorkerPoolSize)
	c.WorkerID = getEnv("WORKER_ID", c.WorkerID)
	c.BatchSize = getEnvInt("BATCH_SIZE", c.BatchSize)
	c.BatchPause = getEnvDuration("BATCH_PAUSE", c.BatchPause)
	c.ErrorCap = getEnvInt("ERROR_CAP", c.ErrorCap)

	c.MaxUploadSize = int64(getEnvInt("MAX_UPLOAD_SIZE", int(c.MaxUploadSize)))
	c.MaxRecords = getEnvInt("MAX_RECORDS", c.MaxRecords)

	c.S3Endpoint = getEnv("S3_ENDPOINT", c.S3Endpoint)
	c.S3Region = getEnv("S3_REGION", c.S3Region)
	c.S3Bucket = getEnv("S3_BUCKET", c.S3Bucket)
	c.S3AccessKey = getEnv("S3_ACCESS_KEY", c.S3AccessKey)
	c.S3SecretKey = getEnv("S3_SECRET_KEY", c.S3SecretKey)
	c.S3UseSSL = getEnvBool("S3_USE_SSL", c.S3UseSSL)

	c.RateLimitPerSecond = getEnvFloat("RATE_LIMIT_PER_SECOND", c.RateLimitPerSecond)
	c.RateLimitBurst = getEnvInt("RATE_LIMIT_BURST", c.RateLimitBurst)

	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.LogFormat = getEnv("LOG_FORMAT", c.LogFormat)
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.DBHost == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.DBUser == "" {
		return fmt.Errorf("DB_USER is required")
	}
	if c.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.QueueDriver != QueueDriverMemory && c.QueueDriver != QueueDriverRedis {
		return fmt.Errorf("QUEUE_DRIVER must be %q or %q", QueueDriverMemory, QueueDriverRedis)
	}
	if c.QueueDriver == QueueDriverRedis && c.RedisAddr == "" {
		return fmt.Errorf("REDIS_ADDR is required for the redis queue driver")
	}
	if c.QueueMaxAttempts < 1 {
		return fmt.Errorf("QUEUE_MAX_ATTEMPTS must be at least 1")
	}
	if c.WorkerPoolSize < 1 {
		return fmt.Errorf("WORKER_POOL_SIZE must be at least 1")
	}
	if c.BatchSize < 1 || c.BatchSize > 500 {
		return fmt.Errorf("BATCH_SIZE must be between 1 and 500")
	}
	if c.BatchPause < 0 {
		return fmt.Errorf("BATCH_PAUSE must not be negative")
	}
	if c.ErrorCap < 1 {
		return fmt.Errorf("ERROR_CAP must be at least 1")
	}
	if c.MaxUploadSize < 1 {
		return fmt.Errorf("MAX_UPLOAD_SIZE must be at least 1")
	}
	if c.MaxRecords < 1 {
		return fmt.Errorf("MAX_RECORDS must be at least 1")
	}
	if c.RateLimitPerSecond <= 0 || c.RateLimitBurst < 1 {
		return fmt.Errorf("RATE_LIMIT_PER_SECOND and RATE_LIMIT_BURST must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// ArchiveEnabled reports whether uploads are copied to S3.
func (c *Config) ArchiveEnabled() bool {
	return c.S3Bucket != ""
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as int with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvFloat gets an environment variable as float64 with a default value.
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as bool with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
