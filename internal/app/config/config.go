package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/vjkarthik1987/aiSupportAgent/internal/app/dsn"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

type Config struct {
	ServiceHost string
	ServicePort int
	LogLevel    string

	Storage StorageConfig
	OpenAI  OpenAIConfig
	Redis   RedisConfig
	JWT     JWTConfig
}

type StorageConfig struct {
	Driver        string
	MongoURI      string
	MongoDatabase string
	PostgresDSN   string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RedisConfig enables diagnosis sessions when Host is set.
type RedisConfig struct {
	Host       string
	Port       int
	Password   string
	DB         int
	SessionTTL time.Duration
}

// JWTConfig enables the admin endpoints when Secret is set.
type JWTConfig struct {
	Secret   string
	TokenTTL time.Duration
}

// NewConfig reads config/<CONFIG_NAME>.toml when present and applies
// environment overrides on top.
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	configName := "config"
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		v.AddConfigPath(p)
	}
	v.AddConfigPath("config")
	v.AddConfigPath(".")

	v.SetDefault("ServiceHost", "0.0.0.0")
	v.SetDefault("ServicePort", 3000)
	v.SetDefault("LogLevel", "info")
	v.SetDefault("Storage.Driver", DriverMongo)
	v.SetDefault("Redis.Port", 6379)
	v.SetDefault("Redis.SessionTTL", "24h")
	v.SetDefault("JWT.TokenTTL", "24h")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		log.Warn("no config file found, using defaults and environment")
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	log.Info("config parsed")

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("PORT: %w", err)
		}
		c.ServicePort = p
	}
	setString(&c.LogLevel, "LOG_LEVEL")

	setString(&c.Storage.Driver, "STORAGE_DRIVER")
	if os.Getenv("MONGO_URI") != "" || c.Storage.MongoURI == "" {
		c.Storage.MongoURI = dsn.MongoURIFromEnv()
	}
	if os.Getenv("MONGO_DB") != "" || c.Storage.MongoDatabase == "" {
		c.Storage.MongoDatabase = dsn.MongoDatabaseFromEnv()
	}
	if c.Storage.PostgresDSN == "" {
		c.Storage.PostgresDSN = dsn.FromEnv()
	}

	setString(&c.OpenAI.APIKey, "OPENAI_API_KEY")
	setString(&c.OpenAI.Model, "OPENAI_MODEL")
	setString(&c.OpenAI.BaseURL, "OPENAI_BASE_URL")

	setString(&c.Redis.Host, "REDIS_HOST")
	setString(&c.Redis.Password, "REDIS_PASSWORD")
	for key, dest := range map[string]*int{"REDIS_PORT": &c.Redis.Port, "REDIS_DB": &c.Redis.DB} {
		if v := os.Getenv(key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			*dest = n
		}
	}

	setString(&c.JWT.Secret, "JWT_SECRET")
	return nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case DriverMongo, DriverPostgres:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.ServiceHost, c.ServicePort)
}

func setString(dest *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dest = v
	}
}
