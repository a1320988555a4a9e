package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDR" env-default:":8080"`
}

type Cart struct {
	StoragePath    string        `yaml:"storage_path" env:"CART_STORAGE_PATH" env-default:"./data"`
	StorageKey     string        `yaml:"storage_key" env:"CART_STORAGE_KEY" env-default:"cart"`
	ThrottleWindow time.Duration `yaml:"throttle_window" env:"CART_THROTTLE_WINDOW" env-default:"1s"`
}

// Simulation tunes the fake network the mock data layer injects.
type Simulation struct {
	FailureRate float64 `yaml:"failure_rate" env:"SIM_FAILURE_RATE" env-default:"0.05"`
}

// Shipping amounts are minor currency units, matching everything else.
type Shipping struct {
	FreeThreshold int64 `yaml:"free_threshold" env:"SHIPPING_FREE_THRESHOLD" env-default:"5000"`
	FlatRate      int64 `yaml:"flat_rate" env:"SHIPPING_FLAT_RATE" env-default:"650"`
}

type RedisConnect struct {
	Addr     string `yaml:"REDIS_ADDR" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

// SessionCache scopes the order mirror; entries expire with the session.
type SessionCache struct {
	DefaultTTL time.Duration `yaml:"default_ttl" env:"SESSION_TTL" env-default:"24h"`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer   `yaml:"http_server"`
	Cart         Cart         `yaml:"cart"`
	Simulation   Simulation   `yaml:"simulation"`
	Shipping     Shipping     `yaml:"shipping"`
	RedisConnect RedisConnect `yaml:"redis"`
	SessionCache SessionCache `yaml:"session_cache"`
}

func MustLoad() *Config {

	var configPath string

	configPath = os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags

	}

	var cfg Config

	// Without a config file everything still works off env vars and defaults.
	if configPath == "" {

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("can not read config from environment: %s", err.Error())
		}

		return &cfg
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	return &cfg
}

func (r *RedisConnect) GetDSN() string {
	return fmt.Sprintf("redis://:%s@%s/%d", r.Password, r.Addr, r.DB)
}
