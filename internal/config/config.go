package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Server Server
	Search Search
}

type Server struct {
	Host        string        `env:"host" env-default:"localhost"`
	Port        string        `env:"port" env-default:"8080"`
	Timeout     time.Duration `env:"timeout" env-default:"5s"`
	IdleTimeout time.Duration `env:"idle_timeout" env-default:"30s"`
}

type Search struct {
	MaxConcurrentSearches int           `env:"max_concurrent_searches" env-default:"3"`
	MaxUpperBound         int           `env:"max_upper_bound" env-default:"100000000"`
	DefaultChunkSize      int           `env:"default_chunk_size" env-default:"1000"`
	DefaultWorkers        int           `env:"default_workers" env-default:"0"`
	DefaultExponent       float64       `env:"default_exponent" env-default:"0.3"`
	DrainTimeout          time.Duration `env:"drain_timeout" env-default:"5m"`
	MaxPrimesInResponse   int           `env:"max_primes_in_response" env-default:"10000"`
}

const configPath = "config/local.env"

func MustLoad() *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatal("config file does not exist: " + configPath)
	}

	if err := godotenv.Load(configPath); err != nil {
		log.Fatalf("cannot load env file: %s", err)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatal("failed to read config: " + err.Error())
	}

	return &cfg
}
