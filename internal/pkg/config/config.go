package config

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	MySQL    MySQLConfig
	Redis    RedisConfig
	Wellness WellnessConfig
}

type MySQLConfig struct {
	DSN string `env:"MYSQL_DSN, default=hr:hr@tcp(localhost:3306)/hr_experience?parseTime=true"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// WellnessConfig holds the external wellness link targets. These point at
// third-party providers and differ per deployment, so they are never
// hardcoded.
type WellnessConfig struct {
	CounsellingURL string `env:"WELLNESS_COUNSELLING_URL, default=https://wellness.example.com/counselling"`
	YogaURL        string `env:"WELLNESS_YOGA_URL,        default=https://wellness.example.com/yoga"`
	ExercisesURL   string `env:"WELLNESS_EXERCISES_URL,   default=https://wellness.example.com/exercises"`
}

// Load reads configuration from the environment using go-envconfig.
// A local .env file is applied first when present.
func Load() *Config {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
