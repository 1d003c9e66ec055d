package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config carries the session settings. Values come from the
// environment, optionally seeded from a .env file in the working
// directory.
type Config struct {
	Name    string `env:"YAHTZEE_NAME"`
	Rolls   int    `env:"YAHTZEE_ROLLS" envDefault:"3"`
	Dice    int    `env:"YAHTZEE_DICE" envDefault:"5"`
	Seed    int64  `env:"YAHTZEE_SEED" envDefault:"0"`
	NoColor bool   `env:"YAHTZEE_NO_COLOR" envDefault:"false"`
}

func Load() (Config, error) {
	_ = godotenv.Load()
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
