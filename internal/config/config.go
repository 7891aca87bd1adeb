package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel         string   `yaml:"log-level" env:"EDUWARS_LOG_LEVEL" env-default:"info"`
	Seed             int64    `yaml:"seed" env:"EDUWARS_SEED" env-default:"0"`
	QuestionBankPath string   `yaml:"question-bank-path" env:"EDUWARS_QUESTION_BANK_PATH"`
	PlayerNames      []string `yaml:"player-names" env:"EDUWARS_PLAYER_NAMES" env-separator:","`
}

// MustLoad - load all configurations in config.yml file, environment variables take precedence.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
