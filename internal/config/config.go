package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel         string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"warn" validate:"oneof=debug info warn error"`
	LogFile          string `yaml:"log-file" env:"TICTACTOE_LOG_FILE"`
	NoColor          bool   `yaml:"no-color" env:"TICTACTOE_NO_COLOR"`
	BotName          string `yaml:"bot-name" env:"TICTACTOE_BOT_NAME" env-default:"Computer" validate:"required"`
	HideInstructions bool   `yaml:"hide-instructions" env:"TICTACTOE_HIDE_INSTRUCTIONS"`
}

// Load reads the config file at path when it exists, otherwise only the environment.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	if err = validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations, panics on failure.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}
