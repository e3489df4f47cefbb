package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. WORDNEST_LOG_LEVEL.
const EnvPrefix = "WORDNEST"

func setDefaults(v *viper.Viper) {
	v.SetDefault("storage.db_path", "")
	v.SetDefault("storage.profile", "default")
	v.SetDefault("storage.keep", 20)

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")

	v.SetDefault("learning.daily_goal", 15)
	v.SetDefault("learning.ladder", []string{"1h", "24h", "72h", "168h", "336h", "720h"})
	v.SetDefault("learning.timezone", "Local")
	v.SetDefault("learning.default_category", "")

	v.SetDefault("catalog.path", "")
}

// Load builds the configuration. configFile may be empty, in which case
// config.yaml is looked up in the user config directory and skipped if absent.
func Load(configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "wordnest"))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks struct constraints and the values that need parsing.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := cfg.Learning.ParsedLadder(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := cfg.Learning.Location(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
