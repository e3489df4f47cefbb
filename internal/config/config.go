// Package config loads wordnest settings from defaults, an optional config
// file, a .env file and WORDNEST_* environment variables, in increasing
// order of precedence.
package config

import (
	"fmt"
	"time"

	"github.com/abhisek/wordnest/internal/spacedrep"
)

// Config holds all application configuration.
type Config struct {
	Storage  StorageConfig  `mapstructure:"storage"`
	Log      LogConfig      `mapstructure:"log"`
	Learning LearningConfig `mapstructure:"learning"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
}

// StorageConfig controls where progress snapshots are kept.
type StorageConfig struct {
	DBPath  string `mapstructure:"db_path"` // empty: store.DefaultDBPath
	Profile string `mapstructure:"profile" validate:"required"`
	Keep    int    `mapstructure:"keep" validate:"gte=0"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=text json"`
}

// LearningConfig holds scheduling and goal settings.
type LearningConfig struct {
	DailyGoal       int      `mapstructure:"daily_goal" validate:"gt=0"`
	Ladder          []string `mapstructure:"ladder" validate:"required,min=1,dive,required"`
	Timezone        string   `mapstructure:"timezone"`
	DefaultCategory string   `mapstructure:"default_category"`
}

// CatalogConfig points at a catalog file. Empty uses the built-in catalog.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// ParsedLadder returns the configured review ladder.
func (c LearningConfig) ParsedLadder() (spacedrep.Ladder, error) {
	l, err := spacedrep.ParseLadder(c.Ladder)
	if err != nil {
		return nil, fmt.Errorf("learning.ladder: %w", err)
	}
	return l, nil
}

// Location returns the calendar used for daily rollover.
func (c LearningConfig) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("learning.timezone: %w", err)
	}
	return loc, nil
}
