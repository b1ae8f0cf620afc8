package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Config holds the settings for one analysis run.
type Config struct {
	Input     string
	OutputDir string
	DPI       int
	Workbook  string
	Display   bool
	Prompt    bool
	LogLevel  string
}

// Keys shared by the flag set and viper.
const (
	KeyInput     = "input"
	KeyOutputDir = "output-dir"
	KeyDPI       = "dpi"
	KeyWorkbook  = "xlsx"
	KeyNoDisplay = "no-display"
	KeyNoPrompt  = "no-prompt"
	KeyLogLevel  = "log-level"
)

// Default returns the configuration of a plain interactive run.
func Default() Config {
	return Config{
		Input:     "WDICSV.csv",
		OutputDir: ".",
		DPI:       300,
		Display:   true,
		Prompt:    true,
		LogLevel:  "info",
	}
}

// SetDefaults registers Default() with v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyInput, d.Input)
	v.SetDefault(KeyOutputDir, d.OutputDir)
	v.SetDefault(KeyDPI, d.DPI)
	v.SetDefault(KeyWorkbook, d.Workbook)
	v.SetDefault(KeyNoDisplay, !d.Display)
	v.SetDefault(KeyNoPrompt, !d.Prompt)
	v.SetDefault(KeyLogLevel, d.LogLevel)
}

func FromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		Input:     v.GetString(KeyInput),
		OutputDir: v.GetString(KeyOutputDir),
		DPI:       v.GetInt(KeyDPI),
		Workbook:  v.GetString(KeyWorkbook),
		Display:   !v.GetBool(KeyNoDisplay),
		Prompt:    !v.GetBool(KeyNoPrompt),
		LogLevel:  v.GetString(KeyLogLevel),
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Input == "" {
		return errors.New("input path must not be empty")
	}
	if c.OutputDir == "" {
		return errors.New("output directory must not be empty")
	}
	if c.DPI <= 0 {
		return fmt.Errorf("dpi must be positive, got %d", c.DPI)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}
