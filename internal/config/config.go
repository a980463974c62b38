// Package config loads the process configuration consumed by the command
// interpreter and the drawing executor. The file is optional; a missing file
// yields the defaults, and a handful of environment variables override
// individual fields.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

type Config struct {
	Output OutputConfig `json:"output"`
	Canvas CanvasConfig `json:"canvas"`
	Server ServerConfig `json:"server"`
}

// OutputConfig is the only part of the configuration the interpreter sees:
// the save builder falls back to Directory/DefaultFilename when a command
// names no path.
type OutputConfig struct {
	Directory       string `json:"directory"`
	DefaultFilename string `json:"default_filename"`
}

type CanvasConfig struct {
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Scale      float64 `json:"scale"`
	Margin     int     `json:"margin"`
	Background int     `json:"background"`
	LineWeight int     `json:"line_weight"`
}

type ServerConfig struct {
	Addr string `json:"addr"`
}

func Default() Config {
	return Config{
		Output: OutputConfig{
			Directory:       "output",
			DefaultFilename: "drawing.png",
		},
		Canvas: CanvasConfig{
			Width:      1280,
			Height:     800,
			Scale:      4,
			Margin:     40,
			Background: 250,
			LineWeight: 25,
		},
		Server: ServerConfig{
			Addr: ":8337",
		},
	}
}

// Load reads the config file at path. A missing file is not an error: the
// defaults apply. Environment overrides are applied last either way.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return applyEnv(cfg), nil
	}
	if err != nil {
		return Config{}, err
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return applyEnv(cfg), nil
}

// Save writes the config atomically: temp file in the target directory,
// then rename.
func Save(cfg Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "config-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}

	cleanup = false
	return nil
}

func applyEnv(cfg Config) Config {
	if v := os.Getenv("CADTALK_OUTPUT_DIR"); v != "" {
		cfg.Output.Directory = v
	}
	if v := os.Getenv("CADTALK_OUTPUT_FILE"); v != "" {
		cfg.Output.DefaultFilename = v
	}
	if v := os.Getenv("CADTALK_SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("CADTALK_CANVAS_SCALE"); v != "" {
		if scale, err := strconv.ParseFloat(v, 64); err == nil && scale > 0 {
			cfg.Canvas.Scale = scale
		}
	}
	return cfg
}
