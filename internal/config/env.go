package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// DotEnvFile is read from the working directory when present.
const DotEnvFile = ".env"

// Environment variable names.
const (
	EnvDataDir     = "NOTEKEEPER_DATA_DIR"
	EnvLogLevel    = "NOTEKEEPER_LOG_LEVEL"
	EnvLogFormat   = "NOTEKEEPER_LOG_FORMAT"
	EnvLogFile     = "NOTEKEEPER_LOG_FILE"
	EnvUser        = "NOTEKEEPER_USER"
	EnvRenderStyle = "NOTEKEEPER_RENDER_STYLE"
)

// loadEnv overlays cfg with NOTEKEEPER_* values from the process environment
// and from the dotenv file at path. A missing dotenv file is not an error.
func loadEnv(cfg *Config, path string) error {
	dotenv, err := godotenv.Read(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("read %s: %w", path, err)
	}

	applyEnv(cfg, func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	})
	return nil
}

// applyEnv copies every non-empty variable returned by lookup into cfg.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	for key, dst := range map[string]*string{
		EnvDataDir:     &cfg.DataDir,
		EnvLogLevel:    &cfg.LogLevel,
		EnvLogFormat:   &cfg.LogFormat,
		EnvLogFile:     &cfg.LogFile,
		EnvUser:        &cfg.Username,
		EnvRenderStyle: &cfg.RenderStyle,
	} {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
}
