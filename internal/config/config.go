package config

import (
	"os"
	"path/filepath"
)

// Application directory and log file names.
const (
	AppName     = "notekeeper"
	LogDirName  = "logs"
	LogFileName = "notekeeper.log"

	// LogToStderr as LogFile sends logs to the terminal.
	LogToStderr = "stderr"
)

// Config holds runtime settings for the notekeeper CLI.
//
// Fields:
//   - DataDir: directory with data.json and the backups/ subdirectory.
//   - LogLevel, LogFormat: passed to logging.New.
//   - LogFile: log destination; empty means <DataDir>/logs/notekeeper.log.
//   - Username: login name used when none is given on the command line.
//   - RenderStyle: glamour style name for `export markdown --render`.
type Config struct {
	DataDir     string
	LogLevel    string
	LogFormat   string
	LogFile     string
	Username    string
	RenderStyle string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = defaultDataDir()
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.LogFile = ""
	c.Username = "admin"
	c.RenderStyle = "auto"
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, AppName)
	}
	return filepath.Join(".", "."+AppName)
}

// LogPath resolves where logs are written. It returns "" for stderr.
func (c *Config) LogPath() string {
	switch c.LogFile {
	case LogToStderr:
		return ""
	case "":
		return filepath.Join(c.DataDir, LogDirName, LogFileName)
	default:
		return c.LogFile
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment and from the config file named in args, if any. Flags are
// applied later by the command tree through BindFlags, so they take
// precedence over everything loaded here.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := loadEnv(cfg, DotEnvFile); err != nil {
		return nil, err
	}
	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
