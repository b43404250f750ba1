package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/notekeeper/internal/flagx"
	"gopkg.in/yaml.v3"
)

// FileConfig is a DTO used exclusively for file unmarshalling. Empty values
// leave the corresponding Config field untouched.
type FileConfig struct {
	DataDir     string `json:"data_dir" yaml:"data_dir"`
	LogLevel    string `json:"log_level" yaml:"log_level"`
	LogFormat   string `json:"log_format" yaml:"log_format"`
	LogFile     string `json:"log_file" yaml:"log_file"`
	Username    string `json:"username" yaml:"username"`
	RenderStyle string `json:"render_style" yaml:"render_style"`
}

// parseFile overlays cfg with the file named by -c/--config in args.
// Without the flag it does nothing.
func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	fc, err := readFile(path)
	if err != nil {
		return err
	}
	fc.apply(cfg)
	return nil
}

func readFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var fc FileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	case ".json", "":
		err = json.Unmarshal(data, &fc)
	default:
		return nil, fmt.Errorf("config %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &fc, nil
}

func (fc *FileConfig) apply(cfg *Config) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&cfg.DataDir, fc.DataDir)
	set(&cfg.LogLevel, fc.LogLevel)
	set(&cfg.LogFormat, fc.LogFormat)
	set(&cfg.LogFile, fc.LogFile)
	set(&cfg.Username, fc.Username)
	set(&cfg.RenderStyle, fc.RenderStyle)
}
