package config

import "github.com/spf13/pflag"

// ConfigFlag is the flag naming the config file. Its value is consumed
// before the command tree parses flags (see LoadConfig); it is registered
// only so the parser accepts it.
const ConfigFlag = "config"

// BindFlags registers the configuration flags on fs. The current values of
// cfg become the flag defaults, so a parsed flag overrides every earlier
// source and an absent one keeps it.
func BindFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringP(ConfigFlag, "c", "", "path to a JSON or YAML config file")
	fs.StringVarP(&cfg.DataDir, "data-dir", "d", cfg.DataDir, "directory holding data.json and backups")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text, json, console")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, `log file path, "stderr" for the terminal`)
	fs.StringVarP(&cfg.Username, "user", "u", cfg.Username, "login name")
	fs.StringVar(&cfg.RenderStyle, "render-style", cfg.RenderStyle, "markdown render style: auto, dark, light, notty")
}
