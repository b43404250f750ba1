// Package config loads runtime configuration for the notekeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A .env file in the working directory and NOTEKEEPER_* environment
//     variables (see applyEnv). Real environment variables win over .env.
//  3. An optional JSON or YAML file selected with -c or --config (see
//     parseFile). The format follows the file extension.
//  4. Command-line flags bound with BindFlags, which override everything.
//
// Supported flags
//
//	-d, --data-dir string       directory holding data.json and backups/
//	    --log-level string      debug, info, warn or error
//	    --log-format string     text, json or console
//	    --log-file string       log destination, "stderr" for the terminal
//	-u, --user string           login name
//	    --render-style string   glamour style for rendered markdown
//
// # File schema
//
//	{
//	  "data_dir": "/home/me/.config/notekeeper",
//	  "log_level": "debug",
//	  "log_format": "json",
//	  "render_style": "dark"
//	}
//
// The same keys are used in YAML.
package config
