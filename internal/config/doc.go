// Package config loads SkyExplorer's startup settings.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/skyexplorer/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. Environment variables (optionally from a .env file) override the file
//  5. Fields left empty take their defaults
//
// # Configuration Fields
//
//	log_dir   = "~/.local/state/skyexplorer"  # SKYEXPLORER_LOG_DIR
//	log_level = "info"                        # SKYEXPLORER_LOG_LEVEL
//	theme     = "Slate"                       # SKYEXPLORER_THEME
//
// The terminal belongs to the UI, so logs are written to <log_dir>/skyexplorer.log.
//
// # Theme Precedence
//
// At startup the --theme flag wins, then theme here (or SKYEXPLORER_THEME),
// then the theme saved in preferences, then Slate. Setting a theme here pins
// it: cycling themes in the UI still writes preferences, but the configured
// theme is used again on the next launch. Leave it empty to let the UI choice
// persist.
//
// # Error Handling
//
//   - Missing config file: not an error, defaults apply
//   - Unreadable file: "read config" error
//   - Malformed TOML: "parse config" error
//
// Reference data such as the airport list is compiled in and cannot be
// configured here.
package config
