// Package app is the composition root for SkyExplorer.
//
// # Overview
//
// Run wires configuration, preferences, logging and the notice store into
// the Bubble Tea UI and blocks until the user quits or the context is
// cancelled. The non-interactive commands in commands.go share the booking
// package with the TUI, so a search from the command line passes through
// the same validation and produces the same summary text.
//
// # Startup
//
//	Run()
//	  ├─> config.Load()      config.toml, .env and SKYEXPLORER_* overrides
//	  ├─> prefs.Load()       saved theme and panel visibility
//	  ├─> logging.New()      rotating log file under log_dir
//	  ├─> uuid.NewString()   session id attached to every log line
//	  └─> ui.Run()           TUI (blocks)
//
// # Theme Precedence
//
// The --theme flag wins, then the config file or SKYEXPLORER_THEME, then the
// saved preference, then Slate.
//
// # Error Handling
//
// Config parse failures and an unwritable log directory are fatal and
// returned from Run. Failing to save preferences is logged and ignored.
package app
