// Package config loads the rove configuration file.
//
// The file lives at ~/.config/rove/config.toml unless overridden:
//
//	default_tab = "volunteer"
//	log_file = "~/.local/state/rove/debug.log"
//
//	[[tabs]]
//	id = "events"
//	label = "Events"
//	body = "Upcoming meetups."
//
// A missing file yields Defaults (the events, volunteer and achievements
// tabs). Values are trimmed; an empty label falls back to the id. Parse and
// validation failures are returned to the caller, and validation errors wrap
// ErrInvalidConfig.
package config
