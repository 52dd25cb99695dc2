// Package config loads, normalizes, and validates musicord configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// DISCORD_CLIENT_ID and TMPDIR. The Config type centralizes every knob the
// daemon and CLI need: Discord socket discovery policy, player query
// timeouts, enrichment API endpoints, and polling cadence.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, bounded timeouts, and clear validation errors.
package config
