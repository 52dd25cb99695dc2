package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateDiscord(); err != nil {
		return err
	}
	if err := c.validateWatch(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateDiscord() error {
	if c.Discord.ClientID == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/musicord/config.toml"
		}
		return fmt.Errorf("discord.client_id is required. Set DISCORD_CLIENT_ID env var or edit %s (create with 'musicord config init')", defaultPath)
	}
	for _, r := range c.Discord.ClientID {
		if r < '0' || r > '9' {
			return fmt.Errorf("discord.client_id must be numeric, got %q", c.Discord.ClientID)
		}
	}
	if c.Discord.SocketScanCount > 100 {
		return errors.New("discord.socket_scan_count is unreasonably large (max 100)")
	}
	return nil
}

func (c *Config) validateWatch() error {
	if c.Watch.PollInterval > 3600 {
		return errors.New("watch.poll_interval must be at most 3600 seconds")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
