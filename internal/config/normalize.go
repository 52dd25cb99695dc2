package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeDiscord()
	c.normalizePlayer()
	c.normalizeServices()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeDiscord() {
	c.Discord.ClientID = strings.TrimSpace(c.Discord.ClientID)
	if env := strings.TrimSpace(os.Getenv("DISCORD_CLIENT_ID")); env != "" {
		c.Discord.ClientID = env
	}
	// The runtime dir is where Discord creates its IPC sockets: TMPDIR for
	// the desktop client on macOS, /tmp otherwise.
	if strings.TrimSpace(c.Discord.RuntimeDir) == "" {
		if tmp := os.Getenv("TMPDIR"); tmp != "" {
			c.Discord.RuntimeDir = tmp
		} else {
			c.Discord.RuntimeDir = "/tmp/"
		}
	}
	if c.Discord.SocketScanCount <= 0 {
		c.Discord.SocketScanCount = defaultSocketScanCount
	}
	if c.Discord.ConnectTimeout <= 0 {
		c.Discord.ConnectTimeout = defaultConnectTimeout
	}
	if c.Discord.MaxPacketBytes <= 0 {
		c.Discord.MaxPacketBytes = defaultMaxPacketBytes
	}
}

func (c *Config) normalizePlayer() {
	if strings.TrimSpace(c.Player.AppName) == "" {
		c.Player.AppName = defaultAppName
	}
	if c.Player.QueryTimeout <= 0 {
		c.Player.QueryTimeout = defaultQueryTimeout
	}
}

func (c *Config) normalizeServices() {
	c.Artwork.BaseURL = strings.TrimRight(strings.TrimSpace(c.Artwork.BaseURL), "/")
	if c.Artwork.BaseURL == "" {
		c.Artwork.BaseURL = defaultArtworkBaseURL
	}
	if c.Artwork.RequestTimeout <= 0 {
		c.Artwork.RequestTimeout = defaultRequestTimeout
	}

	c.TrackLinks.BaseURL = strings.TrimRight(strings.TrimSpace(c.TrackLinks.BaseURL), "/")
	if c.TrackLinks.BaseURL == "" {
		c.TrackLinks.BaseURL = defaultLinksBaseURL
	}
	if c.TrackLinks.RequestTimeout <= 0 {
		c.TrackLinks.RequestTimeout = defaultRequestTimeout
	}
	if strings.TrimSpace(c.TrackLinks.ButtonLabel) == "" {
		c.TrackLinks.ButtonLabel = defaultButtonLabel
	}

	if c.Watch.PollInterval <= 0 {
		c.Watch.PollInterval = defaultPollInterval
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
