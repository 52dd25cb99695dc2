// Package daemonrun wires the configured components together and runs the
// presence loop until the process is interrupted.
package daemonrun

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofrs/flock"

	"musicord/internal/config"
	"musicord/internal/discord"
	"musicord/internal/logging"
	"musicord/internal/player"
	"musicord/internal/services/deezer"
	"musicord/internal/services/itunes"
	"musicord/internal/watch"
)

// Options configures daemon process runtime behavior.
type Options struct {
	LogLevel string
	JSONLogs bool
}

// Run starts the musicord daemon loop. It returns when the context is
// canceled or an interrupt signal arrives; the presence is cleared and
// the session closed on every exit path.
func Run(cmdCtx context.Context, cfg *config.Config, opts Options) error {
	if cfg == nil {
		return errors.New("config is required")
	}

	signalCtx, cancel := signal.NotifyContext(cmdCtx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}

	logFormat := cfg.Logging.Format
	if opts.JSONLogs {
		logFormat = "json"
	}
	logLevel := cfg.Logging.Level
	if opts.LogLevel != "" {
		logLevel = opts.LogLevel
	}
	logger, err := logging.NewFromConfig(&config.Config{
		Paths:   cfg.Paths,
		Logging: config.Logging{Format: logFormat, Level: logLevel},
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	lockPath := filepath.Join(cfg.Paths.StateDir, "musicord.lock")
	lock := flock.New(lockPath)
	held, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !held {
		return errors.New("another musicord instance is already running")
	}
	defer func() { _ = lock.Unlock() }()

	presence, err := discord.NewClientFromConfig(cfg, logger)
	if err != nil {
		return fmt.Errorf("create presence client: %w", err)
	}
	defer presence.Close()

	if !presence.Connect() {
		return errors.New("failed to connect to Discord (is the desktop client running?)")
	}
	logger.Info("connected to Discord", logging.String("client_id", cfg.Discord.ClientID))

	var artwork watch.ArtworkSource
	if cfg.Artwork.Enabled {
		artwork = deezer.New(cfg.Artwork.BaseURL,
			deezer.WithTimeout(time.Duration(cfg.Artwork.RequestTimeout)*time.Second))
	}
	links := itunes.New(cfg.TrackLinks.BaseURL,
		itunes.WithTimeout(time.Duration(cfg.TrackLinks.RequestTimeout)*time.Second))
	playerClient := player.New(cfg.Player.QueryTimeout)

	watcher, err := watch.New(playerClient, presence, artwork, links, logger,
		watch.WithInterval(time.Duration(cfg.Watch.PollInterval)*time.Second),
		watch.WithAppName(cfg.Player.AppName),
		watch.WithButtonLabel(cfg.TrackLinks.ButtonLabel),
	)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	logger.Info("musicord started",
		logging.String("app", cfg.Player.AppName),
		logging.Int("poll_interval_s", cfg.Watch.PollInterval),
	)
	watcher.Run(signalCtx)
	logger.Info("musicord shutting down")
	return nil
}
