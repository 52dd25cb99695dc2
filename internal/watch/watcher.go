package watch

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"musicord/internal/discord"
	"musicord/internal/logging"
	"musicord/internal/song"
)

// NowPlayingSource supplies the current playback snapshot.
type NowPlayingSource interface {
	NowPlaying(ctx context.Context) (*song.Data, error)
}

// ArtworkSource supplies album artwork URLs.
type ArtworkSource interface {
	TrackArtwork(ctx context.Context, artist, title string) (string, error)
}

// LinkSource resolves canonical track links. Implementations must return a
// usable link for every input; fallbacks are their responsibility.
type LinkSource interface {
	TrackURL(ctx context.Context, artist, title string) string
}

// Presence pushes activity updates to the Discord session.
type Presence interface {
	SetActivity(activity *discord.Activity) bool
	Close()
}

// Watcher drives the poll/update loop.
type Watcher struct {
	player   NowPlayingSource
	presence Presence
	artwork  ArtworkSource
	links    LinkSource
	logger   *slog.Logger

	interval    time.Duration
	appName     string
	buttonLabel string
	now         func() time.Time

	// Cross-tick caches; touched only by the loop goroutine.
	lastIdentity string
	haveIdentity bool
	lastArtwork  string
	lastPlaying  *bool
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithInterval overrides the poll interval.
func WithInterval(interval time.Duration) Option {
	return func(w *Watcher) {
		if interval > 0 {
			w.interval = interval
		}
	}
}

// WithAppName overrides the presence display name.
func WithAppName(name string) Option {
	return func(w *Watcher) {
		if name != "" {
			w.appName = name
		}
	}
}

// WithButtonLabel overrides the presence button label.
func WithButtonLabel(label string) Option {
	return func(w *Watcher) {
		if label != "" {
			w.buttonLabel = label
		}
	}
}

// WithClock overrides the time source (for tests).
func WithClock(now func() time.Time) Option {
	return func(w *Watcher) {
		if now != nil {
			w.now = now
		}
	}
}

// New constructs a watcher. Player and presence are required; artwork and
// links may be nil, in which case the presence carries no image and no
// button.
func New(player NowPlayingSource, presence Presence, artwork ArtworkSource, links LinkSource, logger *slog.Logger, opts ...Option) (*Watcher, error) {
	if player == nil || presence == nil {
		return nil, errors.New("watcher requires player and presence")
	}
	watcher := &Watcher{
		player:      player,
		presence:    presence,
		artwork:     artwork,
		links:       links,
		logger:      logging.NewComponentLogger(logger, "watch"),
		interval:    time.Second,
		appName:     "Apple Music",
		buttonLabel: "Listen on Apple Music",
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(watcher)
	}
	return watcher, nil
}

// Run polls until ctx is canceled. Whatever ends the loop, the presence is
// cleared and the session closed before Run returns.
func (w *Watcher) Run(ctx context.Context) {
	defer func() {
		w.presence.SetActivity(nil)
		w.presence.Close()
		w.logger.Info("presence cleared and session closed")
	}()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.Tick(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Tick(ctx)
		}
	}
}

// Tick performs one poll/update iteration.
func (w *Watcher) Tick(ctx context.Context) {
	snapshot, err := w.player.NowPlaying(ctx)
	if err != nil {
		w.logger.Debug("player query failed", logging.Error(err))
		snapshot = nil
	}

	if snapshot == nil {
		w.handleStopped()
		return
	}
	w.handlePlaying(ctx, snapshot)
}

// handleStopped clears the presence on the first stopped tick only; every
// following stopped tick is a no-op so an idle player does not produce a
// clear command every second.
func (w *Watcher) handleStopped() {
	if w.lastPlaying == nil || *w.lastPlaying {
		w.presence.SetActivity(nil)
		w.logger.Info("playback stopped, presence cleared")
	}
	stopped := false
	w.lastPlaying = &stopped
}

func (w *Watcher) handlePlaying(ctx context.Context, snapshot *song.Data) {
	identity := snapshot.Identity()
	if !w.haveIdentity || identity != w.lastIdentity {
		w.lastArtwork = w.fetchArtwork(ctx, snapshot)
		w.lastIdentity = identity
		w.haveIdentity = true
		w.logger.Info("track changed",
			logging.String("title", snapshot.Title),
			logging.String("artist", snapshot.Artist),
			logging.Bool("artwork", w.lastArtwork != ""),
		)
	}

	w.presence.SetActivity(w.buildActivity(ctx, snapshot))

	playing := true
	w.lastPlaying = &playing
}

// fetchArtwork is best-effort: any lookup failure just means no image.
func (w *Watcher) fetchArtwork(ctx context.Context, snapshot *song.Data) string {
	if w.artwork == nil {
		return ""
	}
	artworkURL, err := w.artwork.TrackArtwork(ctx, snapshot.Artist, snapshot.Title)
	if err != nil {
		w.logger.Debug("artwork lookup failed", logging.Error(err))
		return ""
	}
	return artworkURL
}

func (w *Watcher) buildActivity(ctx context.Context, snapshot *song.Data) *discord.Activity {
	now := w.now().Unix()
	start := now - int64(snapshot.Position)
	end := now + int64(snapshot.Remaining())

	activity := &discord.Activity{
		Type:    discord.ActivityTypeListening,
		Name:    w.appName,
		Details: snapshot.Title,
		State:   "by " + snapshot.Artist,
		Timestamps: &discord.Timestamps{
			Start: start,
			End:   end,
		},
	}

	if link := w.resolveLink(ctx, snapshot); link != "" {
		activity.Buttons = []discord.Button{{Label: w.buttonLabel, URL: link}}
	}

	if w.lastArtwork != "" {
		activity.Assets = &discord.Assets{
			LargeImage: w.lastArtwork,
			LargeText:  snapshot.Album + " by " + snapshot.Artist,
		}
	}
	return activity
}

// resolveLink prefers the player-provided canonical URL and only searches
// the catalog when the player did not supply one.
func (w *Watcher) resolveLink(ctx context.Context, snapshot *song.Data) string {
	if snapshot.URL != "" {
		return snapshot.URL
	}
	if w.links == nil {
		return ""
	}
	return w.links.TrackURL(ctx, snapshot.Artist, snapshot.Title)
}
