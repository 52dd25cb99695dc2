package player

import (
	"context"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"musicord/internal/song"
)

// fieldSeparator delimits the AppleScript return value. It must never
// occur in track metadata; a triple pipe is established protocol for this
// query and matches what the script below emits.
const fieldSeparator = "|||"

const notPlayingMarker = "NOT_PLAYING"

const nowPlayingScript = `
tell application "Music"
    if player state is playing then
        set trackName to name of current track
        set artistName to artist of current track
        set albumName to album of current track
        set trackDuration to duration of current track
        set playerPos to player position
        return trackName & "|||" & artistName & "|||" & albumName & "|||" & trackDuration & "|||" & playerPos & "|||" & ""
    else
        return "NOT_PLAYING"
    end if
end tell
`

// Executor abstracts command execution for testability.
type Executor interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Client queries the player state.
type Client struct {
	timeout time.Duration
	exec    Executor
}

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(executor Executor) Option {
	return func(c *Client) {
		if executor != nil {
			c.exec = executor
		}
	}
}

// New constructs a player client with the given query timeout in seconds.
func New(timeoutSeconds int, opts ...Option) *Client {
	timeout := time.Duration(timeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	client := &Client{
		timeout: timeout,
		exec:    execRunner{},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// NowPlaying returns the current playback snapshot, or nil when nothing is
// playing. Malformed script output (missing fields, non-numeric numbers,
// empty title or artist) is reported as nil rather than an error; only the
// osascript invocation itself failing surfaces as an error, and callers
// treat that the same way.
func (c *Client) NowPlaying(ctx context.Context) (*song.Data, error) {
	queryCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	output, err := c.exec.Output(queryCtx, "osascript", "-e", nowPlayingScript)
	if err != nil {
		return nil, err
	}

	return parseOutput(string(output)), nil
}

func parseOutput(output string) *song.Data {
	output = strings.TrimSpace(output)
	if output == "" || output == notPlayingMarker {
		return nil
	}

	parts := strings.Split(output, fieldSeparator)
	if len(parts) < 5 {
		return nil
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
	if err != nil {
		return nil
	}
	position, err := strconv.ParseFloat(strings.TrimSpace(parts[4]), 64)
	if err != nil {
		return nil
	}

	data, err := song.New(
		strings.TrimSpace(parts[0]),
		strings.TrimSpace(parts[1]),
		strings.TrimSpace(parts[2]),
		duration,
		position,
	)
	if err != nil {
		return nil
	}

	if len(parts) >= 6 {
		data.URL = strings.TrimSpace(parts[5])
	}
	return &data
}
