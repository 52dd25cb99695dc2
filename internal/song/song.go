// Package song defines the playback snapshot model shared by the player
// query and the presence watcher.
//
// A Data value is constructed fresh on every poll tick and never mutated
// afterwards. Validation happens at construction so downstream code can
// rely on non-empty title/artist and a position that never exceeds the
// track duration.
package song

import (
	"errors"
	"strings"
)

// Data describes one playback snapshot from the player.
type Data struct {
	Title    string
	Artist   string
	Album    string
	Duration float64 // seconds
	Position float64 // seconds, always <= Duration
	URL      string  // optional player-provided canonical link
}

// New validates and constructs a snapshot. A position past the end of the
// track is clamped down to the duration rather than rejected; the player
// reports fractional seconds and can briefly run ahead at track boundaries.
func New(title, artist, album string, duration, position float64) (Data, error) {
	if duration < 0 {
		return Data{}, errors.New("duration must be non-negative")
	}
	if position < 0 {
		return Data{}, errors.New("position must be non-negative")
	}
	if strings.TrimSpace(title) == "" {
		return Data{}, errors.New("title must not be empty")
	}
	if strings.TrimSpace(artist) == "" {
		return Data{}, errors.New("artist must not be empty")
	}
	if position > duration {
		position = duration
	}
	return Data{
		Title:    title,
		Artist:   artist,
		Album:    album,
		Duration: duration,
		Position: position,
	}, nil
}

// Identity returns the change-detection key for the snapshot. Album and
// position are deliberately excluded so seeking or metadata edits within
// the same track do not count as a track change.
func (d Data) Identity() string {
	return d.Artist + "-" + d.Title
}

// Remaining reports the seconds left until the end of the track.
func (d Data) Remaining() float64 {
	return d.Duration - d.Position
}
