// Package itunes resolves canonical Apple Music track links through the
// iTunes Search API.
//
// Matching uses bidirectional case-insensitive substring containment on
// both artist and title. The heuristic accepts false positives ("Love"
// matches "I Love You"); it is kept as-is for compatibility with existing
// presence behavior, since tightening it would change which links users
// see. When nothing matches, TrackURL falls back to a deterministic
// music.apple.com search link and therefore never returns an empty string.
package itunes
