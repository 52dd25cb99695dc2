// Package watch runs the presence loop: poll the player, enrich the
// snapshot, and push the resulting activity to Discord once per tick.
//
// The loop is single-goroutine and strictly sequential; each tick finishes
// (including its bounded player/HTTP/IPC calls) before the next begins.
// The watcher owns three pieces of state across ticks: the last track
// identity (bounds artwork lookups to one per track change), the cached
// artwork URL for that identity, and the last playing flag (ensures the
// presence is cleared exactly once when playback stops). On exit the loop
// always clears the presence and closes the session, whatever the exit
// path was.
package watch
