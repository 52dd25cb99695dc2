// Package player queries the local Apple Music application for the
// currently playing track via osascript.
//
// The query contract is deliberately forgiving: a timeout, a script error,
// missing fields, or non-numeric duration/position all collapse into
// "nothing playing" so a flaky player never crashes the watch loop.
package player
