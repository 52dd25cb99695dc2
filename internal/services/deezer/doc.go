// Package deezer looks up album artwork through the Deezer search API.
//
// The lookup is enrichment only: the watcher treats every failure as
// "no artwork" and keeps updating the presence, so this client reports
// errors without retrying.
package deezer
