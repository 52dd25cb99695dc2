// Package preflight verifies the environment the daemon depends on:
// the osascript binary, the Discord runtime directory and sockets, and
// the enrichment API endpoints. The doctor command renders these results.
package preflight

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sys/unix"

	"musicord/internal/config"
)

// Result describes the outcome of one environment check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// CheckPlayerBinary verifies that osascript is on PATH.
func CheckPlayerBinary() Result {
	const name = "osascript"
	path, err := exec.LookPath(name)
	if err != nil {
		return Result{Name: name, Detail: "not found on PATH (Apple Music queries require macOS)"}
	}
	return Result{Name: name, Passed: true, Detail: path}
}

// CheckRuntimeDir verifies that the Discord runtime directory exists and
// is accessible.
func CheckRuntimeDir(path string) Result {
	const name = "runtime dir"
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: path}
}

// CheckPresenceSockets reports which discord-ipc candidates exist.
func CheckPresenceSockets(dir string, count int) Result {
	const name = "discord sockets"
	if count <= 0 {
		count = 10
	}
	var found []string
	for i := 0; i < count; i++ {
		candidate := filepath.Join(dir, fmt.Sprintf("discord-ipc-%d", i))
		if _, err := os.Stat(candidate); err == nil {
			found = append(found, filepath.Base(candidate))
		}
	}
	if len(found) == 0 {
		return Result{Name: name, Detail: fmt.Sprintf("no discord-ipc-* sockets in %s (is Discord running?)", dir)}
	}
	return Result{Name: name, Passed: true, Detail: strings.Join(found, ", ")}
}

// CheckEndpoint verifies that an enrichment API answers HTTP at all; any
// status code counts, only transport failures fail the check.
func CheckEndpoint(ctx context.Context, name, baseURL string) Result {
	checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(checkCtx, http.MethodGet, baseURL, nil)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("bad url %q: %v", baseURL, err)}
	}
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("unreachable: %v", err)}
	}
	resp.Body.Close()
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("reachable (%d)", resp.StatusCode)}
}

// RunAll evaluates every environment check for the given config.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	results := []Result{
		CheckPlayerBinary(),
		CheckRuntimeDir(cfg.Discord.RuntimeDir),
		CheckPresenceSockets(cfg.Discord.RuntimeDir, cfg.Discord.SocketScanCount),
	}
	if cfg.Artwork.Enabled {
		results = append(results, CheckEndpoint(ctx, "deezer api", cfg.Artwork.BaseURL))
	}
	results = append(results, CheckEndpoint(ctx, "itunes api", cfg.TrackLinks.BaseURL))
	return results
}
