package discord

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"musicord/internal/config"
	"musicord/internal/logging"
)

const (
	readyEvent = "READY"
	errorEvent = "ERROR"

	setActivityCommand = "SET_ACTIVITY"
)

// Client maintains one presence session with the local Discord client.
// The lifecycle is Connect once, SetActivity repeatedly, Close once;
// Close is idempotent and safe from any state.
type Client struct {
	clientID       string
	runtimeDir     string
	scanCount      int
	connectTimeout time.Duration
	maxPayload     uint32
	logger         *slog.Logger
	pid            int
	newNonce       func() string

	mu        sync.Mutex
	conn      net.Conn
	connected bool
}

// Option configures a Client.
type Option func(*Client)

// WithRuntimeDir overrides the directory scanned for discord-ipc sockets.
func WithRuntimeDir(dir string) Option {
	return func(c *Client) {
		if strings.TrimSpace(dir) != "" {
			c.runtimeDir = dir
		}
	}
}

// WithSocketScanCount overrides how many discord-ipc-N candidates are probed.
func WithSocketScanCount(count int) Option {
	return func(c *Client) {
		if count > 0 {
			c.scanCount = count
		}
	}
}

// WithConnectTimeout overrides the socket connect and handshake timeout.
func WithConnectTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.connectTimeout = timeout
		}
	}
}

// WithMaxPayloadBytes overrides the packet payload size bound.
func WithMaxPayloadBytes(limit uint32) Option {
	return func(c *Client) {
		if limit > 0 {
			c.maxPayload = limit
		}
	}
}

// WithLogger attaches a logger; the client logs at debug level only.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logging.NewComponentLogger(logger, "discord")
		}
	}
}

// NewClient validates the client identifier and constructs a disconnected
// client. The identifier is the numeric Discord application ID.
func NewClient(clientID string, opts ...Option) (*Client, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, errors.New("client id must not be empty")
	}
	for _, r := range clientID {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("client id must be numeric, got %q", clientID)
		}
	}

	client := &Client{
		clientID:       clientID,
		runtimeDir:     defaultRuntimeDir(),
		scanCount:      10,
		connectTimeout: 5 * time.Second,
		maxPayload:     DefaultMaxPayloadBytes,
		logger:         logging.NewNop(),
		pid:            os.Getpid(),
		newNonce:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// NewClientFromConfig builds a client from application configuration.
func NewClientFromConfig(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	return NewClient(cfg.Discord.ClientID,
		WithRuntimeDir(cfg.Discord.RuntimeDir),
		WithSocketScanCount(cfg.Discord.SocketScanCount),
		WithConnectTimeout(time.Duration(cfg.Discord.ConnectTimeout)*time.Second),
		WithMaxPayloadBytes(uint32(cfg.Discord.MaxPacketBytes)),
		WithLogger(logger),
	)
}

func defaultRuntimeDir() string {
	if tmp := os.Getenv("TMPDIR"); tmp != "" {
		return tmp
	}
	return "/tmp/"
}

// Connect probes the discord-ipc socket candidates in ascending order and
// performs the handshake against the first one that answers READY. It
// reports false when the runtime directory is missing or every candidate
// fails; the client stays disconnected and no retry is attempted.
func (c *Client) Connect() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.connected {
		return true
	}

	if _, err := os.Stat(c.runtimeDir); err != nil {
		c.logger.Debug("runtime directory unavailable",
			logging.String("dir", c.runtimeDir),
			logging.Error(err),
		)
		return false
	}

	for i := 0; i < c.scanCount; i++ {
		socketPath := filepath.Join(c.runtimeDir, fmt.Sprintf("discord-ipc-%d", i))
		if _, err := os.Stat(socketPath); err != nil {
			continue
		}
		if c.handshake(socketPath) {
			c.logger.Debug("presence session established", logging.String("socket", socketPath))
			return true
		}
	}
	return false
}

// handshake dials one socket candidate and runs the opcode-0 exchange.
// Any failure closes the partial connection so the next candidate starts
// clean. Caller holds c.mu.
func (c *Client) handshake(socketPath string) bool {
	conn, err := net.DialTimeout("unix", socketPath, c.connectTimeout)
	if err != nil {
		c.logger.Debug("socket dial failed", logging.String("socket", socketPath), logging.Error(err))
		return false
	}

	deadline := time.Now().Add(c.connectTimeout)
	_ = conn.SetDeadline(deadline)

	packet, err := EncodePacket(OpHandshake, handshakePayload{Version: 1, ClientID: c.clientID})
	if err != nil {
		conn.Close()
		return false
	}
	if _, err := conn.Write(packet); err != nil {
		c.logger.Debug("handshake send failed", logging.String("socket", socketPath), logging.Error(err))
		conn.Close()
		return false
	}

	response := DecodePacket(conn, c.maxPayload)
	if response.Event() != readyEvent {
		c.logger.Debug("handshake rejected",
			logging.String("socket", socketPath),
			logging.String("event", response.Event()),
		)
		conn.Close()
		return false
	}

	// Handshake done; subsequent I/O uses no deadline.
	_ = conn.SetDeadline(time.Time{})
	c.conn = conn
	c.connected = true
	return true
}

// Connected reports whether the handshake has completed.
func (c *Client) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

// SetActivity pushes a presence update, or clears the presence when
// activity is nil. It reports false when disconnected, on any transport
// failure, or when the peer answers with an ERROR event. The session is
// never torn down here: a rejected update is treated as transient and the
// next tick simply tries again.
func (c *Client) SetActivity(activity *Activity) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected || c.conn == nil {
		return false
	}

	command := commandPayload{
		Cmd:   setActivityCommand,
		Nonce: c.newNonce(),
		Args:  commandArgs{PID: c.pid, Activity: activity},
	}
	packet, err := EncodePacket(OpFrame, command)
	if err != nil {
		return false
	}
	if _, err := c.conn.Write(packet); err != nil {
		c.logger.Debug("activity send failed", logging.Error(err))
		return false
	}

	response := DecodePacket(c.conn, c.maxPayload)
	if response == nil {
		return false
	}
	if response.Event() == errorEvent {
		c.logger.Debug("activity rejected by peer")
		return false
	}
	return true
}

// Close shuts the socket down and marks the client disconnected. It is
// safe to call repeatedly and before a successful Connect.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}
	c.connected = false
}
