package config

const (
	defaultStateDir        = "~/.local/share/musicord"
	defaultClientID        = "1410325920039960657"
	defaultSocketScanCount = 10
	defaultConnectTimeout  = 5
	defaultMaxPacketBytes  = 1 << 20
	defaultAppName         = "Apple Music"
	defaultQueryTimeout    = 10
	defaultArtworkBaseURL  = "https://api.deezer.com"
	defaultLinksBaseURL    = "https://itunes.apple.com"
	defaultRequestTimeout  = 5
	defaultButtonLabel     = "Listen on Apple Music"
	defaultPollInterval    = 1
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir,
		},
		Discord: Discord{
			ClientID:        defaultClientID,
			SocketScanCount: defaultSocketScanCount,
			ConnectTimeout:  defaultConnectTimeout,
			MaxPacketBytes:  defaultMaxPacketBytes,
		},
		Player: Player{
			AppName:      defaultAppName,
			QueryTimeout: defaultQueryTimeout,
		},
		Artwork: Artwork{
			Enabled:        true,
			BaseURL:        defaultArtworkBaseURL,
			RequestTimeout: defaultRequestTimeout,
		},
		TrackLinks: TrackLinks{
			BaseURL:        defaultLinksBaseURL,
			RequestTimeout: defaultRequestTimeout,
			ButtonLabel:    defaultButtonLabel,
		},
		Watch: Watch{
			PollInterval: defaultPollInterval,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
