package discord

// ActivityTypeListening renders the presence as "Listening to <name>".
const ActivityTypeListening = 2

// Activity is the presence payload shown by the Discord client. A nil
// *Activity sent through SetActivity clears the presence.
type Activity struct {
	Type       int         `json:"type"`
	Name       string      `json:"name,omitempty"`
	Details    string      `json:"details,omitempty"`
	State      string      `json:"state,omitempty"`
	Timestamps *Timestamps `json:"timestamps,omitempty"`
	Buttons    []Button    `json:"buttons,omitempty"`
	Assets     *Assets     `json:"assets,omitempty"`
}

// Timestamps is the progress window in epoch seconds. When both ends are
// set the client renders a progress bar.
type Timestamps struct {
	Start int64 `json:"start"`
	End   int64 `json:"end,omitempty"`
}

// Button is a single clickable link under the presence.
type Button struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Assets carries the artwork image and its hover text.
type Assets struct {
	LargeImage string `json:"large_image"`
	LargeText  string `json:"large_text,omitempty"`
}

type handshakePayload struct {
	Version  int    `json:"v"`
	ClientID string `json:"client_id"`
}

type commandPayload struct {
	Cmd   string      `json:"cmd"`
	Nonce string      `json:"nonce"`
	Args  commandArgs `json:"args"`
}

type commandArgs struct {
	PID      int       `json:"pid"`
	Activity *Activity `json:"activity"`
}
