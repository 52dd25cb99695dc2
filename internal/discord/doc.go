// Package discord implements the Discord desktop client's local IPC
// presence protocol: socket discovery, the length-prefixed packet framing,
// the opcode-0 handshake, and the opcode-1 SET_ACTIVITY command.
//
// The protocol deliberately degrades instead of failing: malformed or
// oversized packets decode to nil, and SetActivity reports success or
// failure as a bool without ever tearing down the session. A dropped peer
// leaves the client silently failing updates until the process restarts;
// there is no mid-session reconnect.
//
// Wire format: an 8-byte header of two little-endian uint32 values
// (opcode, payload length) followed by exactly that many bytes of UTF-8
// JSON. Sockets are named discord-ipc-0 through discord-ipc-9 inside the
// per-user runtime temp directory.
package discord
