package discord

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
)

// Opcodes used by the local IPC protocol.
const (
	OpHandshake uint32 = 0
	OpFrame     uint32 = 1
)

// DefaultMaxPayloadBytes bounds the JSON payload of a single packet.
const DefaultMaxPayloadBytes = 1 << 20

const headerSize = 8

// Packet is one decoded wire message.
type Packet struct {
	Opcode  uint32
	Payload map[string]any
}

// Event returns the payload's evt field, or "" when absent.
func (p *Packet) Event() string {
	if p == nil {
		return ""
	}
	evt, _ := p.Payload["evt"].(string)
	return evt
}

// EncodePacket serializes the payload to JSON and prepends the 8-byte
// little-endian (opcode, length) header.
func EncodePacket(opcode uint32, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode packet payload: %w", err)
	}
	buf := make([]byte, headerSize+len(body))
	binary.LittleEndian.PutUint32(buf[0:4], opcode)
	binary.LittleEndian.PutUint32(buf[4:8], uint32(len(body)))
	copy(buf[headerSize:], body)
	return buf, nil
}

// DecodePacket reads exactly one packet from r. It returns nil on any
// malformed input: a short or missing header, a zero or oversized length
// field, a truncated body, or an unparseable payload. A misbehaving or
// absent peer must never crash the caller, so nothing propagates.
//
// maxPayload bounds the accepted payload size; pass 0 for the default.
func DecodePacket(r io.Reader, maxPayload uint32) *Packet {
	if maxPayload == 0 {
		maxPayload = DefaultMaxPayloadBytes
	}

	header := make([]byte, headerSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil
	}
	opcode := binary.LittleEndian.Uint32(header[0:4])
	length := binary.LittleEndian.Uint32(header[4:8])
	if length == 0 || length > maxPayload {
		return nil
	}

	body := make([]byte, length)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil
	}
	return &Packet{Opcode: opcode, Payload: payload}
}
