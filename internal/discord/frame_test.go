package discord_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"musicord/internal/discord"
)

func TestPacketRoundTrip(t *testing.T) {
	payload := map[string]any{"cmd": "SET_ACTIVITY", "nonce": "abc-123"}
	encoded, err := discord.EncodePacket(discord.OpFrame, payload)
	if err != nil {
		t.Fatalf("EncodePacket returned error: %v", err)
	}

	packet := discord.DecodePacket(bytes.NewReader(encoded), 0)
	if packet == nil {
		t.Fatal("DecodePacket returned nil for valid input")
	}
	if packet.Opcode != discord.OpFrame {
		t.Fatalf("unexpected opcode: %d", packet.Opcode)
	}
	if packet.Payload["cmd"] != "SET_ACTIVITY" || packet.Payload["nonce"] != "abc-123" {
		t.Fatalf("unexpected payload: %#v", packet.Payload)
	}
}

func TestEncodePacketHeaderLayout(t *testing.T) {
	encoded, err := discord.EncodePacket(discord.OpHandshake, map[string]any{"v": 1})
	if err != nil {
		t.Fatalf("EncodePacket returned error: %v", err)
	}
	if len(encoded) < 8 {
		t.Fatalf("encoded packet shorter than header: %d bytes", len(encoded))
	}
	if op := binary.LittleEndian.Uint32(encoded[0:4]); op != discord.OpHandshake {
		t.Fatalf("unexpected opcode field: %d", op)
	}
	if length := binary.LittleEndian.Uint32(encoded[4:8]); int(length) != len(encoded)-8 {
		t.Fatalf("length field %d does not match body size %d", length, len(encoded)-8)
	}
}

func TestDecodePacketRejectsZeroLength(t *testing.T) {
	header := make([]byte, 8)
	binary.LittleEndian.PutUint32(header[0:4], discord.OpFrame)
	binary.LittleEndian.PutUint32(header[4:8], 0)
	if packet := discord.DecodePacket(bytes.NewReader(header), 0); packet != nil {
		t.Fatalf("expected nil for zero-length packet, got %#v", packet)
	}
}

func TestDecodePacketRejectsOversizedLength(t *testing.T) {
	header := make([]byte, 8)
	binary.LittleEndian.PutUint32(header[0:4], discord.OpFrame)
	binary.LittleEndian.PutUint32(header[4:8], discord.DefaultMaxPayloadBytes+1)
	if packet := discord.DecodePacket(bytes.NewReader(header), 0); packet != nil {
		t.Fatalf("expected nil for oversized packet, got %#v", packet)
	}
}

func TestDecodePacketHonoursCustomLimit(t *testing.T) {
	encoded, err := discord.EncodePacket(discord.OpFrame, map[string]any{"evt": "READY"})
	if err != nil {
		t.Fatalf("EncodePacket returned error: %v", err)
	}
	if packet := discord.DecodePacket(bytes.NewReader(encoded), 4); packet != nil {
		t.Fatal("expected nil when payload exceeds custom limit")
	}
}

func TestDecodePacketShortHeader(t *testing.T) {
	if packet := discord.DecodePacket(bytes.NewReader([]byte{1, 2, 3}), 0); packet != nil {
		t.Fatal("expected nil for short header")
	}
}

func TestDecodePacketTruncatedBody(t *testing.T) {
	header := make([]byte, 8)
	binary.LittleEndian.PutUint32(header[0:4], discord.OpFrame)
	binary.LittleEndian.PutUint32(header[4:8], 64)
	data := append(header, []byte(`{"evt":`)...)
	if packet := discord.DecodePacket(bytes.NewReader(data), 0); packet != nil {
		t.Fatal("expected nil for truncated body")
	}
}

func TestDecodePacketInvalidJSON(t *testing.T) {
	body := []byte("not json!!")
	header := make([]byte, 8)
	binary.LittleEndian.PutUint32(header[0:4], discord.OpFrame)
	binary.LittleEndian.PutUint32(header[4:8], uint32(len(body)))
	if packet := discord.DecodePacket(bytes.NewReader(append(header, body...)), 0); packet != nil {
		t.Fatal("expected nil for invalid JSON payload")
	}
}

func TestPacketEventHelper(t *testing.T) {
	var nilPacket *discord.Packet
	if nilPacket.Event() != "" {
		t.Fatal("nil packet should report empty event")
	}
	packet := &discord.Packet{Payload: map[string]any{"evt": "READY"}}
	if packet.Event() != "READY" {
		t.Fatalf("unexpected event: %q", packet.Event())
	}
}
