package push

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/s21platform/outreach-workspace/internal/model"
)

// Engine.IO v4 packet types, the first byte of every websocket frame.
const (
	engineOpen    = '0'
	engineClose   = '1'
	enginePing    = '2'
	enginePong    = '3'
	engineMessage = '4'
	engineNoop    = '6'
)

// Socket.IO v5 packet types, the first byte after an Engine.IO message marker.
const (
	socketConnect      = '0'
	socketDisconnect   = '1'
	socketEvent        = '2'
	socketConnectError = '4'
)

// errSessionEnded marks packets after which the server will send nothing more on this connection.
var errSessionEnded = errors.New("push session ended")

// connectPacket builds the Socket.IO connect for the default namespace, with auth when given.
func connectPacket(auth *model.PushAuth) ([]byte, error) {
	packet := []byte{engineMessage, socketConnect}
	if auth == nil {
		return packet, nil
	}

	payload, err := json.Marshal(auth)
	if err != nil {
		return nil, fmt.Errorf("failed to encode connect auth: %w", err)
	}
	return append(packet, payload...), nil
}

// decodeEvent splits an event packet body such as `["message",{...}]` into name and first argument.
// A leading namespace (`/chat,`) and ack id are skipped.
func decodeEvent(body []byte) (string, json.RawMessage, error) {
	if len(body) > 0 && body[0] == '/' {
		comma := bytes.IndexByte(body, ',')
		if comma < 0 {
			return "", nil, fmt.Errorf("event packet %q has a namespace but no arguments", body)
		}
		body = body[comma+1:]
	}

	i := 0
	for i < len(body) && body[i] >= '0' && body[i] <= '9' {
		i++
	}
	body = body[i:]

	var args []json.RawMessage
	if err := json.Unmarshal(body, &args); err != nil {
		return "", nil, fmt.Errorf("failed to decode event arguments: %w", err)
	}
	if len(args) == 0 {
		return "", nil, errors.New("event packet has no name")
	}

	var event string
	if err := json.Unmarshal(args[0], &event); err != nil || event == "" {
		return "", nil, fmt.Errorf("event name must be a non-empty string, got %s", args[0])
	}

	if len(args) == 1 {
		return event, json.RawMessage("null"), nil
	}
	return event, args[1], nil
}
