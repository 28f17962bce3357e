package model

import (
	"encoding/json"

	"github.com/golang-jwt/jwt/v5"
)

const (
	EventMessage        = "message"
	EventSequenceUpdate = "sequence_update"
)

// EventHandler receives the first argument of one pushed event.
type EventHandler func(data json.RawMessage)

// PushOpen is the Engine.IO handshake sent by the server right after the upgrade.
type PushOpen struct {
	SID          string   `json:"sid"`
	Upgrades     []string `json:"upgrades"`
	PingInterval int64    `json:"pingInterval"`
	PingTimeout  int64    `json:"pingTimeout"`
	MaxPayload   int64    `json:"maxPayload"`
}

// PushAuth is the payload of the Socket.IO connect packet.
type PushAuth struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

type PushConnectClaims struct {
	jwt.RegisteredClaims
}
