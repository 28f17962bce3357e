package push

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gorilla/websocket"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/outreach-workspace/internal/model"
)

// session speaks Engine.IO v4 / Socket.IO v5 over one websocket. Only the read loop writes to conn.
type session struct {
	client *Client
	conn   *websocket.Conn
	logger logger_lib.LoggerInterface

	// heartbeat is pingInterval+pingTimeout from the open packet; zero until it arrives.
	heartbeat time.Duration
}

func (s *session) handle(frame []byte) error {
	if len(frame) == 0 {
		return fmt.Errorf("empty frame")
	}

	switch frame[0] {
	case engineOpen:
		return s.open(frame[1:])
	case enginePing:
		s.extendDeadline()
		return s.write(append([]byte{enginePong}, frame[1:]...))
	case engineClose:
		return fmt.Errorf("server closed the session: %w", errSessionEnded)
	case engineMessage:
		return s.message(frame[1:])
	case enginePong, engineNoop:
		return nil
	default:
		return fmt.Errorf("unsupported engine packet type %q", frame[0])
	}
}

func (s *session) open(body []byte) error {
	var handshake model.PushOpen
	if err := json.Unmarshal(body, &handshake); err != nil {
		return fmt.Errorf("failed to decode open packet: %w", err)
	}

	s.heartbeat = time.Duration(handshake.PingInterval+handshake.PingTimeout) * time.Millisecond
	s.extendDeadline()

	auth, err := s.client.connectAuth()
	if err != nil {
		return fmt.Errorf("%v: %w", err, errSessionEnded)
	}

	packet, err := connectPacket(auth)
	if err != nil {
		return fmt.Errorf("%v: %w", err, errSessionEnded)
	}

	return s.write(packet)
}

func (s *session) message(body []byte) error {
	if len(body) == 0 {
		return fmt.Errorf("empty socket packet")
	}

	switch body[0] {
	case socketConnect:
		s.logger.Info(fmt.Sprintf("connected to push channel %s", s.client.url))
		return nil
	case socketDisconnect:
		return fmt.Errorf("server disconnected the namespace: %w", errSessionEnded)
	case socketConnectError:
		return fmt.Errorf("connect rejected: %s: %w", body[1:], errSessionEnded)
	case socketEvent:
		event, data, err := decodeEvent(body[1:])
		if err != nil {
			return err
		}
		s.client.dispatch(event, data)
		return nil
	default:
		return fmt.Errorf("unsupported socket packet type %q", body[0])
	}
}

func (s *session) extendDeadline() {
	if s.heartbeat <= 0 {
		return
	}
	_ = s.conn.SetReadDeadline(time.Now().Add(s.heartbeat))
}

func (s *session) write(packet []byte) error {
	if err := s.conn.WriteMessage(websocket.TextMessage, packet); err != nil {
		return fmt.Errorf("failed to write %q: %v: %w", packet, err, errSessionEnded)
	}
	return nil
}
