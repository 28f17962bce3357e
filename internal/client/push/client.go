package push

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/outreach-workspace/internal/config"
	"github.com/s21platform/outreach-workspace/internal/model"
)

const engineVersion = "4"

type TokenSigner interface {
	Enabled() bool
	ConnectAuth(userID string) (*model.PushAuth, error)
}

type subscription struct {
	id      uint64
	handler model.EventHandler
}

// Client keeps one Socket.IO session open to the backend and fans pushed events out to subscribers.
type Client struct {
	url            string
	userID         string
	reconnectDelay time.Duration
	dialer         *websocket.Dialer
	tokens         TokenSigner

	mu       sync.RWMutex
	handlers map[string][]subscription
	nextID   uint64

	connMu sync.Mutex
	conn   *websocket.Conn
}

func New(cfg *config.Config, tokens TokenSigner) (*Client, error) {
	socketURL, err := SocketURL(cfg.API.BaseURL, cfg.Push.Path)
	if err != nil {
		return nil, err
	}

	return &Client{
		url:            socketURL,
		userID:         cfg.Push.UserID,
		reconnectDelay: cfg.Push.ReconnectDelay,
		dialer:         websocket.DefaultDialer,
		tokens:         tokens,
		handlers:       make(map[string][]subscription),
	}, nil
}

// SocketURL derives the Engine.IO websocket endpoint from the REST base URL.
func SocketURL(baseURL, path string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return "", fmt.Errorf("failed to parse base url: %w", err)
	}

	switch u.Scheme {
	case "http", "ws":
		u.Scheme = "ws"
	case "https", "wss":
		u.Scheme = "wss"
	default:
		return "", fmt.Errorf("unsupported base url scheme %q", u.Scheme)
	}

	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(path, "/")
	u.RawQuery = url.Values{
		"EIO":       []string{engineVersion},
		"transport": []string{"websocket"},
	}.Encode()

	return u.String(), nil
}

// Subscribe registers handler for event and returns a func that removes exactly this subscription.
func (c *Client) Subscribe(event string, handler model.EventHandler) func() {
	c.mu.Lock()
	c.nextID++
	id := c.nextID
	c.handlers[event] = append(c.handlers[event], subscription{id: id, handler: handler})
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.remove(event, id)
		})
	}
}

// Unsubscribe drops every handler registered for event.
func (c *Client) Unsubscribe(event string) {
	c.mu.Lock()
	delete(c.handlers, event)
	c.mu.Unlock()
}

func (c *Client) remove(event string, id uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	subs := c.handlers[event]
	kept := make([]subscription, 0, len(subs))
	for _, sub := range subs {
		if sub.id != id {
			kept = append(kept, sub)
		}
	}

	if len(kept) == 0 {
		delete(c.handlers, event)
		return
	}
	c.handlers[event] = kept
}

// Run keeps the session alive until ctx is cancelled, redialing after reconnectDelay.
func (c *Client) Run(ctx context.Context) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("Run")

	for {
		err := c.listen(ctx)
		if ctx.Err() != nil {
			return nil
		}

		logger.Warn(fmt.Sprintf("push connection lost: %v", err))

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(c.reconnectDelay):
		}
	}
}

func (c *Client) listen(ctx context.Context) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	conn, err := c.dial(ctx)
	if err != nil {
		return err
	}
	defer c.closeConn()

	stop := context.AfterFunc(ctx, func() {
		_ = conn.Close()
	})
	defer stop()

	s := &session{client: c, conn: conn, logger: logger}
	for {
		_, frame, err := conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("failed to read frame: %w", err)
		}

		if err := s.handle(frame); err != nil {
			if errors.Is(err, errSessionEnded) {
				return err
			}
			logger.Error(fmt.Sprintf("failed to handle push frame: %v", err))
		}
	}
}

func (c *Client) dial(ctx context.Context) (*websocket.Conn, error) {
	conn, resp, err := c.dialer.DialContext(ctx, c.url, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", c.url, err)
	}

	c.connMu.Lock()
	c.conn = conn
	c.connMu.Unlock()

	return conn, nil
}

// connectAuth returns nil when token signing is not configured.
func (c *Client) connectAuth() (*model.PushAuth, error) {
	if c.tokens == nil || !c.tokens.Enabled() {
		return nil, nil
	}

	auth, err := c.tokens.ConnectAuth(c.userID)
	if err != nil {
		return nil, fmt.Errorf("failed to build connect auth: %w", err)
	}
	return auth, nil
}

func (c *Client) dispatch(event string, data json.RawMessage) {
	c.mu.RLock()
	subs := append([]subscription(nil), c.handlers[event]...)
	c.mu.RUnlock()

	for _, sub := range subs {
		sub.handler(data)
	}
}

func (c *Client) closeConn() {
	c.connMu.Lock()
	defer c.connMu.Unlock()

	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}
}

// Close tears down the live connection; Run redials unless its context is done.
func (c *Client) Close() error {
	c.closeConn()
	return nil
}
