package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/outreach-workspace/internal/config"
	"github.com/s21platform/outreach-workspace/internal/model"
)

const (
	errSendMessage  = "Failed to send message"
	errLoadHistory  = "Failed to load chat history"
	errClearHistory = "Failed to clear chat"
)

type State struct {
	Messages  []model.Message `json:"messages"`
	IsLoading bool            `json:"is_loading"`
	Error     string          `json:"error,omitempty"`
}

func initialState() State {
	return State{Messages: []model.Message{}}
}

// Store owns the conversation shown in the chat panel.
type Store struct {
	api       API
	validator Validator
	now       func() time.Time

	mu          sync.Mutex
	state       State
	unsubscribe func()
}

func New(api API, validator Validator) *Store {
	return &Store{
		api:       api,
		validator: validator,
		now:       time.Now,
		state:     initialState(),
	}
}

// Snapshot returns a copy of the current state that callers may keep.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state
	snapshot.Messages = make([]model.Message, len(s.state.Messages))
	copy(snapshot.Messages, s.state.Messages)

	return snapshot
}

// Attach subscribes to pushed messages. Any previous subscription of this store is dropped first.
func (s *Store) Attach(ctx context.Context, transport Transport) {
	s.Detach()

	unsubscribe := transport.Subscribe(model.EventMessage, func(data json.RawMessage) {
		s.receive(ctx, data)
	})

	s.mu.Lock()
	s.unsubscribe = unsubscribe
	s.mu.Unlock()
}

func (s *Store) Detach() {
	s.mu.Lock()
	unsubscribe := s.unsubscribe
	s.unsubscribe = nil
	s.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// SendMessage shows the user message immediately and persists it; the reply arrives over the push channel.
func (s *Store) SendMessage(ctx context.Context, content string) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("SendMessage")

	if err := s.validator.ValidateMessageContent(content); err != nil {
		return
	}

	s.mu.Lock()
	s.state.IsLoading = true
	s.state.Error = ""
	s.state.Messages = appendMessage(s.state.Messages, model.Message{
		Content:   content,
		Role:      model.RoleUser,
		Timestamp: model.NewTimestamp(s.now()),
	})
	s.mu.Unlock()

	if _, err := s.api.SendMessage(ctx, content); err != nil {
		logger.Error(fmt.Sprintf("failed to send message: %v", err))
		s.fail(err, errSendMessage)
	}
}

// ClearChat resets local state only; the backend history is left alone.
func (s *Store) ClearChat() {
	s.mu.Lock()
	s.state = initialState()
	s.mu.Unlock()
}

func (s *Store) LoadHistory(ctx context.Context) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("LoadHistory")

	s.begin()

	messages, err := s.api.GetChatHistory(ctx)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to load chat history: %v", err))
		s.fail(err, errLoadHistory)
		return
	}

	history := make([]model.Message, len(messages))
	copy(history, messages)

	s.mu.Lock()
	s.state.Messages = history
	s.state.IsLoading = false
	s.mu.Unlock()
}

// ClearHistory deletes the backend history, then resets like ClearChat.
func (s *Store) ClearHistory(ctx context.Context) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("ClearHistory")

	s.begin()

	if err := s.api.ClearChatHistory(ctx); err != nil {
		logger.Error(fmt.Sprintf("failed to clear chat history: %v", err))
		s.fail(err, errClearHistory)
		return
	}

	s.ClearChat()
}

func (s *Store) receive(ctx context.Context, data json.RawMessage) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	var message model.Message
	if err := json.Unmarshal(data, &message); err != nil {
		logger.Error(fmt.Sprintf("failed to decode pushed message: %v", err))
		return
	}

	// The backend echoes our own sends; the optimistic copy is already in the list.
	if message.Role == model.RoleUser {
		return
	}

	s.mu.Lock()
	s.state.Messages = appendMessage(s.state.Messages, message)
	s.state.IsLoading = false
	s.mu.Unlock()
}

func (s *Store) begin() {
	s.mu.Lock()
	s.state.IsLoading = true
	s.state.Error = ""
	s.mu.Unlock()
}

func (s *Store) fail(err error, fallback string) {
	s.mu.Lock()
	s.state.IsLoading = false
	s.state.Error = errorText(err, fallback)
	s.mu.Unlock()
}

func errorText(err error, fallback string) string {
	if err == nil || err.Error() == "" {
		return fallback
	}
	return err.Error()
}

func appendMessage(messages []model.Message, message model.Message) []model.Message {
	next := make([]model.Message, len(messages), len(messages)+1)
	copy(next, messages)
	return append(next, message)
}
