//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package chat

import (
	"context"

	"github.com/s21platform/outreach-workspace/internal/model"
)

type API interface {
	GetChatHistory(ctx context.Context) ([]model.Message, error)
	SendMessage(ctx context.Context, content string) (*model.Message, error)
	ClearChatHistory(ctx context.Context) error
}

type Transport interface {
	Subscribe(event string, handler model.EventHandler) func()
}

type Validator interface {
	ValidateMessageContent(content string) error
}
