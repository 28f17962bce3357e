package api

import (
	"context"

	"github.com/s21platform/outreach-workspace/internal/model"
)

const chatPath = "/api/chat"

func (c *Client) GetChatHistory(ctx context.Context) ([]model.Message, error) {
	var messages model.MessageList
	if err := c.get(ctx, chatPath, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (c *Client) SendMessage(ctx context.Context, content string) (*model.Message, error) {
	var message model.Message
	if err := c.post(ctx, chatPath, model.SendMessageRequest{Content: content}, &message); err != nil {
		return nil, err
	}
	return &message, nil
}

func (c *Client) ClearChatHistory(ctx context.Context) error {
	return c.delete(ctx, chatPath)
}
