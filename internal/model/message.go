package model

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

type MessageList []Message

type Message struct {
	ID        int64     `json:"id,omitempty"`
	UserID    int64     `json:"user_id,omitempty"`
	Content   string    `json:"content"`
	Role      Role      `json:"role"`
	Timestamp Timestamp `json:"timestamp"`
}

type SendMessageRequest struct {
	Content string `json:"content"`
}
