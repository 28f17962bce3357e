package model

import (
	"sort"
	"strings"
)

type StepType string

const (
	StepTypeEmail   StepType = "email"
	StepTypeMessage StepType = "message"
	StepTypeCall    StepType = "call"
	StepTypeOther   StepType = "other"
)

func (t StepType) Valid() bool {
	switch t {
	case StepTypeEmail, StepTypeMessage, StepTypeCall, StepTypeOther:
		return true
	}
	return false
}

type SequenceList []Sequence

type Sequence struct {
	ID        int64          `json:"id,omitempty"`
	UserID    int64          `json:"user_id,omitempty"`
	Title     string         `json:"title"`
	CreatedAt Timestamp      `json:"created_at"`
	Steps     []SequenceStep `json:"steps"`
}

// Clone returns a copy that shares no step storage with s.
func (s Sequence) Clone() Sequence {
	steps := make([]SequenceStep, len(s.Steps))
	copy(steps, s.Steps)
	s.Steps = steps
	return s
}

type SequenceStep struct {
	ID         int64    `json:"id,omitempty"`
	SequenceID int64    `json:"sequence_id,omitempty"`
	StepNumber int      `json:"step_number"`
	Content    string   `json:"content"`
	Type       StepType `json:"type"`
}

// RenderContent substitutes {{key}} placeholders one key at a time, in key order, so a value
// that itself contains a later {{key}} is expanded too.
func (s SequenceStep) RenderContent(vars map[string]string) string {
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	content := s.Content
	for _, key := range keys {
		content = strings.ReplaceAll(content, "{{"+key+"}}", vars[key])
	}

	return content
}

type CreateSequenceRequest struct {
	Title string `json:"title"`
}
