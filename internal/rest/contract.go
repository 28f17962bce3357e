//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	"github.com/s21platform/outreach-workspace/internal/model"
	"github.com/s21platform/outreach-workspace/internal/store/chat"
	"github.com/s21platform/outreach-workspace/internal/store/sequence"
)

type ChatStore interface {
	Snapshot() chat.State
	SendMessage(ctx context.Context, content string)
	LoadHistory(ctx context.Context)
	ClearChat()
	ClearHistory(ctx context.Context)
}

type SequenceStore interface {
	Snapshot() sequence.State
	LoadSequences(ctx context.Context)
	CreateSequence(ctx context.Context, title string)
	UpdateSequence(ctx context.Context, seq model.Sequence)
	DeleteSequence(ctx context.Context, id int64)
	OpenSequence(ctx context.Context, id int64)
	ClearWorkspace()
	ReloadSteps(ctx context.Context)
	AddStep(ctx context.Context, draft sequence.StepDraft)
	UpdateStep(ctx context.Context, step model.SequenceStep)
	DeleteStep(ctx context.Context, stepID int64)
}
