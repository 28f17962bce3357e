//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package sequence

import (
	"context"

	"github.com/s21platform/outreach-workspace/internal/model"
)

type API interface {
	GetSequences(ctx context.Context) ([]model.Sequence, error)
	GetSequence(ctx context.Context, id int64) (*model.Sequence, error)
	CreateSequence(ctx context.Context, title string) (*model.Sequence, error)
	UpdateSequence(ctx context.Context, sequence model.Sequence) (*model.Sequence, error)
	DeleteSequence(ctx context.Context, id int64) error
	GetSteps(ctx context.Context, sequenceID int64) ([]model.SequenceStep, error)
	AddStep(ctx context.Context, step model.SequenceStep) (*model.SequenceStep, error)
	UpdateStep(ctx context.Context, step model.SequenceStep) (*model.SequenceStep, error)
	DeleteStep(ctx context.Context, stepID int64) error
}

type Transport interface {
	Subscribe(event string, handler model.EventHandler) func()
}

type Validator interface {
	ValidateSequenceTitle(title string) error
	ValidateSequence(sequence *model.Sequence) error
	ValidateStep(content string, stepType model.StepType) error
}
