package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/s21platform/outreach-workspace/internal/model"
)

// ErrBlank marks input that callers drop silently instead of reporting.
var ErrBlank = errors.New("input is blank")

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateMessageContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("message content: %w", ErrBlank)
	}

	return nil
}

func (v *Validator) ValidateSequenceTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("sequence title: %w", ErrBlank)
	}

	return nil
}

func (v *Validator) ValidateSequence(sequence *model.Sequence) error {
	if sequence.ID <= 0 {
		return fmt.Errorf("sequence id is required")
	}

	return nil
}

func (v *Validator) ValidateStep(content string, stepType model.StepType) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("step content: %w", ErrBlank)
	}

	if stepType != "" && !stepType.Valid() {
		return fmt.Errorf("step type '%s' is not supported", stepType)
	}

	return nil
}
