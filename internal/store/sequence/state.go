package sequence

import (
	"github.com/s21platform/outreach-workspace/internal/model"
)

type State struct {
	Sequences []model.Sequence `json:"sequences"`
	Current   *model.Sequence  `json:"current_sequence"`
	IsLoading bool             `json:"is_loading"`
	Error     string           `json:"error,omitempty"`
}

// StepDraft is the user-supplied part of a new step; number and sequence are assigned by the store.
type StepDraft struct {
	Content string         `json:"content"`
	Type    model.StepType `json:"type,omitempty"`
}

func initialState() State {
	return State{Sequences: []model.Sequence{}}
}

func (s State) clone() State {
	out := s
	out.Sequences = make([]model.Sequence, len(s.Sequences))
	for i, sequence := range s.Sequences {
		out.Sequences[i] = sequence.Clone()
	}
	if s.Current != nil {
		current := s.Current.Clone()
		out.Current = &current
	}
	return out
}

// upsert replaces every list entry carrying sequence.ID, appending when there is none,
// and re-points the current alias when its id matches.
func (s *State) upsert(sequence model.Sequence) {
	next := make([]model.Sequence, 0, len(s.Sequences)+1)
	replaced := false
	for _, existing := range s.Sequences {
		if existing.ID != sequence.ID {
			next = append(next, existing)
			continue
		}
		if !replaced {
			next = append(next, sequence)
			replaced = true
		}
	}
	if !replaced {
		next = append(next, sequence)
	}
	s.Sequences = next

	if s.Current != nil && s.Current.ID == sequence.ID {
		current := sequence
		s.Current = &current
	}
}

func (s *State) remove(id int64) {
	next := make([]model.Sequence, 0, len(s.Sequences))
	for _, existing := range s.Sequences {
		if existing.ID != id {
			next = append(next, existing)
		}
	}
	s.Sequences = next

	if s.Current != nil && s.Current.ID == id {
		s.Current = nil
	}
}

// editSteps rewrites the steps of sequence id in the list and in the current alias alike.
func (s *State) editSteps(id int64, edit func([]model.SequenceStep) []model.SequenceStep) {
	next := make([]model.Sequence, len(s.Sequences))
	for i, existing := range s.Sequences {
		if existing.ID == id {
			existing.Steps = edit(existing.Steps)
		}
		next[i] = existing
	}
	s.Sequences = next

	if s.Current != nil && s.Current.ID == id {
		current := *s.Current
		current.Steps = edit(current.Steps)
		s.Current = &current
	}
}

func appendStep(step model.SequenceStep) func([]model.SequenceStep) []model.SequenceStep {
	return func(steps []model.SequenceStep) []model.SequenceStep {
		next := make([]model.SequenceStep, len(steps), len(steps)+1)
		copy(next, steps)
		return append(next, step)
	}
}

func replaceStep(step model.SequenceStep) func([]model.SequenceStep) []model.SequenceStep {
	return func(steps []model.SequenceStep) []model.SequenceStep {
		next := make([]model.SequenceStep, len(steps))
		for i, existing := range steps {
			if existing.ID == step.ID {
				existing = step
			}
			next[i] = existing
		}
		return next
	}
}

func removeStep(stepID int64) func([]model.SequenceStep) []model.SequenceStep {
	return func(steps []model.SequenceStep) []model.SequenceStep {
		next := make([]model.SequenceStep, 0, len(steps))
		for _, existing := range steps {
			if existing.ID != stepID {
				next = append(next, existing)
			}
		}
		return next
	}
}

func setSteps(steps []model.SequenceStep) func([]model.SequenceStep) []model.SequenceStep {
	return func([]model.SequenceStep) []model.SequenceStep {
		next := make([]model.SequenceStep, len(steps))
		copy(next, steps)
		return next
	}
}
