package sequence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/outreach-workspace/internal/client/api"
	"github.com/s21platform/outreach-workspace/internal/config"
	"github.com/s21platform/outreach-workspace/internal/model"
	"github.com/s21platform/outreach-workspace/internal/pkg/validator"
)

const ErrNoSequenceSelected = "No sequence selected"

const (
	errLoadSequences  = "Failed to load sequences"
	errLoadSequence   = "Failed to load sequence"
	errCreateSequence = "Failed to create sequence"
	errUpdateSequence = "Failed to update sequence"
	errDeleteSequence = "Failed to delete sequence"
	errLoadSteps      = "Failed to load steps"
	errAddStep        = "Failed to add step"
	errUpdateStep     = "Failed to update step"
	errDeleteStep     = "Failed to delete step"
)

// Store owns the sequence list and the sequence open in the workspace.
type Store struct {
	api       API
	validator Validator

	mu          sync.Mutex
	state       State
	unsubscribe func()
}

func New(api API, validator Validator) *Store {
	return &Store{
		api:       api,
		validator: validator,
		state:     initialState(),
	}
}

func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.clone()
}

// Attach subscribes to pushed sequence updates. Any previous subscription of this store is dropped first.
func (s *Store) Attach(ctx context.Context, transport Transport) {
	s.Detach()

	unsubscribe := transport.Subscribe(model.EventSequenceUpdate, func(data json.RawMessage) {
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

func (s *Store) SetCurrent(sequence *model.Sequence) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sequence == nil {
		s.state.Current = nil
		return
	}

	current := sequence.Clone()
	s.state.Current = &current
}

func (s *Store) ClearWorkspace() {
	s.SetCurrent(nil)
}

func (s *Store) LoadSequences(ctx context.Context) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("LoadSequences")

	s.begin()

	sequences, err := s.api.GetSequences(ctx)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to load sequences: %v", err))
		s.fail(err, errLoadSequences)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Sequences = make([]model.Sequence, 0, len(sequences))
	for _, sequence := range sequences {
		s.state.Sequences = append(s.state.Sequences, sequence.Clone())
	}
	if s.state.Current != nil {
		for _, sequence := range s.state.Sequences {
			if sequence.ID == s.state.Current.ID {
				current := sequence
				s.state.Current = &current
				break
			}
		}
	}
	s.state.IsLoading = false
}

// OpenSequence fetches one sequence, merges it into the list and makes it current.
func (s *Store) OpenSequence(ctx context.Context, id int64) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("OpenSequence")

	s.begin()

	sequence, err := s.api.GetSequence(ctx, id)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to load sequence %d: %v", id, err))
		s.forgetIfGone(err, id)
		s.fail(err, errLoadSequence)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	opened := sequence.Clone()
	s.state.upsert(opened)
	s.state.Current = &opened
	s.state.IsLoading = false
}

func (s *Store) CreateSequence(ctx context.Context, title string) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("CreateSequence")

	if err := s.validator.ValidateSequenceTitle(title); err != nil {
		return
	}

	s.begin()

	sequence, err := s.api.CreateSequence(ctx, title)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create sequence: %v", err))
		s.fail(err, errCreateSequence)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	created := sequence.Clone()
	if created.Steps == nil {
		created.Steps = []model.SequenceStep{}
	}
	s.state.upsert(created)
	s.state.Current = &created
	s.state.IsLoading = false

	logger.Info(fmt.Sprintf("created sequence %d", created.ID))
}

func (s *Store) UpdateSequence(ctx context.Context, sequence model.Sequence) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("UpdateSequence")

	if err := s.validator.ValidateSequence(&sequence); err != nil {
		s.reject(err)
		return
	}

	s.begin()

	updated, err := s.api.UpdateSequence(ctx, sequence)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to update sequence %d: %v", sequence.ID, err))
		s.fail(err, errUpdateSequence)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.upsert(updated.Clone())
	s.state.IsLoading = false
}

func (s *Store) DeleteSequence(ctx context.Context, id int64) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("DeleteSequence")

	s.begin()

	if err := s.api.DeleteSequence(ctx, id); err != nil {
		logger.Error(fmt.Sprintf("failed to delete sequence %d: %v", id, err))
		s.fail(err, errDeleteSequence)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.remove(id)
	s.state.IsLoading = false
}

// ReloadSteps refreshes the step list of the current sequence from the backend.
func (s *Store) ReloadSteps(ctx context.Context) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("ReloadSteps")

	sequenceID, ok := s.beginOnCurrent()
	if !ok {
		return
	}

	steps, err := s.api.GetSteps(ctx, sequenceID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to load steps of sequence %d: %v", sequenceID, err))
		s.forgetIfGone(err, sequenceID)
		s.fail(err, errLoadSteps)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.editSteps(sequenceID, setSteps(steps))
	s.state.IsLoading = false
}

// AddStep appends a step numbered after the current sequence's last one.
func (s *Store) AddStep(ctx context.Context, draft StepDraft) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("AddStep")

	validationErr := s.validator.ValidateStep(draft.Content, draft.Type)

	stepType := draft.Type
	if stepType == "" {
		stepType = model.StepTypeEmail
	}

	s.mu.Lock()
	if s.state.Current == nil {
		s.state.Error = ErrNoSequenceSelected
		s.mu.Unlock()
		return
	}
	if validationErr != nil {
		if !errors.Is(validationErr, validator.ErrBlank) {
			s.state.Error = validationErr.Error()
		}
		s.mu.Unlock()
		return
	}
	step := model.SequenceStep{
		SequenceID: s.state.Current.ID,
		StepNumber: len(s.state.Current.Steps) + 1,
		Content:    draft.Content,
		Type:       stepType,
	}
	s.state.IsLoading = true
	s.state.Error = ""
	s.mu.Unlock()

	created, err := s.api.AddStep(ctx, step)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to add step to sequence %d: %v", step.SequenceID, err))
		s.fail(err, errAddStep)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.editSteps(step.SequenceID, appendStep(*created))
	s.state.IsLoading = false
}

func (s *Store) UpdateStep(ctx context.Context, step model.SequenceStep) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("UpdateStep")

	sequenceID, ok := s.beginOnCurrent()
	if !ok {
		return
	}
	if step.SequenceID == 0 {
		step.SequenceID = sequenceID
	}

	updated, err := s.api.UpdateStep(ctx, step)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to update step %d: %v", step.ID, err))
		s.fail(err, errUpdateStep)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.editSteps(step.SequenceID, replaceStep(*updated))
	s.state.IsLoading = false
}

// DeleteStep removes a step; the remaining steps keep their numbers.
func (s *Store) DeleteStep(ctx context.Context, stepID int64) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("DeleteStep")

	sequenceID, ok := s.beginOnCurrent()
	if !ok {
		return
	}

	if err := s.api.DeleteStep(ctx, stepID); err != nil {
		logger.Error(fmt.Sprintf("failed to delete step %d: %v", stepID, err))
		s.fail(err, errDeleteStep)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.editSteps(sequenceID, removeStep(stepID))
	s.state.IsLoading = false
}

func (s *Store) receive(ctx context.Context, data json.RawMessage) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	var sequence model.Sequence
	if err := json.Unmarshal(data, &sequence); err != nil {
		logger.Error(fmt.Sprintf("failed to decode pushed sequence: %v", err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.upsert(sequence.Clone())
	s.state.IsLoading = false
}

// beginOnCurrent enters the loading state when a sequence is open and reports its id.
func (s *Store) beginOnCurrent() (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Current == nil {
		s.state.Error = ErrNoSequenceSelected
		return 0, false
	}

	s.state.IsLoading = true
	s.state.Error = ""
	return s.state.Current.ID, true
}

// forgetIfGone drops a sequence the backend reports as missing, clearing current when it matches.
func (s *Store) forgetIfGone(err error, id int64) {
	if !api.IsNotFound(err) {
		return
	}

	s.mu.Lock()
	s.state.remove(id)
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

// reject surfaces validation errors; blank input stays silent.
func (s *Store) reject(err error) {
	if errors.Is(err, validator.ErrBlank) {
		return
	}

	s.mu.Lock()
	s.state.Error = err.Error()
	s.mu.Unlock()
}

func errorText(err error, fallback string) string {
	if err == nil || err.Error() == "" {
		return fallback
	}
	return err.Error()
}
