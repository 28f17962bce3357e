package rest

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/outreach-workspace/internal/config"
	"github.com/s21platform/outreach-workspace/internal/model"
	"github.com/s21platform/outreach-workspace/internal/store/sequence"
)

type Handler struct {
	chatStore     ChatStore
	sequenceStore SequenceStore
}

func New(chatStore ChatStore, sequenceStore SequenceStore) *Handler {
	return &Handler{
		chatStore:     chatStore,
		sequenceStore: sequenceStore,
	}
}

// Register mounts the workspace routes. Every action answers with the store snapshot;
// action failures are reported in its error field.
func (h *Handler) Register(router chi.Router) {
	router.Route("/workspace", func(r chi.Router) {
		r.Get("/chat", h.GetChat)
		r.Delete("/chat", h.ClearChat)
		r.Post("/chat/messages", h.SendMessage)

		r.Get("/sequences", h.GetSequences)
		r.Post("/sequences", h.CreateSequence)
		r.Put("/sequences/{id}", h.UpdateSequence)
		r.Delete("/sequences/{id}", h.DeleteSequence)

		r.Put("/current", h.OpenSequence)
		r.Delete("/current", h.ClearWorkspace)
		r.Get("/current/steps", h.ReloadSteps)
		r.Post("/current/steps", h.AddStep)
		r.Put("/current/steps/{stepId}", h.UpdateStep)
		r.Delete("/current/steps/{stepId}", h.DeleteStep)
		r.Post("/current/preview", h.PreviewSequence)
	})
}

func (h *Handler) GetChat(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetChat")

	if r.URL.Query().Get("refresh") == "true" {
		h.chatStore.LoadHistory(r.Context())
	}

	h.writeJSON(w, h.chatStore.Snapshot(), http.StatusOK)
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SendMessage")

	var req model.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	h.chatStore.SendMessage(r.Context(), req.Content)

	h.writeJSON(w, h.chatStore.Snapshot(), http.StatusOK)
}

// ClearChat resets the local conversation; with remote=true the backend history is cleared too.
func (h *Handler) ClearChat(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ClearChat")

	if r.URL.Query().Get("remote") == "true" {
		h.chatStore.ClearHistory(r.Context())
	} else {
		h.chatStore.ClearChat()
	}

	h.writeJSON(w, h.chatStore.Snapshot(), http.StatusOK)
}

func (h *Handler) GetSequences(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetSequences")

	if r.URL.Query().Get("refresh") == "true" {
		h.sequenceStore.LoadSequences(r.Context())
	}

	h.writeJSON(w, h.sequenceStore.Snapshot(), http.StatusOK)
}

func (h *Handler) CreateSequence(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateSequence")

	var req model.CreateSequenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	h.sequenceStore.CreateSequence(r.Context(), req.Title)

	h.writeJSON(w, h.sequenceStore.Snapshot(), http.StatusOK)
}

func (h *Handler) UpdateSequence(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UpdateSequence")

	id, err := pathID(r, "id")
	if err != nil {
		logger.Error(fmt.Sprintf("invalid sequence id: %v", err))
		h.writeError(w, fmt.Sprintf("invalid sequence id: %v", err), http.StatusBadRequest)
		return
	}

	var req model.Sequence
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	req.ID = id

	h.sequenceStore.UpdateSequence(r.Context(), req)

	h.writeJSON(w, h.sequenceStore.Snapshot(), http.StatusOK)
}

func (h *Handler) DeleteSequence(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeleteSequence")

	id, err := pathID(r, "id")
	if err != nil {
		logger.Error(fmt.Sprintf("invalid sequence id: %v", err))
		h.writeError(w, fmt.Sprintf("invalid sequence id: %v", err), http.StatusBadRequest)
		return
	}

	h.sequenceStore.DeleteSequence(r.Context(), id)

	h.writeJSON(w, h.sequenceStore.Snapshot(), http.StatusOK)
}

func (h *Handler) OpenSequence(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("OpenSequence")

	var req model.OpenSequenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.ID <= 0 {
		logger.Error(fmt.Sprintf("invalid sequence id: %d", req.ID))
		h.writeError(w, "sequence id is required", http.StatusBadRequest)
		return
	}

	h.sequenceStore.OpenSequence(r.Context(), req.ID)

	h.writeJSON(w, h.sequenceStore.Snapshot(), http.StatusOK)
}

func (h *Handler) ClearWorkspace(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ClearWorkspace")

	h.sequenceStore.ClearWorkspace()

	h.writeJSON(w, h.sequenceStore.Snapshot(), http.StatusOK)
}

func (h *Handler) ReloadSteps(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ReloadSteps")

	h.sequenceStore.ReloadSteps(r.Context())

	h.writeJSON(w, h.sequenceStore.Snapshot(), http.StatusOK)
}

func (h *Handler) AddStep(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("AddStep")

	var req sequence.StepDraft
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	h.sequenceStore.AddStep(r.Context(), req)

	h.writeJSON(w, h.sequenceStore.Snapshot(), http.StatusOK)
}

func (h *Handler) UpdateStep(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UpdateStep")

	stepID, err := pathID(r, "stepId")
	if err != nil {
		logger.Error(fmt.Sprintf("invalid step id: %v", err))
		h.writeError(w, fmt.Sprintf("invalid step id: %v", err), http.StatusBadRequest)
		return
	}

	var req model.SequenceStep
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	req.ID = stepID

	h.sequenceStore.UpdateStep(r.Context(), req)

	h.writeJSON(w, h.sequenceStore.Snapshot(), http.StatusOK)
}

func (h *Handler) DeleteStep(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeleteStep")

	stepID, err := pathID(r, "stepId")
	if err != nil {
		logger.Error(fmt.Sprintf("invalid step id: %v", err))
		h.writeError(w, fmt.Sprintf("invalid step id: %v", err), http.StatusBadRequest)
		return
	}

	h.sequenceStore.DeleteStep(r.Context(), stepID)

	h.writeJSON(w, h.sequenceStore.Snapshot(), http.StatusOK)
}

// PreviewSequence renders the current sequence with {{name}} placeholders substituted.
func (h *Handler) PreviewSequence(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("PreviewSequence")

	var req model.PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	current := h.sequenceStore.Snapshot().Current
	if current == nil {
		logger.Warn("preview requested without a current sequence")
		h.writeError(w, sequence.ErrNoSequenceSelected, http.StatusConflict)
		return
	}

	steps := make([]model.PreviewStep, len(current.Steps))
	for i, step := range current.Steps {
		steps[i] = model.PreviewStep{
			StepNumber: step.StepNumber,
			Type:       step.Type,
			Content:    step.RenderContent(req.Variables),
		}
	}

	response := model.PreviewResponse{
		SequenceID: current.ID,
		Title:      current.Title,
		Steps:      steps,
	}

	h.writeJSON(w, response, http.StatusOK)
}

// ----------------------------- helpers -----------------------------

func pathID(r *http.Request, name string) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", name, id)
	}
	return id, nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(model.ErrorResponse{Error: message})
}
