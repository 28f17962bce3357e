package model

// Request and response bodies of the local workspace surface.

type ErrorResponse struct {
	Error string `json:"error"`
}

type OpenSequenceRequest struct {
	ID int64 `json:"id"`
}

type PreviewRequest struct {
	Variables map[string]string `json:"variables"`
}

type PreviewStep struct {
	StepNumber int      `json:"step_number"`
	Type       StepType `json:"type"`
	Content    string   `json:"content"`
}

type PreviewResponse struct {
	SequenceID int64         `json:"sequence_id"`
	Title      string        `json:"title"`
	Steps      []PreviewStep `json:"steps"`
}
