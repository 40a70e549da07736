package dto

import (
	"time"

	"devops-reference/internal/domain"
)

// TopicResponse represents a topic card
// @Description Topic with declared and loaded question counts
type TopicResponse struct {
	Name          string `json:"name"`
	Slug          string `json:"slug"`
	Kind          string `json:"kind"`
	DeclaredCount int    `json:"declared_count"`
	ActualCount   int    `json:"actual_count"`
	Start         int    `json:"start,omitempty"`
	End           int    `json:"end,omitempty"`
	Browsable     bool   `json:"browsable"`
}

// TopicListResponse is returned by GET /api/topics
type TopicListResponse struct {
	Term   string          `json:"term,omitempty"`
	Topics []TopicResponse `json:"topics"`
}

// ScenarioResponse represents a scenario category card
// @Description Troubleshooting scenario category
type ScenarioResponse struct {
	Name          string `json:"name"`
	Slug          string `json:"slug"`
	Subject       string `json:"subject"`
	DeclaredCount int    `json:"declared_count"`
	ExampleCount  int    `json:"example_count"`
}

// ScenarioListResponse is returned by GET /api/scenarios
type ScenarioListResponse struct {
	Term      string             `json:"term,omitempty"`
	Scenarios []ScenarioResponse `json:"scenarios"`
}

// ScenarioDetailResponse is returned by GET /api/scenarios/{name}
type ScenarioDetailResponse struct {
	ScenarioResponse
	Examples []domain.ScenarioExample `json:"examples"`
}

// QuestionResponse represents a question with its raw and rendered answer
// @Description Interview question
type QuestionResponse struct {
	ID         string `json:"id"`
	Number     int    `json:"number"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	AnswerHTML string `json:"answer_html"`
	Topic      string `json:"topic,omitempty"`
}

// TopicQuestionsResponse is returned by GET /api/topics/{name}/questions
type TopicQuestionsResponse struct {
	Topic     TopicResponse      `json:"topic"`
	Questions []QuestionResponse `json:"questions"`
	// Partial is set when fewer questions were loaded than the topic declares.
	Partial bool `json:"partial"`
}

// SearchResponse is returned by GET /api/search
type SearchResponse struct {
	Term      string             `json:"term,omitempty"`
	Topics    []TopicResponse    `json:"topics"`
	Scenarios []ScenarioResponse `json:"scenarios"`
}

// StatusResponse describes the current question snapshot
type StatusResponse struct {
	SnapshotID    string    `json:"snapshot_id"`
	Source        string    `json:"source"`
	QuestionCount int       `json:"question_count"`
	LoadedAt      time.Time `json:"loaded_at"`
}
