package domain

import "time"

// SourceKind names where a snapshot's questions came from.
type SourceKind string

const (
	SourceStructured SourceKind = "structured"
	SourceMarkdown   SourceKind = "markdown"
	SourceSynthetic  SourceKind = "synthetic"
)

// Snapshot is the result of one load cycle. It is never modified after publication.
type Snapshot struct {
	ID        string
	Source    SourceKind
	Questions QuestionSet
	Counts    []TopicCount
	LoadedAt  time.Time
}

// Size returns the number of loaded questions.
func (s *Snapshot) Size() int {
	if s == nil {
		return 0
	}
	return len(s.Questions)
}
