// Package index relates loaded questions to the static topic ranges.
package index

import (
	"sort"

	"devops-reference/internal/domain"
)

// Reconcile counts, for every topic, the questions whose number falls in its range.
// The topic definitions are copied, never modified.
func Reconcile(questions domain.QuestionSet, topics []domain.TopicDefinition) []domain.TopicCount {
	counts := make([]domain.TopicCount, 0, len(topics))
	for _, t := range topics {
		n := 0
		for _, q := range questions {
			if t.Contains(q.Number) {
				n++
			}
		}
		counts = append(counts, domain.TopicCount{Topic: t, ActualCount: n})
	}
	return counts
}

// TopicFor returns the first topic whose range contains number.
func TopicFor(topics []domain.TopicDefinition, number int) (domain.TopicDefinition, bool) {
	for _, t := range topics {
		if t.Contains(number) {
			return t, true
		}
	}
	return domain.TopicDefinition{}, false
}

// QuestionsInTopic returns the topic's questions ordered by number, then ID.
func QuestionsInTopic(questions domain.QuestionSet, topic domain.TopicDefinition) []domain.QuestionRecord {
	var out []domain.QuestionRecord
	for id, q := range questions {
		if topic.Contains(q.Number) {
			q.ID = id
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Number != out[j].Number {
			return out[i].Number < out[j].Number
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Overlap names two topics whose number ranges intersect.
type Overlap struct {
	First  domain.TopicDefinition
	Second domain.TopicDefinition
}

// Overlaps reports every pair of ranged topics whose ranges intersect.
func Overlaps(topics []domain.TopicDefinition) []Overlap {
	var out []Overlap
	for i := 0; i < len(topics); i++ {
		if !topics[i].HasRange() {
			continue
		}
		for j := i + 1; j < len(topics); j++ {
			if !topics[j].HasRange() {
				continue
			}
			if topics[i].Start <= topics[j].End && topics[j].Start <= topics[i].End {
				out = append(out, Overlap{First: topics[i], Second: topics[j]})
			}
		}
	}
	return out
}
