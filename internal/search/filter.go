// Package search filters the static catalogs by display name.
package search

import (
	"strings"

	"devops-reference/internal/domain"
)

// Normalize lowercases and trims a user supplied search term.
func Normalize(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

func matches(name, term string) bool {
	return strings.Contains(strings.ToLower(name), term)
}

// FilterTopics returns the topics whose name contains term, case-insensitively.
// A blank term returns every topic.
func FilterTopics(topics []domain.TopicDefinition, term string) []domain.TopicDefinition {
	term = Normalize(term)
	out := make([]domain.TopicDefinition, 0, len(topics))
	for _, t := range topics {
		if term == "" || matches(t.Name, term) {
			out = append(out, t)
		}
	}
	return out
}

// FilterTopicCounts applies the same rule to reconciled topic counts.
func FilterTopicCounts(counts []domain.TopicCount, term string) []domain.TopicCount {
	term = Normalize(term)
	out := make([]domain.TopicCount, 0, len(counts))
	for _, c := range counts {
		if term == "" || matches(c.Topic.Name, term) {
			out = append(out, c)
		}
	}
	return out
}

// FilterScenarios returns the scenario categories whose name contains term, case-insensitively.
// A blank term returns every category.
func FilterScenarios(scenarios []domain.ScenarioCategory, term string) []domain.ScenarioCategory {
	term = Normalize(term)
	out := make([]domain.ScenarioCategory, 0, len(scenarios))
	for _, s := range scenarios {
		if term == "" || matches(s.Name, term) {
			out = append(out, s)
		}
	}
	return out
}
