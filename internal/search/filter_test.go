package search

import (
	"testing"

	"devops-reference/internal/domain"

	"github.com/stretchr/testify/assert"
)

var (
	topics = []domain.TopicDefinition{
		{Name: "Docker", Start: 6, End: 10, Kind: domain.TopicKindQuestion},
		{Name: "Kubernetes", Start: 11, End: 15, Kind: domain.TopicKindQuestion},
		{Name: "CI/CD", Start: 16, End: 20, Kind: domain.TopicKindQuestion},
	}
	scenarios = []domain.ScenarioCategory{
		{Name: "Docker Scenarios", DeclaredCount: 37},
		{Name: "Kubernetes Scenarios", DeclaredCount: 3},
	}
)

func names[T any](items []T, name func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, name(it))
	}
	return out
}

func topicName(t domain.TopicDefinition) string     { return t.Name }
func scenarioName(s domain.ScenarioCategory) string { return s.Name }

func TestFilter(t *testing.T) {
	tests := []struct {
		name          string
		term          string
		wantTopics    []string
		wantScenarios []string
	}{
		{name: "lowercase", term: "docker", wantTopics: []string{"Docker"}, wantScenarios: []string{"Docker Scenarios"}},
		{name: "mixed case with padding", term: "  DoCkEr ", wantTopics: []string{"Docker"}, wantScenarios: []string{"Docker Scenarios"}},
		{name: "substring", term: "/c", wantTopics: []string{"CI/CD"}, wantScenarios: []string{}},
		{name: "scenario only", term: "scenarios", wantTopics: []string{}, wantScenarios: []string{"Docker Scenarios", "Kubernetes Scenarios"}},
		{name: "no match", term: "terraform", wantTopics: []string{}, wantScenarios: []string{}},
		{name: "blank is identity", term: "   ", wantTopics: []string{"Docker", "Kubernetes", "CI/CD"}, wantScenarios: []string{"Docker Scenarios", "Kubernetes Scenarios"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantTopics, names(FilterTopics(topics, tt.term), topicName))
			assert.Equal(t, tt.wantScenarios, names(FilterScenarios(scenarios, tt.term), scenarioName))
		})
	}
}

func TestFilterTopics_DoesNotAliasInput(t *testing.T) {
	got := FilterTopics(topics, "")
	got[0].Name = "changed"

	assert.Equal(t, "Docker", topics[0].Name)
}

func TestFilterTopicCounts(t *testing.T) {
	counts := []domain.TopicCount{
		{Topic: topics[0], ActualCount: 4},
		{Topic: topics[1], ActualCount: 5},
	}

	got := FilterTopicCounts(counts, "KUBE")

	assert.Equal(t, []domain.TopicCount{{Topic: topics[1], ActualCount: 5}}, got)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "docker", Normalize("\tDocker\n"))
	assert.Equal(t, "", Normalize("  "))
}
