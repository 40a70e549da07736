package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "punctuation collapses", text: "What is CI/CD?", want: "what-is-ci-cd"},
		{name: "leading and trailing symbols trimmed", text: "  **Docker** vs. VMs!  ", want: "docker-vs-vms"},
		{name: "digits kept", text: "Explain HTTP/2 and TLS 1.3", want: "explain-http-2-and-tls-1-3"},
		{name: "non-ascii dropped", text: "Qué es DevOps", want: "qu-es-devops"},
		{name: "only symbols", text: "???", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.text))
		})
	}
}

func TestQuestionSet_PutOverwrites(t *testing.T) {
	set := QuestionSet{}
	set.Put(QuestionRecord{ID: "what-is-devops", Number: 1, Answer: "first"})
	set.Put(QuestionRecord{ID: "what-is-devops", Number: 9, Answer: "second"})

	assert.Len(t, set, 1)
	assert.Equal(t, 9, set["what-is-devops"].Number)
	assert.Equal(t, "second", set["what-is-devops"].Answer)
}

func TestTopicDefinition_Contains(t *testing.T) {
	docker := TopicDefinition{Name: "Docker", Start: 6, End: 10, Kind: TopicKindQuestion}
	assert.True(t, docker.Contains(6))
	assert.True(t, docker.Contains(10))
	assert.False(t, docker.Contains(5))
	assert.False(t, docker.Contains(11))

	sql := TopicDefinition{Name: "SQL", DeclaredCount: 12, Kind: TopicKindExercise}
	assert.False(t, sql.HasRange())
	assert.False(t, sql.Contains(0))
}
