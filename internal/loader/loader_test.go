package loader

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"devops-reference/internal/catalog"
	"devops-reference/internal/config"
	"devops-reference/internal/domain"
	"devops-reference/internal/metrics"

	"github.com/oklog/ulid/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource serves documents from memory; missing names are unavailable.
type fakeSource struct {
	docs  map[string]string
	calls []string
}

func (f *fakeSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	f.calls = append(f.calls, name)
	doc, ok := f.docs[name]
	if !ok {
		return nil, domain.NewSourceUnavailableError(name, fmt.Errorf("404"))
	}
	return []byte(doc), nil
}

var sourceCfg = config.SourceConfig{StructuredName: "questions.json", RawName: "README.md"}

const structuredDoc = `{
  "what-is-devops": {"question": "What is DevOps?", "answer": "A culture.", "number": 1},
  "what-is-docker": {"question": "What is Docker?", "answer": "A container runtime.", "number": 6},
  "what-is-a-pod":  {"question": "What is a Pod?",  "answer": "The smallest unit.", "number": 11}
}`

const markdownDoc = "## Docker\n6. ### What is Docker?\nA container runtime.\n7. ### What is an image?\nA template.\n"

func newTestLoader(src domain.Source) *Loader {
	l := NewLoader(src, sourceCfg, catalog.Default().Topics, metrics.New(prometheus.NewRegistry()))
	l.newID = func() string { return "01HGZ8VNRYXS8QKNJV5GRWPWDQ" }
	l.now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }
	return l
}

func TestLoad_Structured(t *testing.T) {
	src := &fakeSource{docs: map[string]string{"questions.json": structuredDoc, "README.md": markdownDoc}}

	snap := newTestLoader(src).Load(context.Background())

	assert.Equal(t, domain.SourceStructured, snap.Source)
	require.Len(t, snap.Questions, 3)
	assert.Equal(t, domain.QuestionRecord{ID: "what-is-docker", Number: 6, Question: "What is Docker?", Answer: "A container runtime."}, snap.Questions["what-is-docker"])
	assert.Equal(t, []string{"questions.json"}, src.calls, "markdown must not be fetched when structured data loads")
	assert.Equal(t, "01HGZ8VNRYXS8QKNJV5GRWPWDQ", snap.ID)

	require.Len(t, snap.Counts, 32)
	assert.Equal(t, 1, snap.Counts[0].ActualCount)
	assert.Equal(t, 1, snap.Counts[1].ActualCount)
	assert.Equal(t, 1, snap.Counts[2].ActualCount)
	assert.Equal(t, 0, snap.Counts[3].ActualCount)
}

func TestLoad_Idempotent(t *testing.T) {
	src := &fakeSource{docs: map[string]string{"questions.json": structuredDoc}}
	l := newTestLoader(src)

	first := l.Load(context.Background())
	second := l.Load(context.Background())

	assert.Equal(t, first.Questions, second.Questions)
	assert.Equal(t, first.Counts, second.Counts)
}

func TestLoad_AssignsFreshULIDs(t *testing.T) {
	src := &fakeSource{docs: map[string]string{"questions.json": structuredDoc}}
	l := NewLoader(src, sourceCfg, catalog.Default().Topics, nil)

	first := l.Load(context.Background())
	second := l.Load(context.Background())

	_, err := ulid.ParseStrict(first.ID)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, first.LoadedAt.IsZero())
}

func TestLoad_FallsBackToMarkdown(t *testing.T) {
	tests := []struct {
		name       string
		structured *string
	}{
		{name: "structured missing"},
		{name: "structured not JSON", structured: ptr("<html>not found</html>")},
		{name: "structured fails schema", structured: ptr(`{"x": {"question": "Q", "answer": "A"}}`)},
		{name: "structured empty", structured: ptr(`{}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs := map[string]string{"README.md": markdownDoc}
			if tt.structured != nil {
				docs["questions.json"] = *tt.structured
			}

			snap := newTestLoader(&fakeSource{docs: docs}).Load(context.Background())

			assert.Equal(t, domain.SourceMarkdown, snap.Source)
			require.Len(t, snap.Questions, 2)
			assert.Equal(t, 7, snap.Questions["what-is-an-image"].Number)
			assert.Equal(t, 2, snap.Counts[1].ActualCount)
		})
	}
}

func TestLoad_SyntheticWhenBothSourcesFail(t *testing.T) {
	snap := newTestLoader(&fakeSource{}).Load(context.Background())

	assert.Equal(t, domain.SourceSynthetic, snap.Source)
	require.Len(t, snap.Questions, 160)
	for n := 1; n <= 160; n++ {
		q, ok := snap.Questions[fmt.Sprintf("question-%d", n)]
		require.True(t, ok, "missing placeholder %d", n)
		assert.Equal(t, n, q.Number)
	}
	for _, c := range snap.Counts {
		if c.Topic.HasRange() {
			assert.Equal(t, c.Topic.End-c.Topic.Start+1, c.ActualCount, c.Topic.Name)
		}
	}
}

func TestLoad_SyntheticWhenMarkdownHasNoQuestions(t *testing.T) {
	src := &fakeSource{docs: map[string]string{"README.md": "# Nothing here\n"}}

	snap := newTestLoader(src).Load(context.Background())

	assert.Equal(t, domain.SourceSynthetic, snap.Source)
	assert.Len(t, snap.Questions, 160)
	assert.Equal(t, []string{"questions.json", "README.md"}, src.calls)
}

func TestSynthetic_SkipsUnrangedTopics(t *testing.T) {
	set := Synthetic([]domain.TopicDefinition{
		{Name: "Docker", Start: 6, End: 7, Kind: domain.TopicKindQuestion},
		{Name: "SQL", DeclaredCount: 12, Kind: domain.TopicKindExercise},
	})

	assert.Len(t, set, 2)
	assert.Equal(t, "Sample Question 6", set["question-6"].Question)
	assert.NotContains(t, set, "question-0")
}

func TestDecodeStructured_Rejects(t *testing.T) {
	tests := map[string]string{
		"array":           `[]`,
		"missing number":  `{"a": {"question": "Q", "answer": "A"}}`,
		"string number":   `{"a": {"question": "Q", "answer": "A", "number": "1"}}`,
		"negative number": `{"a": {"question": "Q", "answer": "A", "number": -1}}`,
		"empty question":  `{"a": {"question": "", "answer": "A", "number": 1}}`,
		"truncated":       `{"a": {`,
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeStructured([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestEncodeStructured_DecodesBack(t *testing.T) {
	set := domain.QuestionSet{}
	set.Put(domain.QuestionRecord{ID: "b", Number: 2, Question: "Second?", Answer: "Use `<b>` & more"})
	set.Put(domain.QuestionRecord{ID: "a", Number: 1, Question: "First?", Answer: "line\n\nbreak"})

	data, err := EncodeStructured(set)
	require.NoError(t, err)

	assert.Less(t, strings.Index(string(data), `"a"`), strings.Index(string(data), `"b"`), "records are ordered by number")

	decoded, err := DecodeStructured(data)
	require.NoError(t, err)
	assert.Equal(t, set, decoded)
}

func TestEncodeStructured_Empty(t *testing.T) {
	data, err := EncodeStructured(domain.QuestionSet{})
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))
}

func ptr(s string) *string { return &s }
