package service

import (
	"context"
	"strings"
	"sync/atomic"

	"devops-reference/internal/catalog"
	"devops-reference/internal/domain"
	"devops-reference/internal/dto"
	"devops-reference/internal/index"
	"devops-reference/internal/logger"
	"devops-reference/internal/search"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// SnapshotLoader produces a fresh question snapshot; loader.Loader implements it.
type SnapshotLoader interface {
	Load(ctx context.Context) *domain.Snapshot
}

// ReferenceService defines the read operations behind the reference page
type ReferenceService interface {
	Reload(ctx context.Context) *dto.StatusResponse
	Status() *dto.StatusResponse
	ListTopics(term string) *dto.TopicListResponse
	ListScenarios(term string) *dto.ScenarioListResponse
	Search(term string) *dto.SearchResponse
	TopicQuestions(ctx context.Context, key string) (*dto.TopicQuestionsResponse, error)
	TopicForNumber(number int) (*dto.TopicResponse, error)
	ScenarioDetails(key string) (*dto.ScenarioDetailResponse, error)
	Question(ctx context.Context, id string) (*dto.QuestionResponse, error)
}

type referenceService struct {
	catalog  *domain.Catalog
	loader   SnapshotLoader
	renderer AnswerRenderer

	current atomic.Pointer[domain.Snapshot]
	reloads singleflight.Group
}

// NewReferenceService creates a ReferenceService. No questions are loaded until Reload is called.
func NewReferenceService(c *domain.Catalog, loader SnapshotLoader, renderer AnswerRenderer) ReferenceService {
	return &referenceService{
		catalog:  c,
		loader:   loader,
		renderer: renderer,
	}
}

// snapshot returns the published snapshot, or an empty one before the first load.
func (s *referenceService) snapshot() *domain.Snapshot {
	if snap := s.current.Load(); snap != nil {
		return snap
	}
	return &domain.Snapshot{
		Questions: domain.QuestionSet{},
		Counts:    index.Reconcile(nil, s.catalog.Topics),
	}
}

// Reload re-runs the load sequence and replaces the snapshot wholesale.
// Concurrent callers share a single load.
func (s *referenceService) Reload(ctx context.Context) *dto.StatusResponse {
	v, _, shared := s.reloads.Do("reload", func() (interface{}, error) {
		snap := s.loader.Load(ctx)
		s.current.Store(snap)
		return snap, nil
	})
	if shared {
		logger.Get().Debug("Reload coalesced with an in-flight load")
	}
	return statusOf(v.(*domain.Snapshot))
}

func (s *referenceService) Status() *dto.StatusResponse {
	return statusOf(s.snapshot())
}

func (s *referenceService) ListTopics(term string) *dto.TopicListResponse {
	counts := search.FilterTopicCounts(s.snapshot().Counts, term)
	return &dto.TopicListResponse{
		Term:   search.Normalize(term),
		Topics: topicResponses(counts),
	}
}

func (s *referenceService) ListScenarios(term string) *dto.ScenarioListResponse {
	return &dto.ScenarioListResponse{
		Term:      search.Normalize(term),
		Scenarios: s.scenarioResponses(search.FilterScenarios(s.catalog.Scenarios, term)),
	}
}

func (s *referenceService) Search(term string) *dto.SearchResponse {
	return &dto.SearchResponse{
		Term:      search.Normalize(term),
		Topics:    s.ListTopics(term).Topics,
		Scenarios: s.ListScenarios(term).Scenarios,
	}
}

func (s *referenceService) TopicQuestions(ctx context.Context, key string) (*dto.TopicQuestionsResponse, error) {
	topic, ok := catalog.FindTopic(s.catalog, key)
	if !ok {
		return nil, domain.NewTopicNotFoundError(key)
	}

	snap := s.snapshot()
	questions := index.QuestionsInTopic(snap.Questions, topic)

	resp := &dto.TopicQuestionsResponse{
		Topic:     topicResponse(domain.TopicCount{Topic: topic, ActualCount: len(questions)}),
		Questions: make([]dto.QuestionResponse, 0, len(questions)),
		Partial:   len(questions) < topic.DeclaredCount,
	}
	for _, q := range questions {
		resp.Questions = append(resp.Questions, s.questionResponse(ctx, q, topic.Name))
	}
	return resp, nil
}

func (s *referenceService) TopicForNumber(number int) (*dto.TopicResponse, error) {
	topic, ok := index.TopicFor(s.catalog.Topics, number)
	if !ok {
		return nil, domain.NewNotFoundError("No topic covers the requested question number").WithContext("number", number)
	}
	for _, c := range s.snapshot().Counts {
		if c.Topic.Name == topic.Name {
			resp := topicResponse(c)
			return &resp, nil
		}
	}
	resp := topicResponse(domain.TopicCount{Topic: topic})
	return &resp, nil
}

func (s *referenceService) ScenarioDetails(key string) (*dto.ScenarioDetailResponse, error) {
	scenario, ok := catalog.FindScenario(s.catalog, key)
	if !ok {
		return nil, domain.NewScenarioNotFoundError(key)
	}
	examples := s.catalog.Examples[scenario.Name]
	if examples == nil {
		examples = []domain.ScenarioExample{}
	}
	return &dto.ScenarioDetailResponse{
		ScenarioResponse: s.scenarioResponse(scenario),
		Examples:         examples,
	}, nil
}

func (s *referenceService) Question(ctx context.Context, id string) (*dto.QuestionResponse, error) {
	q, ok := s.snapshot().Questions[id]
	if !ok {
		return nil, domain.NewQuestionNotFoundError(id)
	}
	q.ID = id

	topicName := ""
	if topic, found := index.TopicFor(s.catalog.Topics, q.Number); found {
		topicName = topic.Name
	}
	resp := s.questionResponse(ctx, q, topicName)
	return &resp, nil
}

func (s *referenceService) questionResponse(ctx context.Context, q domain.QuestionRecord, topic string) dto.QuestionResponse {
	return dto.QuestionResponse{
		ID:         q.ID,
		Number:     q.Number,
		Question:   q.Question,
		Answer:     q.Answer,
		AnswerHTML: s.renderer.Render(ctx, q),
		Topic:      topic,
	}
}

func (s *referenceService) scenarioResponses(scenarios []domain.ScenarioCategory) []dto.ScenarioResponse {
	out := make([]dto.ScenarioResponse, 0, len(scenarios))
	for _, sc := range scenarios {
		out = append(out, s.scenarioResponse(sc))
	}
	return out
}

func (s *referenceService) scenarioResponse(sc domain.ScenarioCategory) dto.ScenarioResponse {
	return dto.ScenarioResponse{
		Name:          sc.Name,
		Slug:          domain.Slugify(sc.Name),
		Subject:       strings.Replace(sc.Name, " Scenarios", "", 1),
		DeclaredCount: sc.DeclaredCount,
		ExampleCount:  len(s.catalog.Examples[sc.Name]),
	}
}

func topicResponses(counts []domain.TopicCount) []dto.TopicResponse {
	out := make([]dto.TopicResponse, 0, len(counts))
	for _, c := range counts {
		out = append(out, topicResponse(c))
	}
	return out
}

func topicResponse(c domain.TopicCount) dto.TopicResponse {
	return dto.TopicResponse{
		Name:          c.Topic.Name,
		Slug:          domain.Slugify(c.Topic.Name),
		Kind:          string(c.Topic.Kind),
		DeclaredCount: c.Topic.DeclaredCount,
		ActualCount:   c.ActualCount,
		Start:         c.Topic.Start,
		End:           c.Topic.End,
		Browsable:     c.Topic.Kind == domain.TopicKindQuestion,
	}
}

func statusOf(snap *domain.Snapshot) *dto.StatusResponse {
	return &dto.StatusResponse{
		SnapshotID:    snap.ID,
		Source:        string(snap.Source),
		QuestionCount: snap.Size(),
		LoadedAt:      snap.LoadedAt,
	}
}

// LogOverlaps warns about topics whose number ranges intersect. Questions in
// an overlap are attributed to the first matching topic by TopicFor but
// counted in both by reconciliation.
func LogOverlaps(topics []domain.TopicDefinition) {
	for _, o := range index.Overlaps(topics) {
		logger.Get().Warn("Topic number ranges overlap",
			zap.String("first", o.First.Name),
			zap.String("second", o.Second.Name),
		)
	}
}
