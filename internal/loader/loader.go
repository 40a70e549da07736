// Package loader builds question snapshots from the configured sources,
// falling back from the structured file to the markdown document to
// synthetic placeholders.
package loader

import (
	"context"
	"fmt"
	"sort"
	"time"

	"devops-reference/internal/config"
	"devops-reference/internal/domain"
	"devops-reference/internal/index"
	"devops-reference/internal/logger"
	"devops-reference/internal/metrics"
	"devops-reference/internal/parser"
	"devops-reference/internal/util"

	"go.uber.org/zap"
)

type Loader struct {
	source         domain.Source
	structuredName string
	rawName        string
	topics         []domain.TopicDefinition
	metrics        *metrics.Metrics

	newID func() string
	now   func() time.Time
}

// NewLoader creates a Loader. m may be nil.
func NewLoader(source domain.Source, cfg config.SourceConfig, topics []domain.TopicDefinition, m *metrics.Metrics) *Loader {
	return &Loader{
		source:         source,
		structuredName: cfg.StructuredName,
		rawName:        cfg.RawName,
		topics:         topics,
		metrics:        m,
		newID:          util.NewULID,
		now:            time.Now,
	}
}

// Load runs the full load sequence. It never fails: when both sources are
// unusable the snapshot holds synthetic placeholders.
func (l *Loader) Load(ctx context.Context) *domain.Snapshot {
	log := logger.Get()

	questions, kind := l.resolve(ctx)
	snapshot := &domain.Snapshot{
		ID:        l.newID(),
		Source:    kind,
		Questions: questions,
		Counts:    index.Reconcile(questions, l.topics),
		LoadedAt:  l.now(),
	}

	l.metrics.ObserveLoad(snapshot)
	log.Info("Loaded questions",
		zap.String("snapshot_id", snapshot.ID),
		zap.String("source", string(snapshot.Source)),
		zap.Int("count", snapshot.Size()),
	)
	return snapshot
}

func (l *Loader) resolve(ctx context.Context) (domain.QuestionSet, domain.SourceKind) {
	log := logger.Get()

	questions, err := l.loadStructured(ctx)
	if err == nil {
		return questions, domain.SourceStructured
	}
	l.metrics.ObserveFallback(domain.SourceStructured)
	log.Warn("Structured question source unusable, falling back to markdown",
		zap.String("name", l.structuredName),
		zap.Error(err),
	)

	questions, err = l.loadMarkdown(ctx)
	if err == nil {
		return questions, domain.SourceMarkdown
	}
	l.metrics.ObserveFallback(domain.SourceMarkdown)
	log.Warn("Markdown question source unusable, generating placeholders",
		zap.String("name", l.rawName),
		zap.Error(err),
	)

	return Synthetic(l.topics), domain.SourceSynthetic
}

func (l *Loader) loadStructured(ctx context.Context) (domain.QuestionSet, error) {
	data, err := l.source.Fetch(ctx, l.structuredName)
	if err != nil {
		return nil, err
	}
	questions, err := DecodeStructured(data)
	if err != nil {
		return nil, domain.NewInvalidSourceError(l.structuredName, err)
	}
	if len(questions) == 0 {
		return nil, domain.NewInvalidSourceError(l.structuredName, fmt.Errorf("no questions"))
	}
	return questions, nil
}

func (l *Loader) loadMarkdown(ctx context.Context) (domain.QuestionSet, error) {
	data, err := l.source.Fetch(ctx, l.rawName)
	if err != nil {
		return nil, err
	}
	questions := parser.ParseMarkdown(string(data))
	if len(questions) == 0 {
		return nil, domain.NewInvalidSourceError(l.rawName, fmt.Errorf("no questions parsed"))
	}
	return questions, nil
}

// Synthetic creates a placeholder question for every number in every ranged topic.
func Synthetic(topics []domain.TopicDefinition) domain.QuestionSet {
	set := make(domain.QuestionSet)
	for _, t := range topics {
		if !t.HasRange() {
			continue
		}
		for n := t.Start; n <= t.End; n++ {
			set.Put(domain.QuestionRecord{
				ID:       fmt.Sprintf("question-%d", n),
				Number:   n,
				Question: fmt.Sprintf("Sample Question %d", n),
				Answer:   fmt.Sprintf("This is a sample answer for question %d. The actual content will be loaded from README.md file.", n),
			})
		}
	}
	return set
}

func sortedRecords(set domain.QuestionSet) []domain.QuestionRecord {
	records := make([]domain.QuestionRecord, 0, len(set))
	for id, q := range set {
		q.ID = id
		records = append(records, q)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].Number != records[j].Number {
			return records[i].Number < records[j].Number
		}
		return records[i].ID < records[j].ID
	})
	return records
}
