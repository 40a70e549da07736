package domain

// TopicKind distinguishes numbered question topics from exercise collections.
type TopicKind string

const (
	TopicKindQuestion TopicKind = "question"
	TopicKindExercise TopicKind = "exercise"
)

// TopicDefinition is a named grouping of questions identified by an inclusive number range.
type TopicDefinition struct {
	Name          string    `yaml:"name" json:"name"`
	DeclaredCount int       `yaml:"count" json:"declared_count"`
	Start         int       `yaml:"start" json:"start"`
	End           int       `yaml:"end" json:"end"`
	Kind          TopicKind `yaml:"kind" json:"kind"`
}

// HasRange reports whether the topic owns any question numbers.
// Exercise collections are declared with the 0..0 sentinel.
func (t TopicDefinition) HasRange() bool {
	return t.End > 0 && t.Start <= t.End
}

// Contains reports whether number lies within [Start, End].
func (t TopicDefinition) Contains(number int) bool {
	return t.HasRange() && number >= t.Start && number <= t.End
}

// ScenarioCategory is a named group of troubleshooting scenarios.
type ScenarioCategory struct {
	Name          string `yaml:"name" json:"name"`
	DeclaredCount int    `yaml:"count" json:"declared_count"`
}

// ScenarioExample is a worked troubleshooting scenario.
type ScenarioExample struct {
	Title     string   `yaml:"title" json:"title"`
	Problem   string   `yaml:"problem" json:"problem"`
	Diagnosis []string `yaml:"diagnosis" json:"diagnosis"`
	RootCause string   `yaml:"root_cause" json:"root_cause"`
	Fix       []string `yaml:"fix" json:"fix"`
}

// Catalog holds the static topic and scenario definitions.
type Catalog struct {
	Topics    []TopicDefinition            `yaml:"topics"`
	Scenarios []ScenarioCategory           `yaml:"scenarios"`
	Examples  map[string][]ScenarioExample `yaml:"scenario_examples"`
}

// TopicCount pairs a topic with the number of loaded questions inside its range.
type TopicCount struct {
	Topic       TopicDefinition
	ActualCount int
}
