// Package catalog loads the static topic and scenario definitions.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"devops-reference/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Load reads the catalog from path, or the embedded default when path is empty.
func Load(path string) (*domain.Catalog, error) {
	if path == "" {
		return Parse(defaultCatalog)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	return Parse(data)
}

// Default returns the embedded catalog. It panics if the embedded document is invalid.
func Default() *domain.Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}

// Parse decodes and validates a YAML catalog document.
func Parse(data []byte) (*domain.Catalog, error) {
	var c domain.Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if err := Validate(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks names, kinds and ranges. Overlapping ranges are not an
// error here; see index.Overlaps.
func Validate(c *domain.Catalog) error {
	var errs domain.ValidationErrors

	seen := make(map[string]bool)
	for i, t := range c.Topics {
		field := fmt.Sprintf("topics[%d]", i)
		if strings.TrimSpace(t.Name) == "" {
			errs = append(errs, domain.NewMissingFieldError(field+".name"))
			continue
		}
		if seen[domain.Slugify(t.Name)] {
			errs = append(errs, domain.NewInvalidFormatError(field+".name", t.Name))
		}
		seen[domain.Slugify(t.Name)] = true

		switch t.Kind {
		case domain.TopicKindQuestion:
			if !t.HasRange() {
				errs = append(errs, domain.NewInvalidFormatError(field+".range", fmt.Sprintf("%d-%d", t.Start, t.End)))
			}
		case domain.TopicKindExercise:
		default:
			errs = append(errs, domain.NewInvalidFormatError(field+".kind", string(t.Kind)))
		}
		if t.DeclaredCount < 0 {
			errs = append(errs, domain.NewOutOfRangeError(field+".count", t.DeclaredCount, 0, 1<<16))
		}
	}

	seen = make(map[string]bool)
	for i, s := range c.Scenarios {
		field := fmt.Sprintf("scenarios[%d]", i)
		if strings.TrimSpace(s.Name) == "" {
			errs = append(errs, domain.NewMissingFieldError(field+".name"))
			continue
		}
		if seen[domain.Slugify(s.Name)] {
			errs = append(errs, domain.NewInvalidFormatError(field+".name", s.Name))
		}
		seen[domain.Slugify(s.Name)] = true
	}

	for name := range c.Examples {
		if !seen[domain.Slugify(name)] {
			errs = append(errs, domain.NewInvalidFormatError("scenario_examples", name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid catalog: %w", errs)
	}
	return nil
}

// FindTopic looks a topic up by exact name or by the slug of its name.
func FindTopic(c *domain.Catalog, key string) (domain.TopicDefinition, bool) {
	slug := domain.Slugify(key)
	for _, t := range c.Topics {
		if t.Name == key || domain.Slugify(t.Name) == slug {
			return t, true
		}
	}
	return domain.TopicDefinition{}, false
}

// FindScenario looks a scenario category up by exact name or by the slug of its name.
func FindScenario(c *domain.Catalog, key string) (domain.ScenarioCategory, bool) {
	slug := domain.Slugify(key)
	for _, s := range c.Scenarios {
		if s.Name == key || domain.Slugify(s.Name) == slug {
			return s, true
		}
	}
	return domain.ScenarioCategory{}, false
}
