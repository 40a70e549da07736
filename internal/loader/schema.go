package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"devops-reference/internal/domain"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const structuredSchemaURL = "schema://questions.json"

// structuredSchema describes questions.json: an object keyed by question ID.
const structuredSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "additionalProperties": {
    "type": "object",
    "required": ["question", "answer", "number"],
    "properties": {
      "question": {"type": "string", "minLength": 1},
      "answer":   {"type": "string"},
      "number":   {"type": "integer", "minimum": 0}
    }
  }
}`

var (
	compiledOnce sync.Once
	compiled     *jsonschema.Schema
	compileErr   error
)

func structuredValidator() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(structuredSchema))
		if err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(structuredSchemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(structuredSchemaURL)
	})
	return compiled, compileErr
}

type structuredEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Number   int    `json:"number"`
}

// DecodeStructured validates and decodes a questions.json document.
func DecodeStructured(data []byte) (domain.QuestionSet, error) {
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := structuredValidator()
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	if err := schema.Validate(instance); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var entries map[string]structuredEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}

	set := make(domain.QuestionSet, len(entries))
	for id, e := range entries {
		set.Put(domain.QuestionRecord{ID: id, Number: e.Number, Question: e.Question, Answer: e.Answer})
	}
	return set, nil
}

// EncodeStructured renders the set in the questions.json layout, ordered by question number.
func EncodeStructured(set domain.QuestionSet) ([]byte, error) {
	records := sortedRecords(set)

	var buf bytes.Buffer
	buf.WriteString("{")
	for i, q := range records {
		key, err := json.Marshal(q.ID)
		if err != nil {
			return nil, err
		}
		value, err := json.MarshalIndent(structuredEntry{Question: q.Question, Answer: q.Answer, Number: q.Number}, "  ", "  ")
		if err != nil {
			return nil, err
		}
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n  ")
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(value)
	}
	if len(records) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}
