package domain

import (
	"regexp"
	"strings"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// QuestionRecord is a single interview question with its raw markdown answer.
type QuestionRecord struct {
	ID       string `json:"-"`
	Number   int    `json:"number"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// QuestionSet maps question IDs to records. Later writes to an existing ID overwrite earlier ones.
type QuestionSet map[string]QuestionRecord

// Put stores the record under its ID.
func (s QuestionSet) Put(q QuestionRecord) {
	s[q.ID] = q
}

// Slugify derives the question ID from its text:
// "What is CI/CD?" becomes "what-is-ci-cd".
func Slugify(text string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(text), "-")
	return strings.Trim(slug, "-")
}
