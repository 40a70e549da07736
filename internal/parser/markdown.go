// Package parser turns the loosely formatted interview-questions README
// into question records.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"devops-reference/internal/domain"
)

// BackToTopMarker is the navigation link the README places after each answer.
const BackToTopMarker = "[⬆ Back to Top]"

var (
	questionHeader = regexp.MustCompile(`^(?:\d+\.\s*)?###\s+(.+)$`)
	numberPrefix   = regexp.MustCompile(`^(\d+)\.`)
	sectionHeader  = regexp.MustCompile(`^##\s+`)
)

type pendingQuestion struct {
	id     string
	text   string
	number int
}

// accumulator is the scan state threaded through the fold over lines.
type accumulator struct {
	current  *pendingQuestion
	answer   []string
	counter  int
	inAnswer bool
	done     []domain.QuestionRecord
}

func (a *accumulator) step(line string) {
	if m := questionHeader.FindStringSubmatch(line); m != nil {
		a.flush()
		a.begin(line, strings.TrimSpace(m[1]))
		return
	}

	if !a.inAnswer || a.current == nil {
		return
	}

	switch {
	case strings.Contains(line, BackToTopMarker):
		// skipped, answer collection continues
	case sectionHeader.MatchString(line):
		a.inAnswer = false
	case strings.TrimSpace(line) != "" || len(a.answer) > 0:
		a.answer = append(a.answer, line)
	}
}

func (a *accumulator) begin(line, text string) {
	if m := numberPrefix.FindStringSubmatch(line); m != nil {
		// The header regexp only admits digit runs here; overflow is the one failure mode.
		if n, err := strconv.Atoi(m[1]); err == nil {
			a.counter = n
		} else {
			a.counter++
		}
	} else {
		a.counter++
	}

	a.current = &pendingQuestion{
		id:     domain.Slugify(text),
		text:   text,
		number: a.counter,
	}
	a.answer = a.answer[:0]
	a.inAnswer = true
}

// flush stores the pending question unless its answer is empty or still
// contains the back-to-top marker.
func (a *accumulator) flush() {
	if a.current == nil || len(a.answer) == 0 {
		return
	}
	answer := strings.TrimSpace(strings.Join(a.answer, "\n"))
	if answer == "" || strings.Contains(answer, BackToTopMarker) {
		return
	}
	a.done = append(a.done, domain.QuestionRecord{
		ID:       a.current.id,
		Number:   a.current.number,
		Question: a.current.text,
		Answer:   answer,
	})
}

// ParseRecords scans the document and returns completed records in document order.
func ParseRecords(markdown string) []domain.QuestionRecord {
	acc := &accumulator{}
	for _, line := range strings.Split(markdown, "\n") {
		acc.step(line)
	}
	acc.flush()
	return acc.done
}

// ParseMarkdown returns the question records keyed by slug. Records whose
// slugs collide overwrite earlier ones. The result may be empty.
func ParseMarkdown(markdown string) domain.QuestionSet {
	set := make(domain.QuestionSet)
	for _, q := range ParseRecords(markdown) {
		set.Put(q)
	}
	return set
}
