package parser

import (
	"regexp"
	"strconv"
	"strings"

	"devops-reference/internal/domain"
)

// tableOfContentsID is the anchor of the README's own contents heading.
const tableOfContentsID = "table-of-contents"

var (
	numberedHeader   = regexp.MustCompile(`^(\d+)\.\s+###\s+(.+)$`)
	unnumberedHeader = regexp.MustCompile(`^###\s+(.+)$`)
	tocAnchor        = regexp.MustCompile(`#([^)]+)`)
)

type tocEntry struct {
	id     string
	number int
}

// tableOfContents maps question anchors to the numbers listed in the
// README's contents table, in table order.
type tableOfContents []tocEntry

// parseTableOfContents collects `| 12 | [Question](#anchor) |` rows found
// after the contents heading or a <details> block.
func parseTableOfContents(lines []string) tableOfContents {
	var toc tableOfContents
	inTOC := false
	for _, line := range lines {
		if strings.Contains(line, "Table of Contents") || strings.Contains(line, "<details") {
			inTOC = true
			continue
		}
		if !inTOC || !strings.HasPrefix(strings.TrimSpace(line), "|") {
			continue
		}
		parts := strings.Split(line, "|")
		if len(parts) < 3 {
			continue
		}
		num := strings.TrimSpace(parts[1])
		if !isDigits(num) {
			continue
		}
		n, err := strconv.Atoi(num)
		if err != nil {
			continue
		}
		if m := tocAnchor.FindStringSubmatch(strings.TrimSpace(parts[2])); m != nil {
			toc = append(toc, tocEntry{id: m[1], number: n})
		}
	}
	return toc
}

// lookup returns the listed number for id. Anchors that merely contain id
// are accepted when there is no exact entry; the first such row wins.
func (t tableOfContents) lookup(id string) int {
	for _, e := range t {
		if e.id == id {
			return e.number
		}
	}
	for _, e := range t {
		if strings.HasSuffix(e.id, id) || strings.Contains(e.id, id) {
			return e.number
		}
	}
	return 0
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// documentScanner is the state of the offline conversion pass.
type documentScanner struct {
	toc       tableOfContents
	inContent bool
	current   *pendingQuestion
	answer    []string
	inAnswer  bool
	questions domain.QuestionSet
}

func (d *documentScanner) step(line string) {
	if !d.inContent {
		if sectionHeader.MatchString(line) {
			d.inContent = true
		}
		return
	}

	var text string
	number := 0
	if m := numberedHeader.FindStringSubmatch(line); m != nil {
		text = strings.TrimSpace(m[2])
		if n, err := strconv.Atoi(m[1]); err == nil {
			number = n
		}
	} else if m := unnumberedHeader.FindStringSubmatch(line); m != nil {
		text = strings.TrimSpace(m[1])
	}

	if text != "" {
		d.save()
		id := domain.Slugify(text)
		if number == 0 {
			number = d.toc.lookup(id)
		}
		if number > 0 || strings.HasPrefix(text, "What") {
			d.current = &pendingQuestion{id: id, text: text, number: number}
			d.answer = d.answer[:0]
			d.inAnswer = true
			return
		}
	}

	if !d.inAnswer || d.current == nil {
		return
	}
	switch {
	case strings.Contains(line, BackToTopMarker):
	case sectionHeader.MatchString(line):
		// Short answers keep collecting across a section break.
		if len(d.answer) > 3 {
			d.inAnswer = false
		}
	case len(d.answer) == 0 && strings.TrimSpace(line) == "":
	default:
		d.answer = append(d.answer, strings.TrimRight(line, " \t"))
	}
}

// save stores the pending question when it has an answer and a number.
// The pending question stays current, so later lines may replace it.
func (d *documentScanner) save() {
	if d.current == nil || len(d.answer) == 0 {
		return
	}
	answer := strings.TrimSpace(strings.Join(d.answer, "\n"))
	if i := strings.Index(answer, BackToTopMarker); i >= 0 {
		answer = strings.TrimSpace(answer[:i])
	}
	if answer == "" || d.current.number <= 0 {
		return
	}
	d.questions.Put(domain.QuestionRecord{
		ID:       d.current.id,
		Number:   d.current.number,
		Question: d.current.text,
		Answer:   answer,
	})
}

// ParseDocument is the offline conversion of the full README. Unlike
// ParseMarkdown it ignores everything before the first "## " heading,
// numbers unnumbered questions from the contents table, and drops questions
// that end up without a number.
func ParseDocument(markdown string) domain.QuestionSet {
	lines := strings.Split(markdown, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	d := &documentScanner{
		toc:       parseTableOfContents(lines),
		questions: make(domain.QuestionSet),
	}
	for _, line := range lines {
		d.step(line)
	}
	d.save()

	delete(d.questions, tableOfContentsID)
	return d.questions
}
