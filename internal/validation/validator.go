package validation

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"devops-reference/internal/domain"
)

const (
	MaxSearchTermLength = 100
	MaxKeyLength        = 120
	MaxQuestionNumber   = 100000
)

var (
	validKey        = regexp.MustCompile(`^[\p{L}\p{N} _&()/.-]+$`)
	validQuestionID = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateSearchTerm validates the free-text search term. Blank terms are valid.
func (v *Validator) ValidateSearchTerm(term string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if n := utf8.RuneCountInString(strings.TrimSpace(term)); n > MaxSearchTermLength {
		errors = append(errors, domain.NewOutOfRangeError("q", n, 0, MaxSearchTermLength))
	}
	return errors
}

// ValidateCatalogKey validates a topic or scenario name or slug taken from the path.
func (v *Validator) ValidateCatalogKey(field, key string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(key) == "" {
		errors = append(errors, domain.NewMissingFieldError(field))
		return errors
	}
	if utf8.RuneCountInString(key) > MaxKeyLength {
		errors = append(errors, domain.NewOutOfRangeError(field, len(key), 1, MaxKeyLength))
	} else if !validKey.MatchString(key) {
		errors = append(errors, domain.NewInvalidFormatError(field, key))
	}
	return errors
}

// ValidateQuestionID validates a question slug.
func (v *Validator) ValidateQuestionID(id string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(id) == "" {
		errors = append(errors, domain.NewMissingFieldError("id"))
	} else if len(id) > 2*MaxKeyLength || !validQuestionID.MatchString(id) {
		errors = append(errors, domain.NewInvalidFormatError("id", id))
	}
	return errors
}

// ParseQuestionNumber validates and converts a question number.
func (v *Validator) ParseQuestionNumber(raw string) (int, domain.ValidationErrors) {
	if strings.TrimSpace(raw) == "" {
		return 0, domain.ValidationErrors{domain.NewMissingFieldError("number")}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.ValidationErrors{domain.NewInvalidFormatError("number", raw)}
	}
	if n < 1 || n > MaxQuestionNumber {
		return 0, domain.ValidationErrors{domain.NewOutOfRangeError("number", n, 1, MaxQuestionNumber)}
	}
	return n, nil
}
