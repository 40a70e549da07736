package validation

import (
	"strings"
	"testing"

	"devops-reference/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSearchTerm(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateSearchTerm(""))
	assert.Empty(t, v.ValidateSearchTerm("  docker  "))
	assert.Empty(t, v.ValidateSearchTerm(strings.Repeat("a", MaxSearchTermLength)))

	errs := v.ValidateSearchTerm(strings.Repeat("a", MaxSearchTermLength+1))
	require.Len(t, errs, 1)
	assert.Equal(t, domain.CodeOutOfRange, errs[0].Code)
	assert.Equal(t, "q", errs[0].Field)
}

func TestValidateCatalogKey(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name     string
		key      string
		wantCode domain.ErrorCode
	}{
		{name: "slug", key: "ci-cd"},
		{name: "display name", key: "Site Reliability Engineering (SRE)"},
		{name: "ampersand", key: "Advanced DevOps & Cloud"},
		{name: "blank", key: "  ", wantCode: domain.CodeMissingField},
		{name: "markup", key: "<script>", wantCode: domain.CodeInvalidFormat},
		{name: "too long", key: strings.Repeat("k", MaxKeyLength+1), wantCode: domain.CodeOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.ValidateCatalogKey("name", tt.key)
			if tt.wantCode == "" {
				assert.Empty(t, errs)
				return
			}
			require.Len(t, errs, 1)
			assert.Equal(t, tt.wantCode, errs[0].Code)
		})
	}
}

func TestValidateQuestionID(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateQuestionID("what-is-ci-cd"))
	assert.Empty(t, v.ValidateQuestionID("question-12"))
	assert.NotEmpty(t, v.ValidateQuestionID(""))
	assert.NotEmpty(t, v.ValidateQuestionID("What-Is"))
	assert.NotEmpty(t, v.ValidateQuestionID("-leading"))
	assert.NotEmpty(t, v.ValidateQuestionID("double--hyphen"))
}

func TestParseQuestionNumber(t *testing.T) {
	v := NewValidator()

	n, errs := v.ParseQuestionNumber("42")
	assert.Empty(t, errs)
	assert.Equal(t, 42, n)

	for _, raw := range []string{"", "abc", "0", "-3", "100001"} {
		_, errs := v.ParseQuestionNumber(raw)
		assert.NotEmpty(t, errs, raw)
	}
}
