package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/valemcp/valemcp/internal/domain"
)

func TestSummarize_CountsBySeverity(t *testing.T) {
	issues := []domain.Issue{
		{Severity: domain.SeverityError},
		{Severity: domain.SeverityError},
		{Severity: domain.SeverityWarning},
		{Severity: domain.SeveritySuggestion},
	}

	sum := domain.Summarize(issues)

	assert.Equal(t, 4, sum.Total)
	assert.Equal(t, 2, sum.Errors)
	assert.Equal(t, 1, sum.Warnings)
	assert.Equal(t, 1, sum.Suggestions)
	assert.Equal(t, sum.Total, sum.Errors+sum.Warnings+sum.Suggestions)
}

func TestSummarize_Empty(t *testing.T) {
	sum := domain.Summarize(nil)
	assert.Equal(t, domain.Summary{}, sum)
}

func TestSummarize_UnrecognizedSeverityCountsTowardTotalOnly(t *testing.T) {
	issues := []domain.Issue{
		{Severity: "fatal"},
		{Severity: domain.SeverityError},
	}

	sum := domain.Summarize(issues)

	assert.Equal(t, 2, sum.Total)
	assert.Equal(t, 1, sum.Errors)
	assert.Equal(t, 0, sum.Warnings)
	assert.Equal(t, 0, sum.Suggestions)
}
