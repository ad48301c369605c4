package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valemcp/valemcp/internal/domain"
)

const sampleOutput = `{"a.md":[{"Line":3,"Span":[1,5],"Check":"Vale.Spelling","Message":"Typo","Severity":"error"}]}`

func TestParseIssues_Sample(t *testing.T) {
	issues, err := domain.ParseIssues(sampleOutput)
	require.NoError(t, err)
	require.Len(t, issues, 1)

	assert.Equal(t, 3, issues[0].Line)
	assert.Equal(t, [2]int{1, 5}, issues[0].Span)
	assert.Equal(t, "Vale.Spelling", issues[0].Check)
	assert.Equal(t, "Typo", issues[0].Message)
	assert.Equal(t, domain.SeverityError, issues[0].Severity)
}

func TestParseIssues_FencedEqualsUnfenced(t *testing.T) {
	plain, err := domain.ParseIssues(sampleOutput)
	require.NoError(t, err)

	fenced, err := domain.ParseIssues("```json\n" + sampleOutput + "\n```")
	require.NoError(t, err)

	assert.Equal(t, plain, fenced)
}

func TestParseIssues_EmptyAndWhitespace(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n\t\n"} {
		issues, err := domain.ParseIssues(raw)
		require.NoError(t, err)
		assert.Empty(t, issues)
	}
}

func TestParseIssues_NoFiles(t *testing.T) {
	issues, err := domain.ParseIssues(`{}`)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestParseIssues_Malformed(t *testing.T) {
	_, err := domain.ParseIssues(`{"a.md": [`)
	require.Error(t, err)

	var malformed *domain.MalformedOutputError
	require.True(t, errors.As(err, &malformed))
	assert.NotEmpty(t, malformed.Msg)
	assert.Contains(t, err.Error(), "malformed vale output")
}

func TestParseIssues_OptionalFields(t *testing.T) {
	raw := `{"a.md":[{"Line":1,"Span":[2,4],"Check":"Vale.Terms","Message":"Use x","Severity":"warning","Link":"https://example.com","Match":"teh","Action":{"Name":"replace"}}]}`

	issues, err := domain.ParseIssues(raw)
	require.NoError(t, err)
	require.Len(t, issues, 1)

	assert.Equal(t, "https://example.com", issues[0].Link)
	assert.Equal(t, "teh", issues[0].Match)
}

func TestParseIssues_MultipleFilesWalkedInSortedOrder(t *testing.T) {
	raw := `{
		"b.md":[{"Line":9,"Check":"B.Rule","Message":"b","Severity":"warning"}],
		"a.md":[{"Line":1,"Check":"A.Rule","Message":"a","Severity":"error"}]
	}`

	issues, err := domain.ParseIssues(raw)
	require.NoError(t, err)
	require.Len(t, issues, 2)
	assert.Equal(t, "A.Rule", issues[0].Check)
	assert.Equal(t, "B.Rule", issues[1].Check)
}
