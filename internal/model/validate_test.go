package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSummaryPayload(t *testing.T) {
	require.NoError(t, ValidateSummaryPayload([]byte(`{"name":"Ada","skills":"distributed systems"}`)))

	err := ValidateSummaryPayload([]byte(`{"name":"Ada"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "skills")

	assert.Error(t, ValidateSummaryPayload([]byte(`{"name":1,"skills":"x"}`)))
	assert.Error(t, ValidateSummaryPayload([]byte(`not json`)))
}

func TestValidateResumeDocument(t *testing.T) {
	doc := `{
	  "name": "Ada", "email": "ada@example.com", "phone": "123",
	  "education": [{"degree": "BSc", "institution": "UoL", "year_of_passing": "1835"}],
	  "experience": []
	}`
	require.NoError(t, ValidateResumeDocument([]byte(doc)))

	err := ValidateResumeDocument([]byte(`{"name": "Ada", "education": "none"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
}
