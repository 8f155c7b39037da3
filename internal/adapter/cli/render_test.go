package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/usecase"
)

const sampleDoc = `{
  "name": "<b>Ada</b> Lovelace",
  "email": "ada@example.com",
  "phone": "555-0100",
  "skills": "Go\nSQL",
  "education": [{"degree": "BSc", "institution": "London", "year_of_passing": "1835"}],
  "experience": [{"job_title": "Analyst", "company": "Engines", "exp_start": "1842", "exp_end": "1843", "experience_desc": "First program"}]
}`

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRenderCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRender_HTMLOnly(t *testing.T) {
	in := writeInput(t, sampleDoc)
	outPath := filepath.Join(t.TempDir(), "resume.html")

	out, err := execute(t, "--input", in, "--output", outPath, "--html-only")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+outPath)

	html, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Ada Lovelace")
	assert.NotContains(t, string(html), "<b>Ada</b>")
	assert.Equal(t, 1, strings.Count(string(html), "education-entry"))
	assert.Equal(t, 1, strings.Count(string(html), "experience-entry"))
}

func TestRender_WithConverter(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "wkhtmltopdf")
	script := "#!/bin/sh\ncat > /dev/null\nprintf '%%PDF-1.4\\n%%%%EOF\\n'\n"
	require.NoError(t, os.WriteFile(bin, []byte(script), 0o755))
	in := writeInput(t, sampleDoc)
	outPath := filepath.Join(dir, "out.pdf")

	_, err := execute(t, "--input", in, "--output", outPath, "--converter", "wkhtmltopdf", "--converter-path", bin)
	require.NoError(t, err)

	pdf, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))
}

func TestRender_MissingConverter(t *testing.T) {
	in := writeInput(t, sampleDoc)

	_, err := execute(t, "--input", in, "--converter", "wkhtmltopdf", "--converter-path", filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestRender_RejectsInvalidDocuments(t *testing.T) {
	tests := map[string]string{
		"not json":        `{`,
		"missing phone":   `{"name": "Ada", "email": "a@b.c"}`,
		"wrong type":      `{"name": "Ada", "email": "a@b.c", "phone": 5}`,
		"tag-only name":   `{"name": "<i></i>", "email": "a@b.c", "phone": "1"}`,
		"education shape": `{"name": "Ada", "email": "a@b.c", "phone": "1", "education": "BSc"}`,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := execute(t, "--input", writeInput(t, doc), "--html-only", "--output", filepath.Join(t.TempDir(), "x.html"))
			assert.Error(t, err)
		})
	}
}

func TestDecodeResume_ValidationError(t *testing.T) {
	_, err := decodeResume([]byte(`{"name": " ", "email": "a@b.c", "phone": "1"}`))
	var verr *usecase.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"name"}, verr.Missing)
}

func TestRender_RequiresInput(t *testing.T) {
	_, err := execute(t)
	assert.Error(t, err)
}
