package model

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const summarySchema = `{
  "type": "object",
  "required": ["name", "skills"],
  "properties": {
    "name": {"type": "string"},
    "skills": {"type": "string"}
  }
}`

const resumeSchema = `{
  "type": "object",
  "required": ["name", "email", "phone"],
  "properties": {
    "name": {"type": "string"},
    "email": {"type": "string"},
    "phone": {"type": "string"},
    "location": {"type": "string"},
    "linkedin": {"type": "string"},
    "skills": {"type": "string"},
    "projects": {"type": "string"},
    "certifications": {"type": "string"},
    "other_details": {"type": "string"},
    "education": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "degree": {"type": "string"},
          "institution": {"type": "string"},
          "year_of_passing": {"type": "string"}
        }
      }
    },
    "experience": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "job_title": {"type": "string"},
          "company": {"type": "string"},
          "exp_start": {"type": "string"},
          "exp_end": {"type": "string"},
          "experience_desc": {"type": "string"}
        }
      }
    }
  }
}`

var (
	summaryLoader = gojsonschema.NewStringLoader(summarySchema)
	resumeLoader  = gojsonschema.NewStringLoader(resumeSchema)
)

// ValidateSummaryPayload checks a raw /generate_summary body.
func ValidateSummaryPayload(body []byte) error {
	return validate(summaryLoader, body)
}

// ValidateResumeDocument checks a resume JSON document as consumed by the
// offline render tool.
func ValidateResumeDocument(body []byte) error {
	return validate(resumeLoader, body)
}

func validate(schema gojsonschema.JSONLoader, body []byte) error {
	res, err := gojsonschema.Validate(schema, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("schema validation failed: %s", strings.Join(msgs, "; "))
}
