package formatters

import (
	"context"
	"fmt"
	"strings"
)

// Completer turns a prompt into generated text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// SummaryFormatter asks the language model for a professional summary.
type SummaryFormatter struct {
	completer Completer
}

func NewSummaryFormatter(c Completer) *SummaryFormatter {
	return &SummaryFormatter{completer: c}
}

// SummaryPrompt is the fixed instruction sent for every summary request.
func SummaryPrompt(name, skills string) string {
	return fmt.Sprintf(
		"Write a professional resume summary for %s, whose skills include: %s. "+
			"Exaggerate their accomplishments and strongly emphasize leadership, "+
			"ownership and impact. Write it in the third person, in 3 to 4 sentences, "+
			"and return only the summary text.",
		name, skills,
	)
}

func (sf *SummaryFormatter) Format(ctx context.Context, name, skills string) (string, error) {
	out, err := sf.completer.Complete(ctx, SummaryPrompt(name, skills))
	if err != nil {
		return "", err
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return "", fmt.Errorf("empty summary")
	}
	return out, nil
}
