package usecase

import (
	"context"
	"log/slog"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
)

// SummaryPlaceholder is returned in place of a summary when the provider
// cannot produce one.
const SummaryPlaceholder = "Error generating summary. Please try again."

type SummaryFormatter interface {
	Format(ctx context.Context, name, skills string) (string, error)
}

type Summary struct {
	Text   string
	Failed bool
}

type SummaryService struct {
	formatter SummaryFormatter
	log       *slog.Logger
}

// NewSummaryService returns a service backed by f. A nil f means no provider
// is configured and every request yields the placeholder.
func NewSummaryService(f SummaryFormatter, logger *slog.Logger) *SummaryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SummaryService{formatter: f, log: logger}
}

func (s *SummaryService) Configured() bool { return s.formatter != nil }

func (s *SummaryService) Generate(ctx context.Context, q domain.SummaryQuery) Summary {
	if s.formatter == nil {
		s.log.Error("summary generation failed", "error", ErrProviderUnavailable)
		return Summary{Text: SummaryPlaceholder, Failed: true}
	}

	name := model.Sanitize(q.Name)
	skills := model.Sanitize(q.Skills)
	text, err := s.formatter.Format(ctx, name, skills)
	if err != nil {
		s.log.Error("summary generation failed", "name", name, "error", err)
		return Summary{Text: SummaryPlaceholder, Failed: true}
	}
	return Summary{Text: text}
}
