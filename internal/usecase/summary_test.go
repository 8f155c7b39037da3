package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"resume-builder/internal/domain"
)

type mockFormatter struct {
	mock.Mock
}

func (m *mockFormatter) Format(ctx context.Context, name, skills string) (string, error) {
	args := m.Called(ctx, name, skills)
	return args.String(0), args.Error(1)
}

func TestSummaryService_Generate(t *testing.T) {
	f := &mockFormatter{}
	f.On("Format", mock.Anything, "Ada", "Go, SQL").Return("Ada is a visionary leader.", nil).Once()
	svc := NewSummaryService(f, quietLogger())

	got := svc.Generate(context.Background(), domain.SummaryQuery{Name: "<b>Ada</b>", Skills: " Go, SQL "})

	assert.Equal(t, Summary{Text: "Ada is a visionary leader."}, got)
	f.AssertExpectations(t)
}

func TestSummaryService_ProviderError(t *testing.T) {
	f := &mockFormatter{}
	f.On("Format", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("connection refused"))
	svc := NewSummaryService(f, quietLogger())

	got := svc.Generate(context.Background(), domain.SummaryQuery{Name: "Ada", Skills: "Go"})

	assert.True(t, got.Failed)
	assert.Equal(t, SummaryPlaceholder, got.Text)
}

func TestSummaryService_Unconfigured(t *testing.T) {
	svc := NewSummaryService(nil, quietLogger())

	assert.False(t, svc.Configured())
	got := svc.Generate(context.Background(), domain.SummaryQuery{Name: "Ada", Skills: "Go"})
	assert.Equal(t, Summary{Text: SummaryPlaceholder, Failed: true}, got)
}
