package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/domain"
	"resume-builder/pkg/infrastructure"
)

type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// Scheduler deletes a file after a delay.
type Scheduler interface {
	Schedule(path string, delay time.Duration)
}

type DocumentsRepo interface {
	Record(ctx context.Context, doc *domain.GeneratedDocument, status, errMsg string) error
}

const (
	StatusGenerated = "generated"
	StatusFailed    = "failed"
)

type ProcessorConfig struct {
	OutputDir      string
	FileTTL        time.Duration
	ConvertTimeout time.Duration
}

// Processor turns a resume request into a PDF in the output directory.
type Processor struct {
	renderer  Renderer
	reaper    Scheduler
	repo      DocumentsRepo
	tpl       *ResumeTemplate
	outputDir string
	ttl       time.Duration
	timeout   time.Duration
	now       func() time.Time
	log       *slog.Logger
}

func NewProcessor(r Renderer, reaper Scheduler, repo DocumentsRepo, cfg ProcessorConfig, logger *slog.Logger) (*Processor, error) {
	if r == nil || reaper == nil {
		return nil, errors.New("processor: renderer and reaper are required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	tpl, err := NewResumeTemplate()
	if err != nil {
		return nil, err
	}
	if cfg.FileTTL <= 0 {
		cfg.FileTTL = 120 * time.Second
	}
	if cfg.ConvertTimeout <= 0 {
		cfg.ConvertTimeout = 60 * time.Second
	}
	return &Processor{
		renderer:  r,
		reaper:    reaper,
		repo:      repo,
		tpl:       tpl,
		outputDir: cfg.OutputDir,
		ttl:       cfg.FileTTL,
		timeout:   cfg.ConvertTimeout,
		now:       time.Now,
		log:       logger,
	}, nil
}

// RenderHTML renders req into the resume template with the stylesheet
// inlined.
func (p *Processor) RenderHTML(req *domain.ResumeRequest) (string, error) {
	return p.tpl.Render(req)
}

// Generate validates req, converts it to PDF and stores the result under a
// unique name. The file is scheduled for deletion after the configured TTL.
func (p *Processor) Generate(ctx context.Context, req *domain.ResumeRequest) (*domain.GeneratedDocument, error) {
	if err := Validate(req); err != nil {
		p.log.Info("resume rejected", "error", err)
		return nil, err
	}

	doc := &domain.GeneratedDocument{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		FileName: DownloadName(req.Name),
	}

	pdfBytes, err := p.convert(ctx, req)
	if err != nil {
		return nil, p.fail(ctx, doc, err)
	}

	doc.Path = filepath.Join(p.outputDir, doc.ID.String()+".pdf")
	if err := writeAtomic(p.outputDir, doc.Path, pdfBytes); err != nil {
		doc.Path = ""
		return nil, p.fail(ctx, doc, &RenderError{Stage: "store", Err: err})
	}

	now := p.now()
	doc.Size = int64(len(pdfBytes))
	doc.CreatedAt = now
	doc.ExpiresAt = now.Add(p.ttl)
	p.reaper.Schedule(doc.Path, p.ttl)

	p.record(ctx, doc, StatusGenerated, "")
	p.log.Info("resume generated", "id", doc.ID.String(), "name", doc.Name, "email", doc.Email, "bytes", doc.Size)
	return doc, nil
}

func (p *Processor) convert(ctx context.Context, req *domain.ResumeRequest) ([]byte, error) {
	html, err := p.RenderHTML(req)
	if err != nil {
		return nil, &RenderError{Stage: "template", Err: err}
	}

	cctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	pdfBytes, err := p.renderer.RenderHTMLToPDF(cctx, html)
	if err != nil {
		if cctx.Err() != nil && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
			err = fmt.Errorf("%w: %v", cctx.Err(), err)
		}
		return nil, &RenderError{Stage: "convert", Err: err}
	}
	if err := infrastructure.CheckPDFSignature(pdfBytes); err != nil {
		return nil, &RenderError{Stage: "convert", Err: err}
	}
	if pages, err := infrastructure.CountPages(pdfBytes); err != nil {
		p.log.Warn("converter output failed structural check", "error", err)
	} else {
		p.log.Debug("converter output", "pages", pages, "bytes", len(pdfBytes))
	}
	return pdfBytes, nil
}

func (p *Processor) fail(ctx context.Context, doc *domain.GeneratedDocument, err error) error {
	doc.CreatedAt = p.now()
	p.log.Error("resume generation failed", "id", doc.ID.String(), "name", doc.Name, "error", err)
	p.record(ctx, doc, StatusFailed, err.Error())
	return err
}

func (p *Processor) record(ctx context.Context, doc *domain.GeneratedDocument, status, errMsg string) {
	if p.repo == nil {
		return
	}
	if err := p.repo.Record(ctx, doc, status, errMsg); err != nil {
		p.log.Warn("failed to record document", "id", doc.ID.String(), "error", err)
	}
}

// writeAtomic writes data to a temp file in dir and renames it onto path,
// so a reader never observes a partially written PDF.
func writeAtomic(dir, path string, data []byte) error {
	tmp, err := os.CreateTemp(dir, ".resume-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
