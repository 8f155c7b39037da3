package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/usecase"
	"resume-builder/templates"
)

const (
	msgMissingFields = "Name, Email, and Phone are required!"
	msgRenderFailed  = "Error generating resume. Please try again."
)

type ResumeGenerator interface {
	Generate(ctx context.Context, req *domain.ResumeRequest) (*domain.GeneratedDocument, error)
}

type SummaryGenerator interface {
	Generate(ctx context.Context, q domain.SummaryQuery) usecase.Summary
}

type ReadinessChecker interface {
	Ready(ctx context.Context) error
}

type Handler struct {
	resumes       ResumeGenerator
	summaries     SummaryGenerator
	readiness     ReadinessChecker
	form          *template.Template
	strictSummary bool
	log           *slog.Logger
}

type HandlerOptions struct {
	Readiness ReadinessChecker
	// StrictSummaryStatus answers 502 instead of 200 when the summary
	// provider fails. The body is the same either way.
	StrictSummaryStatus bool
	Logger              *slog.Logger
}

func NewHandler(resumes ResumeGenerator, summaries SummaryGenerator, opts HandlerOptions) (*Handler, error) {
	form, err := template.ParseFS(templates.FS, "form.html")
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		resumes:       resumes,
		summaries:     summaries,
		readiness:     opts.Readiness,
		form:          form,
		strictSummary: opts.StrictSummaryStatus,
		log:           logger,
	}, nil
}

// Form renders the input page along with any pending flash message.
func (h *Handler) Form(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.form.Execute(&buf, fiber.Map{"Flash": popFlash(c)}); err != nil {
		h.log.Error("render form failed", "error", err)
		return fiber.ErrInternalServerError
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

// Generate converts the submitted form into a PDF attachment. Failures
// redirect back to the form with a flash message.
func (h *Handler) Generate(c *fiber.Ctx) error {
	form, err := formValues(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	doc, err := h.resumes.Generate(c.UserContext(), usecase.NewResumeRequest(form))
	if err != nil {
		var verr *usecase.ValidationError
		if errors.As(err, &verr) {
			setFlash(c, msgMissingFields)
		} else {
			setFlash(c, msgRenderFailed)
		}
		return c.Redirect("/", fiber.StatusFound)
	}

	return c.Download(doc.Path, doc.FileName)
}

func (h *Handler) GenerateSummary(c *fiber.Ctx) error {
	body := c.Body()
	if err := model.ValidateSummaryPayload(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	var q domain.SummaryQuery
	if err := json.Unmarshal(body, &q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	s := h.summaries.Generate(c.UserContext(), q)
	status := fiber.StatusOK
	if s.Failed && h.strictSummary {
		status = fiber.StatusBadGateway
	}
	return c.Status(status).JSON(fiber.Map{"summary": s.Text})
}

// Health: basic liveness check.
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
}

// Ready: converter, output directory and database checks.
func (h *Handler) Ready(c *fiber.Ctx) error {
	if h.readiness == nil {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ready"})
	}
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()
	if err := h.readiness.Ready(ctx); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":  "not_ready",
			"details": err.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ready"})
}

// formValues collects url-encoded or multipart fields, keeping repeated
// keys in submission order.
func formValues(c *fiber.Ctx) (url.Values, error) {
	values := url.Values{}
	if strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEMultipartForm) {
		mf, err := c.MultipartForm()
		if err != nil {
			return nil, err
		}
		for k, vs := range mf.Value {
			values[k] = append(values[k], vs...)
		}
		return values, nil
	}
	c.Request().PostArgs().VisitAll(func(k, v []byte) {
		values.Add(string(k), string(v))
	})
	return values, nil
}
