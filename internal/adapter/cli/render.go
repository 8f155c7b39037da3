// Package cli holds the offline render command.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"resume-builder/internal/config"
	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/infrastructure"
)

type renderOptions struct {
	input         string
	output        string
	htmlOnly      bool
	dumpText      bool
	converter     string
	converterPath string
	timeout       time.Duration
}

// NewRenderCommand returns the root command of the render tool.
func NewRenderCommand() *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a resume JSON document to PDF",
		Long: `Reads a resume document in the same shape the web form produces,
sanitizes and validates it, and writes a PDF (or, with --html-only, the
intermediate HTML) without starting the server.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "resume JSON document (required)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "resume.pdf", "output file")
	cmd.Flags().BoolVar(&opts.htmlOnly, "html-only", false, "write the rendered HTML instead of a PDF")
	cmd.Flags().BoolVar(&opts.dumpText, "dump-text", false, "print the text extracted from the generated PDF")
	cmd.Flags().StringVar(&opts.converter, "converter", config.ConverterChromedp, "converter backend (chromedp|wkhtmltopdf)")
	cmd.Flags().StringVar(&opts.converterPath, "converter-path", "", "explicit converter binary")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 60*time.Second, "converter timeout")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func runRender(cmd *cobra.Command, opts *renderOptions) error {
	raw, err := os.ReadFile(opts.input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	req, err := decodeResume(raw)
	if err != nil {
		return err
	}

	tpl, err := usecase.NewResumeTemplate()
	if err != nil {
		return err
	}
	html, err := tpl.Render(req)
	if err != nil {
		return fmt.Errorf("render template: %w", err)
	}

	if opts.htmlOnly {
		if err := os.WriteFile(opts.output, []byte(html), 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		cmd.Printf("wrote %s\n", opts.output)
		return nil
	}

	binPath, err := infrastructure.LocateConverter(opts.converter, opts.converterPath)
	if err != nil {
		return err
	}
	renderer, err := infrastructure.NewRenderer(opts.converter, binPath)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
	defer cancel()
	pdfBytes, err := renderer.RenderHTMLToPDF(ctx, html)
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}
	if err := infrastructure.CheckPDFSignature(pdfBytes); err != nil {
		return fmt.Errorf("convert: %w", err)
	}
	if err := os.WriteFile(opts.output, pdfBytes, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	cmd.Printf("wrote %s (%d bytes)\n", opts.output, len(pdfBytes))

	if opts.dumpText {
		text, err := infrastructure.PlainText(pdfBytes)
		if err != nil {
			return fmt.Errorf("extract text: %w", err)
		}
		cmd.Println(text)
	}
	return nil
}

// decodeResume validates raw against the resume schema and returns the
// sanitized request.
func decodeResume(raw []byte) (*domain.ResumeRequest, error) {
	if err := model.ValidateResumeDocument(raw); err != nil {
		return nil, err
	}
	var in domain.ResumeRequest
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, fmt.Errorf("decode input: %w", err)
	}
	req := usecase.SanitizeRequest(&in)
	if err := usecase.Validate(req); err != nil {
		return nil, err
	}
	return req, nil
}
