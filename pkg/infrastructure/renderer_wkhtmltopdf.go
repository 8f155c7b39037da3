package infrastructure

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// WkhtmltopdfRenderer pipes HTML through the wkhtmltopdf binary.
type WkhtmltopdfRenderer struct {
	binPath string
}

func NewWkhtmltopdfRenderer(binPath string) *WkhtmltopdfRenderer {
	return &WkhtmltopdfRenderer{binPath: binPath}
}

func (r *WkhtmltopdfRenderer) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, r.binPath,
		"--quiet",
		"--encoding", "utf-8",
		"--page-size", "A4",
		"--disable-local-file-access",
		"-", "-",
	)
	cmd.Stdin = strings.NewReader(html)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("wkhtmltopdf: %w", ctx.Err())
		}
		return nil, fmt.Errorf("wkhtmltopdf: %w, output: %s", err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}
