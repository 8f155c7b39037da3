package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Renderer converts an HTML document to PDF bytes.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

var ErrConverterNotFound = errors.New("pdf converter binary not found")

var searchNames = map[string][]string{
	"chromedp": {
		"headless-shell",
		"chromium",
		"chromium-browser",
		"google-chrome",
		"google-chrome-stable",
		"chrome",
	},
	"wkhtmltopdf": {"wkhtmltopdf"},
}

// LocateConverter resolves the converter binary for kind. An explicit path
// must exist and be executable; otherwise PATH is searched for the known
// binary names.
func LocateConverter(kind, explicit string) (string, error) {
	names, ok := searchNames[kind]
	if !ok {
		return "", fmt.Errorf("unknown converter %q", kind)
	}
	if explicit != "" {
		info, err := os.Stat(explicit)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrConverterNotFound, explicit, err)
		}
		if info.IsDir() || info.Mode()&0o111 == 0 {
			return "", fmt.Errorf("%w: %s is not executable", ErrConverterNotFound, explicit)
		}
		return explicit, nil
	}
	for _, name := range names {
		if p, err := exec.LookPath(name); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: install one of %v or set CONVERTER_PATH", ErrConverterNotFound, names)
}

// NewRenderer builds the converter of the given kind around binPath.
func NewRenderer(kind, binPath string) (Renderer, error) {
	switch kind {
	case "chromedp":
		return NewChromedpRenderer(binPath), nil
	case "wkhtmltopdf":
		return NewWkhtmltopdfRenderer(binPath), nil
	default:
		return nil, fmt.Errorf("unknown converter %q", kind)
	}
}
