package infrastructure

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ledongthuc/pdf"
)

var ErrNotPDF = errors.New("converter output is not a PDF")

// CheckPDFSignature rejects empty or non-PDF converter output.
func CheckPDFSignature(b []byte) error {
	if len(b) == 0 || !bytes.HasPrefix(b, []byte("%PDF")) {
		return fmt.Errorf("%w (len=%d)", ErrNotPDF, len(b))
	}
	return nil
}

// CountPages parses the document structure and returns its page count.
func CountPages(b []byte) (n int, err error) {
	// The parser panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parse pdf: %v", r)
		}
	}()
	r, err := pdf.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		return 0, fmt.Errorf("parse pdf: %w", err)
	}
	return r.NumPage(), nil
}

// PlainText extracts the text layer of a PDF.
func PlainText(b []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parse pdf: %v", r)
		}
	}()
	r, err := pdf.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		return "", fmt.Errorf("parse pdf: %w", err)
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}
