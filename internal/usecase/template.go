package usecase

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"

	"resume-builder/internal/domain"
	"resume-builder/templates"
)

// ResumeTemplate renders a ResumeRequest into a self-contained HTML page.
type ResumeTemplate struct {
	tpl *template.Template
	css string
}

func NewResumeTemplate() (*ResumeTemplate, error) {
	tpl, err := template.ParseFS(templates.FS, "resume_template.html")
	if err != nil {
		return nil, fmt.Errorf("parse resume template: %w", err)
	}
	css, err := templates.FS.ReadFile("style.css")
	if err != nil {
		return nil, fmt.Errorf("read stylesheet: %w", err)
	}
	return &ResumeTemplate{tpl: tpl, css: string(css)}, nil
}

type resumeView struct {
	*domain.ResumeRequest
	LinkURL            string
	LinkLabel          string
	SkillLines         []string
	ProjectLines       []string
	CertificationLines []string
	OtherLines         []string
	Labels             map[string]string
}

func (t *ResumeTemplate) Render(req *domain.ResumeRequest) (string, error) {
	linkURL, linkLabel := professionalLink(req.LinkedIn)
	view := resumeView{
		ResumeRequest:      req,
		LinkURL:            linkURL,
		LinkLabel:          linkLabel,
		SkillLines:         lines(req.Skills),
		ProjectLines:       lines(req.Projects),
		CertificationLines: lines(req.Certifications),
		OtherLines:         lines(req.OtherDetails),
		Labels:             defaultLabels(),
	}

	var buf bytes.Buffer
	if err := t.tpl.Execute(&buf, view); err != nil {
		return "", err
	}
	html := buf.String()

	// inline the stylesheet so the converter needs no file access
	cssBlock := "<style>" + t.css + "</style>"
	if strings.Contains(html, "<head>") {
		html = strings.Replace(html, "<head>", "<head>"+cssBlock, 1)
	} else {
		html = cssBlock + html
	}
	return html, nil
}

// professionalLink normalizes a user-supplied profile link and derives a
// short domain label for display.
func professionalLink(raw string) (string, string) {
	if raw == "" {
		return "", ""
	}
	candidate := raw
	if !strings.HasPrefix(candidate, "http://") && !strings.HasPrefix(candidate, "https://") {
		candidate = "https://" + candidate
	}
	parsed, err := url.Parse(candidate)
	if err != nil || parsed.Hostname() == "" {
		return "", raw
	}
	host := parsed.Hostname()
	label := strings.TrimPrefix(host, "www.")
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		label = etld
	}
	if path := strings.Trim(parsed.EscapedPath(), "/"); path != "" {
		label += "/" + path
	}
	return parsed.String(), label
}

func lines(s string) []string {
	var out []string
	for _, l := range strings.Split(s, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}
