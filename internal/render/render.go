// Package render turns a validated notification request into the HTML and
// plain-text email bodies. Title and message are always inserted through
// html/template so user input can never inject markup into the document.
package render

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oralcagan/pixel-pigeon/internal/domain/notification"
)

const (
	footerText      = "Sent via Pixel Pigeon"
	timestampFormat = "2006-01-02 15:04:05"
)

// templateData is the typed value handed to the HTML template.
type templateData struct {
	Title     string
	Lines     []string
	Timestamp string
	Footer    string
	HasLogo   bool
	LogoCID   string
}

// Renderer produces rendered emails, optionally embedding a logo image.
type Renderer struct {
	logoPath string
	now      func() time.Time
}

// New creates a Renderer. The logo at logoPath is embedded inline when the
// file exists at render time; a missing logo is not an error.
func New(logoPath string) *Renderer {
	return &Renderer{
		logoPath: logoPath,
		now:      time.Now,
	}
}

// Render produces the HTML and plain-text pair for the given request.
// The subject line is the title verbatim.
func (r *Renderer) Render(req notification.Request) (notification.Rendered, error) {
	now := r.now()

	logoPath := ""
	if r.logoPath != "" {
		if _, err := os.Stat(r.logoPath); err == nil {
			logoPath = r.logoPath
		}
	}

	data := templateData{
		Title:     req.Title,
		Lines:     strings.Split(req.Message, "\n"),
		Timestamp: now.Format(timestampFormat),
		Footer:    footerText,
		HasLogo:   logoPath != "",
		LogoCID:   filepath.Base(logoPath),
	}

	var html strings.Builder
	if err := htmlTmpl.Execute(&html, data); err != nil {
		return notification.Rendered{}, fmt.Errorf("render html: %w", err)
	}

	return notification.Rendered{
		Subject:  req.Title,
		HTML:     html.String(),
		Text:     plainText(req, now),
		LogoPath: logoPath,
	}, nil
}

// plainText renders the fallback body for clients that reject HTML:
// title, underline, message, footer.
func plainText(req notification.Request, now time.Time) string {
	var b strings.Builder
	b.WriteString(req.Title)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", len(req.Title)))
	b.WriteString("\n\n")
	b.WriteString(req.Message)
	b.WriteString("\n\n---\n")
	b.WriteString(footerText)
	b.WriteString("\n")
	b.WriteString(now.Format(timestampFormat))
	b.WriteString("\n")
	return b.String()
}

var htmlTmpl = template.Must(template.New("email").Parse(emailHTML))

const emailHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
</head>
<body style="margin: 0; padding: 0; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #f5f7fa;">
<div style="max-width: 600px; margin: 40px auto; background-color: #ffffff; border-radius: 12px; box-shadow: 0 4px 20px rgba(0,0,0,0.08); overflow: hidden;">
  <div style="background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); padding: 40px 30px; text-align: center;">
    {{if .HasLogo}}<div style="text-align: center; margin-bottom: 30px;">
      <img src="cid:{{.LogoCID}}" alt="Logo" style="max-width: 200px; height: auto; border-radius: 8px;">
    </div>
    {{end}}<h1 style="color: #ffffff; margin: 0; font-size: 28px; font-weight: 600;">Email Notification</h1>
  </div>
  <div style="padding: 40px 30px;">
    <div style="background-color: #f8fafc; border-left: 4px solid #667eea; padding: 20px 25px; border-radius: 6px; margin-bottom: 30px;">
      <h2 style="color: #2d3748; margin: 0; font-size: 24px; font-weight: 700;">{{.Title}}</h2>
    </div>
    <div style="background-color: #ffffff; border: 1px solid #e2e8f0; border-radius: 8px; padding: 25px; line-height: 1.6;">
      <p style="color: #4a5568; margin: 0; font-size: 16px;">{{range $i, $line := .Lines}}{{if $i}}<br>{{end}}{{$line}}{{end}}</p>
    </div>
  </div>
  <div style="background-color: #f7fafc; padding: 20px 30px; text-align: center; border-top: 1px solid #e2e8f0;">
    <p style="color: #718096; margin: 0; font-size: 14px;">{{.Footer}} &bull; {{.Timestamp}}</p>
  </div>
</div>
</body>
</html>
`
