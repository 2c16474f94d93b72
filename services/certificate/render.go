package certificate

import (
	"bytes"
	"fmt"
	"html/template"

	courseModels "courseverse/models/course"
)

// RenderMode selects the presentation variant
type RenderMode string

const (
	// ModeInteractive is the in-browser view: theme follows the viewer's
	// preference and a verification bar links the public lookup.
	ModeInteractive RenderMode = "interactive"

	// ModeCapture is the headless-capture target: fixed dark theme, no
	// chrome, so the captured bytes are identical regardless of viewer
	// settings.
	ModeCapture RenderMode = "capture"
)

// RenderContext carries everything the renderer needs beyond the record
// itself. The verification URL is built by the caller from the request
// context; the renderer never fabricates a host or scheme.
type RenderContext struct {
	Mode            RenderMode
	VerificationURL string
	Logo            []byte
}

type renderData struct {
	CourseTitle     string
	RecipientName   string
	IssueDate       string
	Code            string
	VerificationURL string
	QRDataURI       template.URL
}

// Render maps a certificate record and a presentation context to a complete
// HTML document. Pure and deterministic: identical inputs produce identical
// bytes. Revoked records render a mode-appropriate revocation notice instead
// of the certificate body.
func Render(record *courseModels.Certificate, rc RenderContext) ([]byte, error) {
	if record.Status == courseModels.CertStatusRevoked {
		return renderTemplate(revokedTemplateName(rc.Mode), renderData{
			Code: record.CertificateCode,
		})
	}

	qrURI, err := verificationQRDataURI(rc.VerificationURL, rc.Logo)
	if err != nil {
		return nil, fmt.Errorf("render %q: %v", record.CertificateCode, err)
	}

	data := renderData{
		CourseTitle:     record.CourseTitle,
		RecipientName:   record.RecipientName,
		IssueDate:       record.IssueDate.UTC().Format("January 2, 2006"),
		Code:            record.CertificateCode,
		VerificationURL: rc.VerificationURL,
		QRDataURI:       template.URL(qrURI),
	}

	name := "interactive"
	if rc.Mode == ModeCapture {
		name = "capture"
	}
	return renderTemplate(name, data)
}

func revokedTemplateName(mode RenderMode) string {
	if mode == ModeCapture {
		return "revoked_capture"
	}
	return "revoked_interactive"
}

func renderTemplate(name string, data renderData) ([]byte, error) {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("render template %s: %v", name, err)
	}
	return buf.Bytes(), nil
}

// Both modes share the "body" template so the certificate layout can never
// drift between the live page and the captured document. The wrappers differ
// only in chrome and theming.
var pageTemplates = template.Must(template.New("certificate").Parse(`
{{define "body"}}
<div class="certificate">
  <p class="brand">CourseVerse</p>
  <p class="label">Certificate of Completion</p>
  <h1 class="recipient">{{.RecipientName}}</h1>
  <p class="line">has successfully completed the course</p>
  <h2 class="course">{{.CourseTitle}}</h2>
  <p class="issued">Issued on {{.IssueDate}}</p>
  <div class="verify">
    <img class="qr" src="{{.QRDataURI}}" alt="Scan to verify" width="120" height="120"/>
    <p class="code">Certificate ID: {{.Code}}</p>
  </div>
</div>
{{end}}

{{define "styles"}}
.certificate{max-width:760px;margin:0 auto;padding:56px 64px;border:3px double currentColor;text-align:center;font-family:Georgia,serif}
.brand{font-size:14px;letter-spacing:4px;text-transform:uppercase;margin:0}
.label{font-size:18px;margin:24px 0 8px}
.recipient{font-size:40px;margin:8px 0}
.line{font-size:15px;margin:4px 0}
.course{font-size:26px;margin:8px 0 20px}
.issued{font-size:14px;margin-bottom:32px}
.verify{display:flex;flex-direction:column;align-items:center;gap:8px}
.qr{display:block}
.code{font-size:12px;font-family:monospace;margin:0}
{{end}}

{{define "capture"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8"/>
<title>Certificate {{.Code}}</title>
<style>
html,body{margin:0;padding:0;background:#0f172a;color:#e2e8f0}
body{padding:48px 0}
.certificate{background:#1e293b}
.qr{background:#fff;padding:8px;border-radius:4px}
{{template "styles" .}}
</style>
</head>
<body>
{{template "body" .}}
</body>
</html>
{{end}}

{{define "interactive"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1"/>
<title>Certificate {{.Code}}</title>
<style>
html,body{margin:0;padding:0;background:#f8fafc;color:#0f172a}
@media (prefers-color-scheme: dark){html,body{background:#0f172a;color:#e2e8f0}.certificate{background:#1e293b}}
body{padding:32px 16px}
.verify-bar{max-width:760px;margin:0 auto 24px;padding:12px 16px;font-family:sans-serif;font-size:14px;border-radius:6px;border:1px solid currentColor;text-align:center}
.qr{background:#fff;padding:8px;border-radius:4px}
{{template "styles" .}}
</style>
</head>
<body>
<div class="verify-bar">This certificate can be verified at <a href="{{.VerificationURL}}">{{.VerificationURL}}</a></div>
{{template "body" .}}
</body>
</html>
{{end}}

{{define "revoked_notice"}}
<div class="revoked">
  <h1>Certificate Revoked</h1>
  <p>The certificate with ID <code>{{.Code}}</code> has been revoked and is no longer valid.</p>
</div>
{{end}}

{{define "revoked_capture"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8"/>
<title>Certificate Revoked</title>
<style>
html,body{margin:0;padding:0;background:#0f172a;color:#e2e8f0;font-family:sans-serif}
.revoked{max-width:560px;margin:120px auto;text-align:center}
</style>
</head>
<body>
{{template "revoked_notice" .}}
</body>
</html>
{{end}}

{{define "revoked_interactive"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1"/>
<title>Certificate Revoked</title>
<style>
html,body{margin:0;padding:0;background:#f8fafc;color:#0f172a;font-family:sans-serif}
@media (prefers-color-scheme: dark){html,body{background:#0f172a;color:#e2e8f0}}
.revoked{max-width:560px;margin:96px auto;text-align:center}
</style>
</head>
<body>
{{template "revoked_notice" .}}
</body>
</html>
{{end}}
`))
