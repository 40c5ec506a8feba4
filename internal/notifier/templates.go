package notifier

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/sitepulse/sitepulse/internal/events"
)

var statusChangeTmpl = template.Must(template.New("status_change").Parse(`
<div style="font-family:sans-serif;max-width:560px">
  <h2 style="color:{{if .Online}}#2e7d32{{else}}#c62828{{end}}">{{.MonitorName}} is {{if .Online}}back online{{else}}offline{{end}}</h2>
  <p>{{.Message}}</p>
  <table style="border-collapse:collapse">
    <tr><td style="padding:4px 12px 4px 0;color:#666">Checked at</td><td>{{.CheckedAt.Format "2006-01-02 15:04:05 MST"}}</td></tr>
    {{if .StatusCode}}<tr><td style="padding:4px 12px 4px 0;color:#666">Status code</td><td>{{.StatusCode}}</td></tr>{{end}}
    <tr><td style="padding:4px 12px 4px 0;color:#666">Response time</td><td>{{.ResponseMs}}ms</td></tr>
    {{if .Error}}<tr><td style="padding:4px 12px 4px 0;color:#666">Error</td><td>{{.Error}}</td></tr>{{end}}
  </table>
  <p style="color:#999;font-size:12px">Sent by {{.SiteName}}</p>
</div>`))

var sslExpiryTmpl = template.Must(template.New("ssl_expiry").Parse(`
<div style="font-family:sans-serif;max-width:560px">
  <h2 style="color:#ef6c00">Certificate expiring: {{.MonitorName}}</h2>
  <p>{{.Message}}</p>
  <p style="color:#999;font-size:12px">Sent by {{.SiteName}}</p>
</div>`))

var verificationTmpl = template.Must(template.New("verification").Parse(`
<div style="font-family:sans-serif;max-width:560px">
  <h2>Confirm your subscription</h2>
  <p>You asked to receive alerts for <b>{{.MonitorName}}</b>.</p>
  <p><a href="{{.VerifyURL}}" style="background:#1976d2;color:#fff;padding:10px 18px;border-radius:4px;text-decoration:none">Confirm subscription</a></p>
  <p style="color:#666">Or open this link: {{.VerifyURL}}</p>
  <p style="color:#999;font-size:12px">If you did not request this, ignore this email. The link expires in {{.TTLHours}} hours.</p>
</div>`))

type statusChangeData struct {
	events.Event
	SiteName string
}

// StatusChangeEmail renders the subject, html and text bodies for a
// confirmed status change.
func StatusChangeEmail(ev events.Event, siteName string) (subject, htmlBody, textBody string) {
	state := "offline"
	if ev.Online {
		state = "back online"
	}
	subject = fmt.Sprintf("[%s] %s is %s", siteName, ev.MonitorName, state)
	var buf bytes.Buffer
	if err := statusChangeTmpl.Execute(&buf, statusChangeData{Event: ev, SiteName: siteName}); err == nil {
		htmlBody = buf.String()
	}
	textBody = ev.Message
	return subject, htmlBody, textBody
}

func SSLExpiryEmail(ev events.Event, siteName string) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("[%s] Certificate expiring: %s", siteName, ev.MonitorName)
	var buf bytes.Buffer
	if err := sslExpiryTmpl.Execute(&buf, statusChangeData{Event: ev, SiteName: siteName}); err == nil {
		htmlBody = buf.String()
	}
	textBody = ev.Message
	return subject, htmlBody, textBody
}

// VerificationEmail renders the double-opt-in confirmation mail.
func VerificationEmail(monitorName, verifyURL, siteName string, ttlHours int) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("[%s] Confirm your subscription to %s", siteName, monitorName)
	var buf bytes.Buffer
	if err := verificationTmpl.Execute(&buf, map[string]interface{}{
		"MonitorName": monitorName,
		"VerifyURL":   verifyURL,
		"TTLHours":    ttlHours,
	}); err == nil {
		htmlBody = buf.String()
	}
	textBody = fmt.Sprintf("Confirm your subscription to %s: %s", monitorName, verifyURL)
	return subject, htmlBody, textBody
}

func TestEmail(siteName string) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("[%s] Test notification", siteName)
	textBody = fmt.Sprintf("This is a test notification from %s. Mail delivery is working.", siteName)
	htmlBody = fmt.Sprintf("<p>%s</p>", textBody)
	return subject, htmlBody, textBody
}
