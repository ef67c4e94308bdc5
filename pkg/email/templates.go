package email

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/a-h/templ"

	"site-mailer/pkg/models"
)

// TimestampLayout is how submission times appear in the admin notification.
const TimestampLayout = "1/2/2006, 3:04:05 PM MST"

// Notification is everything the two email bodies are rendered from.
type Notification struct {
	Brand      string
	Variant    models.Variant
	Request    models.SubmissionRequest
	Reference  string
	ReceivedAt time.Time
}

var fieldLabels = map[string]string{
	models.FieldName:    "Name",
	models.FieldEmail:   "Email",
	models.FieldCompany: "Company",
	models.FieldReason:  "Reason",
	models.FieldRole:    "Role",
	models.FieldMessage: "Message",
}

var turnaround = map[string]string{
	"contact":      "Our team typically responds within 24 hours on business days.",
	"demo-request": "A member of our team will reach out within one business day to schedule your personalized demo.",
	"white-paper":  "Your copy will arrive shortly, and a specialist will follow up within two business days if you would like to discuss it.",
}

// esc escapes s for HTML and keeps line breaks visible.
func esc(s string) string {
	return strings.ReplaceAll(templ.EscapeString(s), "\n", "<br>")
}

func fieldValue(field, value string) string {
	if strings.TrimSpace(value) == "" {
		return `<span style="color:#9ca3af;">Not provided</span>`
	}
	switch field {
	case models.FieldReason:
		return esc(models.ReasonLabel(value))
	case models.FieldEmail:
		e := templ.EscapeString(value)
		return `<a href="mailto:` + e + `" style="color:#2563eb;">` + e + `</a>`
	}
	return esc(value)
}

func layout(b *strings.Builder, brand, heading string, body func(b *strings.Builder)) {
	b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="UTF-8">`)
	b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1.0">`)
	b.WriteString(`<title>` + esc(heading) + `</title></head>`)
	b.WriteString(`<body style="margin:0;padding:0;background:#f3f4f6;font-family:Arial,Helvetica,sans-serif;color:#111827;">`)
	b.WriteString(`<div style="max-width:600px;margin:0 auto;padding:32px 16px;">`)
	b.WriteString(`<div style="text-align:center;margin-bottom:24px;">`)
	b.WriteString(`<img src="cid:` + LogoContentID + `" alt="` + esc(brand) + `" width="48" height="48" style="display:inline-block;">`)
	b.WriteString(`</div>`)
	b.WriteString(`<div style="background:#ffffff;border-radius:8px;padding:32px;border-top:4px solid #2563eb;">`)
	b.WriteString(`<h1 style="font-size:20px;margin:0 0 16px 0;">` + esc(heading) + `</h1>`)
	body(b)
	b.WriteString(`</div>`)
	b.WriteString(`<p style="text-align:center;font-size:12px;color:#6b7280;margin-top:24px;">&copy; ` +
		esc(brand) + `. Identity governance, simplified.</p>`)
	b.WriteString(`</div></body></html>`)
}

// AdminNotification lists every submitted field for the operator inbox.
func AdminNotification(n Notification) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		layout(&b, n.Brand, "New "+n.Variant.Title, func(b *strings.Builder) {
			b.WriteString(`<table style="width:100%;border-collapse:collapse;font-size:14px;">`)
			for _, f := range n.Variant.Fields {
				b.WriteString(`<tr><td style="padding:8px 0;width:120px;color:#6b7280;vertical-align:top;"><strong>`)
				b.WriteString(fieldLabels[f])
				b.WriteString(`</strong></td><td style="padding:8px 0;">`)
				b.WriteString(fieldValue(f, n.Request.Field(f)))
				b.WriteString(`</td></tr>`)
			}
			b.WriteString(`</table>`)
			b.WriteString(`<hr style="border:none;border-top:1px solid #e5e7eb;margin:24px 0;">`)
			b.WriteString(`<p style="font-size:12px;color:#6b7280;margin:0;">Submitted: ` +
				esc(n.ReceivedAt.Format(TimestampLayout)) + `</p>`)
			if n.Reference != "" {
				b.WriteString(`<p style="font-size:12px;color:#6b7280;margin:4px 0 0 0;">Reference: ` + esc(n.Reference) + `</p>`)
			}
		})
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Acknowledgment is the branded thank-you sent to the requester.
func Acknowledgment(n Notification) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		req := n.Request
		layout(&b, n.Brand, "Thank you, "+req.Name+"!", func(b *strings.Builder) {
			b.WriteString(`<p style="font-size:15px;line-height:1.6;">`)
			switch n.Variant.Key {
			case models.ContactVariant.Key:
				b.WriteString(`We have received your message regarding <strong>` +
					esc(models.ReasonLabel(req.Reason)) + `</strong> and appreciate you contacting ` + esc(n.Brand) + `.`)
			case models.DemoRequestVariant.Key:
				b.WriteString(`Thank you for requesting a demo of ` + esc(n.Brand) + ` for <strong>` +
					esc(req.Company) + `</strong>. We are excited to show you how we can help secure and govern identities across your organization.`)
			default:
				b.WriteString(`Thank you for your ` + esc(strings.ToLower(n.Variant.Title)) + ` on behalf of <strong>` +
					esc(req.Company) + `</strong>.`)
			}
			b.WriteString(`</p>`)
			if t, ok := turnaround[n.Variant.Key]; ok {
				b.WriteString(`<div style="background:#eff6ff;border-left:4px solid #2563eb;padding:12px 16px;margin:20px 0;font-size:14px;">`)
				b.WriteString(`<strong>What happens next?</strong><br>` + esc(t))
				b.WriteString(`</div>`)
			}
			b.WriteString(`<p style="font-size:15px;line-height:1.6;">Best regards,<br>The ` + esc(n.Brand) + ` Team</p>`)
		})
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// AdminSubject names the form and who sent it, e.g. "New Demo Request from Acme".
func AdminSubject(n Notification) string {
	from := n.Request.Company
	if from == "" {
		from = n.Request.Name
	}
	return fmt.Sprintf("New %s from %s", n.Variant.Title, from)
}

// AcknowledgmentSubject is the subject line of the requester's copy.
func AcknowledgmentSubject(n Notification) string {
	switch n.Variant.Key {
	case models.ContactVariant.Key:
		return fmt.Sprintf("We received your message - %s", n.Brand)
	case models.DemoRequestVariant.Key:
		return fmt.Sprintf("Your %s demo request", n.Brand)
	}
	return fmt.Sprintf("Your %s %s", n.Brand, strings.ToLower(n.Variant.Title))
}

// Render writes c into a string.
func Render(ctx context.Context, c templ.Component) (string, error) {
	var b strings.Builder
	if err := c.Render(ctx, &b); err != nil {
		return "", fmt.Errorf("render email: %w", err)
	}
	return b.String(), nil
}
