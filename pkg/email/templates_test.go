package email

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"site-mailer/pkg/models"
)

func demoNotification(t *testing.T) Notification {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return Notification{
		Brand:      "Veriden",
		Variant:    models.DemoRequestVariant,
		Request:    models.SubmissionRequest{Name: "Jane Doe", Email: "jane@acme.com", Company: "Acme"},
		Reference:  "ref-123",
		ReceivedAt: time.Date(2026, 3, 5, 19, 4, 5, 0, time.UTC).In(loc),
	}
}

func TestAdminNotification(t *testing.T) {
	n := demoNotification(t)

	html, err := Render(context.Background(), AdminNotification(n))
	require.NoError(t, err)

	assert.Contains(t, html, "New Demo Request")
	assert.Contains(t, html, "Jane Doe")
	assert.Contains(t, html, `mailto:jane@acme.com`)
	assert.Contains(t, html, "Acme")
	assert.Contains(t, html, "Not provided") // role
	assert.Contains(t, html, "Submitted: 3/5/2026, 2:04:05 PM EST")
	assert.Contains(t, html, "Reference: ref-123")
	assert.Contains(t, html, "cid:"+LogoContentID)
}

func TestAcknowledgment(t *testing.T) {
	n := demoNotification(t)

	html, err := Render(context.Background(), Acknowledgment(n))
	require.NoError(t, err)

	assert.Contains(t, html, "Thank you, Jane Doe!")
	assert.Contains(t, html, "<strong>Acme</strong>")
	assert.Contains(t, html, "within one business day")
	assert.Contains(t, html, "cid:"+LogoContentID)
}

func TestContactAcknowledgmentUsesReasonLabel(t *testing.T) {
	n := Notification{
		Brand:   "Veriden",
		Variant: models.ContactVariant,
		Request: models.SubmissionRequest{Name: "Jane", Email: "jane@acme.com", Reason: "partnership", Message: "hi"},
	}

	html, err := Render(context.Background(), Acknowledgment(n))
	require.NoError(t, err)
	assert.Contains(t, html, "Partnership Opportunity")
	assert.Contains(t, html, "within 24 hours")
}

func TestUserInputIsEscaped(t *testing.T) {
	n := Notification{
		Brand:   "Veriden",
		Variant: models.ContactVariant,
		Request: models.SubmissionRequest{
			Name:    `<script>alert("x")</script>`,
			Email:   `a"@b.com`,
			Reason:  "other",
			Message: "line one\n<b>line two</b>",
		},
	}

	admin, err := Render(context.Background(), AdminNotification(n))
	require.NoError(t, err)
	ack, err := Render(context.Background(), Acknowledgment(n))
	require.NoError(t, err)

	for _, html := range []string{admin, ack} {
		assert.NotContains(t, html, "<script>")
		assert.Contains(t, html, "&lt;script&gt;")
	}
	assert.Contains(t, admin, "line one<br>&lt;b&gt;line two&lt;/b&gt;")
	assert.NotContains(t, admin, `mailto:a"@b.com`)
}

func TestSubjects(t *testing.T) {
	n := demoNotification(t)
	assert.Equal(t, "New Demo Request from Acme", AdminSubject(n))
	assert.Equal(t, "Your Veriden demo request", AcknowledgmentSubject(n))

	n.Variant = models.ContactVariant
	n.Request = models.SubmissionRequest{Name: "Jane"}
	assert.Equal(t, "New Contact Message from Jane", AdminSubject(n))
	assert.Equal(t, "We received your message - Veriden", AcknowledgmentSubject(n))

	n.Variant = models.WhitePaperVariant
	n.Request.Company = "Acme"
	assert.Equal(t, "New White Paper Request from Acme", AdminSubject(n))
}

func TestLogo(t *testing.T) {
	logo := Logo()
	assert.Equal(t, LogoContentID, logo.ContentID)
	assert.Equal(t, "image/png", logo.ContentType)
	require.NotEmpty(t, logo.Data)
	assert.Equal(t, []byte("\x89PNG"), logo.Data[:4])
}
