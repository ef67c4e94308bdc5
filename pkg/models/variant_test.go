package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariantValidate(t *testing.T) {
	tests := []struct {
		name    string
		variant Variant
		req     SubmissionRequest
		missing []string
	}{
		{
			name:    "contact missing reason and message",
			variant: ContactVariant,
			req:     SubmissionRequest{Name: "Jane", Email: "jane@acme.com"},
			missing: []string{FieldReason, FieldMessage},
		},
		{
			name:    "contact complete",
			variant: ContactVariant,
			req:     SubmissionRequest{Name: "Jane", Email: "jane@acme.com", Reason: "sales", Message: "hi"},
		},
		{
			name:    "demo ignores optional role and message",
			variant: DemoRequestVariant,
			req:     SubmissionRequest{Name: "Jane Doe", Email: "jane@acme.com", Company: "Acme"},
		},
		{
			name:    "demo empty company",
			variant: DemoRequestVariant,
			req:     SubmissionRequest{Name: "Jane Doe", Email: "jane@acme.com", Company: ""},
			missing: []string{FieldCompany},
		},
		{
			name:    "whitespace counts as present",
			variant: DemoRequestVariant,
			req:     SubmissionRequest{Name: "Jane Doe", Email: "jane@acme.com", Company: " "},
		},
		{
			name:    "email format is not checked",
			variant: WhitePaperVariant,
			req:     SubmissionRequest{Name: "J", Email: "not-an-email", Company: "Acme"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.variant.Validate(tt.req)
			if tt.missing == nil {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.missing, verr.Missing)
			assert.Equal(t, tt.variant.MissingMessage, verr.Message)
		})
	}
}

func TestContactMissingMessage(t *testing.T) {
	assert.Equal(t, "Name, email, reason, and message are required", ContactVariant.MissingMessage)
}

func TestProjectDropsForeignFields(t *testing.T) {
	req := SubmissionRequest{Name: "Jane", Email: "j@x.io", Company: "Acme", Reason: "sales", Message: "hi"}

	got := WhitePaperVariant.Project(req)

	assert.Equal(t, SubmissionRequest{Name: "Jane", Email: "j@x.io", Company: "Acme"}, got)
}

func TestLookupVariant(t *testing.T) {
	v, ok := LookupVariant("demo-request")
	require.True(t, ok)
	assert.Equal(t, DemoRequestVariant.Required, v.Required)

	_, ok = LookupVariant("newsletter")
	assert.False(t, ok)
}

func TestReasonLabel(t *testing.T) {
	assert.Equal(t, "Technical Support", ReasonLabel("support"))
	assert.Equal(t, "Technical Support", ReasonLabel("SUPPORT"))
	assert.Equal(t, "something else", ReasonLabel("something else"))
}
