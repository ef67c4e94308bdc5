package models

import (
	"fmt"
	"strings"
)

const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldCompany = "company"
	FieldReason  = "reason"
	FieldRole    = "role"
	FieldMessage = "message"
)

// Variant describes one form: the fields it posts, which of them are
// required, and the fixed texts used when answering it.
type Variant struct {
	Key      string
	Path     string
	Fields   []string
	Required []string

	MissingMessage string
	SuccessMessage string
	FailureMessage string

	// Title is the human name of the form, used in email subjects and headings.
	Title string
}

var (
	ContactVariant = Variant{
		Key:            "contact",
		Path:           "/contact",
		Title:          "Contact Message",
		Fields:         []string{FieldName, FieldEmail, FieldReason, FieldMessage},
		Required:       []string{FieldName, FieldEmail, FieldReason, FieldMessage},
		MissingMessage: "Name, email, reason, and message are required",
		SuccessMessage: "Message sent successfully! We'll get back to you soon.",
		FailureMessage: "Failed to send message. Please try again later.",
	}

	DemoRequestVariant = Variant{
		Key:            "demo-request",
		Path:           "/demo-request",
		Title:          "Demo Request",
		Fields:         []string{FieldName, FieldEmail, FieldCompany, FieldRole, FieldMessage},
		Required:       []string{FieldName, FieldEmail, FieldCompany},
		MissingMessage: "Name, email, and company are required",
		SuccessMessage: "Demo request submitted successfully! Check your email for confirmation.",
		FailureMessage: "Failed to send email. Please try again later.",
	}

	WhitePaperVariant = Variant{
		Key:            "white-paper",
		Path:           "/white-paper-request",
		Title:          "White Paper Request",
		Fields:         []string{FieldName, FieldEmail, FieldCompany, FieldRole},
		Required:       []string{FieldName, FieldEmail, FieldCompany},
		MissingMessage: "Name, email, and company are required",
		SuccessMessage: "White paper request submitted successfully! Check your email for confirmation.",
		FailureMessage: "Failed to send email. Please try again later.",
	}
)

// Variants lists every form the service accepts.
var Variants = []Variant{ContactVariant, DemoRequestVariant, WhitePaperVariant}

// LookupVariant finds a variant by key.
func LookupVariant(key string) (Variant, bool) {
	for _, v := range Variants {
		if v.Key == key {
			return v, true
		}
	}
	return Variant{}, false
}

// ValidationError reports required fields that were absent or empty.
type ValidationError struct {
	Missing []string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s (missing: %s)", e.Message, strings.Join(e.Missing, ", "))
}

// Missing returns the required fields of v that are absent or empty in req.
// Any non-empty value counts as present, including whitespace.
func (v Variant) Missing(req SubmissionRequest) []string {
	var missing []string
	for _, f := range v.Required {
		if req.Field(f) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

// Validate is a presence check only; formats and lengths are not inspected.
func (v Variant) Validate(req SubmissionRequest) error {
	if missing := v.Missing(req); len(missing) > 0 {
		return &ValidationError{Missing: missing, Message: v.MissingMessage}
	}
	return nil
}

// Project keeps only the fields the variant posts.
func (v Variant) Project(req SubmissionRequest) SubmissionRequest {
	var out SubmissionRequest
	for _, f := range v.Fields {
		out.SetField(f, req.Field(f))
	}
	return out
}

// HasField reports whether the variant posts the named field.
func (v Variant) HasField(name string) bool {
	for _, f := range v.Fields {
		if f == name {
			return true
		}
	}
	return false
}
