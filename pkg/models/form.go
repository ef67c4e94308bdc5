package models

import "strings"

// SubmissionRequest is the JSON body posted by any of the site forms.
// Which fields matter depends on the Variant it is posted to.
type SubmissionRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Role    string `json:"role,omitempty"`
	Message string `json:"message,omitempty"`
}

// Field returns the value of the named JSON field, or "" for unknown names.
func (r SubmissionRequest) Field(name string) string {
	switch name {
	case FieldName:
		return r.Name
	case FieldEmail:
		return r.Email
	case FieldCompany:
		return r.Company
	case FieldReason:
		return r.Reason
	case FieldRole:
		return r.Role
	case FieldMessage:
		return r.Message
	}
	return ""
}

// SetField assigns the named JSON field. Unknown names are ignored.
func (r *SubmissionRequest) SetField(name, value string) {
	switch name {
	case FieldName:
		r.Name = value
	case FieldEmail:
		r.Email = value
	case FieldCompany:
		r.Company = value
	case FieldReason:
		r.Reason = value
	case FieldRole:
		r.Role = value
	case FieldMessage:
		r.Message = value
	}
}

// SubmissionResult is the uniform response body of every submission endpoint.
// Message is meaningful when Success is true, Error otherwise.
type SubmissionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// HealthStatus is returned by the liveness endpoint.
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// ContactReason is one entry of the closed list offered by the contact form.
type ContactReason struct {
	Value string
	Label string
}

var ContactReasons = []ContactReason{
	{Value: "sales", Label: "Sales Inquiry"},
	{Value: "support", Label: "Technical Support"},
	{Value: "partnership", Label: "Partnership Opportunity"},
	{Value: "press", Label: "Press & Media"},
	{Value: "careers", Label: "Careers"},
	{Value: "other", Label: "Other"},
}

// ReasonLabel maps a reason value to its display label. Values outside the
// list are shown as submitted.
func ReasonLabel(value string) string {
	for _, r := range ContactReasons {
		if strings.EqualFold(r.Value, value) {
			return r.Label
		}
	}
	return value
}
