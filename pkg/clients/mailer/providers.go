package mailer

import (
	"fmt"
	"strings"
)

// Provider is an SMTP endpoint preset, picked by name instead of spelling
// out host and port.
type Provider struct {
	Host string
	Port int
	// ImplicitTLS means TLS from the first byte (port 465 style) rather than STARTTLS.
	ImplicitTLS bool
}

var presets = map[string]Provider{
	"gmail":    {Host: "smtp.gmail.com", Port: 465, ImplicitTLS: true},
	"outlook":  {Host: "smtp.office365.com", Port: 587},
	"sendgrid": {Host: "smtp.sendgrid.net", Port: 587},
	"mailgun":  {Host: "smtp.mailgun.org", Port: 587},
}

// ResolveProvider returns the endpoint for name. "smtp" (or "") uses the
// explicit host/port/secure values.
func ResolveProvider(name, host string, port int, secure bool) (Provider, error) {
	name = strings.ToLower(name)
	if name == "" || name == "smtp" {
		if host == "" {
			return Provider{}, fmt.Errorf("smtp provider requires a host")
		}
		return Provider{Host: host, Port: port, ImplicitTLS: secure}, nil
	}
	p, ok := presets[name]
	if !ok {
		return Provider{}, fmt.Errorf("unknown mail provider %q", name)
	}
	return p, nil
}
