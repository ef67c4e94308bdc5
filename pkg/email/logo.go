package email

import (
	_ "embed"

	"site-mailer/pkg/clients/mailer"
)

// LogoContentID is referenced by both email bodies as cid:logo@veriden.
const LogoContentID = "logo@veriden"

//go:embed assets/logo.png
var logoPNG []byte

// Logo returns the shared inline logo attachment.
func Logo() mailer.Attachment {
	return mailer.Attachment{
		Filename:    "logo.png",
		ContentID:   LogoContentID,
		ContentType: "image/png",
		Data:        logoPNG,
	}
}
