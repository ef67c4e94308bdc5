// Command formctl submits the site forms from a terminal, going through the
// same controller a page would use.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"site-mailer/pkg/models"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var apiURL string

	root := &cobra.Command{
		Use:          "formctl",
		Short:        "Submit contact, demo and white paper forms",
		SilenceUsage: true,
	}
	defaultURL := os.Getenv("FORMCTL_API")
	if defaultURL == "" {
		defaultURL = "http://localhost:8080/api"
	}
	root.PersistentFlags().StringVar(&apiURL, "api", defaultURL, "base URL of the submission API")

	root.AddCommand(
		newSubmitCmd(&apiURL, "contact", "Send a contact message", models.ContactVariant),
		newSubmitCmd(&apiURL, "demo", "Request a product demo", models.DemoRequestVariant),
		newSubmitCmd(&apiURL, "white-paper", "Request the white paper", models.WhitePaperVariant),
		newHealthCmd(&apiURL),
	)
	return root
}
