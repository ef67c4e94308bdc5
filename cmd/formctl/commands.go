package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"site-mailer/pkg/form"
	"site-mailer/pkg/models"
)

var flagUsage = map[string]string{
	models.FieldName:    "your full name",
	models.FieldEmail:   "your email address",
	models.FieldCompany: "company name",
	models.FieldRole:    "your role",
	models.FieldMessage: "message text",
}

func newSubmitCmd(apiURL *string, use, short string, variant models.Variant) *cobra.Command {
	values := make(map[string]*string, len(variant.Fields))

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			c := form.NewController(form.NewClient(*apiURL, nil), variant,
				form.WithResetDelay(0),
				form.OnChange(func(s form.Snapshot) {
					if s.State == form.StateSubmitting {
						fmt.Fprintln(out, "Submitting...")
					}
				}))

			for _, f := range variant.Fields {
				if err := c.SetField(f, *values[f]); err != nil {
					return err
				}
			}

			err := c.Submit(cmd.Context())
			var missing *form.MissingFieldsError
			if errors.As(err, &missing) {
				return fmt.Errorf("missing required flags: --%s", strings.Join(missing.Fields, ", --"))
			}
			if err != nil {
				return err
			}

			s := c.Snapshot()
			if s.State == form.StateError {
				return errors.New(s.Error)
			}
			fmt.Fprintln(out, s.Message)
			return nil
		},
	}

	for _, f := range variant.Fields {
		values[f] = new(string)
		usage := flagUsage[f]
		if f == models.FieldReason {
			opts := make([]string, 0, len(models.ContactReasons))
			for _, r := range models.ContactReasons {
				opts = append(opts, r.Value)
			}
			usage = "reason for contact (" + strings.Join(opts, "|") + ")"
		}
		for _, r := range variant.Required {
			if r == f {
				usage += " (required)"
			}
		}
		cmd.Flags().StringVar(values[f], f, "", usage)
	}
	return cmd
}

func newHealthCmd(apiURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the API is up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := form.NewClient(*apiURL, nil).Health(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s at %s\n", status.Status, status.Timestamp)
			return nil
		},
	}
}
