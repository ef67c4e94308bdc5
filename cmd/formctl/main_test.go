package main

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"site-mailer/pkg/api"
	"site-mailer/pkg/clients/mailer"
	"site-mailer/pkg/services"
)

func startAPI(t *testing.T, rec *mailer.Recorder) string {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc := services.NewSubmissionService(rec, services.SubmissionConfig{AdminEmail: "ops@veriden.com", Brand: "Veriden"}, zap.NewNop())
	r := gin.New()
	api.NewHandlers(svc, zap.NewNop()).RegisterRoutes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv.URL + api.APIPrefix
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestDemoCommand(t *testing.T) {
	rec := &mailer.Recorder{}
	url := startAPI(t, rec)

	out, err := execute(t, "demo", "--api", url, "--name", "Jane Doe", "--email", "jane@acme.com", "--company", "Acme")
	require.NoError(t, err)

	assert.Contains(t, out, "Submitting...")
	assert.Contains(t, out, "Demo request submitted successfully!")
	assert.Equal(t, 2, rec.Calls())
}

func TestContactCommandMissingFlags(t *testing.T) {
	rec := &mailer.Recorder{}
	url := startAPI(t, rec)

	_, err := execute(t, "contact", "--api", url, "--name", "Jane", "--email", "jane@acme.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--reason, --message")
	assert.Equal(t, 0, rec.Calls())
}

func TestCommandReportsServerError(t *testing.T) {
	url := startAPI(t, &mailer.Recorder{FailOn: 1})

	_, err := execute(t, "white-paper", "--api", url, "--name", "Jane", "--email", "jane@acme.com", "--company", "Acme")
	require.Error(t, err)
	assert.Equal(t, "Failed to send email. Please try again later.", err.Error())
}

func TestHealthCommand(t *testing.T) {
	url := startAPI(t, &mailer.Recorder{})

	out, err := execute(t, "health", "--api", url)
	require.NoError(t, err)
	assert.Contains(t, out, "ok at ")
}

func TestWhitePaperHasNoReasonFlag(t *testing.T) {
	_, err := execute(t, "white-paper", "--reason", "sales")
	assert.Error(t, err)
}
