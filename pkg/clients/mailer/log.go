package mailer

import (
	"context"

	"go.uber.org/zap"
)

type logClient struct {
	logger *zap.Logger
}

// NewLogClient returns a Client that only logs what it would have sent.
// Selected with MAIL_PROVIDER=log for local development.
func NewLogClient(logger *zap.Logger) Client {
	return &logClient{logger: logger}
}

func (c *logClient) Send(_ context.Context, msg *Message) error {
	if err := msg.validate(); err != nil {
		return err
	}
	ids := make([]string, 0, len(msg.Inline))
	for _, a := range msg.Inline {
		ids = append(ids, a.ContentID)
	}
	c.logger.Info("mail not sent (log provider)",
		zap.String("subject", msg.Subject),
		zap.Int("html_bytes", len(msg.HTML)),
		zap.Strings("inline", ids))
	return nil
}
