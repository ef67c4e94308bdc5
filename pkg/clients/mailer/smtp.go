package mailer

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// SMTPConfig configures the SMTP transport.
type SMTPConfig struct {
	Provider Provider
	Username string
	Password string
	From     string
	FromName string
	Timeout  time.Duration
}

type smtpClient struct {
	client   *mail.Client
	from     string
	fromName string
	timeout  time.Duration
	logger   *zap.Logger
}

// NewSMTPClient creates the long-lived SMTP transport. No connection is
// opened until the first Send.
func NewSMTPClient(cfg SMTPConfig, logger *zap.Logger) (Client, error) {
	if cfg.From == "" {
		return nil, fmt.Errorf("smtp sender address is empty")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Provider.Port),
		mail.WithTimeout(cfg.Timeout),
	}
	if cfg.Provider.ImplicitTLS {
		opts = append(opts, mail.WithSSL())
	} else if cfg.Username != "" {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	} else {
		// unauthenticated relays (local catchers) frequently lack STARTTLS
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Provider.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("error creating smtp client: %w", err)
	}

	return &smtpClient{
		client:   client,
		from:     cfg.From,
		fromName: cfg.FromName,
		timeout:  cfg.Timeout,
		logger:   logger,
	}, nil
}

func (c *smtpClient) Send(ctx context.Context, msg *Message) error {
	m, err := c.buildMsg(msg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	if err := c.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("error sending email: %w", err)
	}

	c.logger.Debug("smtp message sent",
		zap.String("subject", msg.Subject),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

func (c *smtpClient) buildMsg(msg *Message) (*mail.Msg, error) {
	if err := msg.validate(); err != nil {
		return nil, err
	}

	m := mail.NewMsg()
	if err := m.FromFormat(c.fromName, c.from); err != nil {
		return nil, fmt.Errorf("error setting sender: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("error setting recipient: %w", err)
	}
	if msg.ReplyTo != "" {
		if err := m.ReplyTo(msg.ReplyTo); err != nil {
			return nil, fmt.Errorf("error setting reply-to: %w", err)
		}
	}
	m.Subject(msg.Subject)
	m.SetDate()
	m.SetMessageID()
	m.SetBodyString(mail.TypeTextHTML, msg.HTML)

	for _, a := range msg.Inline {
		err := m.EmbedReader(a.Filename, bytes.NewReader(a.Data),
			mail.WithFileContentID(a.ContentID),
			mail.WithFileContentType(mail.ContentType(a.ContentType)),
		)
		if err != nil {
			return nil, fmt.Errorf("error embedding %s: %w", a.Filename, err)
		}
	}
	return m, nil
}
