package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/a-h/templ"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"site-mailer/pkg/clients/mailer"
	"site-mailer/pkg/email"
	"site-mailer/pkg/models"
	"site-mailer/pkg/utils"
)

// SubmissionService defines the interface for handling form submissions
type SubmissionService interface {
	ProcessSubmission(ctx context.Context, variant models.Variant, req models.SubmissionRequest) (string, error)
}

// Stage identifies which of the two emails failed.
type Stage string

const (
	StageAdmin          Stage = "admin"
	StageAcknowledgment Stage = "acknowledgment"
)

// DispatchError is returned when the mail transport rejects a message.
// AdminDelivered is true when the failure happened on the acknowledgment,
// i.e. the operator was notified even though the request as a whole failed.
type DispatchError struct {
	Stage          Stage
	AdminDelivered bool
	Err            error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("error sending %s email: %v", e.Stage, e.Err)
}

func (e *DispatchError) Unwrap() error { return e.Err }

// SubmissionConfig holds the fixed inputs the service renders with.
type SubmissionConfig struct {
	AdminEmail string
	Brand      string
	Location   *time.Location
}

type submissionServiceImpl struct {
	mailer mailer.Client
	config SubmissionConfig
	logger *zap.Logger

	now    func() time.Time
	newRef func() string
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(mailClient mailer.Client, config SubmissionConfig, logger *zap.Logger) SubmissionService {
	if config.Location == nil {
		config.Location = time.UTC
	}
	return &submissionServiceImpl{
		mailer: mailClient,
		config: config,
		logger: logger,
		now:    time.Now,
		newRef: uuid.NewString,
	}
}

// ProcessSubmission validates req against the variant, then sends the admin
// notification followed by the requester acknowledgment. It returns the
// submission reference. Nothing is sent when validation fails.
func (s *submissionServiceImpl) ProcessSubmission(ctx context.Context, variant models.Variant, req models.SubmissionRequest) (string, error) {
	if err := variant.Validate(req); err != nil {
		return "", err
	}
	req = variant.Project(req)

	ref := s.newRef()
	log := s.logger.With(
		zap.String("ref", ref),
		zap.String("variant", variant.Key),
		zap.String("requester", utils.EmailRef(req.Email)))
	log.Info("Processing submission")

	n := email.Notification{
		Brand:      s.config.Brand,
		Variant:    variant,
		Request:    req,
		Reference:  ref,
		ReceivedAt: s.now().In(s.config.Location),
	}

	admin, err := s.buildMessage(ctx, s.config.AdminEmail, req.Email, email.AdminSubject(n), email.AdminNotification(n))
	if err != nil {
		return ref, err
	}
	ack, err := s.buildMessage(ctx, req.Email, s.config.AdminEmail, email.AcknowledgmentSubject(n), email.Acknowledgment(n))
	if err != nil {
		return ref, err
	}

	if err := s.mailer.Send(ctx, admin); err != nil {
		log.Error("Error sending admin notification", zap.Error(err))
		return ref, &DispatchError{Stage: StageAdmin, Err: err}
	}
	if err := s.mailer.Send(ctx, ack); err != nil {
		// the operator already has the request; only the requester copy is lost
		log.Error("Error sending acknowledgment, admin notification already delivered", zap.Error(err))
		return ref, &DispatchError{Stage: StageAcknowledgment, AdminDelivered: true, Err: err}
	}

	log.Info("Successfully sent admin notification and acknowledgment")
	return ref, nil
}

func (s *submissionServiceImpl) buildMessage(ctx context.Context, to, replyTo, subject string, body templ.Component) (*mailer.Message, error) {
	html, err := email.Render(ctx, body)
	if err != nil {
		return nil, err
	}
	return &mailer.Message{
		To:      to,
		ReplyTo: replyTo,
		Subject: subject,
		HTML:    html,
		Inline:  []mailer.Attachment{email.Logo()},
	}, nil
}

// IsValidation reports whether err came from required-field checking.
func IsValidation(err error) bool {
	var verr *models.ValidationError
	return errors.As(err, &verr)
}
