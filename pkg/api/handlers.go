package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"site-mailer/pkg/models"
	"site-mailer/pkg/services"
)

// TimestampLayout matches JavaScript's Date.toISOString.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	submissionService services.SubmissionService
	logger            *zap.Logger
	now               func() time.Time
}

// NewHandlers creates a new Handlers instance
func NewHandlers(submissionService services.SubmissionService, logger *zap.Logger) *Handlers {
	return &Handlers{
		submissionService: submissionService,
		logger:            logger,
		now:               time.Now,
	}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthStatus{
		Status:    "ok",
		Timestamp: h.now().UTC().Format(TimestampLayout),
	})
}

// HandleSubmission returns the handler for one form variant.
func (h *Handlers) HandleSubmission(variant models.Variant) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				h.logger.Error("panic while processing submission",
					zap.String("variant", variant.Key), zap.Any("panic", r))
				c.AbortWithStatusJSON(http.StatusInternalServerError, failure(variant.FailureMessage))
			}
		}()

		var req models.SubmissionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warn("Error parsing JSON", zap.String("variant", variant.Key), zap.Error(err))
			c.JSON(http.StatusBadRequest, failure("Invalid request body"))
			return
		}

		// Sends run to completion even if the caller goes away; the mailer's
		// own timeout bounds them.
		ctx := context.WithoutCancel(c.Request.Context())
		_, err := h.submissionService.ProcessSubmission(ctx, variant, req)
		if err != nil {
			var verr *models.ValidationError
			if errors.As(err, &verr) {
				c.JSON(http.StatusBadRequest, failure(verr.Message))
				return
			}
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, failure(variant.FailureMessage))
			return
		}

		c.JSON(http.StatusOK, models.SubmissionResult{
			Success: true,
			Message: variant.SuccessMessage,
		})
	}
}

func failure(msg string) models.SubmissionResult {
	return models.SubmissionResult{Success: false, Error: msg}
}
