package api

import (
	"github.com/gin-gonic/gin"

	"site-mailer/pkg/models"
)

// APIPrefix is where every endpoint is mounted.
const APIPrefix = "/api"

// RegisterRoutes mounts the liveness endpoint and one POST per form variant.
func (h *Handlers) RegisterRoutes(router gin.IRouter) {
	api := router.Group(APIPrefix)
	api.GET("/health", h.HealthCheck)
	for _, v := range models.Variants {
		api.POST(v.Path, h.HandleSubmission(v))
	}
}
