package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"push-backend/internal/common/middleware"
	"push-backend/internal/features/snapshot/service"
)

type Handler struct {
	service *service.Service
}

func NewHandler(service *service.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(router *gin.RouterGroup, adminKey gin.HandlerFunc) {
	admin := router.Group("/admin")
	admin.Use(adminKey)
	{
		admin.GET("/snapshot", h.Snapshot)
	}
}

// @Summary Operational snapshot
// @Description Dump the points ledger and airdrop registry
// @Tags admin
// @Produce json
// @Security AdminKey
// @Success 200 {object} service.Snapshot
// @Failure 401 {object} map[string]string "Missing or wrong admin key"
// @Router /admin/snapshot [get]
func (h *Handler) Snapshot(c *gin.Context) {
	snap, err := h.service.Snapshot(c.Request.Context())
	if err != nil {
		middleware.HTTPError(c, err, "snapshot_failed")
		return
	}
	c.JSON(http.StatusOK, snap)
}
