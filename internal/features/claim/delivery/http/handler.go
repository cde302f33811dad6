package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"push-backend/internal/common/middleware"
	"push-backend/internal/features/claim/models"
	"push-backend/internal/features/claim/service"
)

type Handler struct {
	service *service.Service
}

func NewHandler(service *service.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(router *gin.RouterGroup, sessionAuth gin.HandlerFunc) {
	claims := router.Group("/claims")
	claims.Use(sessionAuth)
	{
		claims.POST("", h.Submit)
	}
}

// @Summary Submit ride claim
// @Description Validate a signed ride proof and award points to its wallet
// @Tags claims
// @Accept json
// @Produce json
// @Security BearerToken
// @Param body body models.ClaimRequest true "Signed ride proof"
// @Success 200 {object} models.ClaimResponse
// @Failure 400 {object} models.ErrorResponse "Out-of-range proof, unrealistic speed or bad timing"
// @Failure 401 {object} models.ErrorResponse "Missing session or bad proof signature"
// @Failure 409 {object} models.ErrorResponse "Proof already claimed"
// @Router /claims [post]
func (h *Handler) Submit(c *gin.Context) {
	var req models.ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_input"})
		return
	}

	resp, err := h.service.Claim(c.Request.Context(), &req)
	if err != nil {
		middleware.HTTPError(c, err, "claim_failed")
		return
	}
	c.JSON(http.StatusOK, resp)
}
