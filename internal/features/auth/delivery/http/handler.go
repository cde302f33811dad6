package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"push-backend/internal/common/middleware"
	"push-backend/internal/features/auth/models"
	"push-backend/internal/features/auth/service"
)

type Handler struct {
	service *service.Service
}

func NewHandler(service *service.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.GET("/challenge", h.Challenge)
		auth.POST("/verify", h.Verify)
	}
}

// @Summary Issue login challenge
// @Description Produce a time-bounded sign-in-with-wallet challenge message for an address
// @Tags auth
// @Produce json
// @Param address query string true "Wallet address (base58 public key)"
// @Success 200 {object} models.ChallengeResponse
// @Failure 400 {object} models.ErrorResponse "Missing address"
// @Router /auth/challenge [get]
func (h *Handler) Challenge(c *gin.Context) {
	resp, err := h.service.Challenge(c.Query("address"))
	if err != nil {
		middleware.HTTPError(c, err, "challenge_failed")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Verify signed challenge
// @Description Verify a wallet signature over the challenge message and mint a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body models.VerifyRequest true "Signed challenge"
// @Success 200 {object} models.VerifyResponse
// @Failure 400 {object} models.ErrorResponse "Missing fields or unparseable expiry"
// @Failure 401 {object} models.ErrorResponse "Bad signature or expired challenge"
// @Router /auth/verify [post]
func (h *Handler) Verify(c *gin.Context) {
	var req models.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_fields"})
		return
	}

	resp, err := h.service.Verify(&req)
	if err != nil {
		middleware.HTTPError(c, err, "verify_failed")
		return
	}
	c.JSON(http.StatusOK, resp)
}
