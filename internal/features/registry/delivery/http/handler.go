package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"push-backend/internal/common/middleware"
	"push-backend/internal/features/registry/models"
	"push-backend/internal/features/registry/service"
)

type Handler struct {
	service *service.Service
}

func NewHandler(service *service.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(router *gin.RouterGroup, sessionAuth gin.HandlerFunc) {
	router.POST("/signup", h.Signup)

	airdrop := router.Group("/airdrop")
	airdrop.Use(sessionAuth)
	{
		airdrop.POST("/register", h.RegisterAirdrop)
	}
}

// @Summary Waitlist signup
// @Description Register or update a waitlist entry for a wallet
// @Tags registry
// @Accept json
// @Produce json
// @Param body body models.SignupRequest true "Signup entry"
// @Success 200 {object} models.OKResponse
// @Failure 400 {object} models.ErrorResponse "Invalid wallet, name or email"
// @Router /signup [post]
func (h *Handler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_input"})
		return
	}

	if err := h.service.Signup(c.Request.Context(), &req); err != nil {
		middleware.HTTPError(c, err, "signup_failed")
		return
	}
	c.JSON(http.StatusOK, models.OKResponse{OK: true})
}

// @Summary Airdrop registration
// @Description Register or update the authenticated wallet's airdrop details
// @Tags registry
// @Accept json
// @Produce json
// @Security BearerToken
// @Param body body models.AirdropRequest true "Airdrop details"
// @Success 200 {object} models.OKResponse
// @Failure 400 {object} models.ErrorResponse "Invalid email, twitter or ref"
// @Failure 401 {object} models.ErrorResponse "Missing or invalid session"
// @Router /airdrop/register [post]
func (h *Handler) RegisterAirdrop(c *gin.Context) {
	var req models.AirdropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_input"})
		return
	}

	if err := h.service.RegisterAirdrop(c.Request.Context(), middleware.Address(c), &req); err != nil {
		middleware.HTTPError(c, err, "register_failed")
		return
	}
	c.JSON(http.StatusOK, models.OKResponse{OK: true})
}
