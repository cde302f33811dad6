package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"push-backend/internal/common/middleware"
	"push-backend/internal/features/leaderboard/service"
)

type Handler struct {
	service *service.Service
}

func NewHandler(service *service.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/leaderboard", h.Get)
}

// @Summary Points leaderboard
// @Description Top 100 wallets ordered by cumulative points
// @Tags leaderboard
// @Produce json
// @Success 200 {object} service.LeaderboardResponse
// @Router /leaderboard [get]
func (h *Handler) Get(c *gin.Context) {
	resp, err := h.service.Leaderboard(c.Request.Context())
	if err != nil {
		middleware.HTTPError(c, err, "leaderboard_failed")
		return
	}
	c.JSON(http.StatusOK, resp)
}
