package handlers

import (
	"net/http"

	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/adapter/http/mapper"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/adapter/http/middleware"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/core/ports"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	dashboardService ports.DashboardService
}

func NewDashboardHandler(dashboardService ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats is always computed fresh; dashboard responses are never cached.
func (h *DashboardHandler) Stats(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	stats, err := h.dashboardService.Stats(c.Request.Context(), userID)
	if err != nil {
		respondDomainError(c, lang, err, "failed to build dashboard", zap.Uint64("user_id", userID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToDashboard(stats))
}
