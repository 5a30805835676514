package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/tubeboard/tubeboard-go/internal/middleware"
	"github.com/tubeboard/tubeboard-go/internal/service"
)

type RankingHandler struct {
	svc *service.RankingService
}

func NewRankingHandler(svc *service.RankingService) *RankingHandler {
	return &RankingHandler{svc: svc}
}

// SuperChat handles GET /api/rankings/super-chat
func (h *RankingHandler) SuperChat(c fiber.Ctx) error {
	period, limit, errMsg := middleware.ParseRankingQuery(c, true)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, errMsg)
	}

	start := time.Now()
	rankings, err := h.svc.SuperChatRankings(c.Context(), period, limit)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to compute revenue rankings")
	}
	observeRanking("super-chat", time.Since(start))

	return c.JSON(rankings)
}

// Growth handles GET /api/rankings/growth
func (h *RankingHandler) Growth(c fiber.Ctx) error {
	period, limit, errMsg := middleware.ParseRankingQuery(c, false)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, errMsg)
	}

	start := time.Now()
	rankings, err := h.svc.GrowthRankings(c.Context(), period, limit)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to compute growth rankings")
	}
	observeRanking("growth", time.Since(start))

	return c.JSON(rankings)
}

func observeRanking(board string, d time.Duration) {
	if Metrics.RankingDuration != nil {
		Metrics.RankingDuration.WithLabelValues(board).Observe(d.Seconds())
	}
}
