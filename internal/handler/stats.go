package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/tubeboard/tubeboard-go/internal/middleware"
	"github.com/tubeboard/tubeboard-go/internal/repository"
)

type StatsHandler struct {
	repo *repository.StatsRepo
}

func NewStatsHandler(repo *repository.StatsRepo) *StatsHandler {
	return &StatsHandler{repo: repo}
}

// Overview handles GET /api/stats — aggregate totals for the landing page.
func (h *StatsHandler) Overview(c fiber.Ctx) error {
	overview, err := h.repo.Overview(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch statistics")
	}

	return c.JSON(overview)
}
