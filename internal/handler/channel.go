package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5"

	"github.com/tubeboard/tubeboard-go/internal/middleware"
	"github.com/tubeboard/tubeboard-go/internal/service"
)

type ChannelHandler struct {
	svc *service.ChannelService
}

func NewChannelHandler(svc *service.ChannelService) *ChannelHandler {
	return &ChannelHandler{svc: svc}
}

// List handles GET /api/channels
func (h *ChannelHandler) List(c fiber.Ctx) error {
	filter, errMsg := middleware.ParseChannelFilter(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, errMsg)
	}

	channels, err := h.svc.List(c.Context(), filter)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list channels")
	}

	return c.JSON(channels)
}

// Get handles GET /api/channels/:id
func (h *ChannelHandler) Get(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateChannelID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, errMsg)
	}

	channel, err := h.svc.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Channel not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to lookup channel")
	}

	return c.JSON(channel)
}

// Stats handles GET /api/channels/:id/stats
func (h *ChannelHandler) Stats(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateChannelID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, errMsg)
	}

	// The channel must exist even when it has no snapshots yet.
	if _, err := h.svc.Get(c.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Channel not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch channel stats")
	}

	stats, err := h.svc.Stats(c.Context(), id)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch channel stats")
	}

	return c.JSON(stats)
}
