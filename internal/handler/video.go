package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5"

	"github.com/tubeboard/tubeboard-go/internal/middleware"
	"github.com/tubeboard/tubeboard-go/internal/service"
)

type VideoHandler struct {
	svc *service.VideoService
}

func NewVideoHandler(svc *service.VideoService) *VideoHandler {
	return &VideoHandler{svc: svc}
}

// List handles GET /api/videos
func (h *VideoHandler) List(c fiber.Ctx) error {
	filter, errMsg := middleware.ParseVideoFilter(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, errMsg)
	}

	videos, err := h.svc.List(c.Context(), filter)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list videos")
	}

	return c.JSON(videos)
}

// Get handles GET /api/videos/:id
func (h *VideoHandler) Get(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateVideoID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, errMsg)
	}

	video, err := h.svc.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Video not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to lookup video")
	}

	return c.JSON(video)
}
