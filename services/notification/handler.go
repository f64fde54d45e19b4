package notification

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const defaultAlertLimit = 50

type Handler struct {
	repository Repository
}

func NewHandler(repository Repository) (*Handler, error) {
	if repository == nil {
		return nil, errors.New("[notification_handler] invalid repository")
	}

	return &Handler{repository: repository}, nil
}

func (h *Handler) SetupRoutes(router fiber.Router) {
	router.Get("/alerts", h.GetAlertsHandler)
}

func (h *Handler) GetAlertsHandler(c *fiber.Ctx) error {
	limit := int64(defaultAlertLimit)
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid limit"})
		}
		limit = v
	}

	alerts, err := h.repository.GetAlertList(c.UserContext(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(alerts)
}
