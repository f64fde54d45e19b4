package health

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// CycleReporter reports when the latest balance cycle completed.
type CycleReporter interface {
	LastCycle() time.Time
}

type Handler struct {
	reporter CycleReporter
}

// NewHandler accepts a nil reporter, in which case last_cycle is always empty.
func NewHandler(reporter CycleReporter) *Handler {
	return &Handler{reporter: reporter}
}

func (h *Handler) SetupRoutes(router fiber.Router) {
	router.Get("/health", h.HealthCheckHandler)
}

func (h *Handler) HealthCheckHandler(c *fiber.Ctx) error {
	lastCycle := ""
	if h.reporter != nil {
		if t := h.reporter.LastCycle(); !t.IsZero() {
			lastCycle = t.UTC().Format(time.RFC3339)
		}
	}

	return c.JSON(fiber.Map{"status": "OK", "last_cycle": lastCycle})
}
