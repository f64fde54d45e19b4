package statusbar

import (
	"errors"
	"time"

	"wallet-monitor/services/balance"

	"github.com/gofiber/fiber/v2"
)

type LineSource interface {
	Line() string
}

type Handler struct {
	store *balance.Store
	lines LineSource
}

type balanceResponse struct {
	Address   string `json:"address"`
	Display   string `json:"display"`
	Balance   string `json:"balance"`
	Known     bool   `json:"known"`
	UpdatedAt string `json:"updated_at"`
}

func NewHandler(store *balance.Store, lines LineSource) (*Handler, error) {
	if store == nil {
		return nil, errors.New("[statusbar_handler] invalid store")
	}
	if lines == nil {
		return nil, errors.New("[statusbar_handler] invalid line source")
	}

	return &Handler{store: store, lines: lines}, nil
}

func (h *Handler) SetupRoutes(router fiber.Router) {
	router.Get("/balances", h.GetBalancesHandler)
	router.Get("/status", h.GetStatusHandler)
}

func (h *Handler) GetBalancesHandler(c *fiber.Ctx) error {
	snapshot := h.store.SnapshotAll()

	res := make([]balanceResponse, 0, len(snapshot))
	for _, address := range h.store.Addresses() {
		entry := snapshot[address]

		item := balanceResponse{
			Address: address,
			Display: balance.TruncateAddress(address),
			Known:   entry.Known,
		}
		if entry.Known {
			item.Balance = entry.Balance.String()
			item.UpdatedAt = entry.UpdatedAt.Format(time.RFC3339)
		}
		res = append(res, item)
	}

	return c.JSON(res)
}

func (h *Handler) GetStatusHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"line": h.lines.Line()})
}
