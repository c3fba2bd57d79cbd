package analytics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	defaultDays  = 30
	maxDays      = 365
	defaultLimit = 10
	maxLimit     = 100
)

// Handler serves read statistics.
type Handler struct {
	store *Store
}

// NewHandler creates a new analytics handler.
func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// TopPosts returns the most read posts as JSON. Query: days (1-365,
// default 30) and limit (1-100, default 10).
func (h *Handler) TopPosts(c echo.Context) error {
	days := boundedInt(c.QueryParam("days"), defaultDays, maxDays)
	limit := boundedInt(c.QueryParam("limit"), defaultLimit, maxLimit)
	since := time.Now().UTC().AddDate(0, 0, -days)
	stats, err := h.store.TopPosts(since, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{
		"days":  days,
		"posts": stats,
	})
}

func boundedInt(raw string, fallback, max int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	if n > max {
		return max
	}
	return n
}

// RegisterRoutes mounts the statistics endpoints.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/reads", h.TopPosts)
}
