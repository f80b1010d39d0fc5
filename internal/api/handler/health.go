package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	mongodb "github.com/Cybrite/primetrade/internal/infrastructure/db/mongo"
)

const apiVersion = "1.0.0"

// HealthHandler serves the liveness banner and the storage health check.
type HealthHandler struct {
	db *mongo.Database
}

func NewHealthHandler(db *mongo.Database) *HealthHandler {
	return &HealthHandler{db: db}
}

type rootResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Version string `json:"version"`
}

type databaseStatus struct {
	Status string `json:"status"`
	Name   string `json:"name"`
}

type healthResponse struct {
	Success   bool           `json:"success"`
	Message   string         `json:"message"`
	Timestamp string         `json:"timestamp"`
	Database  databaseStatus `json:"database"`
}

// Root handles GET / — liveness banner.
func (h *HealthHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, rootResponse{
		Success: true,
		Message: "PrimeTrade API is running",
		Version: apiVersion,
	})
}

// Health handles GET /health — reports the storage connection status.
// Returns 503 when the database is unreachable.
func (h *HealthHandler) Health(c echo.Context) error {
	dbState := "connected"
	message := "API is healthy"
	status := http.StatusOK
	healthy := true

	if err := mongodb.Status(c.Request().Context(), h.db); err != nil {
		dbState = "disconnected"
		message = "API is unhealthy - Database disconnected"
		status = http.StatusServiceUnavailable
		healthy = false
	}

	return c.JSON(status, healthResponse{
		Success:   healthy,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Database: databaseStatus{
			Status: dbState,
			Name:   h.db.Name(),
		},
	})
}
