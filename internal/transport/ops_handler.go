package transport

import (
	"context"
	"net/http"

	"shopifyte/internal/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// DatabaseStatus is the part of the database service the ops endpoints report on
type DatabaseStatus interface {
	Health(ctx context.Context) map[string]string
	SchemaVersion(ctx context.Context) (int64, error)
}

// SchemaVersionResponse represents the schema version payload
type SchemaVersionResponse struct {
	Version int64 `json:"version"`
}

// OpsHandler serves liveness, database health and schema version
type OpsHandler struct {
	db     DatabaseStatus
	logger *zap.Logger
}

// NewOpsHandler creates a new OpsHandler
func NewOpsHandler(db DatabaseStatus, logger *zap.Logger) *OpsHandler {
	return &OpsHandler{
		db:     db,
		logger: logger,
	}
}

// RegisterRoutes registers the ops routes
func (h *OpsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.Health)
	r.Get("/health/db", h.DatabaseHealth)
	r.Get("/schema/version", h.SchemaVersion)
}

// Health reports that the process is serving
func (h *OpsHandler) Health(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// DatabaseHealth returns the database health map, with 503 when the database is down
func (h *OpsHandler) DatabaseHealth(w http.ResponseWriter, r *http.Request) {
	health := h.db.Health(r.Context())

	status := http.StatusOK
	if health["status"] != "up" {
		h.logger.Warn("Database reported unhealthy", zap.Any("health", health))
		status = http.StatusServiceUnavailable
	}

	middleware.RespondWithJSON(w, status, health)
}

// SchemaVersion returns the version of the last applied migration
func (h *OpsHandler) SchemaVersion(w http.ResponseWriter, r *http.Request) {
	version, err := h.db.SchemaVersion(r.Context())
	if err != nil {
		middleware.RespondWithDomainError(w, h.logger, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, SchemaVersionResponse{Version: version})
}
