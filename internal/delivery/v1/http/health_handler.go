package http

import (
	"context"
	"net/http"

	"github.com/viniciuslidington/marketplace-database/pkg/e"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

type rootResponse struct {
	Service string `json:"service"`
	Version string `json:"version"`
}

// Root handles GET /.
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, rootResponse{
		Service: "marketplace-database",
		Version: "v1",
	})
}

// Health handles GET /health. A failed ping answers 503 so load
// balancers pull the instance out of rotation.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		WriteError(w, e.Wrap("Ping", e.ErrStoreUnavailable))
		return
	}

	WriteSuccess(w, http.StatusOK, healthResponse{
		Status:   "ok",
		Database: "connected",
	})
}
