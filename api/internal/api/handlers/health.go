package handlers

import (
	"net/http"
)

// WritableProbe reports whether the data directory accepts writes.
type WritableProbe interface {
	Writable() error
}

type HealthHandler struct {
	Data WritableProbe
}

func NewHealthHandler(data WritableProbe) *HealthHandler {
	return &HealthHandler{Data: data}
}

// Check handles GET /health. Reads always succeed thanks to defaults, so the
// only thing that can make the site unhealthy is a read-only data directory.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.Data.Writable(); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("unhealthy: data directory is not writable"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("healthy"))
}
