package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/core/domain"
)

type TariffHandler struct {
	Service domain.TariffRepository
}

func NewTariffHandler(service domain.TariffRepository) *TariffHandler {
	return &TariffHandler{Service: service}
}

// List handles GET /api/tariffs
func (h *TariffHandler) List(w http.ResponseWriter, r *http.Request) {
	tariffs, err := h.Service.List(r.Context())
	if err != nil {
		HandleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tariffs)
}

// Create handles POST /api/tariffs
func (h *TariffHandler) Create(w http.ResponseWriter, r *http.Request) {
	patch, ok := decodeTariffPatch(w, r)
	if !ok {
		return
	}

	created, err := h.Service.Create(r.Context(), patch)
	if err != nil {
		HandleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}

// Update handles PUT /api/tariffs/{id}
func (h *TariffHandler) Update(w http.ResponseWriter, r *http.Request) {
	patch, ok := decodeTariffPatch(w, r)
	if !ok {
		return
	}

	updated, err := h.Service.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		HandleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/tariffs/{id}
func (h *TariffHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		HandleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func decodeTariffPatch(w http.ResponseWriter, r *http.Request) (domain.TariffPatch, bool) {
	var patch domain.TariffPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return patch, false
	}
	if err := validate.Struct(patch); err != nil {
		HandleError(w, r, err)
		return patch, false
	}
	return patch, true
}
