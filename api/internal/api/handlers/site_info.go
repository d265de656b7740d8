package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/core/domain"
)

type SiteInfoHandler struct {
	Service domain.SiteInfoRepository
}

func NewSiteInfoHandler(service domain.SiteInfoRepository) *SiteInfoHandler {
	return &SiteInfoHandler{Service: service}
}

// Get handles GET /api/site-info
func (h *SiteInfoHandler) Get(w http.ResponseWriter, r *http.Request) {
	info, err := h.Service.Get(r.Context())
	if err != nil {
		HandleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

// Update handles PUT /api/site-info. The body is any subset of the document.
func (h *SiteInfoHandler) Update(w http.ResponseWriter, r *http.Request) {
	patch, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("Site info is larger than %d bytes", tooLarge.Limit))
			return
		}
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	updated, err := h.Service.Update(r.Context(), patch)
	if err != nil {
		HandleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
