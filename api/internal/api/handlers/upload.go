package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/core/domain"
)

// MaxUploadBytes bounds a single logo upload.
const MaxUploadBytes = 10 << 20

type UploadHandler struct {
	Store    domain.UploadStore
	Notifier domain.ChangeNotifier
	Logger   *slog.Logger
}

func NewUploadHandler(store domain.UploadStore, notifier domain.ChangeNotifier, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{Store: store, Notifier: notifier, Logger: logger}
}

// Upload handles POST /api/upload with a multipart "file" part.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			HandleError(w, r, domain.ErrNoFile)
			return
		}
		h.Logger.Error("Failed to read upload", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Upload failed")
		return
	}
	defer file.Close()

	url, err := h.Store.Save(r.Context(), header.Filename, file)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedUpload) {
			HandleError(w, r, err)
			return
		}
		h.Logger.Error("Failed to store upload", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Upload failed")
		return
	}

	h.Logger.Info("Logo uploaded", slog.String("url", url))
	h.Notifier.Publish(domain.ChangeUpload)
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}
