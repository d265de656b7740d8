package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/core/domain"
	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/storage/jsonfile"
)

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HandleError maps service errors to a status code and a message the admin
// panel can show next to the form that failed.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		writeErr *jsonfile.WriteError
		invalid  validator.ValidationErrors
	)

	switch {
	case errors.Is(err, domain.ErrTariffNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, domain.ErrInvalidPassword):
		writeError(w, http.StatusUnauthorized, "Invalid password")
	case errors.Is(err, domain.ErrNoFile):
		writeError(w, http.StatusBadRequest, "No file")
	case errors.Is(err, domain.ErrUnsupportedUpload):
		writeError(w, http.StatusBadRequest, "Unsupported file type")
	case errors.Is(err, domain.ErrInvalidDocument):
		writeError(w, http.StatusBadRequest, domain.ErrInvalidDocument.Error())
	case errors.As(err, &invalid):
		writeError(w, http.StatusBadRequest, describeValidation(invalid))
	case errors.As(err, &writeErr):
		logServerError(r, err)
		msg := writeErr.Hint()
		if msg == "" {
			msg = writeErr.Error()
		}
		writeError(w, http.StatusInternalServerError, msg)
	default:
		logServerError(r, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func logServerError(r *http.Request, err error) {
	slog.Default().Error("Request failed",
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("error", err.Error()),
	)
}

func describeValidation(errs validator.ValidationErrors) string {
	parts := make([]string, 0, len(errs))
	for _, fe := range errs {
		switch fe.Tag() {
		case "currency_code":
			parts = append(parts, fmt.Sprintf("%s: unsupported currency %v", fe.Field(), fe.Value()))
		case "tariff_period":
			parts = append(parts, fmt.Sprintf("%s: unknown period %v", fe.Field(), fe.Value()))
		default:
			parts = append(parts, fmt.Sprintf("%s: failed %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
