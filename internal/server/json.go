package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"

	"github.com/xolan/clocksheet/internal/clockify"
	"github.com/xolan/clocksheet/internal/service"
	"github.com/xolan/clocksheet/internal/sheet"
)

type errResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := sonic.Marshal(v)
	if err != nil {
		slog.Error("json encode failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func writeRawJSON(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// statusFor maps service errors onto HTTP status codes
func statusFor(err error) int {
	var upstream *clockify.StatusError
	switch {
	case errors.Is(err, sheet.ErrUnknownSheet), errors.Is(err, sheet.ErrEmptyWorkbook):
		return http.StatusNotFound
	case errors.Is(err, clockify.ErrMissingCredentials):
		return http.StatusServiceUnavailable
	case errors.As(err, &upstream):
		return http.StatusBadGateway
	case errors.Is(err, service.ErrNotLocal):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error(msg, "path", r.URL.Path, "error", err)
	}
	writeJSON(w, status, errResponse{Error: msg + ": " + err.Error()})
}
