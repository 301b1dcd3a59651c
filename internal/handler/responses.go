package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/osse101/CyberClicker_Go/internal/cooldown"
	"github.com/osse101/CyberClicker_Go/internal/domain"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// CommandErrorResponse is a rejected command plus the notifications it raised
type CommandErrorResponse struct {
	Error         string                `json:"error"`
	Notifications []domain.Notification `json:"notifications,omitempty"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondCommandError writes a rejected or failed command
func respondCommandError(w http.ResponseWriter, r *http.Request, opName string, err error, notifications []domain.Notification) {
	status, message := mapServiceErrorToUserMessage(err)
	log := loggerFor(r)
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgCommandFailed, "operation", opName, "error", err)
	} else {
		log.Debug(LogMsgCommandRejected, "operation", opName, "error", err)
	}
	if left, ok := cooldown.RemainingFrom(err); ok {
		w.Header().Set("Retry-After", strconv.Itoa(int(left.Seconds())+1))
	}
	respondJSON(w, status, CommandErrorResponse{Error: message, Notifications: notifications})
}

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and messages.
// Gameplay rejections carry the engine's own message since it names the item and price.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidName),
		errors.Is(err, domain.ErrInvalidLanguage):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrUnknownUpgrade),
		errors.Is(err, domain.ErrUnknownSkin),
		errors.Is(err, domain.ErrUnknownCase),
		errors.Is(err, domain.ErrAntiEffectNotActive),
		errors.Is(err, domain.ErrThemeNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrClickBlocked),
		errors.Is(err, domain.ErrUpgradesLocked),
		errors.Is(err, domain.ErrUpgradeBlocked),
		errors.Is(err, domain.ErrCategoryLocked),
		errors.Is(err, domain.ErrSkinLocked),
		errors.Is(err, domain.ErrCaseLocked),
		errors.Is(err, domain.ErrDesktopLocked),
		errors.Is(err, domain.ErrThemesLocked):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrAlreadyOwned),
		errors.Is(err, domain.ErrSkinNotOwned),
		errors.Is(err, domain.ErrPrestigeRequirements),
		errors.Is(err, domain.ErrNotEnoughProgress):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrOnCooldown):
		return http.StatusTooManyRequests, ErrMsgOnCooldownError
	case errors.Is(err, domain.ErrSessionClosed):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
