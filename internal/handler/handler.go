// Package handler implements the HTTP API of the game.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/CyberClicker_Go/internal/clock"
	"github.com/osse101/CyberClicker_Go/internal/domain"
	"github.com/osse101/CyberClicker_Go/internal/session"
)

// Sessions hands out the running session of a player
type Sessions interface {
	Get(ctx context.Context, playerID string) (*session.Session, error)
}

// GameHandler serves the per-player routes
type GameHandler struct {
	sessions Sessions
	clock    clock.Clock
}

// NewGameHandler creates the game handler. A nil clock uses the wall clock.
func NewGameHandler(sessions Sessions, clk clock.Clock) *GameHandler {
	if clk == nil {
		clk = clock.Real{}
	}
	return &GameHandler{sessions: sessions, clock: clk}
}

// withSession runs fn against the player's session. A session evicted between
// lookup and use is closed, so the call is retried once on a fresh one.
func withSession[T any](ctx context.Context, sessions Sessions, playerID string, fn func(*session.Session) (T, error)) (T, error) {
	var zero T
	for attempt := 0; ; attempt++ {
		s, err := sessions.Get(ctx, playerID)
		if err != nil {
			return zero, err
		}
		res, err := fn(s)
		if attempt == 0 && errors.Is(err, domain.ErrSessionClosed) {
			continue
		}
		return res, err
	}
}

// command runs one state-changing operation and writes its outcome
func command[T any](h *GameHandler, w http.ResponseWriter, r *http.Request, opName string,
	fn func(ctx context.Context, s *session.Session) (session.Outcome[T], error)) {
	playerID := playerIDParam(r)
	if playerID == "" {
		respondError(w, http.StatusBadRequest, ErrMsgMissingPlayerID)
		return
	}

	out, err := withSession(r.Context(), h.sessions, playerID, func(s *session.Session) (session.Outcome[T], error) {
		return fn(r.Context(), s)
	})
	if err != nil {
		respondCommandError(w, r, opName, err, out.Notifications)
		return
	}
	respondJSON(w, http.StatusOK, out)
}

// query runs a read-only operation
func query[T any](h *GameHandler, w http.ResponseWriter, r *http.Request, opName string,
	fn func(ctx context.Context, s *session.Session) (T, error)) {
	playerID := playerIDParam(r)
	if playerID == "" {
		respondError(w, http.StatusBadRequest, ErrMsgMissingPlayerID)
		return
	}

	res, err := withSession(r.Context(), h.sessions, playerID, func(s *session.Session) (T, error) {
		return fn(r.Context(), s)
	})
	if err != nil {
		respondCommandError(w, r, opName, err, nil)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// Mount registers the per-player routes; the router must carry a {playerID} parameter
func (h *GameHandler) Mount(r chi.Router) {
	r.Get("/state", h.HandleGetState)
	r.Post("/click", h.HandleClick)
	r.Post("/upgrades/{upgradeID}/buy", h.HandleBuyUpgrade)
	r.Post("/skins/{skinID}/buy", h.HandleBuySkin)
	r.Post("/skins/{skinID}/apply", h.HandleApplySkin)
	r.Post("/cases/{tier}/open", h.HandleOpenCase)
	r.Post("/wheel/spin", h.HandleSpinWheel)
	r.Get("/wheel", h.HandleWheelStatus)
	r.Get("/prestige", h.HandlePrestigePreview)
	r.Post("/prestige", h.HandlePrestige)
	r.Post("/anti-effects/{effectID}/fix", h.HandleFixAntiEffect)
	r.Put("/name", h.HandleRename)
	r.Patch("/settings", h.HandleUpdateSettings)
	r.Post("/themes", h.HandleSaveTheme)
	r.Post("/themes/{themeID}/apply", h.HandleApplyTheme)
	r.Delete("/themes/{themeID}", h.HandleDeleteTheme)
	r.Post("/save", h.HandleSave)
	r.Post("/reset", h.HandleReset)
}
