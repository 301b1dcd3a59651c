package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/CyberClicker_Go/internal/domain"
	"github.com/osse101/CyberClicker_Go/internal/game"
	"github.com/osse101/CyberClicker_Go/internal/prestige"
	"github.com/osse101/CyberClicker_Go/internal/session"
)

// HandleGetState returns the player's state and derived view
// @Summary Game state
// @Tags game
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} game.View
// @Router /api/v1/players/{playerID}/state [get]
func (h *GameHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	query(h, w, r, "get state", func(ctx context.Context, s *session.Session) (game.View, error) {
		return s.View(ctx)
	})
}

// HandleClick resolves one manual click
// @Summary Click
// @Tags game
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} session.Outcome[game.ClickResult]
// @Failure 403 {object} CommandErrorResponse
// @Router /api/v1/players/{playerID}/click [post]
func (h *GameHandler) HandleClick(w http.ResponseWriter, r *http.Request) {
	command(h, w, r, "click", func(ctx context.Context, s *session.Session) (session.Outcome[game.ClickResult], error) {
		return s.Click(ctx)
	})
}

// HandleBuyUpgrade buys one level of an upgrade
// @Summary Buy upgrade
// @Tags game
// @Produce json
// @Param playerID path string true "Player ID"
// @Param upgradeID path string true "Upgrade ID"
// @Success 200 {object} session.Outcome[float64]
// @Failure 403 {object} CommandErrorResponse
// @Failure 404 {object} CommandErrorResponse
// @Failure 409 {object} CommandErrorResponse
// @Router /api/v1/players/{playerID}/upgrades/{upgradeID}/buy [post]
func (h *GameHandler) HandleBuyUpgrade(w http.ResponseWriter, r *http.Request) {
	id := domain.UpgradeID(chi.URLParam(r, "upgradeID"))
	command(h, w, r, "buy upgrade", func(ctx context.Context, s *session.Session) (session.Outcome[float64], error) {
		return s.BuyUpgrade(ctx, id)
	})
}

// HandleBuySkin unlocks a skin
// @Summary Buy skin
// @Tags game
// @Produce json
// @Param playerID path string true "Player ID"
// @Param skinID path string true "Skin ID"
// @Success 200 {object} session.Outcome[domain.SkinID]
// @Failure 409 {object} CommandErrorResponse
// @Router /api/v1/players/{playerID}/skins/{skinID}/buy [post]
func (h *GameHandler) HandleBuySkin(w http.ResponseWriter, r *http.Request) {
	id := domain.SkinID(chi.URLParam(r, "skinID"))
	command(h, w, r, "buy skin", func(ctx context.Context, s *session.Session) (session.Outcome[domain.SkinID], error) {
		return s.BuySkin(ctx, id)
	})
}

// HandleApplySkin switches the active skin
// @Summary Apply skin
// @Tags game
// @Produce json
// @Param playerID path string true "Player ID"
// @Param skinID path string true "Skin ID"
// @Success 200 {object} session.Outcome[domain.SkinID]
// @Failure 409 {object} CommandErrorResponse
// @Router /api/v1/players/{playerID}/skins/{skinID}/apply [post]
func (h *GameHandler) HandleApplySkin(w http.ResponseWriter, r *http.Request) {
	id := domain.SkinID(chi.URLParam(r, "skinID"))
	command(h, w, r, "apply skin", func(ctx context.Context, s *session.Session) (session.Outcome[domain.SkinID], error) {
		return s.ApplySkin(ctx, id)
	})
}

// HandleOpenCase opens one case
// @Summary Open case
// @Tags game
// @Produce json
// @Param playerID path string true "Player ID"
// @Param tier path string true "Case tier"
// @Success 200 {object} session.Outcome[game.CaseResult]
// @Failure 403 {object} CommandErrorResponse
// @Failure 409 {object} CommandErrorResponse
// @Router /api/v1/players/{playerID}/cases/{tier}/open [post]
func (h *GameHandler) HandleOpenCase(w http.ResponseWriter, r *http.Request) {
	tier := domain.CaseTier(chi.URLParam(r, "tier"))
	command(h, w, r, "open case", func(ctx context.Context, s *session.Session) (session.Outcome[game.CaseResult], error) {
		return s.OpenCase(ctx, tier)
	})
}

// HandleSpinWheel spins the fortune wheel
// @Summary Spin wheel
// @Tags game
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} session.Outcome[game.WheelResult]
// @Failure 429 {object} CommandErrorResponse
// @Router /api/v1/players/{playerID}/wheel/spin [post]
func (h *GameHandler) HandleSpinWheel(w http.ResponseWriter, r *http.Request) {
	command(h, w, r, "spin wheel", func(ctx context.Context, s *session.Session) (session.Outcome[game.WheelResult], error) {
		return s.SpinWheel(ctx)
	})
}

// HandleWheelStatus reports the wheel cooldown
// @Summary Wheel cooldown
// @Tags game
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} WheelStatusResponse
// @Router /api/v1/players/{playerID}/wheel [get]
func (h *GameHandler) HandleWheelStatus(w http.ResponseWriter, r *http.Request) {
	query(h, w, r, "wheel status", func(ctx context.Context, s *session.Session) (WheelStatusResponse, error) {
		readyAt, err := s.WheelStatus(ctx)
		if err != nil {
			return WheelStatusResponse{}, err
		}
		return wheelStatus(readyAt, h.clock.Now()), nil
	})
}

func wheelStatus(readyAt *time.Time, now time.Time) WheelStatusResponse {
	if readyAt == nil || !readyAt.After(now) {
		return WheelStatusResponse{Ready: true}
	}
	ms := readyAt.UnixMilli()
	return WheelStatusResponse{
		ReadyAt:          &ms,
		RemainingSeconds: int(readyAt.Sub(now).Seconds() + 0.999),
	}
}

// HandlePrestigePreview describes what prestiging would do
// @Summary Prestige preview
// @Tags game
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} prestige.Summary
// @Router /api/v1/players/{playerID}/prestige [get]
func (h *GameHandler) HandlePrestigePreview(w http.ResponseWriter, r *http.Request) {
	query(h, w, r, "prestige preview", func(ctx context.Context, s *session.Session) (prestige.Summary, error) {
		return s.PrestigePreview(ctx)
	})
}

// HandlePrestige resets progress for robocoins
// @Summary Prestige
// @Tags game
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} session.Outcome[float64]
// @Failure 409 {object} CommandErrorResponse
// @Router /api/v1/players/{playerID}/prestige [post]
func (h *GameHandler) HandlePrestige(w http.ResponseWriter, r *http.Request) {
	command(h, w, r, "prestige", func(ctx context.Context, s *session.Session) (session.Outcome[float64], error) {
		return s.Prestige(ctx)
	})
}

// HandleFixAntiEffect pays to remove an active anti-effect
// @Summary Fix anti-effect
// @Tags game
// @Produce json
// @Param playerID path string true "Player ID"
// @Param effectID path string true "Anti-effect ID"
// @Success 200 {object} session.Outcome[string]
// @Failure 404 {object} CommandErrorResponse
// @Failure 409 {object} CommandErrorResponse
// @Router /api/v1/players/{playerID}/anti-effects/{effectID}/fix [post]
func (h *GameHandler) HandleFixAntiEffect(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "effectID")
	command(h, w, r, "fix anti-effect", func(ctx context.Context, s *session.Session) (session.Outcome[string], error) {
		return s.FixAntiEffect(ctx, id)
	})
}

// HandleRename changes the player name
// @Summary Rename player
// @Tags profile
// @Accept json
// @Produce json
// @Param playerID path string true "Player ID"
// @Param request body RenameRequest true "New name"
// @Success 200 {object} session.Outcome[string]
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/players/{playerID}/name [put]
func (h *GameHandler) HandleRename(w http.ResponseWriter, r *http.Request) {
	var req RenameRequest
	if err := DecodeAndValidateRequest(r, w, &req, "rename"); err != nil {
		return
	}
	command(h, w, r, "rename", func(ctx context.Context, s *session.Session) (session.Outcome[string], error) {
		return s.Rename(ctx, req.Name)
	})
}

// HandleUpdateSettings applies a partial settings change
// @Summary Update settings
// @Tags profile
// @Accept json
// @Produce json
// @Param playerID path string true "Player ID"
// @Param request body SettingsRequest true "Settings"
// @Success 200 {object} session.Outcome[game.Settings]
// @Failure 400 {object} ValidationErrorResponse
// @Failure 403 {object} CommandErrorResponse
// @Router /api/v1/players/{playerID}/settings [patch]
func (h *GameHandler) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req SettingsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "settings"); err != nil {
		return
	}
	in := game.Settings{
		Language:            req.Language,
		MusicEnabled:        req.MusicEnabled,
		UseDesktopInterface: req.UseDesktopInterface,
	}
	command(h, w, r, "update settings", func(ctx context.Context, s *session.Session) (session.Outcome[game.Settings], error) {
		return s.UpdateSettings(ctx, in)
	})
}

// HandleSaveTheme stores a custom palette
// @Summary Save custom theme
// @Tags profile
// @Accept json
// @Produce json
// @Param playerID path string true "Player ID"
// @Param request body ThemeRequest true "Theme"
// @Success 200 {object} session.Outcome[string]
// @Failure 400 {object} ValidationErrorResponse
// @Failure 403 {object} CommandErrorResponse
// @Router /api/v1/players/{playerID}/themes [post]
func (h *GameHandler) HandleSaveTheme(w http.ResponseWriter, r *http.Request) {
	var req ThemeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "save theme"); err != nil {
		return
	}
	command(h, w, r, "save theme", func(ctx context.Context, s *session.Session) (session.Outcome[string], error) {
		return s.SaveCustomTheme(ctx, req.Name, req.Colors.palette())
	})
}

// HandleApplyTheme returns a saved palette for the client to apply
// @Summary Apply custom theme
// @Tags profile
// @Produce json
// @Param playerID path string true "Player ID"
// @Param themeID path string true "Theme ID"
// @Success 200 {object} session.Outcome[domain.CustomTheme]
// @Failure 404 {object} CommandErrorResponse
// @Router /api/v1/players/{playerID}/themes/{themeID}/apply [post]
func (h *GameHandler) HandleApplyTheme(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "themeID")
	command(h, w, r, "apply theme", func(ctx context.Context, s *session.Session) (session.Outcome[domain.CustomTheme], error) {
		return s.ApplyCustomTheme(ctx, id)
	})
}

// HandleDeleteTheme removes a saved palette
// @Summary Delete custom theme
// @Tags profile
// @Produce json
// @Param playerID path string true "Player ID"
// @Param themeID path string true "Theme ID"
// @Success 200 {object} session.Outcome[string]
// @Failure 404 {object} CommandErrorResponse
// @Router /api/v1/players/{playerID}/themes/{themeID} [delete]
func (h *GameHandler) HandleDeleteTheme(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "themeID")
	command(h, w, r, "delete theme", func(ctx context.Context, s *session.Session) (session.Outcome[string], error) {
		return s.DeleteCustomTheme(ctx, id)
	})
}

// HandleSave writes the game to storage now
// @Summary Save game
// @Tags game
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} SuccessResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/save [post]
func (h *GameHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	playerID := playerIDParam(r)
	if playerID == "" {
		respondError(w, http.StatusBadRequest, ErrMsgMissingPlayerID)
		return
	}
	_, err := withSession(r.Context(), h.sessions, playerID, func(s *session.Session) (struct{}, error) {
		return struct{}{}, s.Save(r.Context())
	})
	if err != nil {
		loggerFor(r).Warn(LogMsgCommandFailed, "operation", "save", "error", err)
		respondError(w, http.StatusServiceUnavailable, ErrMsgSaveFailed)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSaved})
}

// HandleReset wipes the game
// @Summary Reset game
// @Tags game
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} session.Outcome[string]
// @Router /api/v1/players/{playerID}/reset [post]
func (h *GameHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	command(h, w, r, "reset", func(ctx context.Context, s *session.Session) (session.Outcome[struct{}], error) {
		return s.Reset(ctx)
	})
}
