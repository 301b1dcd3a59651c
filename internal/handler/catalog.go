package handler

import (
	"math"
	"net/http"
	"strconv"

	"github.com/osse101/CyberClicker_Go/internal/catalog"
	"github.com/osse101/CyberClicker_Go/internal/domain"
	"github.com/osse101/CyberClicker_Go/internal/format"
	"github.com/osse101/CyberClicker_Go/internal/leaderboard"
	"github.com/osse101/CyberClicker_Go/internal/repository"
)

// HandleGetCatalog lists every static definition the clients render
// @Summary Game catalog
// @Tags catalog
// @Produce json
// @Success 200 {object} CatalogResponse
// @Router /api/v1/catalog [get]
func HandleGetCatalog() http.HandlerFunc {
	resp := CatalogResponse{
		Upgrades:    catalog.Upgrades(),
		Skins:       catalog.Skins(),
		Cases:       catalog.Cases(),
		WheelPrizes: catalog.WheelPrizes(),
		AntiEffects: catalog.AntiEffects(),
	}
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, resp)
	}
}

// HandleFormat formats a number the way the game displays money
// @Summary Format number
// @Tags catalog
// @Produce json
// @Param n query number true "Number"
// @Param lang query string false "Language for digit grouping"
// @Success 200 {object} FormatResponse
// @Router /api/v1/format [get]
func HandleFormat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := strconv.ParseFloat(r.URL.Query().Get("n"), 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			n = 0
		}
		lang := GetOptionalQueryParam(r, "lang", domain.LanguageEnglish)
		respondJSON(w, http.StatusOK, FormatResponse{
			Input:     n,
			Formatted: format.Number(n),
			Grouped:   format.Grouped(n, lang),
		})
	}
}

// HandleGetLeaderboard returns the top players
// @Summary Leaderboard
// @Tags leaderboard
// @Produce json
// @Param limit query int false "Entries to return (1-100, default 10)"
// @Success 200 {array} domain.LeaderboardEntry
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/leaderboard [get]
func HandleGetLeaderboard(svc leaderboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := GetIntQueryParam(r, w, "limit", repository.LeaderboardDefaultLimit)
		if !ok {
			return
		}
		entries, err := svc.Top(r.Context(), limit)
		if err != nil {
			loggerFor(r).Error(ErrMsgGetLeaderboardFailed, "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgGetLeaderboardFailed)
			return
		}
		respondJSON(w, http.StatusOK, entries)
	}
}
