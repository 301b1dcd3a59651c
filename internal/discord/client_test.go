package discord

import (
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CyberClicker_Go/internal/domain"
	"github.com/osse101/CyberClicker_Go/internal/game"
)

func TestAPIClient_Click(t *testing.T) {
	// ARRANGE
	tc := SetupTestContext(t)
	var gotKey string
	tc.Mux.HandleFunc("POST /api/v1/players/{id}/click", func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-Key")
		assert.Equal(t, "42", r.PathValue("id"))
		WriteJSON(w, http.StatusOK, Outcome[game.ClickResult]{
			Result: game.ClickResult{Earned: 3, Critical: true, Combo: 2},
			Money:  13,
		})
	})

	// ACT
	out, err := tc.APIClient.Click("42")

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, "test-api-key", gotKey)
	assert.Equal(t, float64(3), out.Result.Earned)
	assert.True(t, out.Result.Critical)
	assert.Equal(t, 2, out.Result.Combo)
	assert.Equal(t, float64(13), out.Money)
}

func TestAPIClient_DecodesRejection(t *testing.T) {
	// ARRANGE
	tc := SetupTestContext(t)
	tc.Mux.HandleFunc("POST /api/v1/players/{id}/wheel/spin", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "90")
		WriteJSON(w, http.StatusTooManyRequests, map[string]interface{}{
			"error": "The wheel is recharging. Try again later",
			"notifications": []domain.Notification{
				{Kind: domain.NotifyWheelRejected, Severity: domain.SeverityWarning, Message: "recharging"},
			},
		})
	})

	// ACT
	_, err := tc.APIClient.SpinWheel("42")

	// ASSERT
	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.Status)
	assert.Equal(t, 90*time.Second, apiErr.RetryAfter)
	assert.Equal(t, "The wheel is recharging. Try again later", apiErr.Message)
	require.Len(t, apiErr.Notifications, 1)
	assert.Equal(t, domain.NotifyWheelRejected, apiErr.Notifications[0].Kind)
	assert.True(t, IsStatus(err, http.StatusTooManyRequests))
}

func TestAPIClient_RetriesServerErrors(t *testing.T) {
	// ARRANGE
	tc := SetupTestContext(t)
	tc.APIClient.MaxRetries = 2
	var calls atomic.Int32
	tc.Mux.HandleFunc("GET /api/v1/players/{id}/prestige", func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "closing"})
			return
		}
		WriteJSON(w, http.StatusOK, map[string]interface{}{"gain": 2, "eligible": true})
	})

	// ACT
	sum, err := tc.APIClient.PrestigePreview("42")

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, float64(2), sum.Gain)
	assert.True(t, sum.Eligible)
}

func TestAPIClient_ReturnsLastServerError(t *testing.T) {
	// ARRANGE
	tc := SetupTestContext(t)
	tc.APIClient.MaxRetries = 1
	tc.Mux.HandleFunc("POST /api/v1/players/{id}/click", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "session closed"})
	})

	// ACT
	_, err := tc.APIClient.Click("42")

	// ASSERT
	assert.True(t, IsStatus(err, http.StatusServiceUnavailable))
	assert.Contains(t, err.Error(), "session closed")
}

func TestAPIClient_Paths(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		call    func(c *APIClient) error
	}{
		{"buy upgrade", "POST /api/v1/players/{id}/upgrades/doubleValue/buy", func(c *APIClient) error {
			_, err := c.BuyUpgrade("42", domain.UpgradeDoubleValue)
			return err
		}},
		{"buy skin", "POST /api/v1/players/{id}/skins/neon/buy", func(c *APIClient) error {
			_, err := c.BuySkin("42", "neon")
			return err
		}},
		{"apply skin", "POST /api/v1/players/{id}/skins/neon/apply", func(c *APIClient) error {
			_, err := c.ApplySkin("42", "neon")
			return err
		}},
		{"open case", "POST /api/v1/players/{id}/cases/basic/open", func(c *APIClient) error {
			_, err := c.OpenCase("42", domain.CaseBasic)
			return err
		}},
		{"fix", "POST /api/v1/players/{id}/anti-effects/virus/fix", func(c *APIClient) error {
			_, err := c.FixAntiEffect("42", "virus")
			return err
		}},
		{"prestige", "POST /api/v1/players/{id}/prestige", func(c *APIClient) error {
			_, err := c.Prestige("42")
			return err
		}},
		{"rename", "PUT /api/v1/players/{id}/name", func(c *APIClient) error {
			_, err := c.Rename("42", "neo")
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ARRANGE
			tc := SetupTestContext(t)
			hit := false
			tc.Mux.HandleFunc(tt.pattern, func(w http.ResponseWriter, r *http.Request) {
				hit = true
				WriteJSON(w, http.StatusOK, map[string]interface{}{"money": 1})
			})

			// ACT
			err := tt.call(tc.APIClient)

			// ASSERT
			require.NoError(t, err)
			assert.True(t, hit)
		})
	}
}

func TestAPIClient_Leaderboard(t *testing.T) {
	// ARRANGE
	tc := SetupTestContext(t)
	var gotLimit string
	tc.Mux.HandleFunc("GET /api/v1/leaderboard", func(w http.ResponseWriter, r *http.Request) {
		gotLimit = r.URL.Query().Get("limit")
		WriteJSON(w, http.StatusOK, []domain.LeaderboardEntry{{Name: "trinity", Score: 5000, Prestige: 1}})
	})

	// ACT
	entries, err := tc.APIClient.GetLeaderboard(5)

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, "5", gotLimit)
	require.Len(t, entries, 1)
	assert.Equal(t, "trinity", entries[0].Name)
}

func TestAPIClient_Healthy(t *testing.T) {
	// ARRANGE
	tc := SetupTestContext(t)
	tc.Mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	down := NewAPIClient("http://127.0.0.1:1", "")

	// ACT & ASSERT
	assert.True(t, tc.APIClient.Healthy())
	assert.False(t, down.Healthy())
}
