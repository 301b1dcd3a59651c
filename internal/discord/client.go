package discord

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/osse101/CyberClicker_Go/internal/domain"
	"github.com/osse101/CyberClicker_Go/internal/game"
	"github.com/osse101/CyberClicker_Go/internal/prestige"
)

// Client defaults
const (
	DefaultClientTimeout = 10 * time.Second
	DefaultMaxRetries    = 3
	DefaultRetryDelay    = 500 * time.Millisecond

	apiPrefix = "/api/v1"
)

// Outcome mirrors the API's command envelope
type Outcome[T any] struct {
	Result        T                     `json:"result"`
	Money         float64               `json:"money"`
	Notifications []domain.Notification `json:"notifications"`
}

// APIError is a non-2xx answer from the game API
type APIError struct {
	Status        int
	Message       string
	Notifications []domain.Notification
	RetryAfter    time.Duration
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API returned status: %d", e.Status)
	}
	return "API error: " + e.Message
}

// APIClient handles communication with the CyberClicker game API
type APIClient struct {
	BaseURL    string
	Client     *http.Client
	APIKey     string
	MaxRetries int
	RetryDelay time.Duration
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client: &http.Client{
			Timeout: DefaultClientTimeout,
		},
		APIKey:     apiKey,
		MaxRetries: DefaultMaxRetries,
		RetryDelay: DefaultRetryDelay,
	}
}

// doRequest performs an HTTP request, retrying transport failures and 5xx answers
func (c *APIClient) doRequest(method, path string, body interface{}) (*http.Response, error) {
	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	target := c.BaseURL + path

	var lastErr error
	for attempt := 0; attempt <= c.MaxRetries; attempt++ {
		if attempt > 0 {
			jitter := time.Duration(time.Now().UnixNano()%100) * time.Millisecond
			delay := c.RetryDelay*time.Duration(1<<uint(attempt-1)) + jitter
			if c.RetryDelay == 0 {
				delay = 0
			}
			time.Sleep(delay)
			slog.Info("Retrying API request", "attempt", attempt, "path", path, "delay", delay)
		}

		req, err := http.NewRequest(method, target, bytes.NewReader(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set("X-API-Key", c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			lastErr = err
			slog.Warn("API request failed", "error", err, "attempt", attempt)
			continue
		}
		if resp.StatusCode < http.StatusInternalServerError {
			return resp, nil
		}

		// Keep the last 5xx body so the caller sees the API's message
		if attempt == c.MaxRetries {
			return resp, nil
		}
		resp.Body.Close()
		lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
		slog.Warn("Server error, will retry", "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// call performs a request and decodes a 2xx body into T
func call[T any](c *APIClient, method, path string, body interface{}) (*T, error) {
	resp, err := c.doRequest(method, path, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, decodeAPIError(resp)
	}

	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &out, nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	if s := resp.Header.Get("Retry-After"); s != "" {
		if secs, err := strconv.Atoi(s); err == nil {
			apiErr.RetryAfter = time.Duration(secs) * time.Second
		}
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	var body struct {
		Error         string                `json:"error"`
		Notifications []domain.Notification `json:"notifications"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		apiErr.Message = body.Error
		apiErr.Notifications = body.Notifications
	}
	return apiErr
}

func playerPath(playerID string, parts ...string) string {
	p := apiPrefix + "/players/" + url.PathEscape(playerID)
	for _, part := range parts {
		p += "/" + url.PathEscape(part)
	}
	return p
}

// GetState fetches the player's derived view
func (c *APIClient) GetState(playerID string) (*game.View, error) {
	return call[game.View](c, http.MethodGet, playerPath(playerID, "state"), nil)
}

// Click performs one manual click
func (c *APIClient) Click(playerID string) (*Outcome[game.ClickResult], error) {
	return call[Outcome[game.ClickResult]](c, http.MethodPost, playerPath(playerID, "click"), nil)
}

// BuyUpgrade buys one level of an upgrade
func (c *APIClient) BuyUpgrade(playerID string, id domain.UpgradeID) (*Outcome[float64], error) {
	return call[Outcome[float64]](c, http.MethodPost, playerPath(playerID, "upgrades", string(id), "buy"), nil)
}

// BuySkin purchases a skin
func (c *APIClient) BuySkin(playerID string, id domain.SkinID) (*Outcome[domain.SkinID], error) {
	return call[Outcome[domain.SkinID]](c, http.MethodPost, playerPath(playerID, "skins", string(id), "buy"), nil)
}

// ApplySkin activates an owned skin
func (c *APIClient) ApplySkin(playerID string, id domain.SkinID) (*Outcome[domain.SkinID], error) {
	return call[Outcome[domain.SkinID]](c, http.MethodPost, playerPath(playerID, "skins", string(id), "apply"), nil)
}

// OpenCase buys and opens a case
func (c *APIClient) OpenCase(playerID string, tier domain.CaseTier) (*Outcome[game.CaseResult], error) {
	return call[Outcome[game.CaseResult]](c, http.MethodPost, playerPath(playerID, "cases", string(tier), "open"), nil)
}

// SpinWheel spins the fortune wheel
func (c *APIClient) SpinWheel(playerID string) (*Outcome[game.WheelResult], error) {
	return call[Outcome[game.WheelResult]](c, http.MethodPost, playerPath(playerID, "wheel", "spin"), nil)
}

// FixAntiEffect pays to remove an active anti-effect
func (c *APIClient) FixAntiEffect(playerID, effectID string) (*Outcome[string], error) {
	return call[Outcome[string]](c, http.MethodPost, playerPath(playerID, "anti-effects", effectID, "fix"), nil)
}

// PrestigePreview summarises a prestige without performing it
func (c *APIClient) PrestigePreview(playerID string) (*prestige.Summary, error) {
	return call[prestige.Summary](c, http.MethodGet, playerPath(playerID, "prestige"), nil)
}

// Prestige resets progress for robocoins
func (c *APIClient) Prestige(playerID string) (*Outcome[float64], error) {
	return call[Outcome[float64]](c, http.MethodPost, playerPath(playerID, "prestige"), nil)
}

// Rename changes the player's display name
func (c *APIClient) Rename(playerID, name string) (*Outcome[string], error) {
	return call[Outcome[string]](c, http.MethodPut, playerPath(playerID, "name"), map[string]string{"name": name})
}

// GetLeaderboard fetches the top entries
func (c *APIClient) GetLeaderboard(limit int) ([]domain.LeaderboardEntry, error) {
	path := fmt.Sprintf("%s/leaderboard?limit=%d", apiPrefix, limit)
	entries, err := call[[]domain.LeaderboardEntry](c, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return *entries, nil
}

// Healthy reports whether the API answers its liveness check
func (c *APIClient) Healthy() bool {
	resp, err := c.Client.Get(c.BaseURL + "/healthz")
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// IsStatus reports whether err is an APIError with the given status
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}
