package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
)

// MockRoundTripper intercepts the Discord REST calls a handler makes
type MockRoundTripper struct {
	mu       sync.Mutex
	requests []capturedRequest
}

type capturedRequest struct {
	Method string
	Path   string
	Body   string
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
	}
	m.mu.Lock()
	m.requests = append(m.requests, capturedRequest{Method: req.Method, Path: req.URL.Path, Body: string(body)})
	m.mu.Unlock()
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewBufferString("{}")),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Request:    req,
	}, nil
}

// Edits returns the bodies of every response edit, in order
func (m *MockRoundTripper) Edits() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, r := range m.requests {
		if r.Method == http.MethodPatch && strings.HasSuffix(r.Path, "/messages/@original") {
			out = append(out, r.Body)
		}
	}
	return out
}

// TestContext wires a fake game API to an APIClient and a Discord session that never leaves the process
type TestContext struct {
	Server    *httptest.Server
	Mux       *http.ServeMux
	APIClient *APIClient
	Session   *discordgo.Session
	Discord   *MockRoundTripper
}

func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := NewAPIClient(server.URL, "test-api-key")
	client.MaxRetries = 0
	client.RetryDelay = 0

	session, err := discordgo.New("Bot test-token")
	require.NoError(t, err)
	rt := &MockRoundTripper{}
	session.Client = &http.Client{Transport: rt}

	return &TestContext{
		Server:    server,
		Mux:       mux,
		APIClient: client,
		Session:   session,
		Discord:   rt,
	}
}

// WriteJSON writes a JSON body with the given status
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// newInteraction builds a slash command interaction from a guild member
func newInteraction(name string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:    "interaction-1",
			AppID: "app-1",
			Type:  discordgo.InteractionApplicationCommand,
			Token: "token-1",
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    name,
				Options: options,
			},
			Member: &discordgo.Member{
				User: &discordgo.User{ID: "42", Username: "neo"},
			},
		},
	}
}

func stringOpt(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}
