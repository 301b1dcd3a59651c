package discord

import (
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CyberClicker_Go/internal/domain"
	"github.com/osse101/CyberClicker_Go/internal/game"
)

func TestDefaultCommands(t *testing.T) {
	// ARRANGE
	r := NewCommandRegistry()

	// ACT
	r.RegisterAll(DefaultCommands())

	// ASSERT
	want := []string{"ping", "click", "stats", "buy", "skin", "case", "spin", "fix", "prestige", "leaderboard"}
	assert.Len(t, r.Commands, len(want))
	for _, name := range want {
		cmd, ok := r.Commands[name]
		require.True(t, ok, name)
		assert.NotEmpty(t, cmd.Description)
		assert.Contains(t, r.Handlers, name)
		for _, opt := range cmd.Options {
			assert.LessOrEqual(t, len(opt.Choices), 25, "%s/%s exceeds Discord's choice limit", name, opt.Name)
		}
	}
}

func TestCommandsEqual(t *testing.T) {
	base := func() []*discordgo.ApplicationCommand {
		cmd, _ := BuyCommand()
		ping, _ := PingCommand()
		return []*discordgo.ApplicationCommand{cmd, ping}
	}

	tests := []struct {
		name   string
		mutate func(cmds []*discordgo.ApplicationCommand) []*discordgo.ApplicationCommand
		want   bool
	}{
		{"identical", func(c []*discordgo.ApplicationCommand) []*discordgo.ApplicationCommand { return c }, true},
		{"reordered", func(c []*discordgo.ApplicationCommand) []*discordgo.ApplicationCommand {
			return []*discordgo.ApplicationCommand{c[1], c[0]}
		}, true},
		{"missing", func(c []*discordgo.ApplicationCommand) []*discordgo.ApplicationCommand { return c[:1] }, false},
		{"description changed", func(c []*discordgo.ApplicationCommand) []*discordgo.ApplicationCommand {
			c[1].Description = "changed"
			return c
		}, false},
		{"choice changed", func(c []*discordgo.ApplicationCommand) []*discordgo.ApplicationCommand {
			c[0].Options[0].Choices = c[0].Options[0].Choices[1:]
			return c
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, commandsEqual(tt.mutate(base()), base()))
		})
	}
}

func TestFormatFriendlyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"transport", errors.New("dial tcp: refused"), MsgConnectionError},
		{"cooldown", &APIError{Status: http.StatusTooManyRequests, RetryAfter: 90 * time.Second}, MsgCooldownActive + "\nWait for: **1m30s**"},
		{"cooldown without hint", &APIError{Status: http.StatusTooManyRequests}, MsgCooldownActive},
		{"unavailable", &APIError{Status: http.StatusServiceUnavailable}, MsgServerBusy},
		{"funds", &APIError{Status: http.StatusConflict, Message: domain.ErrMsgInsufficientFunds + ": need 100"}, MsgInsufficientFunds},
		{"blocked", &APIError{Status: http.StatusForbidden, Message: domain.ErrMsgClickBlocked}, MsgClickBlocked},
		{"owned", &APIError{Status: http.StatusConflict, Message: domain.ErrMsgAlreadyOwned}, MsgAlreadyOwned},
		{"not found", &APIError{Status: http.StatusNotFound, Message: "unknown upgrade"}, MsgNotFound},
		{"locked without message", &APIError{Status: http.StatusForbidden}, MsgFeatureLocked},
		{"other message", &APIError{Status: http.StatusConflict, Message: "not enough progress"}, "❌ not enough progress"},
		{"bare status", &APIError{Status: http.StatusInternalServerError}, MsgGenericError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatFriendlyError(tt.err))
		})
	}
}

func TestRegistry_HandleIgnoresUnknown(t *testing.T) {
	// ARRANGE
	tc := SetupTestContext(t)
	r := NewCommandRegistry()
	r.RegisterAll(DefaultCommands())

	// ACT
	handled := r.Handle(tc.Session, newInteraction("teleport"), tc.APIClient)

	// ASSERT
	assert.False(t, handled)
	assert.Empty(t, tc.Discord.Edits())
}

func TestClickCommand_SyncsNameAndReplies(t *testing.T) {
	// ARRANGE
	tc := SetupTestContext(t)
	var renamed atomic.Bool
	tc.Mux.HandleFunc("GET /api/v1/players/{id}/state", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, game.View{State: &domain.PlayerState{PlayerName: domain.DefaultPlayerName}})
	})
	tc.Mux.HandleFunc("PUT /api/v1/players/{id}/name", func(w http.ResponseWriter, r *http.Request) {
		renamed.Store(true)
		WriteJSON(w, http.StatusOK, Outcome[string]{Result: "neo"})
	})
	tc.Mux.HandleFunc("POST /api/v1/players/{id}/click", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, Outcome[game.ClickResult]{
			Result: game.ClickResult{Earned: 4, Critical: true},
			Money:  1500,
		})
	})
	r := NewCommandRegistry()
	r.RegisterAll(DefaultCommands())

	// ACT
	handled := r.Handle(tc.Session, newInteraction("click"), tc.APIClient)

	// ASSERT
	require.True(t, handled)
	assert.True(t, renamed.Load())
	edits := tc.Discord.Edits()
	require.Len(t, edits, 1)
	assert.Contains(t, edits[0], "+4")
	assert.Contains(t, edits[0], "CRITICAL")
	assert.Contains(t, edits[0], "1.50K")
}

func TestBuyCommand_ShowsFriendlyRejection(t *testing.T) {
	// ARRANGE
	tc := SetupTestContext(t)
	tc.Mux.HandleFunc("GET /api/v1/players/{id}/state", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, game.View{State: &domain.PlayerState{PlayerName: "neo"}})
	})
	var bought string
	tc.Mux.HandleFunc("POST /api/v1/players/{id}/upgrades/{upgrade}/buy", func(w http.ResponseWriter, r *http.Request) {
		bought = r.PathValue("upgrade")
		WriteJSON(w, http.StatusConflict, map[string]string{"error": domain.ErrMsgInsufficientFunds})
	})
	_, handler := BuyCommand()

	// ACT
	handler(tc.Session, newInteraction("buy", stringOpt("upgrade", string(domain.UpgradeDoubleValue))), tc.APIClient)

	// ASSERT
	assert.Equal(t, string(domain.UpgradeDoubleValue), bought)
	edits := tc.Discord.Edits()
	require.Len(t, edits, 1)
	assert.Contains(t, edits[0], "Not Enough Money")
}

func TestFormatLeaderboard(t *testing.T) {
	tests := []struct {
		name    string
		entries []domain.LeaderboardEntry
		want    string
	}{
		{"empty", nil, "No scores yet. Be the first!"},
		{"ranked", []domain.LeaderboardEntry{
			{Name: "trinity", Score: 2_500_000, Prestige: 2},
			{Name: "neo", Score: 900},
		}, "**1.** trinity: 2.50M (P2)\n**2.** neo: 900"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatLeaderboard(tt.entries))
		})
	}
}
