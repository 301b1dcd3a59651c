package discord

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/CyberClicker_Go/internal/domain"
)

// ResponseConfig defines the visual properties of a command response embed
type ResponseConfig struct {
	Title string
	Color int
}

// PlayerAction runs one game request for the interacting user and renders the result
type PlayerAction func(client *APIClient, playerID string, options map[string]*discordgo.ApplicationCommandInteractionDataOption) (string, error)

// handleEmbedResponse defers the response, runs the action and edits in a result embed
func handleEmbedResponse(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	action func() (string, error),
	config ResponseConfig,
) {
	if !deferResponse(s, i) {
		return
	}

	msg, err := action()
	if err != nil {
		slog.Error(LogMsgActionFailed, "title", config.Title, "error", err)
		respondError(s, i, formatFriendlyError(err))
		return
	}

	sendEmbed(s, i, createEmbed(config.Title, msg, config.Color))
}

// playerCommand wraps a PlayerAction: the Discord user id is the player id
func playerCommand(config ResponseConfig, action PlayerAction) CommandHandler {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func() (string, error) {
			user := getInteractionUser(i)
			if user == nil {
				return "", errors.New("interaction has no user")
			}
			syncPlayerName(client, user)
			return action(client, user.ID, optionMap(i))
		}, config)
	}
}

// syncPlayerName gives a fresh player their Discord username so the leaderboard is readable
func syncPlayerName(client *APIClient, user *discordgo.User) {
	view, err := client.GetState(user.ID)
	if err != nil || view.State == nil || view.State.PlayerName != domain.DefaultPlayerName {
		return
	}
	name := strings.TrimSpace(user.Username)
	if name == "" || name == domain.DefaultPlayerName {
		return
	}
	if _, err := client.Rename(user.ID, name); err != nil {
		slog.Warn(LogMsgRenameFailed, "player_id", user.ID, "error", err)
	}
}

// deferResponse acknowledges an interaction with a deferred message.
// Returns false if deferral failed.
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		slog.Error(LogMsgDeferFailed, "error", err)
		return false
	}
	return true
}

// getInteractionUser extracts the user from an interaction.
// Handles both guild (i.Member.User) and DM (i.User) contexts.
func getInteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

func optionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	options := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &message,
	}); err != nil {
		slog.Error(LogMsgResponseFailed, "error", err)
	}
}

// formatFriendlyError turns API errors into readable Discord messages
func formatFriendlyError(err error) string {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return MsgConnectionError
	}

	msg := apiErr.Message
	switch {
	case apiErr.Status == http.StatusTooManyRequests:
		if apiErr.RetryAfter > 0 {
			return fmt.Sprintf("%s\nWait for: **%s**", MsgCooldownActive, apiErr.RetryAfter)
		}
		return MsgCooldownActive
	case apiErr.Status == http.StatusServiceUnavailable:
		return MsgServerBusy
	case strings.Contains(msg, domain.ErrMsgInsufficientFunds):
		return MsgInsufficientFunds
	case strings.Contains(msg, domain.ErrMsgClickBlocked):
		return MsgClickBlocked
	case strings.Contains(msg, domain.ErrMsgAlreadyOwned):
		return MsgAlreadyOwned
	case apiErr.Status == http.StatusNotFound:
		return MsgNotFound
	case apiErr.Status == http.StatusForbidden && msg == "":
		return MsgFeatureLocked
	case msg != "":
		return "❌ " + msg
	default:
		return MsgGenericError
	}
}

func sendEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		slog.Error(LogMsgResponseFailed, "error", err)
	}
}

func createEmbed(title, description string, color int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: FooterCyberClicker,
		},
	}
}

// notificationLines renders the notifications a command raised, one per line
func notificationLines(notes []domain.Notification) string {
	var b strings.Builder
	for _, n := range notes {
		b.WriteString("\n")
		b.WriteString(severityIcon(n.Severity))
		b.WriteString(" ")
		b.WriteString(n.Message)
	}
	return b.String()
}

func severityIcon(s domain.Severity) string {
	switch s {
	case domain.SeveritySuccess:
		return "✅"
	case domain.SeverityWarning:
		return "⚠️"
	case domain.SeverityError:
		return "🛑"
	default:
		return "ℹ️"
	}
}
