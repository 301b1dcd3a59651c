package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/CyberClicker_Go/internal/domain"
	"github.com/osse101/CyberClicker_Go/internal/format"
)

const (
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 25
)

// LeaderboardCommand returns the leaderboard command definition and handler
func LeaderboardCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minLimit := float64(1)
	cmd := &discordgo.ApplicationCommand{
		Name:        "leaderboard",
		Description: "View the top hackers",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "limit",
				Description: "Number of top players to show (default: 10)",
				Required:    false,
				MinValue:    &minLimit,
				MaxValue:    maxLeaderboardLimit,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func() (string, error) {
			limit := defaultLeaderboardLimit
			if opt, ok := optionMap(i)["limit"]; ok {
				limit = int(opt.IntValue())
			}
			entries, err := client.GetLeaderboard(limit)
			if err != nil {
				return "", err
			}
			return formatLeaderboard(entries), nil
		}, ResponseConfig{Title: "🏆 Leaderboard", Color: ColorBoard})
	}

	return cmd, handler
}

func formatLeaderboard(entries []domain.LeaderboardEntry) string {
	if len(entries) == 0 {
		return "No scores yet. Be the first!"
	}
	var b strings.Builder
	for idx, e := range entries {
		if idx > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "**%d.** %s: %s", idx+1, e.Name, format.Number(e.Score))
		if e.Prestige > 0 {
			fmt.Fprintf(&b, " (P%d)", e.Prestige)
		}
	}
	return b.String()
}
