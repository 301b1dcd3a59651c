package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/CyberClicker_Go/internal/catalog"
	"github.com/osse101/CyberClicker_Go/internal/domain"
	"github.com/osse101/CyberClicker_Go/internal/format"
)

// ClickCommand returns the click command definition and handler
func ClickCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "click",
		Description: "Hack the mainframe for money",
	}

	handler := playerCommand(ResponseConfig{Title: "🖱️ Click", Color: ColorClick},
		func(client *APIClient, playerID string, _ map[string]*discordgo.ApplicationCommandInteractionDataOption) (string, error) {
			out, err := client.Click(playerID)
			if err != nil {
				return "", err
			}
			r := out.Result
			var tags []string
			if r.Critical {
				tags = append(tags, "**CRITICAL**")
			}
			if r.Lucky {
				tags = append(tags, "**LUCKY**")
			}
			if r.Mega {
				tags = append(tags, "**MEGA**")
			}
			if r.TemporalShift {
				tags = append(tags, "**TEMPORAL SHIFT**")
			}
			msg := fmt.Sprintf("+%s", format.Number(r.Earned))
			if len(tags) > 0 {
				msg += " " + strings.Join(tags, " ")
			}
			if r.Combo > 1 {
				msg += fmt.Sprintf("\nCombo x%d", r.Combo)
			}
			msg += fmt.Sprintf("\nBalance: **%s**", format.Number(out.Money))
			if r.AntiEffect != nil {
				msg += fmt.Sprintf("\n🦠 %s hit you! Use `/fix %s`", r.AntiEffect.Name, r.AntiEffect.ID)
			}
			return msg + notificationLines(out.Notifications), nil
		})

	return cmd, handler
}

// StatsCommand returns the stats command definition and handler
func StatsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "stats",
		Description: "View your hacker profile",
	}

	handler := playerCommand(ResponseConfig{Title: "📊 Stats", Color: ColorInfo},
		func(client *APIClient, playerID string, _ map[string]*discordgo.ApplicationCommandInteractionDataOption) (string, error) {
			view, err := client.GetState(playerID)
			if err != nil {
				return "", err
			}
			s := view.State
			var b strings.Builder
			fmt.Fprintf(&b, "**%s**\n", s.PlayerName)
			fmt.Fprintf(&b, "Money: **%s** (total %s)\n", view.MoneyFormatted, view.TotalFormatted)
			fmt.Fprintf(&b, "Clicks: %d\n", s.ClickCount)
			fmt.Fprintf(&b, "Auto: %s/s · Passive: %s/s\n", format.Number(view.AutoClickerRate), format.Number(view.PassiveRate))
			fmt.Fprintf(&b, "Robocoins: %s · Prestiges: %d", format.Number(s.Robocoins), s.PrestigeCount)

			var owned []string
			for _, u := range view.Upgrades {
				if u.Level > 0 {
					owned = append(owned, fmt.Sprintf("%s %d", u.Name, u.Level))
				}
			}
			if len(owned) > 0 {
				b.WriteString("\nUpgrades: " + strings.Join(owned, ", "))
			}
			for _, ae := range s.ActiveAntiEffects {
				fmt.Fprintf(&b, "\n🦠 %s (`%s`, fix %s)", ae.Name, ae.ID, format.Number(ae.FixCost))
			}
			return b.String(), nil
		})

	return cmd, handler
}

// BuyCommand returns the upgrade purchase command definition and handler
func BuyCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(catalog.Upgrades()))
	for _, u := range catalog.Upgrades() {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: u.Name, Value: string(u.ID)})
	}

	cmd := &discordgo.ApplicationCommand{
		Name:        "buy",
		Description: "Buy one level of an upgrade",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "upgrade",
				Description: "Upgrade to buy",
				Required:    true,
				Choices:     choices,
			},
		},
	}

	handler := playerCommand(ResponseConfig{Title: "🛒 Upgrade", Color: ColorShop},
		func(client *APIClient, playerID string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (string, error) {
			id := domain.UpgradeID(stringOption(opts, "upgrade"))
			out, err := client.BuyUpgrade(playerID, id)
			if err != nil {
				return "", err
			}
			name := string(id)
			if u, ok := catalog.Upgrade(id); ok {
				name = u.Name
			}
			msg := fmt.Sprintf("Bought **%s** for %s\nBalance: **%s**", name, format.Number(out.Result), format.Number(out.Money))
			return msg + notificationLines(out.Notifications), nil
		})

	return cmd, handler
}

// SkinCommand returns the skin command definition and handler
func SkinCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	skins := catalog.Skins()
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(skins))
	for _, sk := range skins {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: sk.Name, Value: string(sk.ID)})
	}

	cmd := &discordgo.ApplicationCommand{
		Name:        "skin",
		Description: "Buy or apply a skin",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "action",
				Description: "What to do",
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Buy", Value: "buy"},
					{Name: "Apply", Value: "apply"},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "skin",
				Description: "Skin",
				Required:    true,
				Choices:     choices,
			},
		},
	}

	handler := playerCommand(ResponseConfig{Title: "🎨 Skin", Color: ColorShop},
		func(client *APIClient, playerID string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (string, error) {
			id := domain.SkinID(stringOption(opts, "skin"))
			var (
				out *Outcome[domain.SkinID]
				err error
			)
			verb := "Bought"
			if stringOption(opts, "action") == "apply" {
				verb = "Applied"
				out, err = client.ApplySkin(playerID, id)
			} else {
				out, err = client.BuySkin(playerID, id)
			}
			if err != nil {
				return "", err
			}
			name := string(id)
			if sk, ok := catalog.Skin(id); ok {
				name = sk.Name
			}
			msg := fmt.Sprintf("%s **%s**\nBalance: **%s**", verb, name, format.Number(out.Money))
			return msg + notificationLines(out.Notifications), nil
		})

	return cmd, handler
}

// CaseCommand returns the case opening command definition and handler
func CaseCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cases := catalog.Cases()
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(cases))
	for _, c := range cases {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  fmt.Sprintf("%s (%s)", c.Name, format.Number(c.Cost)),
			Value: string(c.Tier),
		})
	}

	cmd := &discordgo.ApplicationCommand{
		Name:        "case",
		Description: "Open a loot case",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "tier",
				Description: "Case tier",
				Required:    true,
				Choices:     choices,
			},
		},
	}

	handler := playerCommand(ResponseConfig{Title: "📦 Case", Color: ColorCase},
		func(client *APIClient, playerID string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (string, error) {
			out, err := client.OpenCase(playerID, domain.CaseTier(stringOption(opts, "tier")))
			if err != nil {
				return "", err
			}
			r := out.Result
			msg := fmt.Sprintf("You got **%s** (%s)\n%s", r.Reward.Name, r.Reward.Rarity, r.Reward.Description)
			if r.TierUnlocked != "" {
				msg += fmt.Sprintf("\n🔓 Unlocked the %s case!", r.TierUnlocked)
			}
			msg += fmt.Sprintf("\nBalance: **%s**", format.Number(out.Money))
			return msg + notificationLines(out.Notifications), nil
		})

	return cmd, handler
}

// SpinCommand returns the fortune wheel command definition and handler
func SpinCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "spin",
		Description: "Spin the fortune wheel",
	}

	handler := playerCommand(ResponseConfig{Title: "🎡 Wheel", Color: ColorWheel},
		func(client *APIClient, playerID string, _ map[string]*discordgo.ApplicationCommandInteractionDataOption) (string, error) {
			out, err := client.SpinWheel(playerID)
			if err != nil {
				return "", err
			}
			msg := fmt.Sprintf("The wheel lands on **%s**", out.Result.Prize.Label)
			if out.Result.Credited > 0 {
				msg += fmt.Sprintf("\n+%s", format.Number(out.Result.Credited))
			}
			msg += fmt.Sprintf("\nBalance: **%s**", format.Number(out.Money))
			return msg + notificationLines(out.Notifications), nil
		})

	return cmd, handler
}

// FixCommand returns the anti-effect fix command definition and handler
func FixCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "fix",
		Description: "Pay to remove an active anti-effect",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "effect",
				Description: "Anti-effect id (see /stats)",
				Required:    true,
			},
		},
	}

	handler := playerCommand(ResponseConfig{Title: "🧰 Fix", Color: ColorWarning},
		func(client *APIClient, playerID string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (string, error) {
			out, err := client.FixAntiEffect(playerID, strings.TrimSpace(stringOption(opts, "effect")))
			if err != nil {
				return "", err
			}
			msg := fmt.Sprintf("Removed **%s**\nBalance: **%s**", out.Result, format.Number(out.Money))
			return msg + notificationLines(out.Notifications), nil
		})

	return cmd, handler
}

// PrestigeCommand returns the prestige command definition and handler
func PrestigeCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "prestige",
		Description: "Preview or perform a prestige",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        "confirm",
				Description: "Actually reset for robocoins (default: preview only)",
				Required:    false,
			},
		},
	}

	handler := playerCommand(ResponseConfig{Title: "🌀 Prestige", Color: ColorPrestige},
		func(client *APIClient, playerID string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (string, error) {
			if opt, ok := opts["confirm"]; ok && opt.BoolValue() {
				out, err := client.Prestige(playerID)
				if err != nil {
					return "", err
				}
				msg := fmt.Sprintf("Prestiged for **%s** robocoins", format.Number(out.Result))
				return msg + notificationLines(out.Notifications), nil
			}

			sum, err := client.PrestigePreview(playerID)
			if err != nil {
				return "", err
			}
			msg := fmt.Sprintf("Gain: **%s** robocoins\nMultiplier: x%.2f → x%.2f",
				format.Number(sum.Gain), sum.CurrentMultiplier, sum.NextMultiplier)
			if !sum.Eligible {
				msg += "\nNot ready: " + sum.Reason
			} else {
				msg += "\nRun `/prestige confirm:true` to reset"
			}
			return msg, nil
		})

	return cmd, handler
}

func stringOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	if opt, ok := opts[name]; ok {
		return opt.StringValue()
	}
	return ""
}
