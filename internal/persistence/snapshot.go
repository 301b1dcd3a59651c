package persistence

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/osse101/CyberClicker_Go/internal/domain"
)

// Snapshot is the persisted form of a PlayerState. Transient fields such as
// combo, temporary multiplier and shield are never written.
type Snapshot struct {
	Money         float64                        `json:"money" mapstructure:"money"`
	TotalEarned   float64                        `json:"totalEarned" mapstructure:"totalEarned"`
	ClickCount    int64                          `json:"clickCount" mapstructure:"clickCount"`
	MoneyPerClick float64                        `json:"moneyPerClick" mapstructure:"moneyPerClick"`
	Upgrades      map[string]domain.UpgradeState `json:"upgrades" mapstructure:"upgrades"`
	Skins         map[string]domain.SkinState    `json:"skins" mapstructure:"skins"`
	ActiveSkin    string                         `json:"activeSkin" mapstructure:"activeSkin"`
	PlayerName    string                         `json:"playerName" mapstructure:"playerName"`

	UnlockedRewards []string `json:"unlockedRewards" mapstructure:"unlockedRewards"`
	ClickEffects    []string `json:"clickEffects" mapstructure:"clickEffects"`
	VisualEffects   []string `json:"visualEffects" mapstructure:"visualEffects"`
	BonusEffects    []string `json:"bonusEffects" mapstructure:"bonusEffects"`
	SpecialEffects  []string `json:"specialEffects" mapstructure:"specialEffects"`

	LastSaved int64 `json:"lastSaved" mapstructure:"lastSaved"`

	Robocoins      float64 `json:"robocoins" mapstructure:"robocoins"`
	TotalRobocoins float64 `json:"totalRobocoins" mapstructure:"totalRobocoins"`
	PrestigeCount  int     `json:"prestigeCount" mapstructure:"prestigeCount"`

	ActiveAntiEffects []domain.AntiEffect `json:"activeAntiEffects" mapstructure:"activeAntiEffects"`

	Language      string         `json:"language" mapstructure:"language"`
	UnlockedCases []string       `json:"unlockedCases" mapstructure:"unlockedCases"`
	CasesOpened   map[string]int `json:"casesOpened" mapstructure:"casesOpened"`

	MusicEnabled             bool                          `json:"musicEnabled" mapstructure:"musicEnabled"`
	UseDesktopInterface      bool                          `json:"useDesktopInterface" mapstructure:"useDesktopInterface"`
	DesktopInterfaceUnlocked bool                          `json:"desktopInterfaceUnlocked" mapstructure:"desktopInterfaceUnlocked"`
	CustomThemes             map[string]domain.CustomTheme `json:"customThemes" mapstructure:"customThemes"`

	// hasBuckets is set on decode when any per-type reward array was present
	hasBuckets bool
}

// NewSnapshot captures the persistent part of a state
func NewSnapshot(s *domain.PlayerState, savedAt time.Time) Snapshot {
	snap := Snapshot{
		Money:                    s.Money,
		TotalEarned:              s.TotalEarned,
		ClickCount:               s.ClickCount,
		MoneyPerClick:            s.MoneyPerClick,
		Upgrades:                 make(map[string]domain.UpgradeState, len(s.Upgrades)),
		Skins:                    make(map[string]domain.SkinState, len(s.Skins)),
		ActiveSkin:               string(s.ActiveSkin),
		PlayerName:               s.PlayerName,
		UnlockedRewards:          rewardStrings(s.AllRewards()),
		ClickEffects:             rewardStrings(s.ClickEffects),
		VisualEffects:            rewardStrings(s.VisualEffects),
		BonusEffects:             rewardStrings(s.BonusEffects),
		SpecialEffects:           rewardStrings(s.SpecialEffects),
		LastSaved:                savedAt.UnixMilli(),
		Robocoins:                s.Robocoins,
		TotalRobocoins:           s.TotalRobocoins,
		PrestigeCount:            s.PrestigeCount,
		ActiveAntiEffects:        append([]domain.AntiEffect{}, s.ActiveAntiEffects...),
		Language:                 s.Language,
		UnlockedCases:            make([]string, 0, len(s.UnlockedCases)),
		CasesOpened:              make(map[string]int, len(s.CasesOpened)),
		MusicEnabled:             s.MusicEnabled,
		UseDesktopInterface:      s.UseDesktopInterface,
		DesktopInterfaceUnlocked: s.DesktopInterfaceUnlocked,
		CustomThemes:             make(map[string]domain.CustomTheme, len(s.CustomThemes)),
	}
	for id, u := range s.Upgrades {
		snap.Upgrades[string(id)] = u
	}
	for id, sk := range s.Skins {
		snap.Skins[string(id)] = sk
	}
	for _, tier := range s.UnlockedCases {
		snap.UnlockedCases = append(snap.UnlockedCases, string(tier))
	}
	for tier, n := range s.CasesOpened {
		snap.CasesOpened[string(tier)] = n
	}
	for id, th := range s.CustomThemes {
		snap.CustomThemes[id] = th
	}
	return snap
}

// Encode serializes the snapshot as JSON
func (s Snapshot) Encode() ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgEncodeFailed, err)
	}
	return data, nil
}

// defaultSnapshot holds the values absent fields keep. Collections stay nil
// so decoding never merges into them; reconcile fills them from the catalog.
func defaultSnapshot() Snapshot {
	return Snapshot{
		MoneyPerClick: 1,
		ActiveSkin:    string(domain.StarterSkin),
		PlayerName:    domain.DefaultPlayerName,
		Language:      domain.LanguageEnglish,
	}
}

// DecodeSnapshot decodes raw JSON over the defaults. Fields of the wrong
// shape are rejected by the schema before this runs, so weak typing only
// smooths over numeric representations.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Snapshot{}, fmt.Errorf(ErrMsgDecodeFailed, err)
	}

	snap := defaultSnapshot()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &snap,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Snapshot{}, fmt.Errorf(ErrMsgDecodeFailed, err)
	}
	if err := dec.Decode(raw); err != nil {
		return Snapshot{}, fmt.Errorf(ErrMsgDecodeFailed, err)
	}

	for _, key := range bucketKeys {
		if v, ok := raw[key]; ok && v != nil {
			snap.hasBuckets = true
			break
		}
	}
	return snap, nil
}

func rewardStrings(ids []domain.RewardID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}
