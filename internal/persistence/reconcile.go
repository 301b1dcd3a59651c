package persistence

import (
	"context"
	"math"
	"slices"
	"time"

	"github.com/osse101/CyberClicker_Go/internal/antieffect"
	"github.com/osse101/CyberClicker_Go/internal/catalog"
	"github.com/osse101/CyberClicker_Go/internal/domain"
	"github.com/osse101/CyberClicker_Go/internal/game"
	"github.com/osse101/CyberClicker_Go/internal/logger"
)

// Reconcile turns a decoded snapshot into a playable state. Catalog entries
// missing from the save take their defaults and unknown ids are dropped.
func Reconcile(ctx context.Context, snap Snapshot) *domain.PlayerState {
	log := logger.FromContext(ctx)
	s := catalog.NewPlayerState()

	s.Money = snap.Money
	s.TotalEarned = snap.TotalEarned
	s.ClickCount = snap.ClickCount
	if snap.MoneyPerClick > 0 {
		s.MoneyPerClick = snap.MoneyPerClick
	}
	if snap.PlayerName != "" {
		s.PlayerName = snap.PlayerName
	}
	s.Robocoins = snap.Robocoins
	s.TotalRobocoins = snap.TotalRobocoins
	s.PrestigeCount = snap.PrestigeCount
	s.MusicEnabled = snap.MusicEnabled
	s.UseDesktopInterface = snap.UseDesktopInterface
	s.DesktopInterfaceUnlocked = snap.DesktopInterfaceUnlocked
	if snap.LastSaved > 0 {
		s.LastSaved = time.UnixMilli(snap.LastSaved)
	}

	for id, saved := range snap.Upgrades {
		uid := domain.UpgradeID(id)
		if _, ok := s.Upgrades[uid]; !ok {
			log.Debug(LogMsgDroppedUnknownID, "kind", "upgrade", "id", id)
			continue
		}
		s.Upgrades[uid] = saved
	}

	for id, saved := range snap.Skins {
		sid := domain.SkinID(id)
		if _, ok := s.Skins[sid]; !ok {
			log.Debug(LogMsgDroppedUnknownID, "kind", "skin", "id", id)
			continue
		}
		s.Skins[sid] = saved
	}
	s.Skins[domain.StarterSkin] = domain.SkinState{Owned: true}

	if sid := domain.SkinID(snap.ActiveSkin); s.Skins[sid].Owned {
		s.ActiveSkin = sid
	} else {
		log.Debug(LogMsgActiveSkinFallback, "skin", snap.ActiveSkin)
		s.ActiveSkin = domain.StarterSkin
	}

	if snap.hasBuckets {
		for _, bucket := range [][]string{snap.ClickEffects, snap.VisualEffects, snap.BonusEffects, snap.SpecialEffects} {
			addRewards(ctx, s, bucket)
		}
	} else {
		addRewards(ctx, s, snap.UnlockedRewards)
	}

	s.ActiveAntiEffects = reconcileAntiEffects(ctx, snap.ActiveAntiEffects)
	s.ClickBlocked = s.HasAntiEffect(domain.AntiEffectClickButtonBlock)

	if lang, err := game.NormalizeLanguage(snap.Language); err == nil {
		s.Language = lang
	}

	for _, tier := range snap.UnlockedCases {
		t := domain.CaseTier(tier)
		if _, ok := catalog.Case(t); !ok {
			log.Debug(LogMsgDroppedUnknownID, "kind", "case", "id", tier)
			continue
		}
		if !slices.Contains(s.UnlockedCases, t) {
			s.UnlockedCases = append(s.UnlockedCases, t)
		}
	}

	for tier, n := range snap.CasesOpened {
		t := domain.CaseTier(tier)
		if _, ok := s.CasesOpened[t]; ok && n > 0 {
			s.CasesOpened[t] = n
		}
	}

	for id, th := range snap.CustomThemes {
		s.CustomThemes[id] = th
	}

	return s
}

// addRewards classifies each id by its catalog type into the matching bucket
func addRewards(ctx context.Context, s *domain.PlayerState, ids []string) {
	for _, raw := range ids {
		id := domain.RewardID(raw)
		r, ok := catalog.Reward(id)
		if !ok {
			logger.FromContext(ctx).Debug(LogMsgDroppedUnknownID, "kind", "reward", "id", raw)
			continue
		}
		switch r.Type {
		case domain.RewardClickEffect:
			s.ClickEffects = append(s.ClickEffects, id)
		case domain.RewardVisualEffect:
			s.VisualEffects = append(s.VisualEffects, id)
		case domain.RewardBonus:
			s.BonusEffects = append(s.BonusEffects, id)
		case domain.RewardSpecial:
			s.SpecialEffects = append(s.SpecialEffects, id)
		}
	}
}

// reconcileAntiEffects rebuilds saved instances from their definitions.
// Dynamic effects keep the fix cost they were priced at; timed effects keep
// their remaining time.
func reconcileAntiEffects(ctx context.Context, saved []domain.AntiEffect) []domain.AntiEffect {
	out := make([]domain.AntiEffect, 0, len(saved))
	seen := make(map[string]bool, len(saved))
	for _, a := range saved {
		def, ok := antieffect.Definition(a.ID)
		if !ok {
			logger.FromContext(ctx).Debug(LogMsgDroppedUnknownID, "kind", "anti_effect", "id", a.ID)
			continue
		}
		if seen[a.ID] {
			continue
		}
		seen[a.ID] = true

		if _, static := catalog.AntiEffect(a.ID); !static && a.FixCost > 0 {
			def.FixCost = a.FixCost
		}
		def.Applied = true
		if def.Timed() {
			def.TimeRemaining = def.Duration
			if a.TimeRemaining > 0 && a.TimeRemaining <= def.Duration {
				def.TimeRemaining = a.TimeRemaining
			}
		}
		out = append(out, def)
	}
	return out
}

// OfflineEarnings is what a player earned while away. It needs both a
// passive income and an offline earnings level, an unblocked offline
// upgrade, and an absence longer than OfflineThreshold.
func OfflineEarnings(s *domain.PlayerState, now time.Time) float64 {
	if s.LastSaved.IsZero() {
		return 0
	}
	// whole seconds only, for both the threshold and the payout
	elapsed := now.Sub(s.LastSaved).Truncate(time.Second)
	offline := s.Level(domain.UpgradeOfflineEarnings)
	if elapsed <= OfflineThreshold || offline == 0 || s.UpgradeBlocked(domain.UpgradeOfflineEarnings) {
		return 0
	}
	passive, _ := catalog.Upgrade(domain.UpgradePassiveIncome)
	off, _ := catalog.Upgrade(domain.UpgradeOfflineEarnings)
	return math.Floor(elapsed.Seconds() * float64(s.Level(domain.UpgradePassiveIncome)) * passive.Effect * float64(offline) * off.Effect)
}
