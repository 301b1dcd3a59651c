package catalog

import "github.com/osse101/CyberClicker_Go/internal/domain"

const untilFixed = domain.DurationUntilFixed

var antiEffects = []domain.AntiEffect{
	{ID: "virus", Name: "Virus", Description: "Reduces click income by 30%",
		Type: domain.AntiEffectClick, Severity: 0.3, FixCost: 5000, Duration: untilFixed},
	{ID: "glitch", Name: "Glitch", Description: "Blocks critical clicks",
		Type: domain.AntiEffectCritical, Severity: 1, FixCost: 10000, Duration: untilFixed},
	{ID: "malware", Name: "Malware", Description: "Reduces auto-click speed by 50%",
		Type: domain.AntiEffectAuto, Severity: 0.5, FixCost: 15000, Duration: untilFixed},
	{ID: "corruption", Name: "Data Corruption", Description: "Blocks combo system",
		Type: domain.AntiEffectCombo, Severity: 1, FixCost: 25000, Duration: untilFixed},
	{ID: "firewall", Name: "Firewall", Description: "Blocks passive income",
		Type: domain.AntiEffectPassive, Severity: 1, FixCost: 50000, Duration: untilFixed},
	{ID: "ddos", Name: "DDoS Attack", Description: "Reduces all income by 20% for 60 seconds",
		Type: domain.AntiEffectIncome, Severity: 0.2, FixCost: 100000, Duration: 60},
	{ID: "double-value-block", Name: "Double Value Block", Description: "Blocks double value effect",
		Type: domain.AntiEffectUpgrade, TargetUpgrade: domain.UpgradeDoubleValue, Severity: 1, FixCost: 20000, Duration: untilFixed},
	{ID: "auto-hack-block", Name: "Auto Hack Block", Description: "Completely blocks auto hack",
		Type: domain.AntiEffectUpgrade, TargetUpgrade: domain.UpgradeAutoClicker, Severity: 1, FixCost: 30000, Duration: untilFixed},
	{ID: "critical-hack-block", Name: "Critical Hack Block", Description: "Blocks critical hack",
		Type: domain.AntiEffectUpgrade, TargetUpgrade: domain.UpgradeCriticalClick, Severity: 1, FixCost: 40000, Duration: untilFixed},
	{ID: "passive-income-block", Name: "Passive Income Block", Description: "Blocks passive income",
		Type: domain.AntiEffectUpgrade, TargetUpgrade: domain.UpgradePassiveIncome, Severity: 1, FixCost: 60000, Duration: untilFixed},
	{ID: "click-multiplier-block", Name: "Click Multiplier Block", Description: "Blocks click multiplier",
		Type: domain.AntiEffectUpgrade, TargetUpgrade: domain.UpgradeClickMultiplier, Severity: 1, FixCost: 80000, Duration: untilFixed},
	{ID: "system-slowdown", Name: "System Slowdown", Description: "Reduces all income by 40%",
		Type: domain.AntiEffectIncome, Severity: 0.4, FixCost: 150000, Duration: untilFixed},
	{ID: "memory-leak", Name: "Memory Leak", Description: "Gradually reduces click efficiency",
		Type: domain.AntiEffectClick, Severity: 0.05, FixCost: 200000, Duration: 120},
	{ID: domain.AntiEffectRansomware, Name: "Ransomware", Description: "Blocks all upgrades until fixed",
		Type: domain.AntiEffectIncome, Severity: 0.7, FixCost: 500000, Duration: untilFixed},
}

var antiEffectIndex = indexBy(antiEffects, func(a domain.AntiEffect) string { return a.ID })

// AntiEffects returns the static anti-effect definitions
func AntiEffects() []domain.AntiEffect {
	return append([]domain.AntiEffect(nil), antiEffects...)
}

// AntiEffect looks up a static anti-effect definition
func AntiEffect(id string) (domain.AntiEffect, bool) {
	i, ok := antiEffectIndex[id]
	if !ok {
		return domain.AntiEffect{}, false
	}
	return antiEffects[i], true
}
