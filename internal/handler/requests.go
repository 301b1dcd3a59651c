package handler

import "github.com/osse101/CyberClicker_Go/internal/domain"

// RenameRequest changes the player name
type RenameRequest struct {
	Name string `json:"name" validate:"required,min=1,max=32,printable"`
}

// SettingsRequest is a partial settings update; absent fields are unchanged
type SettingsRequest struct {
	Language            *string `json:"language,omitempty" validate:"omitempty,language"`
	MusicEnabled        *bool   `json:"musicEnabled,omitempty"`
	UseDesktopInterface *bool   `json:"useDesktopInterface,omitempty"`
}

// ThemeColors is a palette in #rrggbb form
type ThemeColors struct {
	Primary    string `json:"primary" validate:"required,hexcolor"`
	Secondary  string `json:"secondary" validate:"required,hexcolor"`
	Accent     string `json:"accent" validate:"required,hexcolor"`
	Background string `json:"background" validate:"required,hexcolor"`
}

// ThemeRequest saves a custom theme
type ThemeRequest struct {
	Name   string      `json:"name" validate:"required,min=1,max=32"`
	Colors ThemeColors `json:"colors" validate:"required"`
}

func (t ThemeColors) palette() domain.Palette {
	return domain.Palette{
		Primary:    t.Primary,
		Secondary:  t.Secondary,
		Accent:     t.Accent,
		Background: t.Background,
	}
}

// WheelStatusResponse reports the wheel cooldown
type WheelStatusResponse struct {
	Ready            bool   `json:"ready"`
	ReadyAt          *int64 `json:"readyAt,omitempty"`
	RemainingSeconds int    `json:"remainingSeconds"`
}

// FormatResponse is a formatted number
type FormatResponse struct {
	Input     float64 `json:"input"`
	Formatted string  `json:"formatted"`
	Grouped   string  `json:"grouped"`
}

// CatalogResponse lists every static game definition
type CatalogResponse struct {
	Upgrades    []domain.Upgrade    `json:"upgrades"`
	Skins       []domain.Skin       `json:"skins"`
	Cases       []domain.Case       `json:"cases"`
	WheelPrizes []domain.WheelPrize `json:"wheelPrizes"`
	AntiEffects []domain.AntiEffect `json:"antiEffects"`
}
