package game

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"

	"github.com/osse101/CyberClicker_Go/internal/catalog"
	"github.com/osse101/CyberClicker_Go/internal/domain"
)

// Settings is a partial update; nil fields are left unchanged
type Settings struct {
	Language            *string `json:"language,omitempty"`
	MusicEnabled        *bool   `json:"musicEnabled,omitempty"`
	UseDesktopInterface *bool   `json:"useDesktopInterface,omitempty"`
}

// Rename changes the player name shown on the leaderboard
func (e *Engine) Rename(name string) error {
	name, err := validName(name)
	if err != nil {
		return e.reject(domain.NotifyProfile, err)
	}
	e.state.PlayerName = name
	e.notify(domain.NotifyProfile, domain.SeverityInfo, fmt.Sprintf("Name changed to %s", name), nil)
	e.requestSave()
	return nil
}

// UpdateSettings validates every field before applying any of them
func (e *Engine) UpdateSettings(in Settings) error {
	s := e.state
	var lang string
	if in.Language != nil {
		var err error
		if lang, err = NormalizeLanguage(*in.Language); err != nil {
			return e.reject(domain.NotifyProfile, err)
		}
	}
	if in.UseDesktopInterface != nil && *in.UseDesktopInterface && !s.DesktopInterfaceUnlocked {
		return e.reject(domain.NotifyProfile, domain.ErrDesktopLocked)
	}

	if in.Language != nil {
		s.Language = lang
	}
	if in.MusicEnabled != nil {
		s.MusicEnabled = *in.MusicEnabled
	}
	if in.UseDesktopInterface != nil {
		s.UseDesktopInterface = *in.UseDesktopInterface
	}
	e.notify(domain.NotifyProfile, domain.SeverityInfo, "Settings updated", nil)
	return nil
}

// SaveCustomTheme stores a new palette and returns its id
func (e *Engine) SaveCustomTheme(name string, colors domain.Palette) (string, error) {
	e.resetCombo()
	if e.state.PrestigeCount == 0 {
		return "", e.reject(domain.NotifyTheme, domain.ErrThemesLocked)
	}
	name, err := validName(name)
	if err != nil {
		return "", e.reject(domain.NotifyTheme, err)
	}

	id := CustomThemePrefix + e.newID()
	if e.state.CustomThemes == nil {
		e.state.CustomThemes = map[string]domain.CustomTheme{}
	}
	e.state.CustomThemes[id] = domain.CustomTheme{Name: name, Colors: colors}
	e.notify(domain.NotifyTheme, domain.SeveritySuccess, fmt.Sprintf("Theme created: %s", name),
		map[string]interface{}{"id": id})
	e.requestSave()
	return id, nil
}

// ApplyCustomTheme announces the palette of a saved theme
func (e *Engine) ApplyCustomTheme(id string) (domain.CustomTheme, error) {
	e.resetCombo()
	theme, ok := e.state.CustomThemes[id]
	if !ok {
		return domain.CustomTheme{}, e.reject(domain.NotifyTheme, fmt.Errorf("%w: %s", domain.ErrThemeNotFound, id))
	}
	e.notify(domain.NotifyTheme, domain.SeverityInfo, fmt.Sprintf("Theme applied: %s", theme.Name),
		map[string]interface{}{"id": id, "colors": theme.Colors})
	return theme, nil
}

// DeleteCustomTheme removes a saved theme
func (e *Engine) DeleteCustomTheme(id string) error {
	e.resetCombo()
	theme, ok := e.state.CustomThemes[id]
	if !ok {
		return e.reject(domain.NotifyTheme, fmt.Errorf("%w: %s", domain.ErrThemeNotFound, id))
	}
	delete(e.state.CustomThemes, id)
	e.notify(domain.NotifyTheme, domain.SeverityInfo, fmt.Sprintf("Theme deleted: %s", theme.Name), nil)
	e.requestSave()
	return nil
}

// Reset replaces the state with a fresh game
func (e *Engine) Reset() {
	e.state = catalog.NewPlayerState()
	e.primeUnlockFlags()
	e.notify(domain.NotifyReset, domain.SeverityInfo, "Game reset", nil)
}

func validName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if n := utf8.RuneCountInString(name); n == 0 || n > MaxNameLength {
		return "", fmt.Errorf("%w: must be 1-%d characters", domain.ErrInvalidName, MaxNameLength)
	}
	if HasControlChars(name) {
		return "", fmt.Errorf("%w: contains control characters", domain.ErrInvalidName)
	}
	return name, nil
}

// HasControlChars reports whether s contains a control character
func HasControlChars(s string) bool {
	return strings.IndexFunc(s, unicode.IsControl) >= 0
}

// NormalizeLanguage accepts any tag whose base language is supported, e.g. "en-US" or "UK"
func NormalizeLanguage(tag string) (string, error) {
	parsed, err := language.Parse(tag)
	if err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidLanguage, tag)
	}
	base, _ := parsed.Base()
	switch base.String() {
	case domain.LanguageEnglish:
		return domain.LanguageEnglish, nil
	case domain.LanguageUkrainian:
		return domain.LanguageUkrainian, nil
	default:
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidLanguage, tag)
	}
}
