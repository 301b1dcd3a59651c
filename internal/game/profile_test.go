package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CyberClicker_Go/internal/catalog"
	"github.com/osse101/CyberClicker_Go/internal/domain"
)

func TestRename(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "trimmed", input: "  Neo  ", want: "Neo"},
		{name: "unicode counts runes", input: strings.Repeat("ї", MaxNameLength), want: strings.Repeat("ї", MaxNameLength)},
		{name: "empty", input: "   ", wantErr: true},
		{name: "too long", input: strings.Repeat("a", MaxNameLength+1), wantErr: true},
		{name: "control characters", input: "Ne\to", wantErr: true},
		{name: "letters and digits", input: "trinity_0x", want: "trinity_0x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEngine(nil)

			err := e.Rename(tt.input)

			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidName)
				assert.Equal(t, domain.DefaultPlayerName, e.State().PlayerName)
				assert.False(t, e.TakeSaveRequest())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, e.State().PlayerName)
			assert.True(t, e.TakeSaveRequest())
		})
	}
}

func TestUpdateSettings(t *testing.T) {
	ptr := func(s string) *string { return &s }
	yes, no := true, false

	tests := []struct {
		name     string
		unlocked bool
		in       Settings
		wantErr  error
		wantLang string
		wantDesk bool
	}{
		{name: "region tag", in: Settings{Language: ptr("en-US")}, wantLang: "en"},
		{name: "ukrainian upper case", in: Settings{Language: ptr("UK")}, wantLang: "uk"},
		{name: "unsupported language", in: Settings{Language: ptr("fr")}, wantErr: domain.ErrInvalidLanguage, wantLang: "en"},
		{name: "garbage language", in: Settings{Language: ptr("??")}, wantErr: domain.ErrInvalidLanguage, wantLang: "en"},
		{name: "locked desktop", in: Settings{UseDesktopInterface: &yes}, wantErr: domain.ErrDesktopLocked, wantLang: "en"},
		{name: "unlocked desktop", unlocked: true, in: Settings{UseDesktopInterface: &yes}, wantLang: "en", wantDesk: true},
		{name: "nothing applied when one field fails", in: Settings{Language: ptr("uk"), UseDesktopInterface: &yes},
			wantErr: domain.ErrDesktopLocked, wantLang: "en"},
		{name: "desktop off is always allowed", in: Settings{UseDesktopInterface: &no}, wantLang: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := catalog.NewPlayerState()
			state.DesktopInterfaceUnlocked = tt.unlocked
			e, _ := newTestEngine(state)

			err := e.UpdateSettings(tt.in)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantLang, e.State().Language)
			assert.Equal(t, tt.wantDesk, e.State().UseDesktopInterface)
		})
	}
}

func TestUpdateSettings_Music(t *testing.T) {
	on := true
	e, _ := newTestEngine(nil)

	require.NoError(t, e.UpdateSettings(Settings{MusicEnabled: &on}))

	assert.True(t, e.State().MusicEnabled)
}

func TestCustomThemes(t *testing.T) {
	palette := domain.Palette{Primary: "#00ff00", Secondary: "#003300", Accent: "#ff00ff", Background: "#000000"}

	t.Run("locked before first prestige", func(t *testing.T) {
		e, rec := newTestEngine(nil)

		_, err := e.SaveCustomTheme("Matrix", palette)

		assert.ErrorIs(t, err, domain.ErrThemesLocked)
		assert.Empty(t, e.State().CustomThemes)
		assert.Equal(t, 1, rec.count(domain.NotifyTheme))
	})

	t.Run("save apply delete", func(t *testing.T) {
		state := catalog.NewPlayerState()
		state.PrestigeCount = 1
		e, _ := newTestEngine(state)

		id, err := e.SaveCustomTheme(" Matrix ", palette)
		require.NoError(t, err)
		assert.Equal(t, CustomThemePrefix+"fixed", id)
		assert.True(t, e.TakeSaveRequest())

		theme, err := e.ApplyCustomTheme(id)
		require.NoError(t, err)
		assert.Equal(t, "Matrix", theme.Name)
		assert.Equal(t, palette, theme.Colors)

		require.NoError(t, e.DeleteCustomTheme(id))
		assert.Empty(t, e.State().CustomThemes)

		_, err = e.ApplyCustomTheme(id)
		assert.ErrorIs(t, err, domain.ErrThemeNotFound)
		assert.ErrorIs(t, e.DeleteCustomTheme(id), domain.ErrThemeNotFound)
	})
}

func TestReset(t *testing.T) {
	state := withAdvancedUnlocked(catalog.NewPlayerState())
	state.Money = 1e6
	state.PrestigeCount = 3
	e, rec := newTestEngine(state)

	e.Reset()

	assert.Equal(t, catalog.NewPlayerState(), e.State())
	assert.Equal(t, 1, rec.count(domain.NotifyReset))

	e.AddMoney(1)
	assert.Zero(t, rec.count(domain.NotifyCategoryUnlocked))
}
