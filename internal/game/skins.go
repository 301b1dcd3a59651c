package game

import (
	"fmt"

	"github.com/osse101/CyberClicker_Go/internal/catalog"
	"github.com/osse101/CyberClicker_Go/internal/domain"
	"github.com/osse101/CyberClicker_Go/internal/format"
)

// BuySkin buys the next skin of the chain
func (e *Engine) BuySkin(id domain.SkinID) error {
	e.resetCombo()
	s := e.state

	skin, ok := catalog.Skin(id)
	if !ok {
		return e.reject(domain.NotifySkinRejected, fmt.Errorf("%w: %s", domain.ErrUnknownSkin, id))
	}
	if s.Skins[id].Owned {
		return e.reject(domain.NotifySkinRejected, fmt.Errorf("%w: %s", domain.ErrAlreadyOwned, skin.Name))
	}
	if skin.UnlockRequirement != "" && !s.Skins[skin.UnlockRequirement].Owned {
		return e.reject(domain.NotifySkinRejected,
			fmt.Errorf("%w: %s requires %s", domain.ErrSkinLocked, skin.Name, skin.UnlockRequirement))
	}
	if s.Money < skin.Cost {
		return e.reject(domain.NotifySkinRejected,
			fmt.Errorf("%w: %s costs %s", domain.ErrInsufficientFunds, skin.Name, format.Number(skin.Cost)))
	}

	s.Money -= skin.Cost
	s.Skins[id] = domain.SkinState{Owned: true}
	e.notify(domain.NotifySkinUnlocked, domain.SeveritySuccess, fmt.Sprintf("Skin unlocked: %s", skin.Name),
		map[string]interface{}{"id": id, "cost": skin.Cost})

	if !s.DesktopInterfaceUnlocked && catalog.AllSkinsOwned(s) {
		s.DesktopInterfaceUnlocked = true
		e.notify(domain.NotifyDesktopUnlocked, domain.SeveritySuccess, "Desktop interface unlocked!", nil)
	}
	e.requestSave()
	return nil
}

// ApplySkin switches to an owned skin
func (e *Engine) ApplySkin(id domain.SkinID) error {
	e.resetCombo()

	skin, ok := catalog.Skin(id)
	if !ok {
		return e.reject(domain.NotifySkinRejected, fmt.Errorf("%w: %s", domain.ErrUnknownSkin, id))
	}
	if !e.state.Skins[id].Owned {
		return e.reject(domain.NotifySkinRejected, fmt.Errorf("%w: %s", domain.ErrSkinNotOwned, skin.Name))
	}

	e.state.ActiveSkin = id
	e.notify(domain.NotifySkinApplied, domain.SeverityInfo, fmt.Sprintf("Skin applied: %s", skin.Name),
		map[string]interface{}{"id": id, "colors": skin.Colors})
	return nil
}
