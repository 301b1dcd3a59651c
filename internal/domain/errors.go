package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Click errors
	ErrMsgClickBlocked = "click button is blocked"

	// Upgrade errors
	ErrMsgUnknownUpgrade = "unknown upgrade"
	ErrMsgUpgradesLocked = "all upgrades are locked"
	ErrMsgUpgradeBlocked = "upgrade is blocked"
	ErrMsgCategoryLocked = "upgrade category is locked"

	// Skin errors
	ErrMsgUnknownSkin  = "unknown skin"
	ErrMsgAlreadyOwned = "already owned"
	ErrMsgSkinLocked   = "skin is locked"
	ErrMsgSkinNotOwned = "skin is not owned"

	// Case errors
	ErrMsgUnknownCase = "unknown case"
	ErrMsgCaseLocked  = "case tier is locked"

	// Prestige errors
	ErrMsgPrestigeRequirements = "first prestige requires every upgrade and every skin"
	ErrMsgNotEnoughProgress    = "not enough progress to prestige"

	// Anti-effect errors
	ErrMsgAntiEffectNotActive = "anti-effect is not active"

	// Settings errors
	ErrMsgInvalidName     = "invalid player name"
	ErrMsgInvalidLanguage = "unsupported language"
	ErrMsgDesktopLocked   = "desktop interface is locked"
	ErrMsgThemesLocked    = "custom themes are locked"
	ErrMsgThemeNotFound   = "theme not found"

	// Cooldown errors
	ErrMsgOnCooldown = "action on cooldown"

	// Session/persistence errors
	ErrMsgSnapshotNotFound = "snapshot not found"
	ErrMsgSessionClosed    = "session is closed"
	ErrMsgDatabaseError    = "database error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	ErrClickBlocked = errors.New(ErrMsgClickBlocked)

	ErrUnknownUpgrade = errors.New(ErrMsgUnknownUpgrade)
	ErrUpgradesLocked = errors.New(ErrMsgUpgradesLocked)
	ErrUpgradeBlocked = errors.New(ErrMsgUpgradeBlocked)
	ErrCategoryLocked = errors.New(ErrMsgCategoryLocked)

	ErrUnknownSkin  = errors.New(ErrMsgUnknownSkin)
	ErrAlreadyOwned = errors.New(ErrMsgAlreadyOwned)
	ErrSkinLocked   = errors.New(ErrMsgSkinLocked)
	ErrSkinNotOwned = errors.New(ErrMsgSkinNotOwned)

	ErrUnknownCase = errors.New(ErrMsgUnknownCase)
	ErrCaseLocked  = errors.New(ErrMsgCaseLocked)

	ErrPrestigeRequirements = errors.New(ErrMsgPrestigeRequirements)
	ErrNotEnoughProgress    = errors.New(ErrMsgNotEnoughProgress)

	ErrAntiEffectNotActive = errors.New(ErrMsgAntiEffectNotActive)

	ErrInvalidName     = errors.New(ErrMsgInvalidName)
	ErrInvalidLanguage = errors.New(ErrMsgInvalidLanguage)
	ErrDesktopLocked   = errors.New(ErrMsgDesktopLocked)
	ErrThemesLocked    = errors.New(ErrMsgThemesLocked)
	ErrThemeNotFound   = errors.New(ErrMsgThemeNotFound)

	ErrOnCooldown = errors.New(ErrMsgOnCooldown)

	ErrSnapshotNotFound = errors.New(ErrMsgSnapshotNotFound)
	ErrSessionClosed    = errors.New(ErrMsgSessionClosed)
	ErrDatabaseError    = errors.New(ErrMsgDatabaseError)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

// IsRejection reports whether err is an ordinary gameplay rejection rather than a system failure.
func IsRejection(err error) bool {
	for _, target := range rejections {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

var rejections = []error{
	ErrInsufficientFunds, ErrClickBlocked, ErrUnknownUpgrade, ErrUpgradesLocked, ErrUpgradeBlocked,
	ErrCategoryLocked, ErrUnknownSkin, ErrAlreadyOwned, ErrSkinLocked, ErrSkinNotOwned, ErrUnknownCase,
	ErrCaseLocked, ErrPrestigeRequirements, ErrNotEnoughProgress, ErrAntiEffectNotActive, ErrInvalidName,
	ErrInvalidLanguage, ErrDesktopLocked, ErrThemesLocked, ErrThemeNotFound, ErrOnCooldown, ErrInvalidInput,
}
