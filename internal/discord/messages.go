package discord

// Friendly message constants for Discord responses
const (
	MsgInsufficientFunds = "💸 **Not Enough Money!**\nKeep clicking and try again."
	MsgCooldownActive    = "⏳ **Whoa there!**\nYou need to wait a bit before doing that again."
	MsgFeatureLocked     = "🔒 **Locked**\nYou haven't unlocked that yet."
	MsgClickBlocked      = "🚫 **Click Blocked**\nA DDoS attack is jamming your clicker. Fix it first!"
	MsgNotFound          = "❓ **Not Found**\nMaybe check the spelling?"
	MsgAlreadyOwned      = "✅ **Already Owned**\nYou already have that."
	MsgServerBusy        = "🛠️ **Server Busy**\nThe game server is restarting. Try again in a moment."
	MsgConnectionError   = "Error connecting to game server."

	MsgGenericError = "❌ Something went wrong."
)

// Embed colors
const (
	ColorClick    = 0x00ff9c
	ColorShop     = 0x2ecc71
	ColorCase     = 0x9b59b6
	ColorWheel    = 0xf1c40f
	ColorWarning  = 0xe74c3c
	ColorPrestige = 0xe67e22
	ColorInfo     = 0x3498db
	ColorBoard    = 0x1abc9c
)

// Footer constants for standardized embed footers
const (
	FooterCyberClicker = "CyberClicker"
)

// Log messages
const (
	LogMsgActionFailed   = "Action failed"
	LogMsgResponseFailed = "Failed to send response"
	LogMsgDeferFailed    = "Failed to send deferred response"
	LogMsgRenameFailed   = "Failed to sync player name"
)
