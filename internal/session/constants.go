package session

import "time"

// Defaults for Options
const (
	DefaultTickInterval            = time.Second
	DefaultAutosaveInterval        = 60 * time.Second
	DefaultAntiEffectCheckInterval = 30 * time.Second
	DefaultQueueSize               = 256
	DefaultCacheSize               = 1000
)

// Log messages
const (
	LogMsgSessionOpened    = "Session opened"
	LogMsgSessionClosed    = "Session closed"
	LogMsgSessionEvicted   = "Session evicted"
	LogMsgAutosaveFailed   = "Autosave failed"
	LogMsgFinalSaveFailed  = "Final save failed"
	LogMsgPublishFailed    = "Failed to publish notification"
	LogMsgAutoRateChanged  = "Auto clicker rescheduled"
	LogMsgShutdownTimeout  = "Session shutdown timed out"
	LogMsgShutdownComplete = "All sessions closed"
)

// Message shown when a returning player collects offline income
const MsgOfflineEarnings = "Welcome back! You earned %s credits while away"
