package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingPlayerID       = "Missing player id"
	ErrMsgInvalidLimit          = "Invalid limit parameter"
	ErrMsgGetStateFailed        = "Failed to load game state"
	ErrMsgGetLeaderboardFailed  = "Failed to retrieve leaderboard"
	ErrMsgSaveFailed            = "Saving is unavailable right now. Your progress is kept in memory."
)

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgUnavailableError    = "Server is temporarily unavailable. Please try again later."
	ErrMsgOnCooldownError     = "The wheel is recharging. Try again later"
	ErrMsgNotEnoughMoneyError = "Not enough credits"
	ErrMsgNotFoundError       = "Not found"
	ErrMsgLockedError         = "That is still locked"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgConflictError       = "That action is not possible right now"
)

// Success messages for API responses
const (
	MsgSaved       = "Game saved"
	MsgResetDone   = "Game reset"
	MsgThemeSaved  = "Theme saved"
	MsgServiceOK   = "ok"
	MsgUnavailable = "unavailable"
)

// Log messages
const (
	LogMsgCommandRejected = "Command rejected"
	LogMsgCommandFailed   = "Command failed"
	LogMsgSessionRetry    = "Session closed mid-request, retrying"
	LogMsgReadyzFailed    = "Readiness check failed"
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
)
