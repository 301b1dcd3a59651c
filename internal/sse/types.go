package sse

// NotificationPayload is what a client sees for one game notification
type NotificationPayload struct {
	Kind     string                 `json:"kind"`
	Severity string                 `json:"severity"`
	Message  string                 `json:"message"`
	Data     map[string]interface{} `json:"data,omitempty"`
}

// SavedPayload reports the result of a save
type SavedPayload struct {
	Trigger string `json:"trigger"`
	Success bool   `json:"success"`
}
