package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/CyberClicker_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

const (
	GameNotification Type = "game.notification"
	GameSaved        Type = "game.saved"
	SessionOpened    Type = "session.opened"
	SessionClosed    Type = "session.closed"
)

// NotificationPayloadV1 carries one engine notification to subscribers
type NotificationPayloadV1 struct {
	PlayerID  string                 `json:"player_id" mapstructure:"player_id"`
	Kind      string                 `json:"kind" mapstructure:"kind"`
	Severity  string                 `json:"severity" mapstructure:"severity"`
	Message   string                 `json:"message" mapstructure:"message"`
	Data      map[string]interface{} `json:"data,omitempty" mapstructure:"data"`
	Timestamp int64                  `json:"timestamp" mapstructure:"timestamp"`
}

// SavePayloadV1 reports the outcome of a snapshot write
type SavePayloadV1 struct {
	PlayerID   string `json:"player_id" mapstructure:"player_id"`
	Trigger    string `json:"trigger" mapstructure:"trigger"`
	Success    bool   `json:"success" mapstructure:"success"`
	DurationMs int64  `json:"duration_ms" mapstructure:"duration_ms"`
}

// SessionPayloadV1 is published when a session starts or stops
type SessionPayloadV1 struct {
	PlayerID string `json:"player_id" mapstructure:"player_id"`
	Reason   string `json:"reason,omitempty" mapstructure:"reason"`
}

// NewNotificationEvent wraps an engine notification for the bus
func NewNotificationEvent(playerID string, n domain.Notification, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    GameNotification,
		Payload: NotificationPayloadV1{
			PlayerID:  playerID,
			Kind:      string(n.Kind),
			Severity:  string(n.Severity),
			Message:   n.Message,
			Data:      n.Data,
			Timestamp: at.UnixMilli(),
		},
	}
}

// NewSaveEvent reports a finished save attempt
func NewSaveEvent(playerID, trigger string, success bool, took time.Duration) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    GameSaved,
		Payload: SavePayloadV1{
			PlayerID:   playerID,
			Trigger:    trigger,
			Success:    success,
			DurationMs: took.Milliseconds(),
		},
	}
}

// NewSessionEvent builds a session.opened or session.closed event
func NewSessionEvent(eventType Type, playerID, reason string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: SessionPayloadV1{PlayerID: playerID, Reason: reason},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber of the event type synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
