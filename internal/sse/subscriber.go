package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/CyberClicker_Go/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for the events clients can follow
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.GameNotification, s.handleNotification)
	s.bus.Subscribe(event.GameSaved, s.handleSaved)

	slog.Info(LogMsgSubscribed,
		"types", []string{string(event.GameNotification), string(event.GameSaved)})
}

func (s *Subscriber) handleNotification(_ context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.NotificationPayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	s.hub.Broadcast(p.PlayerID, EventTypeNotification, NotificationPayload{
		Kind:     p.Kind,
		Severity: p.Severity,
		Message:  p.Message,
		Data:     p.Data,
	})
	slog.Debug(LogMsgEventBroadcast, "event_type", EventTypeNotification, "player_id", p.PlayerID, "kind", p.Kind)
	return nil
}

func (s *Subscriber) handleSaved(_ context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.SavePayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	s.hub.Broadcast(p.PlayerID, EventTypeSaved, SavedPayload{Trigger: p.Trigger, Success: p.Success})
	return nil
}
