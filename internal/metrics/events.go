package metrics

import (
	"context"

	"github.com/osse101/CyberClicker_Go/internal/domain"
	"github.com/osse101/CyberClicker_Go/internal/event"
	"github.com/osse101/CyberClicker_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	bus.Subscribe(event.GameNotification, e.HandleEvent)
	bus.Subscribe(event.GameSaved, e.HandleEvent)
	bus.Subscribe(event.SessionOpened, e.HandleEvent)
	bus.Subscribe(event.SessionClosed, e.HandleEvent)
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	switch evt.Type {
	case event.GameNotification:
		p, err := event.DecodePayload[event.NotificationPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
			return nil
		}
		GameEvents.WithLabelValues(string(evt.Type), p.Kind).Inc()
		recordNotification(domain.NotificationKind(p.Kind))

	case event.GameSaved:
		p, err := event.DecodePayload[event.SavePayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
			return nil
		}
		GameEvents.WithLabelValues(string(evt.Type), p.Trigger).Inc()

	case event.SessionOpened:
		GameEvents.WithLabelValues(string(evt.Type), "").Inc()
		ActiveSessions.Inc()

	case event.SessionClosed:
		GameEvents.WithLabelValues(string(evt.Type), "").Inc()
		ActiveSessions.Dec()
	}

	return nil
}

func recordNotification(kind domain.NotificationKind) {
	switch kind {
	case domain.NotifyUpgradePurchased:
		Purchases.WithLabelValues(PurchaseUpgrade).Inc()
	case domain.NotifySkinUnlocked:
		Purchases.WithLabelValues(PurchaseSkin).Inc()
	case domain.NotifyCaseReward:
		Purchases.WithLabelValues(PurchaseCase).Inc()
	case domain.NotifyAntiEffectFixed:
		Purchases.WithLabelValues(PurchaseFix).Inc()
		AntiEffects.WithLabelValues(AntiEffectFixed).Inc()
	case domain.NotifyAntiEffectApplied:
		AntiEffects.WithLabelValues(AntiEffectApplied).Inc()
	case domain.NotifyAntiEffectExpired:
		AntiEffects.WithLabelValues(AntiEffectExpired).Inc()
	case domain.NotifyShield:
		AntiEffects.WithLabelValues(AntiEffectShielded).Inc()
	case domain.NotifyPrestige:
		Prestiges.Inc()
	}
}
