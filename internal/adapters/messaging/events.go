// Package messaging convierte los eventos del ciclo de vida en mensajes publicados
// (exchange topic, routing key <entity>.<action>).
package messaging

import (
	"context"
	"time"

	"vet-clinic-records/internal/domain/lifecycle"
	"vet-clinic-records/internal/platform/logger"
	"vet-clinic-records/internal/platform/telemetry"

	"github.com/google/uuid"
)

// Publisher publica payload (JSON) con la routing key indicada.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// Message es el cuerpo que viaja por el broker.
type Message struct {
	EventID    string    `json:"event_id"`
	Entity     string    `json:"entity"`
	Action     string    `json:"action"`
	ID         int64     `json:"id"`
	Actor      string    `json:"actor"`
	OccurredAt time.Time `json:"occurred_at"`
}

func RoutingKey(ev lifecycle.Event) string {
	return ev.Entity + "." + string(ev.Action)
}

func NewMessage(ev lifecycle.Event) Message {
	return Message{
		EventID:    uuid.NewString(),
		Entity:     ev.Entity,
		Action:     string(ev.Action),
		ID:         ev.ID,
		Actor:      ev.Actor,
		OccurredAt: ev.At,
	}
}

const publishTimeout = 2 * time.Second

// NewHook arma el hook que reciben los services: publica (si pub != nil),
// cuenta la métrica y deja una línea de log. Un fallo al publicar no corta la operación.
func NewHook(pub Publisher, metrics *telemetry.Metrics, log logger.Logger) lifecycle.Hook {
	return func(ctx context.Context, ev lifecycle.Event) {
		key := RoutingKey(ev)
		fields := map[string]any{
			"entity": ev.Entity,
			"action": string(ev.Action),
			"id":     ev.ID,
			"actor":  ev.Actor,
		}

		if pub != nil {
			msg := NewMessage(ev)
			fields["event_id"] = msg.EventID

			// El request puede estar por cancelarse; el publish usa su propio plazo.
			pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
			err := pub.Publish(pctx, key, msg)
			cancel()
			if err != nil {
				metrics.RecordPublishFailure(ctx, key)
				log.Warn("event publish failed", map[string]any{"routing_key": key, "error": err})
			}
		}

		metrics.RecordLifecycleEvent(ctx, ev.Entity, string(ev.Action))
		logger.FromContext(ctx).Info("lifecycle event", fields)
	}
}

// MessageID lo usa el publisher de rabbitmq como message id de AMQP.
func (m Message) MessageID() string { return m.EventID }
