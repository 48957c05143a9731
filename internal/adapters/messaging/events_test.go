package messaging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"vet-clinic-records/internal/domain/lifecycle"
	"vet-clinic-records/internal/platform/logger"
)

type fakePublisher struct {
	keys []string
	msgs []Message
	err  error
}

func (f *fakePublisher) Publish(_ context.Context, key string, payload any) error {
	f.keys = append(f.keys, key)
	if m, ok := payload.(Message); ok {
		f.msgs = append(f.msgs, m)
	}
	return f.err
}

func sampleEvent() lifecycle.Event {
	return lifecycle.Event{
		Entity: "patient",
		Action: lifecycle.ActionDeleted,
		ID:     42,
		Actor:  "dra.lopez",
		At:     time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestHook_PublishesWithRoutingKey(t *testing.T) {
	pub := &fakePublisher{}
	hook := NewHook(pub, nil, logger.Nop())

	hook(context.Background(), sampleEvent())

	if len(pub.keys) != 1 || pub.keys[0] != "patient.deleted" {
		t.Fatalf("unexpected routing keys: %v", pub.keys)
	}
	m := pub.msgs[0]
	if m.ID != 42 || m.Actor != "dra.lopez" || m.Action != "deleted" || m.Entity != "patient" {
		t.Fatalf("unexpected message: %+v", m)
	}
	if m.EventID == "" {
		t.Fatalf("event id must be set")
	}
}

func TestHook_PublishFailureIsLoggedNotPropagated(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Debug, Format: logger.FormatJSON, Out: &buf})
	pub := &fakePublisher{err: errors.New("broker down")}

	NewHook(pub, nil, log)(context.Background(), sampleEvent())

	out := buf.String()
	if !strings.Contains(out, "event publish failed") || !strings.Contains(out, "broker down") {
		t.Fatalf("expected warn log, got: %s", out)
	}
	if !strings.Contains(out, `"level":"warn"`) {
		t.Fatalf("expected warn level, got: %s", out)
	}
}

func TestHook_WithoutPublisher(t *testing.T) {
	hook := NewHook(nil, nil, logger.Nop())
	hook(context.Background(), sampleEvent())
}
