package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestJSONOutput_IncludesBaseAndFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatJSON, App: "vet-clinic-records", Out: &buf})

	l.With(map[string]any{"request_id": "r-1"}).Info("customer created", map[string]any{
		"customer_id": 7,
		"error":       errors.New("none"),
		"":            "dropped",
	})

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("output is not json: %v (%s)", err, buf.String())
	}
	if entry["app"] != "vet-clinic-records" || entry["request_id"] != "r-1" {
		t.Fatalf("missing base fields: %v", entry)
	}
	if entry["message"] != "customer created" || entry["level"] != "info" {
		t.Fatalf("unexpected message/level: %v", entry)
	}
	if entry["error"] != "none" {
		t.Fatalf("error field should be stringified: %v", entry["error"])
	}
	if _, ok := entry[""]; ok {
		t.Fatalf("empty key must be dropped")
	}
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Format: FormatJSON, Out: &buf})
	l.Info("hidden", nil)
	l.Debug("hidden", nil)
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn, got %s", buf.String())
	}
	l.Error("shown", nil)
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("expected error entry, got %s", buf.String())
	}
}

func TestParse(t *testing.T) {
	if ParseLevel("WARNING") != Warn || ParseLevel("bogus") != Info {
		t.Fatalf("ParseLevel mismatch")
	}
	if ParseFormat("JSON") != FormatJSON || ParseFormat("") != FormatText {
		t.Fatalf("ParseFormat mismatch")
	}
}

func TestFromContext_DefaultsToNop(t *testing.T) {
	l := FromContext(context.Background())
	if l == nil {
		t.Fatalf("expected nop logger")
	}
	l.Info("ignored", nil)

	var buf bytes.Buffer
	custom := New(Options{Format: FormatJSON, Out: &buf})
	ctx := WithContext(context.Background(), custom)
	FromContext(ctx).Info("kept", nil)
	if !strings.Contains(buf.String(), "kept") {
		t.Fatalf("expected logger from context to be used")
	}
}
