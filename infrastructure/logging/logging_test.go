package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("debug", &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.WithField("interface", "eth0").Debug("read current address")

	out := buf.String()
	if !strings.Contains(out, "interface=eth0") || !strings.Contains(out, `msg="read current address"`) {
		t.Fatalf("unexpected log line: %q", out)
	}
	if strings.Contains(out, "time=") {
		t.Fatalf("expected no timestamp, got %q", out)
	}
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(DefaultLevel, &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logger.GetLevel() != logrus.WarnLevel {
		t.Fatalf("expected warn level, got %v", logger.GetLevel())
	}
	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered, got %q", buf.String())
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New("loud", &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for invalid level")
	}
}

func TestDiscard(t *testing.T) {
	Discard().Error("nothing to see")
}
