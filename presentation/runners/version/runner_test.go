package version

import (
	"bytes"
	"strings"
	"testing"

	"macchanger/domain/app"
)

func TestRunner_Run_PrintsVersion(t *testing.T) {
	prevTag := Tag
	t.Cleanup(func() { Tag = prevTag })

	wantTag := "v1.2.3-test"
	Tag = wantTag // imitate ldflags injection

	var buf bytes.Buffer
	NewRunner(&buf).Run()

	want := app.Name + " " + wantTag
	if !strings.Contains(buf.String(), want) {
		t.Fatalf("stdout = %q, want substring %q", buf.String(), want)
	}
}

func TestCurrent(t *testing.T) {
	prevTag := Tag
	t.Cleanup(func() { Tag = prevTag })

	Tag = " v0.3.0 "
	if got := Current(); got != "v0.3.0" {
		t.Fatalf("expected trimmed tag, got %q", got)
	}

	Tag = ""
	if got := Current(); got != "" {
		t.Fatalf("expected empty value for empty tag, got %q", got)
	}
}
