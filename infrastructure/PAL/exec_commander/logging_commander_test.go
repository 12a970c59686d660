package exec_commander

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

type cannedCommander struct {
	output []byte
	err    error
}

func (c *cannedCommander) CombinedOutput(string, ...string) ([]byte, error) { return c.output, c.err }
func (c *cannedCommander) Output(string, ...string) ([]byte, error) { return c.output, c.err }
func (c *cannedCommander) LookPath(name string) (string, error) { return "/usr/sbin/" + name, nil }

func newDebugLogger(buf *bytes.Buffer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(buf)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return logger
}

func TestLoggingCommander_LogsCommandAndOutput(t *testing.T) {
	var buf bytes.Buffer
	c := NewLoggingCommander(&cannedCommander{output: []byte("link/ether aa:bb:cc:dd:ee:ff\n")}, newDebugLogger(&buf))

	out, err := c.Output("ip", "link", "show", "eth0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "link/ether aa:bb:cc:dd:ee:ff\n" {
		t.Fatalf("output altered: %q", out)
	}

	line := buf.String()
	if !strings.Contains(line, `command="ip link show eth0"`) {
		t.Fatalf("missing command field: %q", line)
	}
	if !strings.Contains(line, "aa:bb:cc:dd:ee:ff") {
		t.Fatalf("missing output field: %q", line)
	}
}

func TestLoggingCommander_PassesErrorThrough(t *testing.T) {
	var buf bytes.Buffer
	want := errors.New("exit status 2")
	c := NewLoggingCommander(&cannedCommander{output: []byte("busy"), err: want}, newDebugLogger(&buf))

	_, err := c.CombinedOutput("ip", "link", "set", "dev", "eth0", "up")
	if !errors.Is(err, want) {
		t.Fatalf("expected %v, got %v", want, err)
	}
	if !strings.Contains(buf.String(), `error="exit status 2"`) {
		t.Fatalf("missing error field: %q", buf.String())
	}
}

func TestLoggingCommander_LookPath(t *testing.T) {
	c := NewLoggingCommander(&cannedCommander{}, logrus.New())
	path, err := c.LookPath("ip")
	if err != nil || path != "/usr/sbin/ip" {
		t.Fatalf("unexpected LookPath result %q, %v", path, err)
	}
}
