package interface_query

import (
	"errors"
	"strings"
	"testing"

	"macchanger/infrastructure/PAL/exec_commander/simulated"
	"macchanger/infrastructure/PAL/link"
	"macchanger/infrastructure/logging"
)

func newQuery(host *simulated.Host) *Query {
	return NewQuery(host, link.NewDefaultProvider(host), logging.Discard())
}

func TestCurrentAddress_Primary(t *testing.T) {
	host := simulated.NewHost("ip", "ifconfig").WithLink("eth0", "aa:bb:cc:dd:ee:ff")

	got, err := newQuery(host).CurrentAddress("eth0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "AA:BB:CC:DD:EE:FF" {
		t.Fatalf("unexpected address %s", got)
	}
	if host.Calls[0] != "ip link show eth0" {
		t.Fatalf("expected ip to be asked first, got %v", host.Calls)
	}
}

func TestCurrentAddress_FallsBackToSecondary(t *testing.T) {
	host := simulated.NewHost("ifconfig").WithLink("eth0", "00:1a:2b:3c:4d:5e")

	got, err := newQuery(host).CurrentAddress("eth0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "00:1A:2B:3C:4D:5E" {
		t.Fatalf("unexpected address %s", got)
	}
	for _, call := range host.Calls {
		if strings.HasPrefix(call, "ip ") {
			t.Fatalf("ip must not be run when absent, got %v", host.Calls)
		}
	}
}

func TestCurrentAddress_NotFound(t *testing.T) {
	t.Run("no backend installed", func(t *testing.T) {
		host := simulated.NewHost().WithLink("eth0", "00:1a:2b:3c:4d:5e")
		_, err := newQuery(host).CurrentAddress("eth0")
		var notFound NotFound
		if !errors.As(err, &notFound) {
			t.Fatalf("expected NotFound, got %v", err)
		}
		if !strings.Contains(err.Error(), "no query tool installed") {
			t.Fatalf("unexpected message %q", err.Error())
		}
	})

	t.Run("unknown interface", func(t *testing.T) {
		host := simulated.NewHost("ip", "ifconfig")
		_, err := newQuery(host).CurrentAddress("eth9")
		var notFound NotFound
		if !errors.As(err, &notFound) {
			t.Fatalf("expected NotFound, got %v", err)
		}
		if len(host.Calls) != 2 {
			t.Fatalf("expected both backends to be tried, got %v", host.Calls)
		}
	})
}

func TestHasInterface(t *testing.T) {
	host := simulated.NewHost("ip").WithLink("eth0", "00:00:00:00:00:01").WithLink("wlan0", "00:00:00:00:00:02")
	q := newQuery(host)

	ok, err := q.HasInterface("wlan0")
	if err != nil || !ok {
		t.Fatalf("expected wlan0 to exist, ok=%v err=%v", ok, err)
	}
	ok, err = q.HasInterface("docker0")
	if err != nil || ok {
		t.Fatalf("expected docker0 to be absent, ok=%v err=%v", ok, err)
	}

	names, err := q.ListInterfaces()
	if err != nil || len(names) != 2 {
		t.Fatalf("unexpected interfaces %v err=%v", names, err)
	}
}

type failingLister struct{}

func (failingLister) Interfaces() ([]string, error) { return nil, errors.New("netlink: permission denied") }

func TestHasInterface_ListerError(t *testing.T) {
	host := simulated.NewHost("ip")
	q := NewQuery(failingLister{}, link.NewDefaultProvider(host), logging.Discard())
	if _, err := q.HasInterface("eth0"); err == nil {
		t.Fatal("expected lister error to propagate")
	}
}
