// Package simulated provides an in-memory host that answers ip and ifconfig invocations.
// It satisfies exec_commander.Commander and link.Lister so the whole change/restore flow can
// be exercised without touching real interfaces.
package simulated

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

type Link struct {
	Address string
	Up      bool
}

type Host struct {
	// Tools lists the executables visible on $PATH.
	Tools map[string]bool
	Links map[string]*Link
	// PinnedAddress makes every link ignore address changes, as a driver without
	// address-change support would.
	PinnedAddress bool
	// Calls records each command line in order.
	Calls []string
}

func NewHost(tools ...string) *Host {
	h := &Host{
		Tools: map[string]bool{},
		Links: map[string]*Link{},
	}
	for _, tool := range tools {
		h.Tools[tool] = true
	}
	return h
}

// WithLink adds an interface that is up and carries address.
func (h *Host) WithLink(name, address string) *Host {
	h.Links[name] = &Link{Address: strings.ToLower(address), Up: true}
	return h
}

// Address returns the current address of name in lowercase, as the tools print it.
func (h *Host) Address(name string) string {
	if l, ok := h.Links[name]; ok {
		return l.Address
	}
	return ""
}

func (h *Host) Interfaces() ([]string, error) {
	names := make([]string, 0, len(h.Links))
	for name := range h.Links {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (h *Host) LookPath(name string) (string, error) {
	if h.Tools[name] {
		return "/usr/sbin/" + name, nil
	}
	return "", fmt.Errorf("exec: %q: executable file not found in $PATH", name)
}

func (h *Host) Output(name string, args ...string) ([]byte, error) {
	return h.run(name, args)
}

func (h *Host) CombinedOutput(name string, args ...string) ([]byte, error) {
	return h.run(name, args)
}

// ModifyingCalls returns the recorded calls that would change interface state.
func (h *Host) ModifyingCalls() []string {
	var out []string
	for _, call := range h.Calls {
		if strings.Contains(call, " set ") || strings.HasSuffix(call, " down") ||
			strings.HasSuffix(call, " up") || strings.Contains(call, " ether ") {
			out = append(out, call)
		}
	}
	return out
}

func (h *Host) run(name string, args []string) ([]byte, error) {
	h.Calls = append(h.Calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
	if !h.Tools[name] {
		return nil, fmt.Errorf("exec: %q: executable file not found in $PATH", name)
	}

	switch name {
	case "ip":
		return h.ip(args)
	case "ifconfig":
		return h.ifconfig(args)
	default:
		return nil, fmt.Errorf("simulated host cannot run %s", name)
	}
}

func (h *Host) ip(args []string) ([]byte, error) {
	switch {
	case len(args) == 3 && args[0] == "link" && args[1] == "show":
		l, ok := h.Links[args[2]]
		if !ok {
			return nil, fmt.Errorf("Device %q does not exist.", args[2])
		}
		state := "DOWN"
		if l.Up {
			state = "UP"
		}
		return []byte(fmt.Sprintf(
			"2: %s: <BROADCAST,MULTICAST> mtu 1500 qdisc fq_codel state %s mode DEFAULT group default qlen 1000\n"+
				"    link/ether %s brd ff:ff:ff:ff:ff:ff\n", args[2], state, l.Address)), nil
	case len(args) >= 5 && args[0] == "link" && args[1] == "set" && args[2] == "dev":
		return h.mutate(args[3], args[4:])
	default:
		return []byte("Usage: ip [ OPTIONS ] OBJECT { COMMAND | help }"), errors.New("exit status 255")
	}
}

func (h *Host) ifconfig(args []string) ([]byte, error) {
	if len(args) == 0 {
		return nil, errors.New("exit status 1")
	}
	l, ok := h.Links[args[0]]
	if !ok {
		return []byte(fmt.Sprintf("%s: error fetching interface information: Device not found", args[0])), errors.New("exit status 1")
	}
	if len(args) == 1 {
		return []byte(fmt.Sprintf(
			"%s: flags=4163<UP,BROADCAST,RUNNING,MULTICAST>  mtu 1500\n"+
				"        ether %s  txqueuelen 1000  (Ethernet)\n", args[0], l.Address)), nil
	}

	rest := args[1:]
	if rest[0] == "hw" {
		rest = rest[1:]
	}
	if rest[0] == "ether" {
		rest = []string{"address", rest[len(rest)-1]}
	}
	return h.mutate(args[0], rest)
}

func (h *Host) mutate(ifName string, args []string) ([]byte, error) {
	l, ok := h.Links[ifName]
	if !ok {
		return []byte(fmt.Sprintf("Cannot find device %q", ifName)), errors.New("exit status 1")
	}

	switch args[0] {
	case "down":
		l.Up = false
	case "up":
		l.Up = true
	case "address":
		if len(args) != 2 {
			return nil, errors.New("exit status 1")
		}
		if l.Up {
			return []byte("RTNETLINK answers: Device or resource busy"), errors.New("exit status 2")
		}
		if !h.PinnedAddress {
			l.Address = strings.ToLower(args[1])
		}
	default:
		return nil, errors.New("exit status 1")
	}
	return nil, nil
}
