package link

import (
	"macchanger/domain/failure"
	"macchanger/infrastructure/PAL/exec_commander"
	"macchanger/infrastructure/PAL/network_tools/ifconfig"
	"macchanger/infrastructure/PAL/network_tools/ip"
)

// Probe tells whether a tool is installed.
type Probe interface {
	Present(tool string) bool
}

type pathProbe struct {
	commander exec_commander.Commander
}

// NewPathProbe looks tools up on $PATH.
func NewPathProbe(commander exec_commander.Commander) Probe {
	return &pathProbe{commander: commander}
}

func (p *pathProbe) Present(tool string) bool {
	_, err := p.commander.LookPath(tool)
	return err == nil
}

// Select returns the candidates whose tool is present, preserving preference order.
func Select(candidates []Backend, probe Probe) []Backend {
	var present []Backend
	for _, candidate := range candidates {
		if probe.Present(candidate.Tool()) {
			present = append(present, candidate)
		}
	}
	return present
}

// Provider holds the backends in preference order. Tool presence is probed on every call.
type Provider struct {
	candidates []Backend
	probe      Probe
}

func NewProvider(probe Probe, candidates ...Backend) *Provider {
	return &Provider{
		candidates: candidates,
		probe:      probe,
	}
}

// NewDefaultProvider prefers ip and falls back to ifconfig.
func NewDefaultProvider(commander exec_commander.Commander) *Provider {
	return NewProvider(
		NewPathProbe(commander),
		NewIPBackend(ip.NewWrapper(commander)),
		NewIfconfigBackend(ifconfig.NewWrapper(commander)),
	)
}

// Present lists the installed backends, primary first.
func (p *Provider) Present() []Backend {
	return Select(p.candidates, p.probe)
}

// Preferred returns the first installed backend or failure.BackendUnavailable.
func (p *Provider) Preferred() (Backend, error) {
	present := p.Present()
	if len(present) == 0 {
		return nil, failure.NewBackendUnavailable(p.tools()...)
	}
	return present[0], nil
}

func (p *Provider) tools() []string {
	tools := make([]string, 0, len(p.candidates))
	for _, candidate := range p.candidates {
		tools = append(tools, candidate.Tool())
	}
	return tools
}
