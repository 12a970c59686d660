//go:build !linux

package link

import (
	"fmt"
	"net"
)

type netLister struct {
}

func NewLister() Lister {
	return &netLister{}
}

func (l *netLister) Interfaces() ([]string, error) {
	interfaces, err := net.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("failed to list interfaces: %w", err)
	}

	names := make([]string, 0, len(interfaces))
	for _, i := range interfaces {
		names = append(names, i.Name)
	}
	return names, nil
}
