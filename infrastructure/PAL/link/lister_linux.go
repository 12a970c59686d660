//go:build linux

package link

import (
	"fmt"

	"github.com/vishvananda/netlink"
)

type netlinkLister struct {
}

// NewLister enumerates links over rtnetlink.
func NewLister() Lister {
	return &netlinkLister{}
}

func (l *netlinkLister) Interfaces() ([]string, error) {
	links, err := netlink.LinkList()
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}

	names := make([]string, 0, len(links))
	for _, lnk := range links {
		names = append(names, lnk.Attrs().Name)
	}
	return names, nil
}
