package interface_query

import "fmt"

// NotFound is returned when no installed backend reports a recognizable address.
type NotFound struct {
	ifName string
	tried  []string
}

func NewNotFound(ifName string, tried []string) NotFound {
	return NotFound{ifName: ifName, tried: tried}
}

func (n NotFound) Error() string {
	if len(n.tried) == 0 {
		return fmt.Sprintf("no MAC address for %s: no query tool installed", n.ifName)
	}
	return fmt.Sprintf("no MAC address for %s in output of %q", n.ifName, n.tried)
}
