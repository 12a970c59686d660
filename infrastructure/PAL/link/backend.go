package link

import "macchanger/domain/mac"

// Backend reads and changes link-layer addresses through one external tool.
type Backend interface {
	// Tool is the executable the backend shells out to.
	Tool() string
	// CurrentAddress extracts the address from the tool's output. It reports false when
	// the output holds no recognizable address; the tool's exit status is not consulted.
	CurrentAddress(ifName string) (mac.Address, bool)
	Down(ifName string) error
	SetAddress(ifName string, address mac.Address) error
	Up(ifName string) error
}
