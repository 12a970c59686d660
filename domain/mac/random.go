package mac

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Random returns a unicast, locally administered address drawn from crypto/rand.
func Random() (Address, error) {
	return RandomFrom(rand.Reader)
}

// RandomFrom draws six octets from source, then sets the locally administered bit
// and clears the multicast bit of the first octet.
func RandomFrom(source io.Reader) (Address, error) {
	var a Address
	if _, err := io.ReadFull(source, a[:]); err != nil {
		return Address{}, fmt.Errorf("failed to read random octets: %w", err)
	}

	a[0] = (a[0] | locallyAdministeredBit) &^ multicastBit
	return a, nil
}
