package mac

import "fmt"

// InvalidFormat is returned when text is not a colon-separated six-octet hex address.
type InvalidFormat struct {
	text string
}

func NewInvalidFormat(text string) InvalidFormat {
	return InvalidFormat{
		text: text,
	}
}

func (i InvalidFormat) Text() string {
	return i.text
}

func (i InvalidFormat) Error() string {
	if i.text == "" {
		return "empty string is not a valid MAC address"
	}
	return fmt.Sprintf("%q is not a valid MAC address", i.text)
}
