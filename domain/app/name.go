package app

// Name is the binary name used in usage and hint messages.
const Name = "macchanger"
