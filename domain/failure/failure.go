package failure

import (
	"errors"
	"fmt"
)

// PrivilegeError is returned when the process is not running as root.
type PrivilegeError struct {
	hint string
}

func NewPrivilegeError(hint string) PrivilegeError {
	return PrivilegeError{hint: hint}
}

func (p PrivilegeError) Error() string {
	if p.hint == "" {
		return "you need to run as root"
	}
	return fmt.Sprintf("you need to run as root. %s", p.hint)
}

// UsageError covers missing or conflicting flags and malformed MAC input.
type UsageError struct {
	message string
	cause   error
}

func NewUsageError(message string, cause error) UsageError {
	return UsageError{message: message, cause: cause}
}

func (u UsageError) Error() string {
	return u.message
}

func (u UsageError) Unwrap() error {
	return u.cause
}

type InterfaceNotFound struct {
	name string
}

func NewInterfaceNotFound(name string) InterfaceNotFound {
	return InterfaceNotFound{name: name}
}

func (i InterfaceNotFound) Error() string {
	return fmt.Sprintf("interface %s does not exist", i.name)
}

// BackendUnavailable means neither ip nor ifconfig is installed.
type BackendUnavailable struct {
	tools []string
}

func NewBackendUnavailable(tools ...string) BackendUnavailable {
	return BackendUnavailable{tools: tools}
}

func (b BackendUnavailable) Error() string {
	return fmt.Sprintf("unsupported system: none of %q found", b.tools)
}

// QueryFailure means the current address of an interface could not be determined.
type QueryFailure struct {
	name  string
	cause error
}

func NewQueryFailure(name string, cause error) QueryFailure {
	return QueryFailure{name: name, cause: cause}
}

func (q QueryFailure) Error() string {
	return fmt.Sprintf("could not retrieve MAC for %s, check interface status", q.name)
}

func (q QueryFailure) Unwrap() error {
	return q.cause
}

// ApplyFailure means the address read back after the change differs from the requested one.
type ApplyFailure struct {
	name      string
	requested string
	observed  string
}

func NewApplyFailure(name, requested, observed string) ApplyFailure {
	return ApplyFailure{name: name, requested: requested, observed: observed}
}

func (a ApplyFailure) Error() string {
	observed := a.observed
	if observed == "" {
		observed = "unknown"
	}
	return fmt.Sprintf("failed to change MAC address of %s to %s (interface reports %s)", a.name, a.requested, observed)
}

type BackupIOError struct {
	path  string
	cause error
}

func NewBackupIOError(path string, cause error) BackupIOError {
	return BackupIOError{path: path, cause: cause}
}

func (b BackupIOError) Error() string {
	return fmt.Sprintf("error saving backup to %s: %v", b.path, b.cause)
}

func (b BackupIOError) Unwrap() error {
	return b.cause
}

// BackupAbsent is a negative restore result: nothing was saved for the interface.
type BackupAbsent struct {
	name string
}

func NewBackupAbsent(name string) BackupAbsent {
	return BackupAbsent{name: name}
}

func (b BackupAbsent) Error() string {
	return fmt.Sprintf("no backup MAC found for %s", b.name)
}

// ExitCode maps an operation result to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

// IsConfiguration reports whether err is an unrecoverable host configuration problem.
func IsConfiguration(err error) bool {
	var privilege PrivilegeError
	var backend BackendUnavailable
	return errors.As(err, &privilege) || errors.As(err, &backend)
}
