package failure

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrors(t *testing.T) {
	cause := errors.New("disk full")
	cases := []struct {
		err  error
		want string
	}{
		{NewPrivilegeError(""), "you need to run as root"},
		{NewPrivilegeError("Try: sudo macchanger"), "you need to run as root. Try: sudo macchanger"},
		{NewUsageError("either --mac or --random is required", nil), "either --mac or --random is required"},
		{NewInterfaceNotFound("eth9"), "interface eth9 does not exist"},
		{NewBackendUnavailable("ip", "ifconfig"), `unsupported system: none of ["ip" "ifconfig"] found`},
		{NewQueryFailure("eth0", nil), "could not retrieve MAC for eth0, check interface status"},
		{NewApplyFailure("eth0", "00:11:22:33:44:55", "AA:BB:CC:DD:EE:FF"),
			"failed to change MAC address of eth0 to 00:11:22:33:44:55 (interface reports AA:BB:CC:DD:EE:FF)"},
		{NewApplyFailure("eth0", "00:11:22:33:44:55", ""),
			"failed to change MAC address of eth0 to 00:11:22:33:44:55 (interface reports unknown)"},
		{NewBackupIOError("mac_backup.json", cause), "error saving backup to mac_backup.json: disk full"},
		{NewBackupAbsent("eth0"), "no backup MAC found for eth0"},
	}

	for _, c := range cases {
		if got := c.err.Error(); got != c.want {
			t.Fatalf("want %q, got %q", c.want, got)
		}
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	wrapped := []error{
		NewUsageError("bad", cause),
		NewQueryFailure("eth0", cause),
		NewBackupIOError("f", cause),
	}
	for _, err := range wrapped {
		if !errors.Is(err, cause) {
			t.Fatalf("%T does not unwrap to its cause", err)
		}
	}
}

func TestExitCode(t *testing.T) {
	if ExitCode(nil) != 0 {
		t.Fatal("nil error must exit 0")
	}
	for _, err := range []error{
		NewBackupAbsent("eth0"),
		NewApplyFailure("eth0", "a", "b"),
		fmt.Errorf("wrapped: %w", NewInterfaceNotFound("x")),
	} {
		if ExitCode(err) != 1 {
			t.Fatalf("expected exit code 1 for %v", err)
		}
	}
}

func TestIsConfiguration(t *testing.T) {
	if !IsConfiguration(NewPrivilegeError("")) {
		t.Fatal("privilege error is a configuration problem")
	}
	if !IsConfiguration(fmt.Errorf("apply: %w", NewBackendUnavailable("ip"))) {
		t.Fatal("wrapped backend error is a configuration problem")
	}
	if IsConfiguration(NewBackupAbsent("eth0")) {
		t.Fatal("backup absent is not a configuration problem")
	}
}
