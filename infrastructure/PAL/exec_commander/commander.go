package exec_commander

import "os/exec"

type ExecCommander struct {
}

func NewExecCommander() Commander {
	return &ExecCommander{}
}

func (r *ExecCommander) CombinedOutput(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).CombinedOutput()
}

// Output returns whatever the command wrote to stdout, even when it exits non-zero.
func (r *ExecCommander) Output(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

func (r *ExecCommander) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
