package changer

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"macchanger/application/interface_mutator"
	"macchanger/application/interface_query"
	"macchanger/application/workflow"
	"macchanger/domain/failure"
	"macchanger/domain/mode"
	"macchanger/infrastructure/PAL/exec_commander"
	"macchanger/infrastructure/PAL/link"
	"macchanger/infrastructure/backup"
	"macchanger/infrastructure/logging"
	"macchanger/presentation/cli"
	"macchanger/presentation/reporter"
	"macchanger/presentation/runners/version"
	"macchanger/settings"
)

type Runner struct {
	deps Dependencies
}

func NewRunner(deps Dependencies) *Runner {
	return &Runner{deps: deps}
}

// Run executes one invocation and returns the process exit code.
func (r *Runner) Run(args []string) int {
	rep := reporter.New(r.deps.Stdout)

	cmd, parseErr := cli.Parse(args)
	if parseErr != nil {
		if help, ok := cli.Help(parseErr); ok {
			_, _ = fmt.Fprintln(r.deps.Stdout, help)
			return 0
		}
		rep.Error(parseErr)
		return failure.ExitCode(parseErr)
	}

	if cmd.Mode == mode.Version {
		version.NewRunner(r.deps.Stdout).Run()
		return 0
	}

	conf := settings.Load().Override(cmd.BackupFile, cmd.LogLevel)
	logger, logErr := logging.New(conf.LogLevel, r.deps.Stderr)
	if logErr != nil {
		usageErr := failure.NewUsageError(logErr.Error(), logErr)
		rep.Error(usageErr)
		return failure.ExitCode(usageErr)
	}
	store := backup.NewStore(conf.BackupFile, logger)

	if cmd.Mode == mode.ListBackups {
		r.listBackups(rep, store)
		return 0
	}

	if !r.deps.Elevation.IsElevated() {
		privilegeErr := failure.NewPrivilegeError(r.deps.Elevation.Hint())
		rep.Error(privilegeErr)
		return failure.ExitCode(privilegeErr)
	}

	provider := link.NewDefaultProvider(exec_commander.NewLoggingCommander(r.deps.Commander, logger))
	query := interface_query.NewQuery(r.deps.Lister, provider, logger)
	mutator := interface_mutator.NewMutator(provider, query, logger)
	wf := workflow.NewWorkflow(query, mutator, store, r.deps.Random, rep, logger)

	logger.WithFields(logrus.Fields{
		"mode":      cmd.Mode.String(),
		"interface": cmd.Request.Interface,
	}).Debug("starting")
	runErr := wf.Run(cmd.Request)
	if runErr != nil {
		rep.Error(runErr)
	}
	return failure.ExitCode(runErr)
}

func (r *Runner) listBackups(rep *reporter.Reporter, store *backup.Store) {
	entries := store.Entries()
	if len(entries) == 0 {
		rep.Progress("No backups saved in %s", store.Path())
		return
	}

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		rep.Success("%s %s", name, entries[name])
	}
}
