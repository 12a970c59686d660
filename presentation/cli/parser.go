package cli

import (
	"errors"
	"fmt"

	"github.com/jessevdk/go-flags"

	"macchanger/application/workflow"
	"macchanger/domain/app"
	"macchanger/domain/failure"
	"macchanger/domain/mode"
)

// Command is a validated invocation.
type Command struct {
	Mode       mode.Mode
	Request    workflow.Request
	BackupFile string
	LogLevel   string
}

// Parse turns arguments (without the binary name) into a Command. Usage problems are returned
// as failure.UsageError; a help request is returned as a *flags.Error, see Help.
func Parse(args []string) (Command, error) {
	var opts Options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = app.Name

	rest, err := parser.ParseArgs(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return Command{}, err
		}
		return Command{}, failure.NewUsageError(err.Error(), err)
	}
	if len(rest) > 0 {
		return Command{}, failure.NewUsageError(fmt.Sprintf("unexpected argument %q", rest[0]), nil)
	}

	return opts.command()
}

// Help returns the usage text when err is a help request.
func Help(err error) (string, bool) {
	var flagsErr *flags.Error
	if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
		return flagsErr.Message, true
	}
	return "", false
}

func (o Options) command() (Command, error) {
	cmd := Command{
		BackupFile: o.BackupFile,
		LogLevel:   o.LogLevel,
	}
	if o.Verbose && cmd.LogLevel == "" {
		cmd.LogLevel = "debug"
	}

	if o.Version {
		cmd.Mode = mode.Version
		return cmd, nil
	}

	if o.ListBackups {
		cmd.Mode = mode.ListBackups
		return cmd, nil
	}

	if o.Interface == "" {
		return Command{}, failure.NewUsageError("the required flag `-i, --interface' was not specified", nil)
	}

	cmd.Request = workflow.Request{
		Interface: o.Interface,
		Address:   o.MAC,
		Random:    o.Random,
		Restore:   o.Restore != nil,
	}
	cmd.Mode = cmd.Request.Mode()
	if cmd.Mode == mode.Restore {
		return cmd, nil
	}

	switch {
	case o.MAC != "" && o.Random:
		targetErr := mode.NewConflictingTargets()
		return Command{}, failure.NewUsageError(targetErr.Error(), targetErr)
	case o.MAC == "" && !o.Random:
		targetErr := mode.NewNoTargetProvided()
		return Command{}, failure.NewUsageError(targetErr.Error(), targetErr)
	}

	return cmd, nil
}
