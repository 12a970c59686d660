package exec_commander

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// LoggingCommander logs every command line and its output at debug level.
type LoggingCommander struct {
	commander Commander
	logger    logrus.FieldLogger
}

func NewLoggingCommander(commander Commander, logger logrus.FieldLogger) Commander {
	return &LoggingCommander{
		commander: commander,
		logger:    logger,
	}
}

func (l *LoggingCommander) CombinedOutput(name string, args ...string) ([]byte, error) {
	output, err := l.commander.CombinedOutput(name, args...)
	l.log(name, args, output, err)
	return output, err
}

func (l *LoggingCommander) Output(name string, args ...string) ([]byte, error) {
	output, err := l.commander.Output(name, args...)
	l.log(name, args, output, err)
	return output, err
}

func (l *LoggingCommander) LookPath(name string) (string, error) {
	return l.commander.LookPath(name)
}

func (l *LoggingCommander) log(name string, args []string, output []byte, err error) {
	entry := l.logger.WithFields(logrus.Fields{
		"command": strings.TrimSpace(name + " " + strings.Join(args, " ")),
		"output":  strings.TrimSpace(string(output)),
	})
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Debug("executed")
}
