package settings

import (
	"github.com/spf13/viper"

	"macchanger/infrastructure/backup"
	"macchanger/infrastructure/logging"
)

// EnvPrefix namespaces environment overrides, e.g. MACCHANGER_BACKUP_FILE.
const EnvPrefix = "MACCHANGER"

const (
	backupFileKey = "backup_file"
	logLevelKey   = "log_level"
)

type Settings struct {
	BackupFile string
	LogLevel   string
}

// Load reads defaults and environment overrides. Command-line flags are applied on top by the caller.
func Load() Settings {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetDefault(backupFileKey, backup.DefaultFileName)
	v.SetDefault(logLevelKey, logging.DefaultLevel)

	return Settings{
		BackupFile: v.GetString(backupFileKey),
		LogLevel:   v.GetString(logLevelKey),
	}
}

// Override replaces any field for which a non-empty value is given.
func (s Settings) Override(backupFile, logLevel string) Settings {
	if backupFile != "" {
		s.BackupFile = backupFile
	}
	if logLevel != "" {
		s.LogLevel = logLevel
	}
	return s
}
