package cli

// Options mirrors the command line. Restore is a pointer so that its presence can be told
// apart from its value, which is accepted and ignored; the interface always comes from
// --interface.
type Options struct {
	Interface   string  `short:"i" long:"interface" description:"Enter interface (ex: eth0, wlan0, docker0)" value-name:"NAME"`
	MAC         string  `short:"m" long:"mac" description:"Enter new MAC address" value-name:"ADDRESS"`
	Random      bool    `short:"r" long:"random" description:"Create random MAC address"`
	Restore     *string `long:"restore" description:"Restore original MAC address from backup" value-name:"VALUE"`
	BackupFile  string  `long:"backup-file" description:"Path of the backup file (env MACCHANGER_BACKUP_FILE)" value-name:"PATH"`
	LogLevel    string  `long:"log-level" description:"Diagnostic log level (env MACCHANGER_LOG_LEVEL)" choice:"panic" choice:"fatal" choice:"error" choice:"warning" choice:"info" choice:"debug" choice:"trace"`
	Verbose     bool    `short:"v" long:"verbose" description:"Shorthand for --log-level=debug"`
	ListBackups bool    `long:"list-backups" description:"Print saved original addresses and exit"`
	Version     bool    `long:"version" description:"Print version and exit"`
}
