package backup

// Record maps interface names to canonical addresses. The latest save wins.
type Record map[string]string

// DefaultFileName is created in the working directory unless overridden.
const DefaultFileName = "mac_backup.json"
