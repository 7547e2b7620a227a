package bootstrap

// File system permissions
const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0666
)

// Logger configuration
const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionLimit is the maximum number of log files to keep
	LogFileRetentionLimit = 10

	// LogFileRetentionCount is the number of log files to retain after cleanup
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting lootsmith"
	LogMsgConfigurationLoaded = "Configuration loaded"
)

// Log messages for content loading and sync
const (
	LogMsgLoadingLootTables   = "Loading loot tables from JSON config..."
	LogMsgLootTablesSynced    = "Loot tables synced successfully"
	LogMsgLootTablesUnchanged = "Loot tables config unchanged, sync skipped"
	LogMsgTablesRegistered    = "Loot tables registered"

	ErrMsgFailedLoadLootTables = "failed to load loot tables config"
	ErrMsgInvalidLootTables    = "invalid loot tables config"
	ErrMsgFailedSyncLootTables = "failed to sync loot tables to database"
	ErrMsgFailedReadStore      = "failed to read loot tables from database"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)
