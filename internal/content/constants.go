package content

// ConfigFileName identifies the loot tables config in sync metadata
const ConfigFileName = "loot_tables.json"

// Error context messages
const (
	ErrMsgReadConfigFileFailed  = "failed to read loot tables file: %w"
	ErrMsgParseConfigFailed     = "failed to parse loot tables: %w"
	ErrMsgConfigNil             = "config is nil"
	ErrMsgNoTablesDefined       = "no loot tables defined"
	ErrMsgCheckFileChangeFailed = "failed to check config file for changes: %w"
	ErrMsgStatConfigFileFailed  = "failed to stat config file: %w"
	ErrMsgReadForHashFailed     = "failed to read config file for hashing: %w"
	ErrMsgGetExistingFailed     = "failed to load existing tables: %w"
	ErrMsgUpsertTableFailed     = "failed to upsert table %q: %w"
)

// Log messages
const (
	LogMsgConfigUnchanged      = "Loot tables config unchanged, sync skipped"
	LogMsgSyncCompleted        = "Loot tables synced to database"
	LogMsgUpdateMetadataFailed = "Failed to update sync metadata"
	LogMsgTableUpserted        = "Upserted loot table"
)
