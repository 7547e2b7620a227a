package config

import "time"

const (
	// Configuration file paths, relative to the content directory
	ConfigPathLootTables       = "loot_tables.json"
	ConfigPathLootTablesSchema = "schemas/loot_tables.schema.json"
)

const (
	DefaultPort        = 8080
	DefaultServiceName = "lootsmith"
	DefaultContentDir  = "configs"
	DefaultLogDir      = "logs"

	DefaultDBMaxConns    = 10
	DefaultDBMaxIdleTime = 5 * time.Minute
	DefaultDBMaxLifetime = 30 * time.Minute
)
