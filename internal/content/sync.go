package content

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"github.com/tavernworks/lootsmith/internal/domain"
	"github.com/tavernworks/lootsmith/internal/logger"
	"github.com/tavernworks/lootsmith/internal/repository"
)

// SyncResult contains the result of syncing loot tables to the database
type SyncResult struct {
	TablesUpserted int
	TablesSkipped  int
}

// SyncToDatabase upserts the file-authored loot tables into the
// admin-authored store, idempotently. A sha256 of the config file is kept
// in sync metadata so an unchanged file skips the write entirely.
func SyncToDatabase(ctx context.Context, tables []domain.LootTable, repo repository.Tables, configPath string) (*SyncResult, error) {
	log := logger.FromContext(ctx)

	changed, fileHash, modTime, err := hasFileChanged(ctx, repo, configPath)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCheckFileChangeFailed, err)
	}

	if !changed {
		log.Info(LogMsgConfigUnchanged, "path", configPath)
		return &SyncResult{TablesSkipped: len(tables)}, nil
	}

	result := &SyncResult{}
	for _, table := range tables {
		if err := repo.UpsertTable(ctx, table); err != nil {
			return nil, fmt.Errorf(ErrMsgUpsertTableFailed, table.ID, err)
		}
		result.TablesUpserted++
		log.Info(LogMsgTableUpserted, "table", table.ID)
	}

	if err := repo.UpsertSyncMetadata(ctx, &domain.SyncMetadata{
		ConfigName:   ConfigFileName,
		LastSyncTime: time.Now(),
		FileHash:     fileHash,
		FileModTime:  modTime,
	}); err != nil {
		log.Warn(LogMsgUpdateMetadataFailed, "error", err)
	}

	log.Info(LogMsgSyncCompleted, "upserted", result.TablesUpserted)
	return result, nil
}

// hasFileChanged reports whether the config file differs from the last
// synced version, returning the current hash and mod time for metadata.
func hasFileChanged(ctx context.Context, repo repository.Tables, configPath string) (bool, string, time.Time, error) {
	fileInfo, err := os.Stat(configPath)
	if err != nil {
		return false, "", time.Time{}, fmt.Errorf(ErrMsgStatConfigFileFailed, err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return false, "", time.Time{}, fmt.Errorf(ErrMsgReadForHashFailed, err)
	}

	hash := sha256.Sum256(data)
	fileHash := hex.EncodeToString(hash[:])

	syncMeta, err := repo.GetSyncMetadata(ctx, ConfigFileName)
	if err != nil {
		// First sync - no metadata exists
		return true, fileHash, fileInfo.ModTime(), nil
	}

	if syncMeta.FileHash != fileHash || !syncMeta.FileModTime.Equal(fileInfo.ModTime()) {
		return true, fileHash, fileInfo.ModTime(), nil
	}

	return false, fileHash, fileInfo.ModTime(), nil
}
