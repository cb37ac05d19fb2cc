package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fincaops/fincaops/internal/apperrors"
	"github.com/fincaops/fincaops/internal/core/domain"
	"github.com/google/uuid"
	"github.com/peterbourgon/diskv/v3"
)

// Key prefixes double as on-disk directory names, one per record type.
const (
	prefixFarm        = "farm"
	prefixLot         = "lot"
	prefixStaff       = "staff"
	prefixSupply      = "supply"
	prefixTask        = "task"
	prefixTransaction = "transaction"
)

// Store is the device-local backend: every record is one JSON document under
// LOCAL_STORE_PATH, keyed <type>-<id>. It backs the offline provider and is
// the read/clear side of the local-to-hosted migration. There is no batch
// primitive here, which is why the offline provider carries no ledger.
type Store struct {
	d      *diskv.Diskv
	logger *slog.Logger
}

// NewStore opens (or creates) the local store at basePath.
func NewStore(basePath string, logger *slog.Logger) *Store {
	return &Store{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			CacheSizeMax:      1024 * 1024, // 1MB
		}),
		logger: logger,
	}
}

// NewID issues a local identifier. The prefix marks the record as
// device-born so the migration engine can remap it later.
func NewID() string {
	return domain.LocalIDPrefix + uuid.NewString()
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) < 2 {
		return &diskv.PathKey{Path: []string{}, FileName: s}
	}
	return &diskv.PathKey{Path: []string{parts[0]}, FileName: parts[1]}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return pathKey.Path[0] + "-" + pathKey.FileName
}

func recordKey(prefix, id string) string {
	return prefix + "-" + id
}

func writeRecord(d *diskv.Diskv, key string, record any) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to serialize record %s: %w", key, err)
	}
	if err := d.Write(key, data); err != nil {
		return fmt.Errorf("failed to write record %s: %w", key, err)
	}
	return nil
}

func readRecord[T any](d *diskv.Diskv, key string) (*T, error) {
	data, err := d.Read(key)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}
	var record T
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to decode record %s: %w", key, err)
	}
	return &record, nil
}

// listRecords reads every record under the prefix. A record that fails to
// decode is logged and skipped rather than poisoning the whole listing.
func listRecords[T any](s *Store, ctx context.Context, prefix string) ([]T, error) {
	records := make([]T, 0)
	for key := range s.d.KeysPrefix(prefix+"-", ctx.Done()) {
		record, err := readRecord[T](s.d, key)
		if err != nil {
			s.logger.Warn("Skipping unreadable local record",
				slog.String("key", key), slog.String("error", err.Error()))
			continue
		}
		records = append(records, *record)
	}
	return records, nil
}

func (s *Store) eraseAll(ctx context.Context, prefix string) error {
	keys := make([]string, 0)
	for key := range s.d.KeysPrefix(prefix+"-", ctx.Done()) {
		keys = append(keys, key)
	}
	for _, key := range keys {
		if err := s.d.Erase(key); err != nil {
			return fmt.Errorf("failed to erase record %s: %w", key, err)
		}
	}
	return nil
}

func checkOwner(recordOwner, ownerID string) error {
	if recordOwner != ownerID {
		return apperrors.ErrNotFound
	}
	return nil
}
