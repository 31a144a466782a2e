// Package archive moves aged COMPLETED queue items out of the database
// into object storage as compressed, checksummed batches.
package archive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang/snappy"
	"github.com/google/uuid"

	"github.com/upfleet/synckit/internal/checksum"
	"github.com/upfleet/synckit/internal/models"
	"github.com/upfleet/synckit/internal/storage"
)

// ErrChecksumMismatch is returned by VerifyArchive when the stored batch
// doesn't match its manifest checksum.
var ErrChecksumMismatch = errors.New("archive checksum mismatch")

//go:generate moq -out objectstore_mock.go . ObjectStore

// ObjectStore is the object storage the archiver writes batches to.
type ObjectStore interface {
	// Put stores one object under the key.
	Put(ctx context.Context, key string, data []byte) error

	// Get retrieves one object by key.
	Get(ctx context.Context, key string) ([]byte, error)

	// List returns the keys under the prefix.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Manifest describes one uploaded archive batch.
type Manifest struct {
	ArchivedAt time.Time `json:"archived_at"` // время выгрузки
	Cutoff     time.Time `json:"cutoff"`      // архивировались элементы старше этой границы
	DataKey    string    `json:"data_key"`    // ключ сжатого батча
	Checksum   string    `json:"checksum"`    // SHA-256 сжатого батча
	Items      int       `json:"items"`       // количество элементов в батче
	RawSize    int       `json:"raw_size"`    // размер JSON до сжатия
	Size       int       `json:"size"`        // размер после сжатия
}

// Archiver uploads aged COMPLETED items and deletes them from the queue.
type Archiver struct {
	logger *slog.Logger
	queue  storage.QueueStorage
	store  ObjectStore
}

// NewArchiver creates an Archiver.
func NewArchiver(logger *slog.Logger, queue storage.QueueStorage, store ObjectStore) *Archiver {
	return &Archiver{
		logger: logger,
		queue:  queue,
		store:  store,
	}
}

// Archive uploads every COMPLETED item processed before the cutoff as a
// single snappy-compressed JSON batch plus a manifest, then deletes the
// items from the queue. Returns nil when there is nothing to archive.
// Элементы удаляются только после успешной загрузки обоих объектов.
func (a *Archiver) Archive(ctx context.Context, cutoff time.Time) (*Manifest, error) {
	items, err := a.queue.ListCompletedBefore(ctx, cutoff, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed items: %w", err)
	}
	if len(items) == 0 {
		return nil, nil
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal batch: %w", err)
	}
	compressed := snappy.Encode(nil, raw)

	name := time.Now().UTC().Format("20060102T150405Z") + "-" + uuid.New().String()
	manifest := &Manifest{
		ArchivedAt: time.Now(),
		Cutoff:     cutoff,
		DataKey:    "batches/" + name + ".json.sz",
		Checksum:   checksum.Digest(compressed),
		Items:      len(items),
		RawSize:    len(raw),
		Size:       len(compressed),
	}

	if err := a.store.Put(ctx, manifest.DataKey, compressed); err != nil {
		return nil, fmt.Errorf("failed to upload batch: %w", err)
	}

	manifestData, err := json.Marshal(manifest)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal manifest: %w", err)
	}
	manifestKey := "manifests/" + name + ".json"
	if err := a.store.Put(ctx, manifestKey, manifestData); err != nil {
		return nil, fmt.Errorf("failed to upload manifest: %w", err)
	}

	deleted, err := a.queue.DeleteCompletedBefore(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to delete archived items: %w", err)
	}

	a.logger.Info("sync queue batch archived",
		"manifest", manifestKey,
		"items", manifest.Items,
		"deleted", deleted,
		"size", manifest.Size)

	return manifest, nil
}

// VerifyArchive re-reads an uploaded batch and checks it against its
// manifest. Returns ErrChecksumMismatch when the stored data doesn't
// match the recorded checksum.
func (a *Archiver) VerifyArchive(ctx context.Context, manifestKey string) (*Manifest, error) {
	manifestData, err := a.store.Get(ctx, manifestKey)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch manifest: %w", err)
	}

	var manifest Manifest
	if err := json.Unmarshal(manifestData, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	blob, err := a.store.Get(ctx, manifest.DataKey)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch batch: %w", err)
	}

	if got := checksum.Digest(blob); got != manifest.Checksum {
		return nil, fmt.Errorf("%w: %s: manifest %s, got %s", ErrChecksumMismatch, manifest.DataKey, manifest.Checksum, got)
	}

	raw, err := snappy.Decode(nil, blob)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress batch: %w", err)
	}

	var items []*models.SyncQueueItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to parse batch: %w", err)
	}
	if len(items) != manifest.Items {
		return nil, fmt.Errorf("batch %s holds %d items, manifest says %d", manifest.DataKey, len(items), manifest.Items)
	}

	return &manifest, nil
}

// ListManifests returns the manifest keys of every uploaded batch.
func (a *Archiver) ListManifests(ctx context.Context) ([]string, error) {
	keys, err := a.store.List(ctx, "manifests/")
	if err != nil {
		return nil, fmt.Errorf("failed to list manifests: %w", err)
	}
	return keys, nil
}
