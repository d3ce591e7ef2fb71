package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xlzhou/treasure-hunter/pkg/save"
)

// FileStorage keeps one JSON file per save slot in a directory.
type FileStorage struct {
	dir    string
	logger *slog.Logger
}

var _ Storage = (*FileStorage)(nil)

// NewFileStorage creates the save directory if needed.
func NewFileStorage(dir string, logger *slog.Logger) (*FileStorage, error) {
	if dir == "" {
		dir = "./saving"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create save directory: %w", err)
	}
	return &FileStorage{dir: dir, logger: logger}, nil
}

func (f *FileStorage) slotPath(slot int) string {
	return filepath.Join(f.dir, fmt.Sprintf("save_slot_%d.json", slot))
}

func (f *FileStorage) Save(ctx context.Context, slot int, snap *save.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "    ")
	if err != nil {
		f.logger.Error("Failed to marshal snapshot", "slot", slot, "error", err)
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := os.WriteFile(f.slotPath(slot), data, 0o644); err != nil {
		f.logger.Error("Failed to write save file", "slot", slot, "error", err)
		return fmt.Errorf("failed to write save file: %w", err)
	}
	return nil
}

func (f *FileStorage) Load(ctx context.Context, slot int) (*save.Snapshot, error) {
	data, err := os.ReadFile(f.slotPath(slot))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		f.logger.Error("Failed to read save file", "slot", slot, "error", err)
		return nil, fmt.Errorf("failed to read save file: %w", err)
	}

	var snap save.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		f.logger.Error("Failed to unmarshal save file", "slot", slot, "error", err)
		return nil, fmt.Errorf("failed to unmarshal save file: %w", err)
	}
	return &snap, nil
}

func (f *FileStorage) List(ctx context.Context) ([]SlotInfo, error) {
	infos := make([]SlotInfo, 0, MaxSlot)
	for slot := MinSlot; slot <= MaxSlot; slot++ {
		snap, err := f.Load(ctx, slot)
		if err != nil || snap == nil {
			// A corrupt slot lists as empty rather than failing the menu.
			infos = append(infos, SlotInfo{Slot: slot})
			continue
		}
		infos = append(infos, summarize(slot, snap))
	}
	return infos, nil
}

func (f *FileStorage) Ping(ctx context.Context) error {
	if _, err := os.Stat(f.dir); err != nil {
		return fmt.Errorf("save directory unavailable: %w", err)
	}
	return nil
}

func (f *FileStorage) Close() error {
	return nil
}
