package storage

import (
	"context"

	"github.com/xlzhou/treasure-hunter/pkg/save"
)

// Slot numbering: users pick 1..MaxSlot, the auto-save owns slot 0.
const (
	AutoSaveSlot = 0
	MinSlot      = 1
	MaxSlot      = 3
)

// SlotInfo summarizes one save slot for the slot listing.
type SlotInfo struct {
	Slot     int    `json:"slot"`
	Exists   bool   `json:"exists"`
	Location string `json:"location,omitempty"`
	Level    int    `json:"level,omitempty"`
}

// Storage persists save snapshots by slot number.
type Storage interface {
	// Save writes a snapshot to the slot, replacing any previous save.
	Save(ctx context.Context, slot int, snap *save.Snapshot) error
	// Load reads the slot's snapshot. Returns nil, nil when empty.
	Load(ctx context.Context, slot int) (*save.Snapshot, error)
	// List summarizes the user slots (1..MaxSlot).
	List(ctx context.Context) ([]SlotInfo, error)
	// Ping checks the backend is reachable.
	Ping(ctx context.Context) error
	Close() error
}

func summarize(slot int, snap *save.Snapshot) SlotInfo {
	info := SlotInfo{Slot: slot, Exists: true, Location: snap.PlayerRoomID, Level: 1}
	if snap.PlayerLevel != nil {
		info.Level = *snap.PlayerLevel
	}
	return info
}
