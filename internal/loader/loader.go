package loader

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/napolitain/settlement-solver/internal/models"
)

//go:embed schema/snapshot.schema.json
var snapshotSchemaJSON string

var snapshotSchema = jsonschema.MustCompileString("snapshot.schema.json", snapshotSchemaJSON)

// LoadSnapshot reads a game state snapshot from disk. Files ending in .pb or
// .binpb are decoded as a protobuf Struct, everything else as JSON.
func LoadSnapshot(path string) (*models.GameStateSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pb", ".binpb":
		return ParseSnapshotProto(data)
	default:
		return ParseSnapshotJSON(data)
	}
}

// ParseSnapshotJSON validates data against the snapshot schema and decodes it.
func ParseSnapshotJSON(data []byte) (*models.GameStateSnapshot, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	if err := snapshotSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}

	var snap models.GameStateSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	warnUnknown(&snap)
	return &snap, nil
}

// warnUnknown logs names the engine will not recognise. They are kept so the
// engine can report them as blocked.
func warnUnknown(snap *models.GameStateSnapshot) {
	for _, bt := range snap.Buildings.Types() {
		if !bt.Valid() {
			slog.Warn("unknown building in snapshot", "building", bt)
		}
	}
	for _, p := range snap.PlannedBuildings {
		if !p.BuildingType.Valid() {
			slog.Warn("unknown planned building in snapshot", "building", p.BuildingType, "level", p.TargetLevel)
		}
	}
	if snap.Tribe != "" && !snap.Tribe.Valid() {
		slog.Warn("unknown tribe in snapshot", "tribe", snap.Tribe)
	}
}
