package loader

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napolitain/settlement-solver/internal/models"
)

func TestLoadSnapshotJSON(t *testing.T) {
	snap, err := LoadSnapshot(filepath.Join("testdata", "midgame.json"))
	require.NoError(t, err)

	require.NotNil(t, snap.Resources)
	assert.Equal(t, models.Resources{Wood: 2400, Clay: 2100, Iron: 1800, Crop: 1500}, *snap.Resources)
	assert.Equal(t, 400, snap.Production.Wood)
	assert.Equal(t, 6, snap.Buildings[models.Residence])
	assert.Equal(t, models.Gauls, snap.Tribe)
	assert.Equal(t, 1.0, snap.ServerSpeed)
	assert.Equal(t, 9600, snap.WarehouseCapacity)
	assert.True(t, snap.ServerTime.Equal(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)))

	require.NotNil(t, snap.CulturePoints)
	assert.Equal(t, 180, snap.CulturePoints.Current)
	require.NotNil(t, snap.CulturePoints.Target)
	assert.Equal(t, 500, *snap.CulturePoints.Target)

	require.Len(t, snap.PlannedBuildings, 2)
	assert.Equal(t, models.PlannedBuilding{BuildingType: models.Residence, TargetLevel: 10, Priority: 1}, snap.PlannedBuildings[0])
}

func TestLoadSnapshotMissingFile(t *testing.T) {
	_, err := LoadSnapshot(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadSnapshotSchemaViolation(t *testing.T) {
	_, err := LoadSnapshot(filepath.Join("testdata", "invalid.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid snapshot")
}

func TestParseSnapshotJSONMalformed(t *testing.T) {
	_, err := ParseSnapshotJSON([]byte(`{"resources":`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse snapshot")
}

func TestParseSnapshotJSONEmpty(t *testing.T) {
	snap, err := ParseSnapshotJSON([]byte(`{}`))
	require.NoError(t, err)

	assert.Nil(t, snap.Resources)
	assert.Nil(t, snap.Production)
	assert.Nil(t, snap.CulturePoints)
	assert.Empty(t, snap.Buildings)
	assert.True(t, snap.ServerTime.IsZero())
}

func TestParseSnapshotJSONRejectsWrongTypes(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"fractional stock", `{"resources":{"wood":1.5}}`},
		{"negative speed", `{"serverSpeed":-1}`},
		{"culture points without current", `{"culturePoints":{"dailyRate":10}}`},
		{"planned entry without level", `{"plannedBuildings":[{"buildingType":"residence"}]}`},
		{"building level out of range", `{"buildings":{"residence":101}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSnapshotJSON([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestParseSnapshotJSONKeepsUnknownNames(t *testing.T) {
	snap, err := ParseSnapshotJSON([]byte(`{
		"buildings": {"stonemason": 3},
		"tribe": "vikings",
		"plannedBuildings": [{"buildingType": "wonder", "targetLevel": 1}]
	}`))
	require.NoError(t, err)

	assert.Equal(t, 3, snap.Buildings["stonemason"])
	assert.Equal(t, models.Tribe("vikings"), snap.Tribe)
	assert.Equal(t, models.BuildingType("wonder"), snap.PlannedBuildings[0].BuildingType)
}

func TestSnapshotProtoMatchesJSON(t *testing.T) {
	want, err := LoadSnapshot(filepath.Join("testdata", "midgame.json"))
	require.NoError(t, err)

	data, err := MarshalSnapshotProto(want)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "midgame.pb")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	got, err := LoadSnapshot(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestParseSnapshotProtoGarbage(t *testing.T) {
	_, err := ParseSnapshotProto([]byte{0xff, 0xff, 0xff})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse protobuf snapshot")
}
