package loader

import (
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/napolitain/settlement-solver/internal/models"
)

// ParseSnapshotProto decodes a snapshot serialised as a google.protobuf.Struct
// carrying the same field names as the JSON form.
func ParseSnapshotProto(data []byte) (*models.GameStateSnapshot, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse protobuf snapshot: %w", err)
	}

	js, err := protojson.Marshal(&s)
	if err != nil {
		return nil, fmt.Errorf("failed to convert protobuf snapshot: %w", err)
	}
	return ParseSnapshotJSON(js)
}

// MarshalSnapshotProto encodes snap as a google.protobuf.Struct.
func MarshalSnapshotProto(snap *models.GameStateSnapshot) ([]byte, error) {
	js, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(js, &fields); err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to build protobuf snapshot: %w", err)
	}
	return proto.Marshal(s)
}
