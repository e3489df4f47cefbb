package store

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
)

// ErrSnapshotCorrupt matches errors for stored snapshots that cannot be decoded.
var ErrSnapshotCorrupt = errors.New("snapshot corrupt")

// CorruptSnapshotError describes why a stored snapshot was rejected.
type CorruptSnapshotError struct {
	ID  string
	Err error
}

func (e *CorruptSnapshotError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("snapshot corrupt: %v", e.Err)
	}
	return fmt.Sprintf("snapshot %s corrupt: %v", e.ID, e.Err)
}

func (e *CorruptSnapshotError) Unwrap() []error {
	return []error{ErrSnapshotCorrupt, e.Err}
}

//go:embed snapshot_schema.json
var snapshotSchemaJSON []byte

const snapshotSchemaURL = "schema://snapshot.json"

var (
	snapshotSchemaOnce sync.Once
	snapshotSchema     *jsonschema.Schema
	snapshotSchemaErr  error
)

func compiledSnapshotSchema() (*jsonschema.Schema, error) {
	snapshotSchemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(snapshotSchemaJSON))
		if err != nil {
			snapshotSchemaErr = fmt.Errorf("parse snapshot schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(snapshotSchemaURL, doc); err != nil {
			snapshotSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		snapshotSchema, snapshotSchemaErr = c.Compile(snapshotSchemaURL)
	})
	return snapshotSchema, snapshotSchemaErr
}

// EncodeSnapshotData serializes data in the stored wire format, stamping
// the current FormatVersion. Map keys are written in sorted order, so equal
// data always encodes to equal bytes.
func EncodeSnapshotData(data SnapshotData) ([]byte, error) {
	data.Version = FormatVersion
	b, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot data: %w", err)
	}
	return b, nil
}

// DecodeSnapshotData parses and validates stored snapshot bytes.
// Any failure is reported as a *CorruptSnapshotError.
func DecodeSnapshotData(raw []byte) (SnapshotData, error) {
	var data SnapshotData

	sch, err := compiledSnapshotSchema()
	if err != nil {
		return data, err
	}

	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return data, &CorruptSnapshotError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if err := sch.Validate(parsed); err != nil {
		return data, &CorruptSnapshotError{Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	if err := json.Unmarshal(raw, &data); err != nil {
		return data, &CorruptSnapshotError{Err: fmt.Errorf("unmarshal: %w", err)}
	}

	// Snapshots written before versioning carry no version and are v1.
	if data.Version != "" {
		if !semver.IsValid(data.Version) {
			return data, &CorruptSnapshotError{Err: fmt.Errorf("invalid format version %q", data.Version)}
		}
		if semver.Major(data.Version) != semver.Major(FormatVersion) {
			return data, &CorruptSnapshotError{
				Err: fmt.Errorf("format version %s incompatible with %s", data.Version, FormatVersion),
			}
		}
	}
	return data, nil
}
