package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const snapshotsTable = "snapshots"

// snapshotRepo implements SnapshotRepo with the ent SQL builder.
type snapshotRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

func (r *snapshotRepo) builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	data, err := EncodeSnapshotData(snap.Data)
	if err != nil {
		return err
	}

	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	if snap.Timestamp.IsZero() {
		snap.Timestamp = time.Now()
	}
	id := uuid.NewString()

	query, args := r.builder().
		Insert(snapshotsTable).
		Columns("id", "profile", "sequence", "created_at", "data").
		Values(id, snap.Profile, seq, snap.Timestamp.UnixMilli(), string(data)).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	snap.ID = id
	snap.Sequence = seq
	snap.Raw = data
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context, profile string) (*Snapshot, error) {
	b := r.builder()
	query, args := b.
		Select("id", "sequence", "created_at", "data").
		From(b.Table(snapshotsTable)).
		Where(entsql.EQ("profile", profile)).
		OrderBy(entsql.Desc("sequence")).
		Limit(1).
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("query latest snapshot: %w", err)
		}
		return nil, nil
	}

	var (
		snap      = &Snapshot{Profile: profile}
		createdAt int64
		raw       string
	)
	if err := rows.Scan(&snap.ID, &snap.Sequence, &createdAt, &raw); err != nil {
		return nil, fmt.Errorf("scan latest snapshot: %w", err)
	}
	snap.Timestamp = time.UnixMilli(createdAt)
	snap.Raw = []byte(raw)

	data, err := DecodeSnapshotData(snap.Raw)
	if err != nil {
		var corrupt *CorruptSnapshotError
		if errors.As(err, &corrupt) {
			corrupt.ID = snap.ID
		}
		return snap, err
	}
	snap.Data = data
	return snap, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, profile string, keep int) error {
	// Find the sequence threshold: the first snapshot past the keep window.
	b := r.builder()
	query, args := b.
		Select("sequence").
		From(b.Table(snapshotsTable)).
		Where(entsql.EQ("profile", profile)).
		OrderBy(entsql.Desc("sequence")).
		Limit(1).
		Offset(keep).
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	var threshold int64
	found := rows.Next()
	if found {
		if err := rows.Scan(&threshold); err != nil {
			rows.Close()
			return fmt.Errorf("scan prune threshold: %w", err)
		}
	}
	err := rows.Err()
	rows.Close()
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if !found {
		return nil // fewer than keep snapshots exist
	}

	query, args = r.builder().
		Delete(snapshotsTable).
		Where(entsql.And(
			entsql.EQ("profile", profile),
			entsql.LTE("sequence", threshold),
		)).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Delete(ctx context.Context, profile string) error {
	query, args := r.builder().
		Delete(snapshotsTable).
		Where(entsql.EQ("profile", profile)).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("delete snapshots: %w", err)
	}
	return nil
}
