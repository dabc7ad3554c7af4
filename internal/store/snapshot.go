package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/diffuselabs/diffused/ent"
	"github.com/diffuselabs/diffused/ent/snapshot"
)

// snapshotRepo implements SnapshotRepo on the ent client.
type snapshotRepo struct {
	client *ent.Client
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	dataMap, err := snapshotDataToMap(snap.Data)
	if err != nil {
		return fmt.Errorf("marshal snapshot data: %w", err)
	}

	_, err = r.client.Snapshot.Create().
		SetTimestamp(snap.Timestamp).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	s, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldTimestamp), ent.Desc(snapshot.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}

	b, err := json.Marshal(s.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal stored data: %w", err)
	}
	var data SnapshotData
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot data: %w", err)
	}

	return &Snapshot{ID: s.ID, Timestamp: s.Timestamp, Data: data}, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	stale, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldTimestamp), ent.Desc(snapshot.FieldID)).
		Offset(keep).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(stale) == 0 {
		return nil
	}

	ids := make([]int, len(stale))
	for i, s := range stale {
		ids[i] = s.ID
	}
	_, err = r.client.Snapshot.Delete().
		Where(snapshot.IDIn(ids...)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Clear(ctx context.Context) error {
	if _, err := r.client.Snapshot.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear snapshots: %w", err)
	}
	return nil
}

// snapshotDataToMap converts SnapshotData to the map form ent stores as JSON.
func snapshotDataToMap(data SnapshotData) (map[string]any, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}
