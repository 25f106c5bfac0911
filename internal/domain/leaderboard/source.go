package leaderboard

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru"
)

//go:generate mockgen -source=source.go -destination=mock/source.go -package=mock

// Source reads authoritative standings: users whose active companion is
// alive, best first, at most limit of them.
type Source interface {
	Standings(ctx context.Context, limit int) ([]Entry, error)
}

// SnapshotStore keeps snapshots keyed by their limit. Put replaces the
// whole snapshot so readers never see a partial one.
type SnapshotStore interface {
	Get(ctx context.Context, limit int) (*Snapshot, bool, error)
	Put(ctx context.Context, snap *Snapshot) error
	Delete(ctx context.Context, limit int) error
}

// MemoryStore is an in-process, size-bounded snapshot store.
type MemoryStore struct {
	cache *lru.Cache
}

func NewMemoryStore(size int) (*MemoryStore, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create snapshot cache: %w", err)
	}
	return &MemoryStore{cache: cache}, nil
}

func (m *MemoryStore) Get(_ context.Context, limit int) (*Snapshot, bool, error) {
	v, ok := m.cache.Get(limit)
	if !ok {
		return nil, false, nil
	}
	snap, ok := v.(*Snapshot)
	return snap, ok, nil
}

func (m *MemoryStore) Put(_ context.Context, snap *Snapshot) error {
	m.cache.Add(snap.Limit, snap)
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, limit int) error {
	m.cache.Remove(limit)
	return nil
}
