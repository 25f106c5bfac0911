package cache

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/habitpet/habitpet/internal/domain/leaderboard"
	"github.com/habitpet/habitpet/internal/gateways/database/models"
	"github.com/redis/go-redis/v9"
)

func newStore(t *testing.T) (*LeaderboardStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewLeaderboardStore(client, 30*time.Minute), mr
}

func TestLeaderboardStore_RoundTrip(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	snap := &leaderboard.Snapshot{
		Limit: 10,
		Entries: []leaderboard.Entry{
			{UserID: 1, UserName: "ana", CompanionID: 4, KindName: "Sprout Pup", Stage: models.StageJuvenile, Level: 3, Exp: 12, Alive: true},
		},
		ComputedAt: time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC),
	}
	if err := store.Put(ctx, snap); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, ok, err := store.Get(ctx, 10)
	if err != nil || !ok {
		t.Fatalf("Get() = (_, %v, %v), want a snapshot", ok, err)
	}
	if !reflect.DeepEqual(got, snap) {
		t.Errorf("Get() = %+v, want %+v", got, snap)
	}
}

func TestLeaderboardStore_Missing(t *testing.T) {
	store, _ := newStore(t)

	got, ok, err := store.Get(context.Background(), 5)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok || got != nil {
		t.Errorf("Get() = (%v, %v), want nothing", got, ok)
	}
}

func TestLeaderboardStore_Delete(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()

	if err := store.Put(ctx, &leaderboard.Snapshot{Limit: 3}); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if !mr.Exists(snapshotKey(3)) {
		t.Fatal("snapshot key was not written")
	}
	if err := store.Delete(ctx, 3); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if mr.Exists(snapshotKey(3)) {
		t.Error("snapshot key still present after Delete")
	}
}

func TestLeaderboardStore_KeyExpires(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()

	if err := store.Put(ctx, &leaderboard.Snapshot{Limit: 7}); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	mr.FastForward(61 * time.Minute)

	if _, ok, _ := store.Get(ctx, 7); ok {
		t.Error("snapshot survived past its key expiry")
	}
}

func TestLeaderboardStore_CorruptValue(t *testing.T) {
	store, mr := newStore(t)

	if err := mr.Set(snapshotKey(9), "not json"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := store.Get(context.Background(), 9); err == nil {
		t.Error("Get() expected a decode error")
	}
}
