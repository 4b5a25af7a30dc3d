package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewStore(client), mr
}

func TestSetGetDelete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	type payload struct {
		Name string `json:"name"`
	}
	if err := store.Set(ctx, "k", payload{Name: "lakeview"}, time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	var got payload
	if err := store.Get(ctx, "k", &got); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "lakeview" {
		t.Fatalf("got %+v", got)
	}
	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	err := store.Get(ctx, "k", &got)
	if !IsMiss(err) {
		t.Fatalf("expected miss after delete, got %v", err)
	}
}

func TestInvalidateDropsPropertyAndListings(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, PropertyKey("p1"), "entity", time.Minute); err != nil {
		t.Fatal(err)
	}
	stored, err := store.SetListing(ctx, OwnerListingKey("u1"), OwnerListingGenerationKey("u1"), "0", []string{"p1", "p2"}, []string{"p1", "p2"}, time.Minute)
	if err != nil || !stored {
		t.Fatalf("SetListing = %v, %v", stored, err)
	}
	if !mr.Exists(OwnerListingKey("u1")) {
		t.Fatal("listing not stored")
	}
	if members, _ := mr.Members(PropertyKeysSetKey("p2")); len(members) != 1 {
		t.Fatalf("p2 key set = %v", members)
	}

	if err := store.InvalidatePropertyCacheKeys(ctx, "p1"); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}
	if mr.Exists(PropertyKey("p1")) || mr.Exists(OwnerListingKey("u1")) || mr.Exists(PropertyKeysSetKey("p1")) {
		t.Fatal("invalidation left keys behind")
	}
	if gen, _ := store.Generation(ctx, PropertyGenerationKey("p1")); gen != "1" {
		t.Fatalf("generation after invalidation = %q, want 1", gen)
	}
}

func TestGenerationCheckedFills(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()
	key, genKey := PropertyKey("p1"), PropertyGenerationKey("p1")

	gen, err := store.Generation(ctx, genKey)
	if err != nil || gen != "0" {
		t.Fatalf("initial generation = %q, %v", gen, err)
	}
	stored, err := store.SetIfGeneration(ctx, key, genKey, gen, "v1", time.Minute)
	if err != nil || !stored {
		t.Fatalf("fill at current generation = %v, %v", stored, err)
	}

	// a fill that loaded before this invalidation must not land
	if err := store.InvalidatePropertyCacheKeys(ctx, "p1"); err != nil {
		t.Fatal(err)
	}
	stored, err = store.SetIfGeneration(ctx, key, genKey, gen, "stale", time.Minute)
	if err != nil || stored {
		t.Fatalf("stale fill = %v, %v; want refused", stored, err)
	}
	if mr.Exists(key) {
		t.Fatal("stale value written")
	}
	if ttl := mr.TTL(genKey); ttl <= 0 || ttl > GenerationTTL {
		t.Fatalf("generation ttl = %v", ttl)
	}

	listKey, listGen := OwnerListingKey("u1"), OwnerListingGenerationKey("u1")
	if err := store.InvalidateKey(ctx, listKey, listGen); err != nil {
		t.Fatal(err)
	}
	stored, err = store.SetListing(ctx, listKey, listGen, "0", []string{"p1"}, []string{"p1"}, time.Minute)
	if err != nil || stored {
		t.Fatalf("stale listing fill = %v, %v; want refused", stored, err)
	}
	stored, err = store.SetListing(ctx, listKey, listGen, "1", []string{"p1"}, []string{"p1"}, time.Minute)
	if err != nil || !stored {
		t.Fatalf("current listing fill = %v, %v", stored, err)
	}
}

func TestLockIsExclusiveAndTokenChecked(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()
	key := PropertyLockKey("p1")

	ok, err := store.AcquireLock(ctx, key, "a", time.Second)
	if err != nil || !ok {
		t.Fatalf("first acquire = %v, %v", ok, err)
	}
	ok, err = store.AcquireLock(ctx, key, "b", time.Second)
	if err != nil || ok {
		t.Fatalf("second acquire = %v, %v; want contention", ok, err)
	}

	if err := store.ReleaseLock(ctx, key, "b"); err != nil {
		t.Fatal(err)
	}
	if !mr.Exists(key) {
		t.Fatal("release with foreign token removed the lock")
	}
	if err := store.ReleaseLock(ctx, key, "a"); err != nil {
		t.Fatal(err)
	}
	if mr.Exists(key) {
		t.Fatal("lock still held after owner release")
	}

	ok, _ = store.AcquireLock(ctx, key, "c", time.Second)
	if !ok {
		t.Fatal("lock not reusable after release")
	}
	mr.FastForward(2 * time.Second)
	ok, _ = store.AcquireLock(ctx, key, "d", time.Second)
	if !ok {
		t.Fatal("expired lock was not reclaimed")
	}
}
