package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "realestate-listings/internal/errors"
	"realestate-listings/internal/models"
	"realestate-listings/pkg/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"
)

func newTestCacheStore(t *testing.T) (*cache.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return cache.NewStore(client), mr
}

func TestPropertyCacheRoundTrip(t *testing.T) {
	store, _ := newTestCacheStore(t)
	c := NewPropertyCache(store, time.Minute)
	ctx := context.Background()

	entity := &models.PropertyEntity{
		ID:           models.NewID(),
		OwnerID:      models.NewID(),
		Title:        "Lakeview",
		PropertyType: models.PropertyTypeHouse,
		Price:        decimal.RequireFromString("200000.5"),
		Status:       models.StatusAvailable,
		Attributes: models.Attributes{
			Location: &models.Location{Address: "12 Lake Rd"},
			Extra:    map[string]interface{}{"view": "lake"},
		},
	}

	got, err := c.GetProperty(ctx, entity.ID)
	if err != nil || got != nil {
		t.Fatalf("miss = %v, %v", got, err)
	}
	gen, err := c.PropertyGeneration(ctx, entity.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored, err := c.SetProperty(ctx, entity, gen); err != nil || !stored {
		t.Fatalf("SetProperty = %v, %v", stored, err)
	}
	got, err = c.GetProperty(ctx, entity.ID)
	if err != nil || got == nil {
		t.Fatalf("hit = %v, %v", got, err)
	}
	if !got.Price.Equal(entity.Price) || got.Attributes.Location.Address != "12 Lake Rd" || got.Attributes.Extra["view"] != "lake" {
		t.Fatalf("cached entity differs: %+v", got)
	}

	if err := c.InvalidateProperty(ctx, entity.ID); err != nil {
		t.Fatal(err)
	}
	got, _ = c.GetProperty(ctx, entity.ID)
	if got != nil {
		t.Fatal("entity survived invalidation")
	}
	if stored, err := c.SetProperty(ctx, entity, gen); err != nil || stored {
		t.Fatalf("fill with pre-invalidation generation = %v, %v; want refused", stored, err)
	}
}

func TestOwnerListingInvalidatedByMemberWrite(t *testing.T) {
	store, _ := newTestCacheStore(t)
	c := NewPropertyCache(store, time.Minute)
	ctx := context.Background()
	owner := models.NewID()
	entities := []models.PropertyEntity{{ID: models.NewID(), OwnerID: owner}, {ID: models.NewID(), OwnerID: owner}}

	gen, err := c.OwnerListingGeneration(ctx, owner)
	if err != nil {
		t.Fatal(err)
	}
	if stored, err := c.SetOwnerListing(ctx, owner, gen, entities); err != nil || !stored {
		t.Fatalf("SetOwnerListing = %v, %v", stored, err)
	}
	got, ok, err := c.GetOwnerListing(ctx, owner)
	if err != nil || !ok || len(got) != 2 {
		t.Fatalf("listing = %v, %v, %v", got, ok, err)
	}

	if err := c.InvalidateProperty(ctx, entities[1].ID); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := c.GetOwnerListing(ctx, owner); ok {
		t.Fatal("listing survived invalidation of a member")
	}

	gen, _ = c.OwnerListingGeneration(ctx, owner)
	if stored, _ := c.SetOwnerListing(ctx, owner, gen, nil); !stored {
		t.Fatal("empty listing not stored")
	}
	if err := c.InvalidateOwnerListing(ctx, owner); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := c.GetOwnerListing(ctx, owner); ok {
		t.Fatal("empty listing survived owner invalidation")
	}
	if stored, _ := c.SetOwnerListing(ctx, owner, gen, entities); stored {
		t.Fatal("listing loaded before an owner invalidation was stored")
	}
}

func TestPropertyLocker(t *testing.T) {
	store, _ := newTestCacheStore(t)
	locker := NewPropertyLocker(store, time.Second)
	ctx := context.Background()
	id := models.NewID()

	release, err := locker.Lock(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := locker.Lock(ctx, id); !errors.Is(err, apperrors.ErrEntityBusy) {
		t.Fatalf("second lock err = %v, want ErrEntityBusy", err)
	}
	if err := release(ctx); err != nil {
		t.Fatal(err)
	}
	release, err = locker.Lock(ctx, id)
	if err != nil {
		t.Fatalf("lock after release: %v", err)
	}
	_ = release(ctx)
}
