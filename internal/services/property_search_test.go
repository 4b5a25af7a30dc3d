package services

import (
	"context"
	"errors"
	"testing"

	apperrors "realestate-listings/internal/errors"
	"realestate-listings/internal/models"
	"realestate-listings/internal/repositories"

	"github.com/shopspring/decimal"
)

func TestSearchConjunction(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@example.com")
	svc := newTestService(repositories.NewPropertyRecordRepository(db), newMemDocuments())
	ctx := context.Background()

	listings := []struct {
		title   string
		pt      models.PropertyType
		price   string
		address string
	}{
		{"big house", models.PropertyTypeHouse, "150000.00", "12 Lake Rd"},
		{"edge house", models.PropertyTypeHouse, "100000.00", "3 Hill St"},
		{"cheap house", models.PropertyTypeHouse, "90000.00", "7 Lake Rd"},
		{"flat", models.PropertyTypeApartment, "200000.00", "12 Lake Rd"},
	}
	for _, l := range listings {
		fields := models.PropertyFields{Title: l.title, PropertyType: l.pt, Price: decimal.RequireFromString(l.price)}
		attrs := models.Attributes{Location: &models.Location{Address: l.address}}
		if _, err := svc.Create(ctx, owner, fields, attrs); err != nil {
			t.Fatalf("create %s: %v", l.title, err)
		}
	}

	house := models.PropertyTypeHouse
	minPrice := decimal.NewFromInt(100000)
	found, err := svc.Search(ctx, models.SearchFilter{PropertyType: &house, MinPrice: &minPrice})
	if err != nil {
		t.Fatal(err)
	}
	if len(found) != 2 {
		t.Fatalf("found %d entities, want 2", len(found))
	}
	for _, e := range found {
		if e.PropertyType != models.PropertyTypeHouse || e.Price.LessThan(minPrice) {
			t.Fatalf("entity violates filter: %s %s", e.PropertyType, e.Price)
		}
	}

	found, err = svc.Search(ctx, models.SearchFilter{Location: "  LAKE   rd "})
	if err != nil {
		t.Fatal(err)
	}
	if len(found) != 3 {
		t.Fatalf("location match found %d, want 3", len(found))
	}

	found, err = svc.Search(ctx, models.SearchFilter{PropertyType: &house, Location: "lake"})
	if err != nil {
		t.Fatal(err)
	}
	if len(found) != 2 {
		t.Fatalf("type+location found %d, want 2", len(found))
	}
}

func TestSearchRejectsInvertedPriceRange(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(repositories.NewPropertyRecordRepository(db), newMemDocuments())

	minPrice := decimal.NewFromInt(500)
	maxPrice := decimal.NewFromInt(100)
	_, err := svc.Search(context.Background(), models.SearchFilter{MinPrice: &minPrice, MaxPrice: &maxPrice})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("err = %v, want invalid input", err)
	}
}
