package classstore_test

import (
	"testing"

	classstore "github.com/dalemusser/academicdash/internal/app/store/classes"
	"github.com/dalemusser/academicdash/internal/testutil"
)

func TestStore_CountByEnglishLevelAndBatch(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := classstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateClass(ctx, "SE", "B1", "K15")
	fx.CreateClass(ctx, "SE", "B1", "K16")
	fx.CreateClass(ctx, "SE", "B2", "K16")
	fx.CreateClass(ctx, "IA", "B2", "K15")

	levels, err := store.CountByEnglishLevel(ctx, "SE")
	if err != nil {
		t.Fatalf("CountByEnglishLevel failed: %v", err)
	}
	if len(levels) != 2 || levels[0].ID != "B1" || levels[0].Count != 2 || levels[1].Count != 1 {
		t.Errorf("levels = %+v, want B1/2 B2/1", levels)
	}

	batches, err := store.CountByBatch(ctx, "SE")
	if err != nil {
		t.Fatalf("CountByBatch failed: %v", err)
	}
	if len(batches) != 2 || batches[0].ID != "K15" || batches[0].Count != 1 || batches[1].Count != 2 {
		t.Errorf("batches = %+v, want K15/1 K16/2", batches)
	}
}

func TestStore_Distinct(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := classstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateClass(ctx, "SE", "B1", "K15")
	fx.CreateClass(ctx, "IA", "B1", "K16")
	fx.CreateClass(ctx, "IA", "C1", "K16")

	levels, err := store.EnglishLevels(ctx)
	if err != nil {
		t.Fatalf("EnglishLevels failed: %v", err)
	}
	if len(levels) != 2 {
		t.Errorf("expected 2 english levels, got %+v", levels)
	}

	batches, err := store.Batches(ctx)
	if err != nil {
		t.Fatalf("Batches failed: %v", err)
	}
	if len(batches) != 2 || batches[0].ID != "K15" {
		t.Errorf("batches = %+v", batches)
	}
}
