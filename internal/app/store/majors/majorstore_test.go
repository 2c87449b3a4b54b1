package majorstore_test

import (
	"testing"

	majorstore "github.com/dalemusser/academicdash/internal/app/store/majors"
	"github.com/dalemusser/academicdash/internal/testutil"
)

func TestStore_Names(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := majorstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateMajor(ctx, "Software Engineering")
	fx.CreateMajor(ctx, "Artificial Intelligence")
	fx.CreateMajor(ctx, "Software Engineering")

	names, err := store.Names(ctx)
	if err != nil {
		t.Fatalf("Names failed: %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("expected 2 names, got %+v", names)
	}
	if names[0].ID != "Artificial Intelligence" {
		t.Errorf("names[0] = %v", names[0].ID)
	}
}
