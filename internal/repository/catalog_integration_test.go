//go:build integration

package repository

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func seedCatalog(t *testing.T, db *MongoDB) {
	t.Helper()
	ctx := context.Background()

	steps := []interface{}{
		bson.M{"id": int64(20), "name": "Protein", "step_number": 2.0, "category_id": int64(200)},
		bson.M{"id": int64(10), "name": "Bread", "description": "Pick a base", "step_number": 1.0, "category_id": int64(100)},
		bson.M{"id": int64(30), "name": "Sauce", "step_number": 3.0, "category_id": int64(300)},
	}
	_, err := db.Steps.InsertMany(ctx, steps)
	require.NoError(t, err)

	options := []interface{}{
		bson.M{"id": int64(1), "name": "Baguette", "price": 5000.0, "cal": 150.0, "is_active": true, "category_id": int64(100)},
		bson.M{"id": int64(2), "name": "Grilled Chicken", "price": 20000.0, "cal": 80.0, "is_active": true, "category_id": int64(200)},
		// Malformed imports seen in production dumps: negative price, NaN calories.
		bson.M{"id": int64(3), "name": "Fried Chicken", "price": -12000.0, "cal": math.NaN(), "is_active": true, "category_id": int64(200)},
		bson.M{"id": int64(9), "name": "Smoked Duck", "price": 25000.0, "cal": 120.0, "is_active": false, "category_id": int64(200)},
	}
	_, err = db.MenuItems.InsertMany(ctx, options)
	require.NoError(t, err)
}

func TestCatalogRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	seedCatalog(t, db)
	repo := NewCatalogRepository(db)

	t.Run("list steps sorted by ordinal", func(t *testing.T) {
		steps, err := repo.ListSteps(ctx)
		require.NoError(t, err)
		require.Len(t, steps, 3)
		assert.Equal(t, int64(10), steps[0].ID)
		assert.Equal(t, int64(20), steps[1].ID)
		assert.Equal(t, int64(30), steps[2].ID)
		assert.Equal(t, "Pick a base", steps[0].Description)
	})

	t.Run("list options includes inactive", func(t *testing.T) {
		opts, err := repo.ListOptions(ctx)
		require.NoError(t, err)
		require.Len(t, opts, 4)

		byID := make(map[int64]int, len(opts))
		for i, o := range opts {
			byID[o.ID] = i
		}
		assert.False(t, opts[byID[9]].IsActive)
		assert.Equal(t, int64(25000), opts[byID[9]].Price)
	})

	t.Run("malformed amounts collapse to zero", func(t *testing.T) {
		opts, err := repo.ListOptions(ctx)
		require.NoError(t, err)

		for _, o := range opts {
			if o.ID == 3 {
				assert.Equal(t, int64(0), o.Price)
				assert.Equal(t, int64(0), o.Cal)
				return
			}
		}
		t.Fatal("seeded option 3 not returned")
	})
}

func TestCatalogRepository_EmptyCollections_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewCatalogRepository(db)

	steps, err := repo.ListSteps(ctx)
	require.NoError(t, err)
	assert.Empty(t, steps)

	opts, err := repo.ListOptions(ctx)
	require.NoError(t, err)
	assert.Empty(t, opts)
}
