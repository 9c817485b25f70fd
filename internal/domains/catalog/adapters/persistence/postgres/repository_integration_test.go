//go:build integration
// +build integration

// To enable gopls support for this file, add the following to your VSCode settings.json:
// "gopls": {
//   "buildFlags": ["-tags=integration"]
// }

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	catalogmemory "storefront-demo/internal/domains/catalog/adapters/memory"
	"storefront-demo/internal/domains/catalog/ports"
	"storefront-demo/internal/platform/migrations"
)

func setupPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("storefront_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, migrations.Run(db))

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func TestPostgresRepository_SeedAndGetByID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Seed(ctx, catalogmemory.DefaultCatalog()))

	product, err := repo.GetByID(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, "Пылесос вертикальный V11", product.Name)
	require.Equal(t, float64(5108), product.Price)
}

func TestPostgresRepository_GetByID_Unknown(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)

	_, err := repo.GetByID(context.Background(), 999)
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestPostgresRepository_ListPreservesOrder(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()
	seed := catalogmemory.DefaultCatalog()

	require.NoError(t, repo.Seed(ctx, seed))

	products, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, len(seed))
	for i, p := range products {
		require.Equal(t, seed[i].ID, p.ID)
	}
}

func TestPostgresRepository_SeedIsIdempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()
	seed := catalogmemory.DefaultCatalog()

	require.NoError(t, repo.Seed(ctx, seed))
	require.NoError(t, repo.Seed(ctx, seed))

	products, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, len(seed))
}
