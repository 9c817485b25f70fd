package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"storefront-demo/internal/domains/catalog/domain"
	"storefront-demo/internal/domains/catalog/ports"
)

func TestGetByID_ReturnsSeededProduct(t *testing.T) {
	repo := NewRepository(DefaultCatalog(), nil)

	product, err := repo.GetByID(context.Background(), 7)

	require.NoError(t, err)
	require.Equal(t, "Пылесос вертикальный V11", product.Name)
	require.Equal(t, float64(5108), product.Price)
	require.Equal(t, float64(11544), product.OldPrice)
}

func TestGetByID_UnknownID(t *testing.T) {
	repo := NewRepository(DefaultCatalog(), nil)

	_, err := repo.GetByID(context.Background(), 999)
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestList_PreservesSeedOrder(t *testing.T) {
	repo := NewRepository(DefaultCatalog(), nil)

	products, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, products, len(DefaultCatalog()))
	for i, p := range products {
		require.Equal(t, DefaultCatalog()[i].ID, p.ID)
	}
}

func TestNewRepository_DuplicateIDsKeepFirstOccurrence(t *testing.T) {
	repo := NewRepository([]domain.Product{
		{ID: 1, Name: "first", Rating: 4},
		{ID: 1, Name: "second", Rating: 4},
	}, nil)

	product, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "first", product.Name)

	products, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
}

func TestNewRepository_SkipsInvalidEntries(t *testing.T) {
	repo := NewRepository([]domain.Product{
		{ID: 0, Name: "no id"},
		{ID: 2, Name: "bad rating", Rating: 4.3},
		{ID: 3, Name: "ok", Rating: 4.5},
	}, nil)

	products, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, int64(3), products[0].ID)
}

func TestGetByID_HandsOutClones(t *testing.T) {
	repo := NewRepository(DefaultCatalog(), nil)
	ctx := context.Background()

	product, err := repo.GetByID(ctx, 7)
	require.NoError(t, err)
	product.Name = "mutated"

	again, err := repo.GetByID(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, "Пылесос вертикальный V11", again.Name)
}
