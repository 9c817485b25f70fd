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

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"storefront-demo/internal/domains/cart/ports"
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

func TestReceiptLedger_RecordAndBySession(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	ledger := NewReceiptLedger(db)
	ctx := context.Background()

	receipt := ports.Receipt{
		ID:        uuid.NewString(),
		Total:     11506,
		SettledAt: time.Now().UTC().Truncate(time.Millisecond),
	}
	order := ports.SettlementOrder{
		SessionID: "s1",
		Lines: []ports.SettlementLine{
			{ProductID: 7, Quantity: 2, UnitPrice: 5108},
			{ProductID: 3, Quantity: 1, UnitPrice: 1290},
		},
		Total: 11506,
	}

	require.NoError(t, ledger.Record(ctx, receipt, order))

	receipts, err := ledger.BySession(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, receipts, 1)
	require.Equal(t, receipt.ID, receipts[0].ID)
	require.Equal(t, float64(11506), receipts[0].Total)
}

func TestReceiptLedger_BySessionOrdersNewestFirst(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	ledger := NewReceiptLedger(db)
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Millisecond)

	order := ports.SettlementOrder{
		SessionID: "s1",
		Lines:     []ports.SettlementLine{{ProductID: 7, Quantity: 1, UnitPrice: 100}},
		Total:     100,
	}
	older := ports.Receipt{ID: uuid.NewString(), Total: 100, SettledAt: base.Add(-time.Hour)}
	newer := ports.Receipt{ID: uuid.NewString(), Total: 100, SettledAt: base}

	require.NoError(t, ledger.Record(ctx, older, order))
	require.NoError(t, ledger.Record(ctx, newer, order))

	receipts, err := ledger.BySession(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, receipts, 2)
	require.Equal(t, newer.ID, receipts[0].ID)
	require.Equal(t, older.ID, receipts[1].ID)
}

func TestReceiptLedger_BySessionIsScoped(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	ledger := NewReceiptLedger(db)
	ctx := context.Background()

	order := ports.SettlementOrder{
		SessionID: "s1",
		Lines:     []ports.SettlementLine{{ProductID: 7, Quantity: 1, UnitPrice: 100}},
		Total:     100,
	}
	require.NoError(t, ledger.Record(ctx, ports.Receipt{ID: uuid.NewString(), Total: 100, SettledAt: time.Now()}, order))

	receipts, err := ledger.BySession(ctx, "other")
	require.NoError(t, err)
	require.Empty(t, receipts)
}
