package migrations

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Run applies the schema for the optional PostgreSQL-backed pieces: the
// catalog source and the settlement receipt ledger. Intended to replace
// adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&productRecord{},
		&receiptRecord{},
	)
}

// Product schema mirrors the catalog Postgres adapter.
type productRecord struct {
	ID         int64     `gorm:"primaryKey;column:id"`
	Position   int       `gorm:"column:position;index"`
	Name       string    `gorm:"column:name"`
	ImageURL   string    `gorm:"column:image_url"`
	Price      float64   `gorm:"column:price"`
	OldPrice   float64   `gorm:"column:old_price"`
	Rating     float64   `gorm:"column:rating"`
	SalesLabel string    `gorm:"column:sales_label"`
	Badge      string    `gorm:"column:badge"`
	BadgeKind  string    `gorm:"column:badge_kind;type:varchar(32)"`
	Brand      string    `gorm:"column:brand;index"`
	HasVideo   bool      `gorm:"column:has_video"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (productRecord) TableName() string { return "products" }

// Receipt schema mirrors the settlement ledger adapter.
type receiptRecord struct {
	ID         string          `gorm:"primaryKey;column:id;size:64"`
	SessionID  string          `gorm:"column:session_id;index"`
	ProductIDs pq.Int64Array   `gorm:"column:product_ids;type:bigint[]"`
	Quantities pq.Int32Array   `gorm:"column:quantities;type:integer[]"`
	UnitPrices pq.Float64Array `gorm:"column:unit_prices;type:double precision[]"`
	Total      float64         `gorm:"column:total"`
	SettledAt  time.Time       `gorm:"column:settled_at;index"`
	CreatedAt  time.Time       `gorm:"column:created_at"`
}

func (receiptRecord) TableName() string { return "settlement_receipts" }
