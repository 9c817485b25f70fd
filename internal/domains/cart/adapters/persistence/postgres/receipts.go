package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"storefront-demo/internal/domains/cart/ports"
)

var _ ports.ReceiptLedger = (*ReceiptLedger)(nil)

// ReceiptLedger records simulated settlement receipts in PostgreSQL. The
// ledger is optional; the demo runs fully in memory without it.
type ReceiptLedger struct {
	db *gorm.DB
}

// NewReceiptLedger wires a PostgreSQL-backed ledger. Caller manages DB lifecycle.
func NewReceiptLedger(db *gorm.DB) *ReceiptLedger {
	ledger := &ReceiptLedger{db: db}
	if db != nil {
		_ = db.AutoMigrate(&receiptRecord{})
	}
	return ledger
}

// receiptRecord stores one settled checkout with its itemized lines flattened
// into parallel arrays.
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

// Record persists the receipt with its itemized order.
func (l *ReceiptLedger) Record(ctx context.Context, receipt ports.Receipt, order ports.SettlementOrder) error {
	if l == nil || l.db == nil {
		return errors.New("postgres receipt ledger not configured")
	}
	record := receiptRecord{
		ID:        receipt.ID,
		SessionID: order.SessionID,
		Total:     receipt.Total,
		SettledAt: receipt.SettledAt,
	}
	for _, line := range order.Lines {
		record.ProductIDs = append(record.ProductIDs, line.ProductID)
		record.Quantities = append(record.Quantities, int32(line.Quantity))
		record.UnitPrices = append(record.UnitPrices, line.UnitPrice)
	}
	return l.db.WithContext(ctx).Create(&record).Error
}

// BySession returns the session's receipts, newest first.
func (l *ReceiptLedger) BySession(ctx context.Context, sessionID string) ([]ports.Receipt, error) {
	if l == nil || l.db == nil {
		return nil, errors.New("postgres receipt ledger not configured")
	}
	var records []receiptRecord
	if err := l.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("settled_at DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	receipts := make([]ports.Receipt, 0, len(records))
	for _, r := range records {
		receipts = append(receipts, ports.Receipt{ID: r.ID, Total: r.Total, SettledAt: r.SettledAt})
	}
	return receipts, nil
}
