package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storefront-demo/internal/domains/catalog/domain"
	"storefront-demo/internal/domains/catalog/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository reads the catalog from PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed catalog. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&productRecord{})
	}
	return repo
}

// productRecord maps a catalog entry to a relational table. Position preserves
// the catalog's display order.
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

// Seed upserts the given products, keeping their slice order as display order.
func (r *Repository) Seed(ctx context.Context, products []domain.Product) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	for i := range products {
		if err := products[i].Validate(); err != nil {
			return err
		}
		record := toRecord(&products[i], i)
		if err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "id"}},
				DoUpdates: clause.Assignments(map[string]any{
					"position":    record.Position,
					"name":        record.Name,
					"image_url":   record.ImageURL,
					"price":       record.Price,
					"old_price":   record.OldPrice,
					"rating":      record.Rating,
					"sales_label": record.SalesLabel,
					"badge":       record.Badge,
					"badge_kind":  record.BadgeKind,
					"brand":       record.Brand,
					"has_video":   record.HasVideo,
					"updated_at":  gorm.Expr("NOW()"),
				}),
			}).Create(&record).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetByID fetches a catalog entry by identifier.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record productRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// List returns the full catalog in display order.
func (r *Repository) List(ctx context.Context) ([]*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []productRecord
	if err := r.db.WithContext(ctx).Order("position").Find(&records).Error; err != nil {
		return nil, err
	}
	products := make([]*domain.Product, 0, len(records))
	for i := range records {
		products = append(products, records[i].toDomain())
	}
	return products, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres catalog repository not configured")
	}
	return nil
}

func toRecord(p *domain.Product, position int) productRecord {
	return productRecord{
		ID:         p.ID,
		Position:   position,
		Name:       p.Name,
		ImageURL:   p.ImageURL,
		Price:      p.Price,
		OldPrice:   p.OldPrice,
		Rating:     p.Rating,
		SalesLabel: p.SalesLabel,
		Badge:      p.Badge,
		BadgeKind:  p.BadgeKind,
		Brand:      p.Brand,
		HasVideo:   p.HasVideo,
	}
}

func (r productRecord) toDomain() *domain.Product {
	return &domain.Product{
		ID:         r.ID,
		Name:       r.Name,
		ImageURL:   r.ImageURL,
		Price:      r.Price,
		OldPrice:   r.OldPrice,
		Rating:     r.Rating,
		SalesLabel: r.SalesLabel,
		Badge:      r.Badge,
		BadgeKind:  r.BadgeKind,
		Brand:      r.Brand,
		HasVideo:   r.HasVideo,
	}
}
