package domain

import (
	"errors"
	"math"
)

var (
	ErrInvalidProductID = errors.New("product id must be greater than zero")
	ErrInvalidPrice     = errors.New("product price must not be negative")
	ErrInvalidRating    = errors.New("product rating must be between 0 and 5 in half steps")
)

// Product is one entry of the read-only catalog. OldPrice carries the
// pre-discount price shown struck through next to Price.
type Product struct {
	ID         int64
	Name       string
	ImageURL   string
	Price      float64
	OldPrice   float64
	Rating     float64
	SalesLabel string
	Badge      string
	BadgeKind  string
	Brand      string
	HasVideo   bool
}

// NewProduct validates and returns the catalog entry.
func NewProduct(p Product) (*Product, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate enforces catalog invariants.
func (p *Product) Validate() error {
	if p.ID <= 0 {
		return ErrInvalidProductID
	}
	if p.Price < 0 || p.OldPrice < 0 {
		return ErrInvalidPrice
	}
	if !isHalfStepRating(p.Rating) {
		return ErrInvalidRating
	}
	return nil
}

func isHalfStepRating(rating float64) bool {
	if rating < 0 || rating > 5 {
		return false
	}
	doubled := rating * 2
	return doubled == math.Trunc(doubled)
}
