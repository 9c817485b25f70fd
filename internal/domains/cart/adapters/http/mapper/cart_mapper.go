package mapper

import (
	"time"

	cartdomain "storefront-demo/internal/domains/cart/domain"
	cartports "storefront-demo/internal/domains/cart/ports"
)

// LineItem is the transport-layer shape of one cart line.
type LineItem struct {
	ProductID    int64   `json:"productId"`
	Name         string  `json:"name"`
	ImageURL     string  `json:"imageUrl"`
	UnitPrice    float64 `json:"unitPrice"`
	UnitOldPrice float64 `json:"unitOldPrice"`
	Quantity     int     `json:"quantity"`
	Selected     bool    `json:"selected"`
}

// Totals is the transport-layer shape of the derived totals.
type Totals struct {
	Total       float64 `json:"total"`
	OldTotal    float64 `json:"oldTotal"`
	DiscountPct float64 `json:"discountPct"`
}

// CartView is the full post-mutation projection returned to renderers.
type CartView struct {
	Items    []LineItem `json:"items"`
	Selected []int      `json:"selected"`
	Totals   Totals     `json:"totals"`
}

// Receipt is the transport-layer checkout confirmation.
type Receipt struct {
	ID        string    `json:"id"`
	Total     float64   `json:"total"`
	SettledAt time.Time `json:"settledAt"`
}

// FromSnapshot converts the domain projection to the transport representation.
func FromSnapshot(snap cartdomain.Snapshot) CartView {
	selected := make(map[int]struct{}, len(snap.Selected))
	for _, i := range snap.Selected {
		selected[i] = struct{}{}
	}
	view := CartView{
		Items:    make([]LineItem, 0, len(snap.Items)),
		Selected: append([]int{}, snap.Selected...),
		Totals: Totals{
			Total:       snap.Totals.Total,
			OldTotal:    snap.Totals.OldTotal,
			DiscountPct: snap.Totals.DiscountPct,
		},
	}
	for i, item := range snap.Items {
		_, sel := selected[i]
		view.Items = append(view.Items, LineItem{
			ProductID:    item.ProductID,
			Name:         item.Name,
			ImageURL:     item.ImageURL,
			UnitPrice:    item.UnitPrice,
			UnitOldPrice: item.UnitOldPrice,
			Quantity:     item.Quantity,
			Selected:     sel,
		})
	}
	return view
}

// FromReceipt converts a settlement receipt to the transport representation.
func FromReceipt(receipt *cartports.Receipt) Receipt {
	if receipt == nil {
		return Receipt{}
	}
	return Receipt{ID: receipt.ID, Total: receipt.Total, SettledAt: receipt.SettledAt}
}
