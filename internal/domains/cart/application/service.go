package application

import (
	"context"
	"fmt"

	"storefront-demo/internal/domains/cart/domain"
	"storefront-demo/internal/domains/cart/ports"
	catalogdomain "storefront-demo/internal/domains/catalog/domain"
	catalogports "storefront-demo/internal/domains/catalog/ports"
)

// Service orchestrates cart use cases: all mutations of a session's cart and
// selection set, totals recomputation, and the checkout hand-off.
type Service struct {
	carts      ports.Repository
	catalog    catalogports.Repository
	settlement ports.SettlementOrchestrator
	notifier   ports.Notifier
}

func NewService(carts ports.Repository, catalog catalogports.Repository, settlement ports.SettlementOrchestrator, notifier ports.Notifier) *Service {
	if notifier == nil {
		notifier = ports.NoopNotifier
	}
	return &Service{carts: carts, catalog: catalog, settlement: settlement, notifier: notifier}
}

// Snapshot returns the session's current cart projection without mutating it.
func (s *Service) Snapshot(ctx context.Context, sessionID string) (domain.Snapshot, error) {
	cart, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return domain.Snapshot{}, err
	}
	return cart.Snapshot(), nil
}

// AddItem resolves the catalog entry and merges it into the cart: an existing
// line gains quantity, an absent one is appended at quantity 1. An unknown id
// leaves the cart untouched.
func (s *Service) AddItem(ctx context.Context, sessionID string, productID int64) (domain.Snapshot, error) {
	product, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		return domain.Snapshot{}, err
	}
	cart, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return domain.Snapshot{}, err
	}
	cart.Add(lineFromProduct(product))
	return s.commit(ctx, sessionID, cart)
}

// AddAllFromCatalog appends every catalog entry not already in the cart at
// quantity 1. Calling it again once the cart is fully populated is a no-op.
func (s *Service) AddAllFromCatalog(ctx context.Context, sessionID string) (domain.Snapshot, error) {
	products, err := s.catalog.List(ctx)
	if err != nil {
		return domain.Snapshot{}, err
	}
	cart, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return domain.Snapshot{}, err
	}
	for _, product := range products {
		if cart.Contains(product.ID) {
			continue
		}
		cart.Add(lineFromProduct(product))
	}
	return s.commit(ctx, sessionID, cart)
}

// ToggleSelectAll flips between full and empty selection.
func (s *Service) ToggleSelectAll(ctx context.Context, sessionID string) (domain.Snapshot, error) {
	cart, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return domain.Snapshot{}, err
	}
	cart.ToggleSelectAll()
	return s.commit(ctx, sessionID, cart)
}

// ToggleItemSelection flips selection of a single line.
func (s *Service) ToggleItemSelection(ctx context.Context, sessionID string, index int) (domain.Snapshot, error) {
	cart, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return domain.Snapshot{}, err
	}
	if err := cart.ToggleSelection(index); err != nil {
		return domain.Snapshot{}, mapError(err)
	}
	return s.commit(ctx, sessionID, cart)
}

// ChangeQuantity adjusts a line's quantity by delta; dropping below 1 removes
// the line, which also re-indexes the selection set.
func (s *Service) ChangeQuantity(ctx context.Context, sessionID string, index, delta int) (domain.Snapshot, error) {
	cart, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return domain.Snapshot{}, err
	}
	if _, err := cart.ChangeQuantity(index, delta); err != nil {
		return domain.Snapshot{}, mapError(err)
	}
	return s.commit(ctx, sessionID, cart)
}

// RemoveItem deletes a line and re-indexes the selection set.
func (s *Service) RemoveItem(ctx context.Context, sessionID string, index int) (domain.Snapshot, error) {
	cart, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return domain.Snapshot{}, err
	}
	if err := cart.Remove(index); err != nil {
		return domain.Snapshot{}, mapError(err)
	}
	return s.commit(ctx, sessionID, cart)
}

// Checkout recomputes the total from the current cart and selection, hands the
// itemized list to settlement, and posts a confirmation notice. Nothing
// selected aborts with a user-visible warning and no state change.
func (s *Service) Checkout(ctx context.Context, sessionID string) (*ports.Receipt, error) {
	cart, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !cart.HasSelection() {
		s.notifier.Notify(ctx, "Выберите товары для оформления заказа")
		return nil, ErrEmptySelection
	}
	lines := cart.SelectedLines()
	order := ports.SettlementOrder{
		SessionID: sessionID,
		Lines:     make([]ports.SettlementLine, 0, len(lines)),
		Total:     cart.Totals().Total,
	}
	for _, line := range lines {
		order.Lines = append(order.Lines, ports.SettlementLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}
	receipt, err := s.settlement.Checkout(ctx, order)
	if err != nil {
		return nil, err
	}
	s.notifier.Notify(ctx, fmt.Sprintf("Заказ оформлен на сумму %.0f ₽", receipt.Total))
	return receipt, nil
}

func (s *Service) commit(ctx context.Context, sessionID string, cart *domain.Cart) (domain.Snapshot, error) {
	if err := s.carts.Save(ctx, sessionID, cart); err != nil {
		return domain.Snapshot{}, err
	}
	return cart.Snapshot(), nil
}

func lineFromProduct(p *catalogdomain.Product) domain.LineItem {
	return domain.LineItem{
		ProductID:    p.ID,
		Name:         p.Name,
		ImageURL:     p.ImageURL,
		UnitPrice:    p.Price,
		UnitOldPrice: p.OldPrice,
	}
}

var _ ports.Service = (*Service)(nil)
