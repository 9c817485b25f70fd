// Package domain holds the cart aggregate: an ordered list of line items plus
// the selection set of indices counted toward totals and checkout.
package domain

import (
	"errors"
	"math"
	"sort"
)

var (
	ErrIndexOutOfRange = errors.New("cart index out of range")
)

// LineItem is one product entry in the cart. Quantity is always >= 1; a line
// whose quantity would drop below 1 is removed instead.
type LineItem struct {
	ProductID    int64
	Name         string
	ImageURL     string
	UnitPrice    float64
	UnitOldPrice float64
	Quantity     int
}

// Totals is derived from the cart and selection on every read, never stored.
type Totals struct {
	Total       float64
	OldTotal    float64
	DiscountPct float64
}

// Snapshot is the read-only projection handed to renderers after a mutation.
type Snapshot struct {
	Items    []LineItem
	Selected []int
	Totals   Totals
}

// Cart owns its line items and selection set. All mutation goes through its
// methods so the selection indices stay in bounds at all times.
type Cart struct {
	items    []LineItem
	selected map[int]struct{}
}

func NewCart() *Cart {
	return &Cart{selected: map[int]struct{}{}}
}

// Len returns the number of line items.
func (c *Cart) Len() int {
	return len(c.items)
}

// Contains reports whether a line with the given product id exists.
func (c *Cart) Contains(productID int64) bool {
	return c.indexOf(productID) >= 0
}

// Add merges the item into an existing line with the same product id by
// incrementing its quantity by one, or appends a fresh line with quantity 1.
// It returns the index of the affected line.
func (c *Cart) Add(item LineItem) int {
	if i := c.indexOf(item.ProductID); i >= 0 {
		c.items[i].Quantity++
		return i
	}
	item.Quantity = 1
	c.items = append(c.items, item)
	return len(c.items) - 1
}

// ToggleSelectAll flips between full and empty selection. Any partial
// selection becomes a full one.
func (c *Cart) ToggleSelectAll() {
	if len(c.selected) == len(c.items) && len(c.items) > 0 {
		c.selected = map[int]struct{}{}
		return
	}
	c.selected = make(map[int]struct{}, len(c.items))
	for i := range c.items {
		c.selected[i] = struct{}{}
	}
}

// ToggleSelection flips membership of the given index in the selection set.
func (c *Cart) ToggleSelection(index int) error {
	if index < 0 || index >= len(c.items) {
		return ErrIndexOutOfRange
	}
	if _, ok := c.selected[index]; ok {
		delete(c.selected, index)
	} else {
		c.selected[index] = struct{}{}
	}
	return nil
}

// ChangeQuantity adjusts the quantity of the line at index by delta. A
// resulting quantity below 1 removes the line; removed reports that case.
func (c *Cart) ChangeQuantity(index, delta int) (removed bool, err error) {
	if index < 0 || index >= len(c.items) {
		return false, ErrIndexOutOfRange
	}
	next := c.items[index].Quantity + delta
	if next < 1 {
		return true, c.Remove(index)
	}
	c.items[index].Quantity = next
	return false, nil
}

// Remove deletes the line at index and re-indexes the selection set: the
// removed index is dropped and every selected index above it shifts down by
// one, so the selection keeps pointing at the same lines.
func (c *Cart) Remove(index int) error {
	if index < 0 || index >= len(c.items) {
		return ErrIndexOutOfRange
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
	reindexed := make(map[int]struct{}, len(c.selected))
	for sel := range c.selected {
		switch {
		case sel < index:
			reindexed[sel] = struct{}{}
		case sel > index:
			reindexed[sel-1] = struct{}{}
		}
	}
	c.selected = reindexed
	return nil
}

// IsSelected reports whether the line at index counts toward totals.
func (c *Cart) IsSelected(index int) bool {
	_, ok := c.selected[index]
	return ok
}

// HasSelection reports whether any line is selected.
func (c *Cart) HasSelection() bool {
	return len(c.selected) > 0
}

// SelectedIndices returns the selection set in ascending order.
func (c *Cart) SelectedIndices() []int {
	indices := make([]int, 0, len(c.selected))
	for i := range c.selected {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	return indices
}

// SelectedLines returns copies of the selected lines in display order.
func (c *Cart) SelectedLines() []LineItem {
	lines := make([]LineItem, 0, len(c.selected))
	for _, i := range c.SelectedIndices() {
		lines = append(lines, c.items[i])
	}
	return lines
}

// Items returns a copy of all lines in display order.
func (c *Cart) Items() []LineItem {
	items := make([]LineItem, len(c.items))
	copy(items, c.items)
	return items
}

// Totals sums price and old price over the selected lines only. The discount
// percentage is 0 when the old total is 0, otherwise (1 - total/oldTotal)*100
// truncated to one decimal.
func (c *Cart) Totals() Totals {
	var total, oldTotal float64
	for i := range c.selected {
		total += c.items[i].UnitPrice * float64(c.items[i].Quantity)
		oldTotal += c.items[i].UnitOldPrice * float64(c.items[i].Quantity)
	}
	var discount float64
	if oldTotal != 0 {
		discount = math.Trunc((1-total/oldTotal)*1000) / 10
	}
	return Totals{Total: total, OldTotal: oldTotal, DiscountPct: discount}
}

// Snapshot captures the post-mutation state for rendering.
func (c *Cart) Snapshot() Snapshot {
	return Snapshot{
		Items:    c.Items(),
		Selected: c.SelectedIndices(),
		Totals:   c.Totals(),
	}
}

// Clone returns a deep copy; repositories hand out clones so no caller can
// alias the stored cart.
func (c *Cart) Clone() *Cart {
	clone := &Cart{
		items:    make([]LineItem, len(c.items)),
		selected: make(map[int]struct{}, len(c.selected)),
	}
	copy(clone.items, c.items)
	for i := range c.selected {
		clone.selected[i] = struct{}{}
	}
	return clone
}

func (c *Cart) indexOf(productID int64) int {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			return i
		}
	}
	return -1
}
