package order

import (
	"errors"
	"fmt"

	"replenish/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// Item is a child entity of Order representing one requested catalog line.
//
// Items are identified by a stable SKU snapshot reference, independent of the
// catalog lifecycle: order history stays valid even if the catalog entry is
// later changed or removed. The unit price is snapshotted at order time and
// never changes.
//
// Invariants:
//   - qtyRequested is set at creation and immutable
//   - qtyApproved is nil until a manager approves; once set it is >= 0 with
//     no upper bound relative to qtyRequested (increases are permitted)
//   - totalPrice = effective quantity x unitPrice, recomputed on every
//     approval or reply that touches the item
type Item struct {
	sku           string
	qtyRequested  int
	qtyApproved   *int
	unitPrice     float64
	totalPrice    float64
	isConstructed bool
}

// NewItem creates a requested line for a new order. The total price starts
// from the requested quantity and is recomputed once a manager approves.
func NewItem(sku string, qtyRequested int, unitPrice float64) (*Item, error) {
	if sku == "" {
		return nil, errs.NewValueIsRequiredError("sku")
	}
	if qtyRequested <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("qtyRequested",
			fmt.Errorf("%d is not greater than 0", qtyRequested))
	}
	if unitPrice < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%v is negative", unitPrice))
	}

	return &Item{
		sku:           sku,
		qtyRequested:  qtyRequested,
		unitPrice:     unitPrice,
		totalPrice:    float64(qtyRequested) * unitPrice,
		isConstructed: true,
	}, nil
}

// RestoreItem reconstructs an item from persistence without re-deriving the
// total price, which is stored as written.
func RestoreItem(sku string, qtyRequested int, qtyApproved *int, unitPrice, totalPrice float64) *Item {
	return &Item{
		sku:           sku,
		qtyRequested:  qtyRequested,
		qtyApproved:   qtyApproved,
		unitPrice:     unitPrice,
		totalPrice:    totalPrice,
		isConstructed: true,
	}
}

// Validate ensures the item was created via NewItem or RestoreItem.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// SKU returns the stable item snapshot reference.
func (i *Item) SKU() string {
	return i.sku
}

// QtyRequested returns the quantity the branch asked for.
func (i *Item) QtyRequested() int {
	return i.qtyRequested
}

// QtyApproved returns the manager-approved quantity, or nil before approval.
func (i *Item) QtyApproved() *int {
	return i.qtyApproved
}

// UnitPrice returns the price snapshotted at order time.
func (i *Item) UnitPrice() float64 {
	return i.unitPrice
}

// TotalPrice returns the current line total.
func (i *Item) TotalPrice() float64 {
	return i.totalPrice
}

// effectiveQty is the approved quantity once set, otherwise the requested one.
func (i *Item) effectiveQty() int {
	if i.qtyApproved != nil {
		return *i.qtyApproved
	}
	return i.qtyRequested
}

// approve sets the approved quantity and recomputes the line total.
// Negative quantities are rejected; zero and over-request values are allowed.
func (i *Item) approve(qty int) error {
	if qty < 0 {
		return errs.NewInvalidQuantityError(i.sku, qty)
	}

	i.qtyApproved = &qty
	i.totalPrice = float64(qty) * i.unitPrice
	return nil
}
