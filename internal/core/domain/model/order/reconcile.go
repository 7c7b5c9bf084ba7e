package order

import (
	"replenish/internal/pkg/errs"
)

// ItemApproval is one caller-supplied approved quantity keyed by SKU.
type ItemApproval struct {
	SKU         string
	QtyApproved int
}

// QuantityChange describes the requested/approved delta for one item after
// reconciliation. It is returned to the caller for observability and carried
// on the notification event so the counterpart sees what changed.
//
// IsIncreased and IsDecreased are mutually exclusive; both are false when the
// approved quantity equals the requested one.
type QuantityChange struct {
	Requested   int
	Approved    int
	Change      int
	IsIncreased bool
	IsDecreased bool
}

// applyApprovals reconciles the supplied approved quantities against the
// order's items: each entry must match an existing item (ItemNotFound
// otherwise) and carry a non-negative quantity (InvalidQuantity otherwise).
// Line totals and order totals are recomputed. Called inside the same atomic
// unit as the status transition that triggered it.
func (o *Order) applyApprovals(approvals []ItemApproval) (map[string]QuantityChange, error) {
	if len(approvals) == 0 {
		return nil, errs.NewValueIsRequiredError("approvals")
	}

	changes := make(map[string]QuantityChange, len(approvals))
	for _, approval := range approvals {
		item := o.findItem(approval.SKU)
		if item == nil {
			return nil, errs.NewItemNotFoundError(approval.SKU)
		}

		if err := item.approve(approval.QtyApproved); err != nil {
			return nil, err
		}

		change := approval.QtyApproved - item.QtyRequested()
		changes[approval.SKU] = QuantityChange{
			Requested:   item.QtyRequested(),
			Approved:    approval.QtyApproved,
			Change:      change,
			IsIncreased: change > 0,
			IsDecreased: change < 0,
		}
	}

	o.recalcTotals()
	return changes, nil
}

func (o *Order) findItem(sku string) *Item {
	for _, item := range o.items {
		if item.SKU() == sku {
			return item
		}
	}
	return nil
}

// recalcTotals rederives totalItems and totalValue from the items' effective
// quantities and line totals.
func (o *Order) recalcTotals() {
	totalItems := 0
	totalValue := 0.0
	for _, item := range o.items {
		totalItems += item.effectiveQty()
		totalValue += item.TotalPrice()
	}
	o.totalItems = totalItems
	o.totalValue = totalValue
}
