package order

import (
	"errors"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when validating a zero-value Item.
var ErrItemIsNotConstructed = errs.NewValueIsRequiredError(
	"item must be created via NewItem constructor")

// Item is an immutable line item captured at order time. The unit price is
// a snapshot: later menu changes never affect an existing order.
//
// Example:
//
//	item, err := order.NewItem("i1", "Pizza", 2, 10)
//	if err != nil {
//	    // handle validation error
//	}
type Item struct { //nolint:recvcheck //using for validation
	itemID    string
	name      string
	quantity  int
	unitPrice float64
	guard     guard.ConstructorGuard
}

// NewItem creates a line item with validation: item id and name are
// required, quantity must be at least 1, and the unit price must not be
// negative (free items are allowed).
func NewItem(itemID, name string, quantity int, unitPrice float64) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setItemID(itemID),
		item.setName(name),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate checks that the Item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ItemID returns the catalog identifier of the item.
func (i Item) ItemID() string {
	return i.itemID
}

// Name returns the display name captured at order time.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the per-unit price captured at order time.
func (i Item) UnitPrice() float64 {
	return i.unitPrice
}

func (i *Item) setItemID(itemID string) error {
	if itemID == "" {
		return errs.NewValueIsRequiredError("item_id")
	}
	i.itemID = itemID
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidError("quantity")
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidError("price")
	}
	i.unitPrice = unitPrice
	return nil
}
