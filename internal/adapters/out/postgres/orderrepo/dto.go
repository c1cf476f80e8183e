// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items are stored as a JSONB document since they are an immutable
// snapshot and never queried individually. Timestamps come from the domain,
// so GORM's automatic time tracking is disabled.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID    string     `gorm:"index"`
	RestaurantID  string     `gorm:"index"`
	RiderID       *string    `gorm:"index"`
	Items         []ItemDTO  `gorm:"serializer:json;type:jsonb"`
	Address       AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	TotalAmount   *float64
	PaymentMethod string
	Status        string `gorm:"index"`
	TrackingLink  *string
	CreatedAt     time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one line item inside the order's JSONB items column.
type ItemDTO struct {
	ItemID    string  `json:"item_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// AddressDTO represents the embedded delivery destination within the order table.
type AddressDTO struct {
	Latitude  float64
	Longitude float64
	Text      string
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ItemID:    item.ItemID(),
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
		})
	}

	address := aggregate.DeliveryAddress()
	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerID:   aggregate.CustomerID(),
		RestaurantID: aggregate.RestaurantID(),
		RiderID:      aggregate.Rider(),
		Items:        items,
		Address: AddressDTO{
			Latitude:  address.Point().Latitude(),
			Longitude: address.Point().Longitude(),
			Text:      address.Text(),
		},
		TotalAmount:   aggregate.TotalAmount(),
		PaymentMethod: aggregate.PaymentMethod().String(),
		Status:        aggregate.Status().String(),
		TrackingLink:  aggregate.TrackingLink(),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status, rider assignment,
// and tracking link using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.ItemID, itemDTO.Name, itemDTO.Quantity, itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	point, err := kernel.NewGeoPoint(dto.Address.Latitude, dto.Address.Longitude)
	if err != nil {
		return nil, err
	}
	address, err := order.NewDeliveryAddress(point, dto.Address.Text)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.CustomerID,
		dto.RestaurantID,
		items,
		address,
		dto.TotalAmount,
		order.PaymentMethod(dto.PaymentMethod),
		order.Status(dto.Status),
		dto.RiderID,
		dto.TrackingLink,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
