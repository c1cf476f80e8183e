package queries

import (
	"database/sql"
	"encoding/json"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// ItemResponse is one order line item as returned by order queries.
type ItemResponse struct {
	ItemID    string  `json:"item_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// OrderResponse is the full order projection shared by all order queries.
type OrderResponse struct {
	ID               kernel.UUID    `json:"id"`
	CustomerID       string         `json:"customer_id"`
	RestaurantID     string         `json:"restaurant_id"`
	RiderID          *string        `json:"rider_id"`
	Items            []ItemResponse `json:"items"`
	AddressLatitude  float64        `json:"address_latitude"`
	AddressLongitude float64        `json:"address_longitude"`
	AddressText      string         `json:"address_text"`
	TotalAmount      *float64       `json:"total_amount"`
	PaymentMethod    string         `json:"payment_method"`
	Status           order.Status   `json:"status"`
	TrackingLink     *string        `json:"live_tracking_link"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// orderColumns is the select list scanOrderRows expects, in order.
const orderColumns = `
	id,
	customer_id,
	restaurant_id,
	rider_id,
	items,
	address_latitude,
	address_longitude,
	address_text,
	total_amount,
	payment_method,
	status,
	tracking_link,
	created_at,
	updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderRow(row rowScanner) (OrderResponse, error) {
	var resp OrderResponse
	var id uuid.UUID
	var riderID sql.NullString
	var itemsRaw []byte
	var totalAmount sql.NullFloat64
	var trackingLink sql.NullString
	var status string

	if err := row.Scan(
		&id,
		&resp.CustomerID,
		&resp.RestaurantID,
		&riderID,
		&itemsRaw,
		&resp.AddressLatitude,
		&resp.AddressLongitude,
		&resp.AddressText,
		&totalAmount,
		&resp.PaymentMethod,
		&status,
		&trackingLink,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	); err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.ID = orderID
	resp.Status = order.Status(status)

	if riderID.Valid {
		resp.RiderID = &riderID.String
	}
	if totalAmount.Valid {
		resp.TotalAmount = &totalAmount.Float64
	}
	if trackingLink.Valid {
		resp.TrackingLink = &trackingLink.String
	}
	if len(itemsRaw) > 0 {
		if err = json.Unmarshal(itemsRaw, &resp.Items); err != nil {
			return OrderResponse{}, err
		}
	}

	return resp, nil
}

func scanOrderRows(rows *sql.Rows) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, err := scanOrderRow(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}
