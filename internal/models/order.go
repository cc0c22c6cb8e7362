package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the fulfillment status of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// PaymentStatus represents the payment state recorded on an order
type PaymentStatus string

const (
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Order represents a submitted lead order in the records store.
// Orders are insert-only; nothing in this code path mutates or deletes them.
type Order struct {
	ID              string        `json:"id" db:"id" validate:"required"`
	UserID          *string       `json:"user_id,omitempty" db:"user_id"`
	OrderType       string        `json:"order_type" db:"order_type"`
	LeadQuantity    int           `json:"lead_quantity" db:"lead_quantity"`
	TotalAmount     float64       `json:"total_amount" db:"total_amount" validate:"required,gt=0"`
	PaymentStatus   PaymentStatus `json:"payment_status" db:"payment_status"`
	PaymentIntentID string        `json:"payment_intent_id" db:"payment_intent_id" validate:"required"`

	CustomerEmail string  `json:"customer_email" db:"customer_email"`
	CustomerName  string  `json:"customer_name" db:"customer_name"`
	CustomerPhone *string `json:"customer_phone,omitempty" db:"customer_phone"`

	// Business information, populated only for agency purchases
	BusinessName    *string `json:"business_name,omitempty" db:"business_name"`
	BusinessAddress *string `json:"business_address,omitempty" db:"business_address"`
	BusinessCity    *string `json:"business_city,omitempty" db:"business_city"`
	BusinessState   *string `json:"business_state,omitempty" db:"business_state"`
	BusinessZip     *string `json:"business_zip,omitempty" db:"business_zip"`

	SelectedStates     []string `json:"selected_states" db:"selected_states"`
	SelectedCarriers   []string `json:"selected_carriers" db:"selected_carriers"`
	AdditionalCarriers *string  `json:"additional_carriers,omitempty" db:"additional_carriers"`
	APIKey             *string  `json:"api_key,omitempty" db:"api_key"`
	TargetLocationID   *string  `json:"target_location_id,omitempty" db:"target_location_id"`

	Status    OrderStatus `json:"status" db:"status"`
	Notes     string      `json:"notes" db:"notes"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" db:"updated_at"`
}

// NewOrder creates a new pending order with a generated identifier
func NewOrder(idPrefix, paymentIntentID string, totalAmount float64) *Order {
	now := time.Now().UTC()
	return &Order{
		ID:              NewOrderID(idPrefix),
		TotalAmount:     totalAmount,
		PaymentStatus:   PaymentStatusPaid,
		PaymentIntentID: paymentIntentID,
		Status:          OrderStatusPending,
		Notes:           fmt.Sprintf("Order placed via web form. Payment Intent: %s", paymentIntentID),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// NewOrderID generates an order identifier of the form
// <prefix>-<unix-ms>-<9-char suffix>. Identifiers are not deduplicated:
// concurrent submissions for the same payment intent produce distinct orders.
func NewOrderID(prefix string) string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:9]
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), suffix)
}

// Validate validates the order data
func (o *Order) Validate() error {
	if o.ID == "" {
		return fmt.Errorf("order ID is required")
	}
	if o.PaymentIntentID == "" {
		return fmt.Errorf("payment intent ID is required")
	}
	if o.TotalAmount <= 0 {
		return fmt.Errorf("total amount must be positive")
	}
	return nil
}
