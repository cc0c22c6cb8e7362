package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"leadportal-api/internal/models"
	"leadportal-api/internal/repositories"
)

// OrderRepository is the SQLite implementation of repositories.OrderRepository
type OrderRepository struct {
	db     *sql.DB
	logger *logrus.Logger
}

// NewOrderRepository creates a new SQLite order repository
func NewOrderRepository(db *sql.DB, logger *logrus.Logger) *OrderRepository {
	if logger == nil {
		logger = logrus.New()
	}
	return &OrderRepository{
		db:     db,
		logger: logger,
	}
}

const orderColumns = `id, user_id, order_type, lead_quantity, total_amount, payment_status,
	payment_intent_id, customer_email, customer_name, customer_phone,
	business_name, business_address, business_city, business_state, business_zip,
	selected_states, selected_carriers, additional_carriers, api_key, target_location_id,
	status, notes, created_at, updated_at`

// Create inserts a new order. There is deliberately no uniqueness check on
// payment_intent_id: submissions are not deduplicated.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	if err := order.Validate(); err != nil {
		return fmt.Errorf("order validation failed: %w", err)
	}

	states, err := json.Marshal(order.SelectedStates)
	if err != nil {
		return fmt.Errorf("failed to encode selected states: %w", err)
	}
	carriers, err := json.Marshal(order.SelectedCarriers)
	if err != nil {
		return fmt.Errorf("failed to encode selected carriers: %w", err)
	}

	query := `INSERT INTO orders (` + orderColumns + `) VALUES
		(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		order.ID, order.UserID, order.OrderType, order.LeadQuantity, order.TotalAmount,
		order.PaymentStatus, order.PaymentIntentID, order.CustomerEmail, order.CustomerName,
		order.CustomerPhone, order.BusinessName, order.BusinessAddress, order.BusinessCity,
		order.BusinessState, order.BusinessZip, string(states), string(carriers),
		order.AdditionalCarriers, order.APIKey, order.TargetLocationID,
		order.Status, order.Notes, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return repositories.NewRepositoryError("create", "order", order.ID, err)
	}

	r.logger.WithFields(logrus.Fields{
		"order_id":          order.ID,
		"payment_intent_id": order.PaymentIntentID,
		"total_amount":      order.TotalAmount,
	}).Info("Order created")
	return nil
}

// GetByID retrieves an order by ID
func (r *OrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	if id == "" {
		return nil, repositories.ErrInvalidID
	}

	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = ?`
	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, repositories.NewRepositoryError("get_by_id", "order", id, err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, repositories.ErrNotFound
	}
	return r.scanOrder(rows)
}

// ListByPaymentIntent retrieves all orders recorded against a payment intent
func (r *OrderRepository) ListByPaymentIntent(ctx context.Context, paymentIntentID string) ([]*models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE payment_intent_id = ? ORDER BY created_at DESC`
	return r.queryOrders(ctx, query, paymentIntentID)
}

// ListByUser retrieves all orders of a user, newest first
func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]*models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = ? ORDER BY created_at DESC`
	return r.queryOrders(ctx, query, userID)
}

func (r *OrderRepository) queryOrders(ctx context.Context, query string, args ...interface{}) ([]*models.Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, repositories.NewRepositoryError("list", "order", "", err)
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		order, err := r.scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *OrderRepository) scanOrder(rows *sql.Rows) (*models.Order, error) {
	var order models.Order
	var states, carriers string

	err := rows.Scan(
		&order.ID, &order.UserID, &order.OrderType, &order.LeadQuantity, &order.TotalAmount,
		&order.PaymentStatus, &order.PaymentIntentID, &order.CustomerEmail, &order.CustomerName,
		&order.CustomerPhone, &order.BusinessName, &order.BusinessAddress, &order.BusinessCity,
		&order.BusinessState, &order.BusinessZip, &states, &carriers,
		&order.AdditionalCarriers, &order.APIKey, &order.TargetLocationID,
		&order.Status, &order.Notes, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		return nil, repositories.NewRepositoryError("scan", "order", "", err)
	}

	if err := json.Unmarshal([]byte(states), &order.SelectedStates); err != nil {
		return nil, fmt.Errorf("failed to decode selected states: %w", err)
	}
	if err := json.Unmarshal([]byte(carriers), &order.SelectedCarriers); err != nil {
		return nil, fmt.Errorf("failed to decode selected carriers: %w", err)
	}

	return &order, nil
}
