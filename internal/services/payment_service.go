package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"leadportal-api/internal/payments"
)

// OrderData carries the descriptive fields attached to a payment intent
type OrderData struct {
	CustomerEmail string `json:"customerEmail"`
	LeadQuantity  int    `json:"leadQuantity"`
	OrderType     string `json:"orderType"`
	OrderRef      string `json:"orderRef"`
}

// CreateIntentRequest asks for a new payment intent. Amount is in the
// smallest currency unit and must cover the processor minimum.
type CreateIntentRequest struct {
	Amount    int64     `json:"amount" validate:"required,gte=50"`
	Currency  string    `json:"currency"`
	OrderData OrderData `json:"orderData"`
}

// paymentService implements the PaymentService interface
type paymentService struct {
	gateway   payments.IntentCreator
	validator *validator.Validate
	logger    *logrus.Logger
}

// NewPaymentService creates a new payment service instance
func NewPaymentService(gateway payments.IntentCreator, logger *logrus.Logger) PaymentService {
	if logger == nil {
		logger = logrus.New()
	}
	return &paymentService{
		gateway:   gateway,
		validator: validator.New(),
		logger:    logger,
	}
}

// CreatePaymentIntent creates a payment intent carrying the order metadata
func (s *paymentService) CreatePaymentIntent(ctx context.Context, req *CreateIntentRequest) (*payments.Intent, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	currency := req.Currency
	if currency == "" {
		currency = "usd"
	}

	metadata := map[string]string{
		"orderId": fmt.Sprintf("order_%d", time.Now().UnixMilli()),
	}
	if req.OrderData.CustomerEmail != "" {
		metadata["customerEmail"] = req.OrderData.CustomerEmail
	}
	if req.OrderData.LeadQuantity > 0 {
		metadata["leadQuantity"] = strconv.Itoa(req.OrderData.LeadQuantity)
	}
	if req.OrderData.OrderType != "" {
		metadata["orderType"] = req.OrderData.OrderType
	}

	intentReq := &payments.IntentRequest{
		Amount:   req.Amount,
		Currency: currency,
		Metadata: metadata,
	}
	// A caller-supplied order reference makes retried requests safe to
	// replay at the processor.
	if req.OrderData.OrderRef != "" {
		intentReq.IdempotencyKey = "intent-" + req.OrderData.OrderRef
	}

	intent, err := s.gateway.CreateIntent(ctx, intentReq)
	if err != nil {
		s.logger.WithError(err).WithField("amount", req.Amount).Error("Failed to create payment intent")
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"payment_intent_id": intent.ID,
		"amount":            req.Amount,
		"currency":          currency,
	}).Info("Payment intent created")
	return intent, nil
}
