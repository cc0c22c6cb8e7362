package payments

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// IntentRequest describes a payment intent to create. Amount is in minor
// units (cents).
type IntentRequest struct {
	Amount         int64
	Currency       string
	Metadata       map[string]string
	IdempotencyKey string
}

// Intent is the subset of the created payment intent the caller needs to
// complete payment client-side.
type Intent struct {
	ID           string `json:"paymentIntentId"`
	ClientSecret string `json:"clientSecret"`
}

// IntentCreator creates payment intents at the payment processor
type IntentCreator interface {
	CreateIntent(ctx context.Context, req *IntentRequest) (*Intent, error)
}

// StripeGateway creates payment intents through the Stripe API
type StripeGateway struct {
	api    *client.API
	logger *logrus.Logger
}

// NewStripeGateway creates a gateway authenticated with the given secret key
func NewStripeGateway(secretKey string, logger *logrus.Logger) *StripeGateway {
	if logger == nil {
		logger = logrus.New()
	}
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{
		api:    api,
		logger: logger,
	}
}

// CreateIntent creates a payment intent with automatic payment method
// negotiation enabled. When the request carries an idempotency key, repeated
// calls with the same key return the same intent; without one, repeated
// calls create duplicate intents.
func (g *StripeGateway) CreateIntent(ctx context.Context, req *IntentRequest) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(req.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	for key, value := range req.Metadata {
		params.AddMetadata(key, value)
	}
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		g.logger.WithError(err).WithFields(logrus.Fields{
			"amount":   req.Amount,
			"currency": req.Currency,
		}).Error("Failed to create payment intent")
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	g.logger.WithFields(logrus.Fields{
		"payment_intent_id": intent.ID,
		"amount":            req.Amount,
		"currency":          req.Currency,
	}).Info("Payment intent created")

	return &Intent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}
