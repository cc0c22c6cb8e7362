package services

import (
	"context"
	"regexp"
	"testing"
)

func TestCreatePaymentIntentRejectsBelowMinimum(t *testing.T) {
	gateway := &fakeGateway{}
	svc := NewPaymentService(gateway, nil)

	_, err := svc.CreatePaymentIntent(context.Background(), &CreateIntentRequest{Amount: 49})
	if err == nil {
		t.Fatal("expected validation error for amount below minimum")
	}
	if gateway.calls != 0 {
		t.Errorf("gateway called %d times on invalid request, want 0", gateway.calls)
	}
}

func TestCreatePaymentIntentMinimumAmount(t *testing.T) {
	gateway := &fakeGateway{}
	svc := NewPaymentService(gateway, nil)

	intent, err := svc.CreatePaymentIntent(context.Background(), &CreateIntentRequest{Amount: 50})
	if err != nil {
		t.Fatalf("CreatePaymentIntent: %v", err)
	}
	if intent.ID != "pi_test_123" || intent.ClientSecret == "" {
		t.Errorf("intent = %+v", intent)
	}
	if gateway.lastReq.Amount != 50 {
		t.Errorf("amount = %d, want 50", gateway.lastReq.Amount)
	}
	if gateway.lastReq.Currency != "usd" {
		t.Errorf("currency = %q, want default usd", gateway.lastReq.Currency)
	}

	orderID := gateway.lastReq.Metadata["orderId"]
	if !regexp.MustCompile(`^order_\d+$`).MatchString(orderID) {
		t.Errorf("metadata orderId = %q, want order_<digits>", orderID)
	}
}

func TestCreatePaymentIntentCarriesOrderMetadata(t *testing.T) {
	gateway := &fakeGateway{}
	svc := NewPaymentService(gateway, nil)

	_, err := svc.CreatePaymentIntent(context.Background(), &CreateIntentRequest{
		Amount:   5000,
		Currency: "eur",
		OrderData: OrderData{
			CustomerEmail: "buyer@example.com",
			LeadQuantity:  25,
			OrderType:     "exclusive",
			OrderRef:      "ref-42",
		},
	})
	if err != nil {
		t.Fatalf("CreatePaymentIntent: %v", err)
	}

	md := gateway.lastReq.Metadata
	if md["customerEmail"] != "buyer@example.com" {
		t.Errorf("customerEmail = %q", md["customerEmail"])
	}
	if md["leadQuantity"] != "25" {
		t.Errorf("leadQuantity = %q", md["leadQuantity"])
	}
	if md["orderType"] != "exclusive" {
		t.Errorf("orderType = %q", md["orderType"])
	}
	if gateway.lastReq.Currency != "eur" {
		t.Errorf("currency = %q, want eur", gateway.lastReq.Currency)
	}
	if gateway.lastReq.IdempotencyKey != "intent-ref-42" {
		t.Errorf("idempotency key = %q, want intent-ref-42", gateway.lastReq.IdempotencyKey)
	}
}

func TestCreatePaymentIntentNoIdempotencyKeyWithoutRef(t *testing.T) {
	gateway := &fakeGateway{}
	svc := NewPaymentService(gateway, nil)

	if _, err := svc.CreatePaymentIntent(context.Background(), &CreateIntentRequest{Amount: 100}); err != nil {
		t.Fatalf("CreatePaymentIntent: %v", err)
	}
	if gateway.lastReq.IdempotencyKey != "" {
		t.Errorf("idempotency key = %q, want empty", gateway.lastReq.IdempotencyKey)
	}
}
