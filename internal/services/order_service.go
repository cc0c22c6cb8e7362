package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"leadportal-api/internal/models"
	"leadportal-api/internal/repositories"
)

// SubmitOrderRequest carries the web form payload for a completed purchase.
// Field names mirror the form exactly; individual_* and agency_* sections
// are mutually optional depending on the order type.
type SubmitOrderRequest struct {
	PaymentIntentID string  `json:"paymentIntentId" validate:"required"`
	TotalAmount     float64 `json:"totalAmount" validate:"required,gt=0"`
	OrderType       string  `json:"orderType"`
	LeadQuantity    int     `json:"leadQuantity"`
	UserID          string  `json:"userId"`

	Email string `json:"email"`
	Phone string `json:"phone"`

	IndividualFirstName string `json:"individual_firstName"`
	IndividualLastName  string `json:"individual_lastName"`

	AgencyContactName   string `json:"agency_contactName"`
	AgencyBusinessName  string `json:"agency_businessName"`
	AgencyAddress       string `json:"agency_address"`
	AgencyCity          string `json:"agency_city"`
	AgencyState         string `json:"agency_state"`
	AgencyZip           string `json:"agency_zip"`

	SelectedStates     []string `json:"selectedStates"`
	SelectedCarriers   []string `json:"selectedCarriers"`
	AdditionalCarriers string   `json:"additionalCarriers"`
	APIKey             string   `json:"apiKey"`
	TargetLocationID   string   `json:"targetLocationId"`
}

// orderService implements the OrderService interface
type orderService struct {
	orderRepo repositories.OrderRepository
	idPrefix  string
	validator *validator.Validate
	logger    *logrus.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(orderRepo repositories.OrderRepository, idPrefix string, logger *logrus.Logger) OrderService {
	if logger == nil {
		logger = logrus.New()
	}
	return &orderService{
		orderRepo: orderRepo,
		idPrefix:  idPrefix,
		validator: validator.New(),
		logger:    logger,
	}
}

// SubmitOrder records a paid order from the web form. Submissions are
// insert-only: resubmitting the same payment intent creates another order
// with a fresh identifier.
func (s *orderService) SubmitOrder(ctx context.Context, req *SubmitOrderRequest) (*models.Order, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	order := models.NewOrder(s.idPrefix, req.PaymentIntentID, req.TotalAmount)
	order.OrderType = req.OrderType
	order.LeadQuantity = req.LeadQuantity
	order.CustomerEmail = req.Email
	order.CustomerName = customerName(req)
	order.SelectedStates = req.SelectedStates
	order.SelectedCarriers = req.SelectedCarriers

	if req.UserID != "" {
		order.UserID = &req.UserID
	}
	if req.Phone != "" {
		order.CustomerPhone = &req.Phone
	}
	if req.AgencyBusinessName != "" {
		order.BusinessName = &req.AgencyBusinessName
	}
	if req.AgencyAddress != "" {
		order.BusinessAddress = &req.AgencyAddress
	}
	if req.AgencyCity != "" {
		order.BusinessCity = &req.AgencyCity
	}
	if req.AgencyState != "" {
		order.BusinessState = &req.AgencyState
	}
	if req.AgencyZip != "" {
		order.BusinessZip = &req.AgencyZip
	}
	if req.AdditionalCarriers != "" {
		order.AdditionalCarriers = &req.AdditionalCarriers
	}
	if req.APIKey != "" {
		order.APIKey = &req.APIKey
	}
	if req.TargetLocationID != "" {
		order.TargetLocationID = &req.TargetLocationID
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.WithError(err).WithField("payment_intent_id", req.PaymentIntentID).Error("Failed to persist order")
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"order_id":          order.ID,
		"payment_intent_id": order.PaymentIntentID,
		"order_type":        order.OrderType,
	}).Info("Order submitted")
	return order, nil
}

// customerName derives the display name from whichever form section was
// filled in: individual first+last, then agency contact, then empty
func customerName(req *SubmitOrderRequest) string {
	if name := strings.TrimSpace(req.IndividualFirstName + " " + req.IndividualLastName); name != "" {
		return name
	}
	return strings.TrimSpace(req.AgencyContactName)
}
