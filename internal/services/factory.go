package services

import (
	"time"

	"github.com/sirupsen/logrus"

	"leadportal-api/internal/config"
	"leadportal-api/internal/ghl"
	"leadportal-api/internal/payments"
	"leadportal-api/internal/repositories"
)

// NewServiceContainer wires all services against the given repositories,
// CRM client, and payment gateway
func NewServiceContainer(cfg *config.Config, repos *repositories.RepositoryContainer, api ghl.API, gateway payments.IntentCreator, logger *logrus.Logger) *ServiceContainer {
	tokenTTL := time.Duration(cfg.JWT.ImpersonationTTLMinutes) * time.Minute
	return &ServiceContainer{
		CRMService:     NewCRMService(api, repos.AdminSettingRepo, logger),
		PaymentService: NewPaymentService(gateway, logger),
		OrderService:   NewOrderService(repos.OrderRepo, cfg.Orders.IDPrefix, logger),
		AdminService:   NewAdminService(repos.UserRepo, cfg.JWT.Secret, tokenTTL, logger),
	}
}
