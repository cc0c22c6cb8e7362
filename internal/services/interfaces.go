package services

import (
	"context"

	"leadportal-api/internal/models"
	"leadportal-api/internal/payments"
)

// CRMService proxies and normalizes calls to the upstream CRM API
type CRMService interface {
	// GetLocations lists the locations visible to the supplied token,
	// normalized to a uniform shape
	GetLocations(ctx context.Context, req *GetLocationsRequest) (*LocationsResult, error)

	// ValidateLocation checks a location id against the CRM using the
	// stored private integration token. An upstream 404 is a negative
	// validation result, not a failure.
	ValidateLocation(ctx context.Context, req *ValidateLocationRequest) (*ValidateLocationResult, error)

	// GetTags lists the tags of a location
	GetTags(ctx context.Context, req *TokenLocationRequest) (*TagsResult, error)

	// CreateTag creates a tag in a location
	CreateTag(ctx context.Context, req *CreateTagRequest) (*models.Tag, error)

	// GetCustomFields lists the custom field definitions of a location
	GetCustomFields(ctx context.Context, req *TokenLocationRequest) (*CustomFieldsResult, error)

	// GetPipelines lists the opportunity pipelines of a location
	GetPipelines(ctx context.Context, req *TokenLocationRequest) (*PipelinesResult, error)

	// CheckTokenScopes probes the users and location endpoints and reports
	// both statuses without failing on either
	CheckTokenScopes(ctx context.Context, req *TokenLocationRequest) (*ScopeCheckResult, error)

	// TestContacts, TestOpportunities, and TestTags verify that the token
	// can reach the respective API and report how many records came back
	TestContacts(ctx context.Context, req *TokenLocationRequest) (*ProbeResult, error)
	TestOpportunities(ctx context.Context, req *TokenLocationRequest) (*ProbeResult, error)
	TestTags(ctx context.Context, req *TokenLocationRequest) (*ProbeResult, error)
}

// PaymentService creates payment intents for lead orders
type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, req *CreateIntentRequest) (*payments.Intent, error)
}

// OrderService persists submitted orders
type OrderService interface {
	SubmitOrder(ctx context.Context, req *SubmitOrderRequest) (*models.Order, error)
}

// AdminService performs admin-gated operations against the records store
type AdminService interface {
	// RequireAdmin verifies that the given user holds the administrative
	// role; ErrUnauthorized otherwise, including for unknown ids
	RequireAdmin(ctx context.Context, adminID string) error

	// LookupUserForImpersonation returns the target user plus a short-lived
	// signed impersonation token, after verifying the acting admin
	LookupUserForImpersonation(ctx context.Context, req *ImpersonationLookupRequest) (*ImpersonationResult, error)
}

// ServiceContainer bundles all services for dependency injection
type ServiceContainer struct {
	CRMService     CRMService
	PaymentService PaymentService
	OrderService   OrderService
	AdminService   AdminService
}
