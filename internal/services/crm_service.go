package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"leadportal-api/internal/ghl"
	"leadportal-api/internal/models"
	"leadportal-api/internal/repositories"
)

// probeLimit caps how many records the token test endpoints request
const probeLimit = 5

// GetLocationsRequest asks for all locations visible to a token
type GetLocationsRequest struct {
	PrivateToken string `json:"privateToken" validate:"required"`
}

// TokenLocationRequest is the common token + location pair most CRM
// endpoints require
type TokenLocationRequest struct {
	PrivateToken string `json:"privateToken" validate:"required"`
	LocationID   string `json:"locationId" validate:"required"`
}

// CreateTagRequest asks for a tag to be created in a location
type CreateTagRequest struct {
	PrivateToken string `json:"privateToken" validate:"required"`
	LocationID   string `json:"locationId" validate:"required"`
	TagName      string `json:"tagName" validate:"required"`
}

// ValidateLocationRequest checks a location id using the stored token
type ValidateLocationRequest struct {
	LocationID string `json:"locationId" validate:"required"`
}

// LocationsResult carries normalized locations plus the raw upstream body
// for optional debug passthrough
type LocationsResult struct {
	Locations   []models.Location
	SourceCount int
	Recognized  bool
	Raw         json.RawMessage
}

// TagsResult carries the tags of a location
type TagsResult struct {
	Tags []models.Tag
	Raw  json.RawMessage
}

// CustomFieldsResult carries the custom field definitions of a location
type CustomFieldsResult struct {
	CustomFields []models.CustomField
	Raw          json.RawMessage
}

// PipelinesResult carries the opportunity pipelines of a location
type PipelinesResult struct {
	Pipelines []models.Pipeline
	Raw       json.RawMessage
}

// ScopeCheckResult reports the status of both token probes
type ScopeCheckResult struct {
	UserAPIStatus     int
	LocationAPIStatus int
	UserOK            bool
	LocationOK        bool
}

// ProbeResult reports a single API capability test
type ProbeResult struct {
	Count    int
	Endpoint string
	Scopes   []string
}

// ValidateLocationResult reports whether a location exists upstream
type ValidateLocationResult struct {
	Valid    bool
	Location *models.Location
	Message  string
}

// crmService implements the CRMService interface
type crmService struct {
	api         ghl.API
	settingRepo repositories.AdminSettingRepository
	validator   *validator.Validate
	logger      *logrus.Logger
}

// NewCRMService creates a new CRM service instance
func NewCRMService(api ghl.API, settingRepo repositories.AdminSettingRepository, logger *logrus.Logger) CRMService {
	if logger == nil {
		logger = logrus.New()
	}
	return &crmService{
		api:         api,
		settingRepo: settingRepo,
		validator:   validator.New(),
		logger:      logger,
	}
}

// GetLocations lists locations visible to the token, tolerating the
// upstream's inconsistent payload wrapping
func (s *crmService) GetLocations(ctx context.Context, req *GetLocationsRequest) (*LocationsResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	res, err := s.api.ListLocations(ctx, req.PrivateToken)
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return nil, res.Err()
	}

	items, recognized := ghl.ExtractCollection(res.Body, "locations")
	if !recognized {
		s.logger.WithField("body_length", len(res.Body)).Warn("Unexpected locations response structure")
	}

	locations := ghl.DecodeCollection[models.Location](items)
	for i := range locations {
		locations[i] = models.NormalizeLocation(locations[i])
	}

	return &LocationsResult{
		Locations:   locations,
		SourceCount: len(items),
		Recognized:  recognized,
		Raw:         res.Body,
	}, nil
}

// ValidateLocation checks a location id using the stored private token
func (s *crmService) ValidateLocation(ctx context.Context, req *ValidateLocationRequest) (*ValidateLocationResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	setting, err := s.settingRepo.Get(ctx, models.SettingKeyPrivateToken)
	if err != nil || setting.PITToken == "" {
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			s.logger.WithError(err).Error("Failed to load admin settings")
		}
		return nil, ErrTokenNotConfigured
	}

	res, err := s.api.GetLocation(ctx, setting.PITToken, req.LocationID)
	if err != nil {
		return nil, err
	}

	if res.StatusCode == http.StatusNotFound {
		s.logger.WithField("location_id", req.LocationID).Info("Location validation: not found upstream")
		return &ValidateLocationResult{
			Valid:   false,
			Message: "Location ID not found",
		}, nil
	}
	if !res.OK() {
		return nil, res.Err()
	}

	var location models.Location
	if err := json.Unmarshal(ghl.ExtractObject(res.Body, "location"), &location); err != nil {
		return nil, fmt.Errorf("failed to decode location: %w", err)
	}
	location = models.NormalizeLocation(location)

	return &ValidateLocationResult{
		Valid:    true,
		Location: &location,
	}, nil
}

// GetTags lists the tags of a location
func (s *crmService) GetTags(ctx context.Context, req *TokenLocationRequest) (*TagsResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	res, err := s.api.ListTags(ctx, req.PrivateToken, req.LocationID)
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return nil, res.Err()
	}

	items, recognized := ghl.ExtractCollection(res.Body, "tags")
	if !recognized {
		s.logger.WithField("location_id", req.LocationID).Warn("Unexpected tags response structure")
	}

	return &TagsResult{
		Tags: ghl.DecodeCollection[models.Tag](items),
		Raw:  res.Body,
	}, nil
}

// CreateTag creates a tag in a location
func (s *crmService) CreateTag(ctx context.Context, req *CreateTagRequest) (*models.Tag, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	res, err := s.api.CreateTag(ctx, req.PrivateToken, req.LocationID, req.TagName)
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return nil, res.Err()
	}

	var tag models.Tag
	if err := json.Unmarshal(ghl.ExtractObject(res.Body, "tag"), &tag); err != nil {
		return nil, fmt.Errorf("failed to decode created tag: %w", err)
	}
	if tag.Name == "" {
		tag.Name = req.TagName
	}

	s.logger.WithFields(logrus.Fields{
		"location_id": req.LocationID,
		"tag_name":    req.TagName,
	}).Info("Tag created")
	return &tag, nil
}

// GetCustomFields lists the custom field definitions of a location
func (s *crmService) GetCustomFields(ctx context.Context, req *TokenLocationRequest) (*CustomFieldsResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	res, err := s.api.ListCustomFields(ctx, req.PrivateToken, req.LocationID)
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return nil, res.Err()
	}

	items, _ := ghl.ExtractCollection(res.Body, "customFields")
	return &CustomFieldsResult{
		CustomFields: ghl.DecodeCollection[models.CustomField](items),
		Raw:          res.Body,
	}, nil
}

// GetPipelines lists the opportunity pipelines of a location
func (s *crmService) GetPipelines(ctx context.Context, req *TokenLocationRequest) (*PipelinesResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	res, err := s.api.ListPipelines(ctx, req.PrivateToken, req.LocationID)
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return nil, res.Err()
	}

	items, _ := ghl.ExtractCollection(res.Body, "pipelines")
	return &PipelinesResult{
		Pipelines: ghl.DecodeCollection[models.Pipeline](items),
		Raw:       res.Body,
	}, nil
}

// CheckTokenScopes probes the users and location endpoints sequentially and
// reports both statuses; a non-2xx probe is a result, not a failure
func (s *crmService) CheckTokenScopes(ctx context.Context, req *TokenLocationRequest) (*ScopeCheckResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	userRes, err := s.api.ListUsers(ctx, req.PrivateToken)
	if err != nil {
		return nil, err
	}

	locationRes, err := s.api.GetLocation(ctx, req.PrivateToken, req.LocationID)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"user_api_status":     userRes.StatusCode,
		"location_api_status": locationRes.StatusCode,
		"location_id":         req.LocationID,
	}).Info("Token scope check completed")

	return &ScopeCheckResult{
		UserAPIStatus:     userRes.StatusCode,
		LocationAPIStatus: locationRes.StatusCode,
		UserOK:            userRes.OK(),
		LocationOK:        locationRes.OK(),
	}, nil
}

// TestContacts verifies the token can reach the contacts API
func (s *crmService) TestContacts(ctx context.Context, req *TokenLocationRequest) (*ProbeResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	res, err := s.api.SearchContacts(ctx, req.PrivateToken, req.LocationID, probeLimit)
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return nil, res.Err()
	}

	items, _ := ghl.ExtractCollection(res.Body, "contacts")
	return &ProbeResult{
		Count:    len(items),
		Endpoint: "/contacts/",
		Scopes:   []string{"View Contacts ✓", "Edit Contacts ✓"},
	}, nil
}

// TestOpportunities verifies the token can reach the opportunities API
func (s *crmService) TestOpportunities(ctx context.Context, req *TokenLocationRequest) (*ProbeResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	res, err := s.api.SearchOpportunities(ctx, req.PrivateToken, req.LocationID, probeLimit)
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return nil, res.Err()
	}

	items, _ := ghl.ExtractCollection(res.Body, "opportunities")
	return &ProbeResult{
		Count:    len(items),
		Endpoint: "/opportunities/search",
		Scopes:   []string{"View Opportunities ✓"},
	}, nil
}

// TestTags verifies the token can reach the tags API
func (s *crmService) TestTags(ctx context.Context, req *TokenLocationRequest) (*ProbeResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	res, err := s.api.ListTags(ctx, req.PrivateToken, req.LocationID)
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return nil, res.Err()
	}

	items, _ := ghl.ExtractCollection(res.Body, "tags")
	return &ProbeResult{
		Count:    len(items),
		Endpoint: "/locations/{locationId}/tags",
		Scopes:   []string{"View Tags ✓", "Edit Tags ✓"},
	}, nil
}
