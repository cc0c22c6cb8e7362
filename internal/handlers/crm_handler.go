package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"leadportal-api/internal/services"
)

// CRMHandler handles CRM proxy HTTP requests
type CRMHandler struct {
	crmService    services.CRMService
	upstreamDebug bool
}

// NewCRMHandler creates a new CRM handler
func NewCRMHandler(crmService services.CRMService, upstreamDebug bool) *CRMHandler {
	return &CRMHandler{
		crmService:    crmService,
		upstreamDebug: upstreamDebug,
	}
}

// @Summary List CRM locations
// @Description List all locations visible to the supplied private integration token
// @Tags ghl
// @Accept json
// @Produce json
// @Param request body services.GetLocationsRequest true "Token"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /ghl/get-locations [post]
func (h *CRMHandler) GetLocations(c *gin.Context) {
	var req services.GetLocationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.crmService.GetLocations(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to fetch locations")
		return
	}

	body := gin.H{
		"success":   true,
		"locations": result.Locations,
		"count":     len(result.Locations),
		"message":   fmt.Sprintf("Found %d locations", len(result.Locations)),
	}
	if h.upstreamDebug {
		body["debug"] = gin.H{
			"rawResponse":    string(result.Raw),
			"sourceCount":    result.SourceCount,
			"processedCount": len(result.Locations),
			"recognized":     result.Recognized,
		}
	}
	c.JSON(http.StatusOK, body)
}

// @Summary Validate a location ID
// @Description Check a location ID against the CRM using the stored private integration token
// @Tags ghl
// @Accept json
// @Produce json
// @Param request body services.ValidateLocationRequest true "Location ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /ghl/validate-location [post]
func (h *CRMHandler) ValidateLocation(c *gin.Context) {
	var req services.ValidateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.crmService.ValidateLocation(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to validate location")
		return
	}

	if !result.Valid {
		// A missing location is a negative answer, not an HTTP failure
		c.JSON(http.StatusOK, gin.H{
			"success":    false,
			"valid":      false,
			"error":      result.Message,
			"locationId": req.LocationID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"valid":    true,
		"location": result.Location,
	})
}

// @Summary List location tags
// @Tags ghl
// @Accept json
// @Produce json
// @Param request body services.TokenLocationRequest true "Token and location"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /ghl/get-tags [post]
func (h *CRMHandler) GetTags(c *gin.Context) {
	var req services.TokenLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.crmService.GetTags(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to fetch tags")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"tags":    result.Tags,
		"count":   len(result.Tags),
		"message": fmt.Sprintf("Found %d tags", len(result.Tags)),
	})
}

// @Summary Create a tag
// @Tags ghl
// @Accept json
// @Produce json
// @Param request body services.CreateTagRequest true "Token, location, and tag name"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /ghl/create-tag [post]
func (h *CRMHandler) CreateTag(c *gin.Context) {
	var req services.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	tag, err := h.crmService.CreateTag(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create tag")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"tag":     tag,
		"message": "Tag created successfully",
	})
}

// @Summary List custom fields
// @Tags ghl
// @Accept json
// @Produce json
// @Param request body services.TokenLocationRequest true "Token and location"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /ghl/get-custom-fields [post]
func (h *CRMHandler) GetCustomFields(c *gin.Context) {
	var req services.TokenLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.crmService.GetCustomFields(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to fetch custom fields")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"customFields": result.CustomFields,
		"count":        len(result.CustomFields),
		"message":      fmt.Sprintf("Found %d custom fields", len(result.CustomFields)),
	})
}

// @Summary List opportunity pipelines
// @Tags ghl
// @Accept json
// @Produce json
// @Param request body services.TokenLocationRequest true "Token and location"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /ghl/get-pipelines [post]
func (h *CRMHandler) GetPipelines(c *gin.Context) {
	var req services.TokenLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.crmService.GetPipelines(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to fetch pipelines")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"pipelines": result.Pipelines,
		"count":     len(result.Pipelines),
		"message":   fmt.Sprintf("Found %d pipelines", len(result.Pipelines)),
	})
}

// @Summary Check token scopes
// @Description Probe the users and location endpoints and report both statuses
// @Tags ghl
// @Accept json
// @Produce json
// @Param request body services.TokenLocationRequest true "Token and location"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /ghl/check-token-scopes [post]
func (h *CRMHandler) CheckTokenScopes(c *gin.Context) {
	var req services.TokenLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.crmService.CheckTokenScopes(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to check token scopes")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"userApiStatus":     result.UserAPIStatus,
		"locationApiStatus": result.LocationAPIStatus,
		"userApiOk":         result.UserOK,
		"locationApiOk":     result.LocationOK,
		"message":           "Token scope check completed - see server logs for details",
	})
}

// @Summary Test contacts API access
// @Tags ghl
// @Accept json
// @Produce json
// @Param request body services.TokenLocationRequest true "Token and location"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /ghl/test-contacts [post]
func (h *CRMHandler) TestContacts(c *gin.Context) {
	var req services.TokenLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.crmService.TestContacts(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Contacts API test failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"contactCount": result.Count,
		"endpoint":     result.Endpoint,
		"scopes":       result.Scopes,
		"message":      fmt.Sprintf("✅ Contacts API Test Successful! Found %d contact(s) in the last 5 results.", result.Count),
	})
}

// @Summary Test opportunities API access
// @Tags ghl
// @Accept json
// @Produce json
// @Param request body services.TokenLocationRequest true "Token and location"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /ghl/test-opportunities [post]
func (h *CRMHandler) TestOpportunities(c *gin.Context) {
	var req services.TokenLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.crmService.TestOpportunities(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Opportunities API test failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"opportunityCount": result.Count,
		"endpoint":         result.Endpoint,
		"scopes":           result.Scopes,
		"message":          fmt.Sprintf("✅ Opportunities API Test Successful! Found %d opportunit(ies) in the last 5 results.", result.Count),
	})
}

// @Summary Test tags API access
// @Tags ghl
// @Accept json
// @Produce json
// @Param request body services.TokenLocationRequest true "Token and location"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /ghl/test-tags [post]
func (h *CRMHandler) TestTags(c *gin.Context) {
	var req services.TokenLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.crmService.TestTags(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Tags API test failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"tagCount": result.Count,
		"endpoint": result.Endpoint,
		"scopes":   result.Scopes,
		"message":  fmt.Sprintf("✅ Tags API Test Successful! Found %d tag(s) in this location.", result.Count),
	})
}
