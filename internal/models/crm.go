package models

// Location is the normalized shape of a CRM sub-account. Upstream returns
// locations with uneven field sets; NormalizeLocation fills the gaps.
type Location struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	BusinessName string `json:"businessName,omitempty"`
	Address      string `json:"address,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	Country      string `json:"country,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	Website      string `json:"website,omitempty"`
}

// NormalizeLocation ensures a location carries a display name, falling back
// to the business name and then a fixed placeholder.
func NormalizeLocation(loc Location) Location {
	if loc.Name == "" {
		if loc.BusinessName != "" {
			loc.Name = loc.BusinessName
		} else {
			loc.Name = "Unnamed Location"
		}
	}
	return loc
}

// Tag is a CRM contact tag
type Tag struct {
	ID         string `json:"id,omitempty"`
	Name       string `json:"name"`
	LocationID string `json:"locationId,omitempty"`
}

// CustomField is a CRM custom field definition
type CustomField struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	FieldKey  string `json:"fieldKey,omitempty"`
	DataType  string `json:"dataType,omitempty"`
	Model     string `json:"model,omitempty"`
	ParentID  string `json:"parentId,omitempty"`
	Placehold string `json:"placeholder,omitempty"`
}

// Pipeline is a CRM opportunity pipeline
type Pipeline struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Stages []PipelineStage `json:"stages,omitempty"`
}

// PipelineStage is a stage within an opportunity pipeline
type PipelineStage struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
