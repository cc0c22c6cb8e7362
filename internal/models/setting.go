package models

import "time"

// SettingKeyPrivateToken is the logical name under which the GHL private
// integration token is stored.
const SettingKeyPrivateToken = "ghl_private_integration_token"

// AdminSetting represents a keyed configuration row owned by administrators,
// such as the stored private integration token.
type AdminSetting struct {
	Key       string    `json:"key" db:"key" validate:"required"`
	PITToken  string    `json:"pit_token" db:"pit_token"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
