package domain

import "time"

// Tenant represents an account that owns projects
type Tenant struct {
	ID           string
	Name         string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}

// PrivacySettings controls how events for a project are ingested
type PrivacySettings struct {
	AnonymizeIP    bool `json:"anonymize_ip"`
	RequireConsent bool `json:"require_consent"`
	RespectDNT     bool `json:"respect_dnt"`
}

// DefaultPrivacySettings returns the settings applied to new projects
func DefaultPrivacySettings() PrivacySettings {
	return PrivacySettings{
		AnonymizeIP:    true,
		RequireConsent: true,
		RespectDNT:     true,
	}
}

// Project represents a tracked website belonging to a tenant
type Project struct {
	ID              string
	TenantID        string
	Name            string
	Domain          string
	TrackingCode    string
	PrivacySettings PrivacySettings
	CreatedAt       time.Time
}
