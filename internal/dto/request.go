package dto

// RegisterRequest represents a tenant signup request
type RegisterRequest struct {
	Name     string `json:"name" binding:"required" example:"Acme Inc"`
	Email    string `json:"email" binding:"required,email" example:"owner@acme.dev"`
	Password string `json:"password" binding:"required,min=8" example:"correct-horse-battery"`
}

// LoginRequest represents a tenant login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"owner@acme.dev"`
	Password string `json:"password" binding:"required" example:"correct-horse-battery"`
}

// CreateProjectRequest represents a project creation request
type CreateProjectRequest struct {
	Name   string `json:"name" binding:"required" example:"Marketing Site"`
	Domain string `json:"domain" binding:"required" example:"acme.dev"`
}

// TrackEventRequest represents a raw event submitted by the tracking snippet
type TrackEventRequest struct {
	ProjectID    string                 `json:"project_id" binding:"required" example:"5f0c1a2e-9d1f-4f57-8f51-2d3ce1a1b9c0"`
	TrackingCode string                 `json:"tracking_code" binding:"required" example:"c7f2b7e4-11aa-4ac0-93ac-26e11f6f0f7d"`
	SessionID    string                 `json:"session_id" binding:"required" example:"sess_8d41"`
	EventType    string                 `json:"event_type" binding:"required" example:"pageview"`
	EventName    string                 `json:"event_name" example:"signup_click"`
	PageURL      string                 `json:"page_url" example:"/pricing"`
	PageTitle    string                 `json:"page_title" example:"Pricing"`
	Referrer     string                 `json:"referrer" example:"https://www.google.com/"`
	UserAgent    string                 `json:"user_agent" example:"Mozilla/5.0 ..."`
	Properties   map[string]interface{} `json:"properties" swaggertype:"object,string" example:"plan:pro"`
	ConsentGiven bool                   `json:"consent_given" example:"true"`
}

// NLQRequest represents a natural-language analytics question
type NLQRequest struct {
	ProjectID string `json:"project_id" binding:"required" example:"5f0c1a2e-9d1f-4f57-8f51-2d3ce1a1b9c0"`
	Question  string `json:"question" binding:"required" example:"Which pages grew the most this week?"`
	DateRange string `json:"date_range" example:"7d"`
}
