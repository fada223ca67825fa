package models

import (
	"fmt"
	"time"
)

// Type classifies an opportunity. Mirrors the type enum in PostgreSQL.
type Type string

const (
	TypeAttachment Type = "attachment"
	TypeInternship Type = "internship"
	TypeJob        Type = "job"
)

// Status mirrors the status enum in PostgreSQL. Transitions away from
// active happen out of band; this codebase only ever reads active rows.
type Status string

const (
	StatusActive  Status = "active"
	StatusExpired Status = "expired"
	StatusFilled  Status = "filled"
)

// ParseType converts a raw string to a Type, returning an error for
// unknown values.
func ParseType(s string) (Type, error) {
	t := Type(s)
	switch t {
	case TypeAttachment, TypeInternship, TypeJob:
		return t, nil
	}
	return "", fmt.Errorf("unknown opportunity type %q", s)
}

// ParseStatus converts a raw string to a Status, returning an error for
// unknown values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusActive, StatusExpired, StatusFilled:
		return st, nil
	}
	return "", fmt.Errorf("unknown opportunity status %q", s)
}

type Opportunity struct {
	ID                  uint64     `json:"id,omitempty"`
	Title               string     `json:"title"`
	Company             string     `json:"company"`
	Type                Type       `json:"type"`
	Description         string     `json:"description,omitempty"`
	Requirements        string     `json:"requirements,omitempty"`
	Location            string     `json:"location,omitempty"`
	SalaryRange         string     `json:"salary_range,omitempty" db:"salary_range"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty" db:"application_deadline"`
	SourceURL           string     `json:"source_url" db:"source_url"`
	SourcePlatform      string     `json:"source_platform,omitempty" db:"source_platform"`
	Status              Status     `json:"status"`
	ScrapedAt           time.Time  `json:"scraped_at" db:"scraped_at"`
	CreatedAt           time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at" db:"updated_at"`
	ExperienceRequired  string     `json:"experience_required,omitempty" db:"experience_required"`
	EducationLevel      string     `json:"education_level,omitempty" db:"education_level"`
	IsRemote            bool       `json:"is_remote" db:"is_remote"`
	Industry            string     `json:"industry,omitempty"`
}

const expiringSoonWindow = 7 * 24 * time.Hour

// ExpiringSoonAt reports whether the application deadline falls within
// seven days of now. Opportunities without a deadline never expire soon.
func (o Opportunity) ExpiringSoonAt(now time.Time) bool {
	if o.ApplicationDeadline == nil {
		return false
	}
	return o.ApplicationDeadline.Sub(now) < expiringSoonWindow
}

// IsExpiringSoon is the template-facing wrapper over ExpiringSoonAt.
func (o Opportunity) IsExpiringSoon() bool {
	return o.ExpiringSoonAt(time.Now())
}

// TypeLabel is the human-readable category name shown on a card.
func (o Opportunity) TypeLabel() string {
	switch o.Type {
	case TypeAttachment:
		return "Attachment"
	case TypeInternship:
		return "Internship"
	default:
		return "Full-Time Job"
	}
}

// UserSavedOpportunity joins a user and an opportunity they bookmarked.
// Declared for the saved-listings feature; nothing reads or writes it yet.
type UserSavedOpportunity struct {
	UserID        uint64    `json:"user_id" db:"user_id"`
	OpportunityID uint64    `json:"opportunity_id" db:"opportunity_id"`
	SavedAt       time.Time `json:"saved_at" db:"saved_at"`
	Notes         string    `json:"notes,omitempty"`
}

// NotificationPreferences holds per-user alert settings. Declared for the
// notifications feature; nothing reads or writes it yet.
type NotificationPreferences struct {
	UserID                uint64    `json:"user_id" db:"user_id"`
	NotifyAttachments     bool      `json:"notify_attachments" db:"notify_attachments"`
	NotifyInternships     bool      `json:"notify_internships" db:"notify_internships"`
	NotifyJobs            bool      `json:"notify_jobs" db:"notify_jobs"`
	PreferredLocations    []string  `json:"preferred_locations" db:"preferred_locations"`
	PreferredIndustries   []string  `json:"preferred_industries,omitempty" db:"preferred_industries"`
	NotificationFrequency string    `json:"notification_frequency" db:"notification_frequency"`
	FCMToken              string    `json:"fcm_token,omitempty" db:"fcm_token"`
	CreatedAt             time.Time `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time `json:"updated_at" db:"updated_at"`
}
