package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// RegistrationRequestState represents agency sign-up request states
type RegistrationRequestState string

const (
	RegistrationStatePending  RegistrationRequestState = "pending"
	RegistrationStateApproved RegistrationRequestState = "approved"
	RegistrationStateRejected RegistrationRequestState = "rejected"
)

// AgencyRegistrationRequest is a prospective agency's platform sign-up.
// The password is hashed at intake; approval provisions the user and
// agency records from the stored hash.
type AgencyRegistrationRequest struct {
	ID           uuid.UUID                `json:"id"`
	Name         string                   `json:"name"`
	Email        string                   `json:"email"`
	PasswordHash string                   `json:"-"`
	Description  null.String              `json:"description,omitempty"`
	LogoURL      null.String              `json:"logoUrl,omitempty"`
	Website      null.String              `json:"website,omitempty"`
	Address      null.String              `json:"address,omitempty"`
	City         null.String              `json:"city,omitempty"`
	Country      null.String              `json:"country,omitempty"`
	State        RegistrationRequestState `json:"state"`
	Motive       null.String              `json:"motive,omitempty"`
	SubmittedAt  time.Time                `json:"submittedAt"`
	RespondedAt  null.Time                `json:"respondedAt,omitempty"`
}

// AgencyRegistrationInput represents the sign-up form
type AgencyRegistrationInput struct {
	Name        string `json:"name" binding:"required,min=2,max=255"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Description string `json:"description,omitempty"`
	LogoURL     string `json:"logoUrl,omitempty"`
	Website     string `json:"website,omitempty"`
	Address     string `json:"address,omitempty"`
	City        string `json:"city,omitempty"`
	Country     string `json:"country,omitempty"`
}
