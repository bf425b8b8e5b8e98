package models

import (
	"time"
)

// IdentifierKind is the classification of a login identifier
type IdentifierKind string

const (
	IdentifierUnknown IdentifierKind = "unknown"
	IdentifierEmail   IdentifierKind = "email"
	IdentifierPhone   IdentifierKind = "phone"
)

// Identifier is a user supplied credential string and its derived form
type Identifier struct {
	RawValue        string         `json:"raw_value"`
	Kind            IdentifierKind `json:"kind"`
	NormalizedValue string         `json:"normalized_value"`
}

// Country is immutable dial code reference data
type Country struct {
	Code        string `json:"code"` // ISO-3166 alpha-2
	DialCode    string `json:"dial_code"`
	DisplayName string `json:"display_name"`
	Flag        string `json:"flag"`
}

// OTPPurpose selects the backend endpoints used for an OTP exchange
type OTPPurpose string

const (
	PurposeLogin        OTPPurpose = "login"
	PurposeRegistration OTPPurpose = "registration"
)

// OTPStage is the state of a verification session
type OTPStage string

const (
	StageIdle      OTPStage = "idle"
	StageSending   OTPStage = "sending"
	StageSent      OTPStage = "sent"
	StageVerifying OTPStage = "verifying"
	StageVerified  OTPStage = "verified"
)

// VerifyOutcomeKind discriminates what a successful OTP verification means
type VerifyOutcomeKind string

const (
	// OutcomeFullyAuthenticated means the backend returned a token and profile
	OutcomeFullyAuthenticated VerifyOutcomeKind = "fully_authenticated"
	// OutcomeAwaitingPassword means the phone is proven and login needs a password
	OutcomeAwaitingPassword VerifyOutcomeKind = "awaiting_password"
	// OutcomeAwaitingRegistration means the phone is proven for a new account
	OutcomeAwaitingRegistration VerifyOutcomeKind = "awaiting_registration"
)

// VerifyOutcome is the tagged result of a successful verification
type VerifyOutcome struct {
	Kind    VerifyOutcomeKind `json:"kind"`
	Phone   string            `json:"phone"`
	Message string            `json:"message,omitempty"`
	Session *AuthSession      `json:"session,omitempty"`
}

// VerificationSnapshot is a read-only view of an OTP flow
type VerificationSnapshot struct {
	SessionID                string     `json:"session_id"`
	Identifier               Identifier `json:"identifier"`
	Purpose                  OTPPurpose `json:"purpose"`
	Stage                    OTPStage   `json:"stage"`
	OTPValue                 string     `json:"otp_value"`
	CooldownSecondsRemaining int        `json:"cooldown_seconds_remaining"`
	SentAt                   time.Time  `json:"sent_at,omitempty"`
}

// OTPResult is what the gateway reports for a verify call
type OTPResult struct {
	Message string
	Groomer *Groomer
	Token   string
}

// HasCredentials reports whether the backend returned a full login
func (r *OTPResult) HasCredentials() bool {
	return r != nil && r.Groomer != nil && r.Token != ""
}
