package models

// AuthSession is the durable authentication state of the app
type AuthSession struct {
	Groomer *Groomer `json:"groomer"`
	Token   string   `json:"token"`
}

// IsAuthenticated holds iff both the profile and the token are present
func (s AuthSession) IsAuthenticated() bool {
	return s.Groomer != nil && s.Token != ""
}

// AuthState is the coarse session store state
type AuthState string

const (
	StateLoggedOut   AuthState = "logged_out"
	StateLoggingIn   AuthState = "logging_in"
	StateRegistering AuthState = "registering"
	StateLoggedIn    AuthState = "logged_in"
)

// LoginRequest is sent to /auth/groomer/login; exactly one of Email and Phone is set
type LoginRequest struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
}

// PhoneRequest is the body of the send-OTP and check-account calls
type PhoneRequest struct {
	Phone string `json:"phone"`
}

// VerifyRequest represents a request to verify an OTP
type VerifyRequest struct {
	Phone string `json:"phone"`
	OTP   string `json:"otp"`
}

// CheckIdentifierRequest is the body of the progressive login pre-check
type CheckIdentifierRequest struct {
	Identifier string         `json:"identifier"`
	Type       IdentifierKind `json:"type"`
}

// AuthResponse is the backend envelope for auth endpoints
type AuthResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Token   string   `json:"token,omitempty"`
	Groomer *Groomer `json:"groomer,omitempty"`
}

// AckResponse is the envelope of endpoints that only acknowledge a
// request. A body without "success" counts as accepted.
type AckResponse struct {
	Success *bool  `json:"success,omitempty"`
	Message string `json:"message,omitempty"`
}

// Rejected reports an explicit "success": false
func (r AckResponse) Rejected() bool {
	return r.Success != nil && !*r.Success
}

// ExistsResponse is returned by the identifier/account pre-checks
type ExistsResponse struct {
	AckResponse
	Exists bool `json:"exists"`
}
