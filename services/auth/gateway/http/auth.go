package gateway_http

import (
	"context"
	"net/http"

	httpclient "github.com/piresc/groomer/internal/pkg/http"
	"github.com/piresc/groomer/internal/pkg/logger"
	"github.com/piresc/groomer/internal/pkg/models"
)

const (
	pathLogin                 = "/auth/groomer/login"
	pathRegister              = "/auth/groomer/register"
	pathSendOTP               = "/auth/groomer/send-otp"
	pathVerifyOTP             = "/auth/groomer/verify-otp"
	pathSendRegistrationOTP   = "/auth/groomer/send-registration-otp"
	pathVerifyRegistrationOTP = "/auth/groomer/verify-registration-otp"
	pathCheckIdentifier       = "/auth/groomer/check-identifier"
	pathCheckAccount          = "/auth/groomer/check-account"
	pathLogout                = "/auth/groomer/logout"
)

// Messages shown when the backend does not supply one
const (
	MsgLoginFailed           = "Login failed"
	MsgRegistrationFailed    = "Registration failed"
	MsgSendOTPFailed         = "Failed to send OTP"
	MsgSendRegistrationOTP   = "Failed to send registration OTP"
	MsgVerifyOTPFailed       = "OTP verification failed"
	MsgInvalidOTP            = "Invalid OTP. Please try again."
	MsgCheckIdentifierFailed = "Failed to check identifier"
	MsgCheckAccountFailed    = "Failed to check account existence"
	MsgLogoutFailed          = "Logout failed"
	MsgOTPSent               = "OTP sent successfully"
	MsgRegistrationOTPSent   = "Registration OTP sent successfully"
)

// AuthHTTPGateway talks to the /auth/groomer endpoints
type AuthHTTPGateway struct {
	client *httpclient.Client
}

// NewAuthHTTPGateway creates a new auth gateway on top of the shared client
func NewAuthHTTPGateway(client *httpclient.Client) *AuthHTTPGateway {
	return &AuthHTTPGateway{client: client}
}

// Login exchanges credentials for a token and profile
func (g *AuthHTTPGateway) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthSession, error) {
	var resp models.AuthResponse
	if err := g.client.PostJSON(ctx, pathLogin, req, &resp); err != nil {
		return nil, httpclient.ToAuthError("login", MsgLoginFailed, err)
	}
	return sessionFrom("login", MsgLoginFailed, &resp)
}

// Register creates an account; the backend logs the groomer in directly
func (g *AuthHTTPGateway) Register(ctx context.Context, data *models.RegisterData) (*models.AuthSession, error) {
	var resp models.AuthResponse
	if err := g.client.PostJSON(ctx, pathRegister, data, &resp); err != nil {
		return nil, httpclient.ToAuthError("register", MsgRegistrationFailed, err)
	}
	return sessionFrom("register", MsgRegistrationFailed, &resp)
}

// SendOTP asks the backend to text a code to phone
func (g *AuthHTTPGateway) SendOTP(ctx context.Context, purpose models.OTPPurpose, phone string) (string, error) {
	path, fallback, sent := pathSendOTP, MsgSendOTPFailed, MsgOTPSent
	if purpose == models.PurposeRegistration {
		path, fallback, sent = pathSendRegistrationOTP, MsgSendRegistrationOTP, MsgRegistrationOTPSent
	}

	var resp models.AckResponse
	err := g.client.PostJSON(ctx, path, &models.PhoneRequest{Phone: phone}, &resp)
	if err == nil && resp.Rejected() {
		err = rejection("send_otp", fallback, resp.Message)
	}
	if err != nil {
		logger.WarnCtx(ctx, "Send OTP failed",
			logger.String("purpose", string(purpose)),
			logger.Phone("phone", phone),
			logger.Err(err))
		return "", httpclient.ToAuthError("send_otp", fallback, err)
	}

	logger.InfoCtx(ctx, "OTP sent",
		logger.String("purpose", string(purpose)),
		logger.Phone("phone", phone))

	if resp.Message != "" {
		return resp.Message, nil
	}
	return sent, nil
}

// VerifyOTP submits the code. A login verify may carry credentials; a
// registration verify never does.
func (g *AuthHTTPGateway) VerifyOTP(ctx context.Context, purpose models.OTPPurpose, phone, code string) (*models.OTPResult, error) {
	path := pathVerifyOTP
	if purpose == models.PurposeRegistration {
		path = pathVerifyRegistrationOTP
	}

	var resp models.AuthResponse
	if err := g.client.PostJSON(ctx, path, &models.VerifyRequest{Phone: phone, OTP: code}, &resp); err != nil {
		return nil, httpclient.ToAuthError("verify_otp", MsgVerifyOTPFailed, err)
	}
	if !resp.Success {
		return nil, rejection("verify_otp", MsgInvalidOTP, resp.Message)
	}

	result := &models.OTPResult{Message: resp.Message}
	if purpose == models.PurposeLogin {
		result.Groomer = resp.Groomer
		result.Token = resp.Token
	}
	return result, nil
}

// CheckIdentifier reports whether an account uses identifier. Backends
// without the endpoint answer 404, which counts as "exists".
func (g *AuthHTTPGateway) CheckIdentifier(ctx context.Context, identifier string, kind models.IdentifierKind) (bool, error) {
	var resp models.ExistsResponse
	req := &models.CheckIdentifierRequest{Identifier: identifier, Type: kind}
	if err := g.client.PostJSON(ctx, pathCheckIdentifier, req, &resp); err != nil {
		if httpclient.StatusCode(err) == http.StatusNotFound {
			logger.DebugCtx(ctx, "Identifier check endpoint missing, assuming account exists")
			return true, nil
		}
		return false, httpclient.ToAuthError("check_identifier", MsgCheckIdentifierFailed, err)
	}
	if resp.Rejected() {
		return false, rejection("check_identifier", MsgCheckIdentifierFailed, resp.Message)
	}
	return resp.Exists, nil
}

// CheckAccount reports whether phone is already registered. A 404 counts
// as "does not exist" so registration can proceed.
func (g *AuthHTTPGateway) CheckAccount(ctx context.Context, phone string) (bool, error) {
	var resp models.ExistsResponse
	if err := g.client.PostJSON(ctx, pathCheckAccount, &models.PhoneRequest{Phone: phone}, &resp); err != nil {
		if httpclient.StatusCode(err) == http.StatusNotFound {
			logger.DebugCtx(ctx, "Account check endpoint missing, assuming no account")
			return false, nil
		}
		return false, httpclient.ToAuthError("check_account", MsgCheckAccountFailed, err)
	}
	if resp.Rejected() {
		return false, rejection("check_account", MsgCheckAccountFailed, resp.Message)
	}
	return resp.Exists, nil
}

// Logout notifies the backend; callers treat failures as non-fatal
func (g *AuthHTTPGateway) Logout(ctx context.Context) error {
	if err := g.client.PostJSON(ctx, pathLogout, struct{}{}, nil); err != nil {
		return httpclient.ToAuthError("logout", MsgLogoutFailed, err)
	}
	return nil
}

func sessionFrom(op, fallback string, resp *models.AuthResponse) (*models.AuthSession, error) {
	if !resp.Success || resp.Token == "" || resp.Groomer == nil {
		return nil, rejection(op, fallback, resp.Message)
	}
	return &models.AuthSession{Groomer: resp.Groomer, Token: resp.Token}, nil
}

// rejection is a 2xx reply whose body declares failure
func rejection(op, fallback, message string) *models.AuthError {
	return &models.AuthError{Kind: models.ErrAuth, Op: op, Message: messageOr(message, fallback)}
}

func messageOr(message, fallback string) string {
	if message != "" {
		return message
	}
	return fallback
}
