package auth

import (
	"context"

	"github.com/piresc/groomer/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/groomer/services/auth AuthGW

// AuthGW is the backend contract of the authentication flow
type AuthGW interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthSession, error)
	Register(ctx context.Context, data *models.RegisterData) (*models.AuthSession, error)

	// OTP exchange; purpose selects the login or registration endpoints
	SendOTP(ctx context.Context, purpose models.OTPPurpose, phone string) (string, error)
	VerifyOTP(ctx context.Context, purpose models.OTPPurpose, phone, code string) (*models.OTPResult, error)

	// Pre-checks
	CheckIdentifier(ctx context.Context, identifier string, kind models.IdentifierKind) (bool, error)
	CheckAccount(ctx context.Context, phone string) (bool, error)

	Logout(ctx context.Context) error
}
