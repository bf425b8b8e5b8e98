package auth

import (
	"context"

	"github.com/piresc/groomer/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/groomer/services/auth AuthUC

// AuthUC is the session store consulted by every screen
type AuthUC interface {
	Init(ctx context.Context) (models.AuthSession, error)

	Login(ctx context.Context, identifier models.Identifier, password string) (models.AuthSession, error)
	Register(ctx context.Context, data *models.RegisterData) (models.AuthSession, error)
	VerifyOTP(ctx context.Context, identifier models.Identifier, code string, isLoginFlow bool) (*models.VerifyOutcome, error)
	OTPVerifier
	Logout(ctx context.Context)

	// progressive login and registration pre-checks
	CheckIdentifier(ctx context.Context, identifier models.Identifier) (bool, error)
	CheckAccount(ctx context.Context, phone string) (bool, error)

	Session() models.AuthSession
	State() models.AuthState
	CurrentToken() string
	UpdateProfile(ctx context.Context, groomer *models.Groomer) error
	Subscribe(fn func(models.AuthSession)) (unsubscribe func())
}

// OTPVerifier completes an OTP exchange on behalf of a verification flow
// in two steps. CheckOTP only talks to the backend; CompleteVerification
// applies an accepted result and is skipped for abandoned sessions.
type OTPVerifier interface {
	CheckOTP(ctx context.Context, identifier models.Identifier, code string, isLoginFlow bool) (*models.OTPResult, error)
	CompleteVerification(ctx context.Context, identifier models.Identifier, isLoginFlow bool, result *models.OTPResult) *models.VerifyOutcome
}
