package usecase

import (
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/piresc/groomer/internal/pkg/models"
	"github.com/piresc/groomer/services/auth"
)

// SessionStore owns the app wide AuthSession. Only the store mutates the
// token; screens read it through Session and Subscribe.
type SessionStore struct {
	authGW      auth.AuthGW
	sessionRepo auth.SessionRepo
	validate    *validator.Validate
	cfg         *models.Config
	now         func() time.Time

	mu          sync.RWMutex
	session     models.AuthSession
	state       models.AuthState
	subscribers map[uint64]func(models.AuthSession)
	nextSubID   uint64
}

// NewSessionStore creates a new session store instance
func NewSessionStore(
	authGW auth.AuthGW,
	sessionRepo auth.SessionRepo,
	cfg *models.Config,
) *SessionStore {
	return &SessionStore{
		authGW:      authGW,
		sessionRepo: sessionRepo,
		validate:    newValidator(),
		cfg:         cfg,
		now:         time.Now,
		state:       models.StateLoggedOut,
		subscribers: make(map[uint64]func(models.AuthSession)),
	}
}

// NewOTPFlow creates a verification flow that completes through verifier.
// The flow starts Idle with no identifier.
func NewOTPFlow(authGW auth.AuthGW, verifier auth.OTPVerifier, cfg *models.Config) *OTPFlow {
	otpCfg := models.OTPConfig{}
	if cfg != nil {
		otpCfg = cfg.OTP
	}
	if otpCfg.LoginCooldownSeconds <= 0 {
		otpCfg.LoginCooldownSeconds = DefaultLoginCooldown
	}
	if otpCfg.RegistrationCooldownSeconds <= 0 {
		otpCfg.RegistrationCooldownSeconds = DefaultRegistrationCooldown
	}
	if otpCfg.MinPhoneDigits <= 0 {
		otpCfg.MinPhoneDigits = DefaultMinPhoneDigits
	}

	return &OTPFlow{
		authGW:       authGW,
		verifier:     verifier,
		cfg:          otpCfg,
		now:          time.Now,
		tickInterval: time.Second,
		stage:        models.StageIdle,
		purpose:      models.PurposeLogin,
	}
}

var (
	_ auth.AuthUC      = (*SessionStore)(nil)
	_ auth.OTPVerifier = (*SessionStore)(nil)
)
