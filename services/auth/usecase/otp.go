package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/groomer/internal/pkg/logger"
	"github.com/piresc/groomer/internal/pkg/models"
	"github.com/piresc/groomer/internal/utils"
	"github.com/piresc/groomer/services/auth"
)

// Verification defaults
const (
	DefaultLoginCooldown        = 30
	DefaultRegistrationCooldown = 120
	DefaultMinPhoneDigits       = 10
	OTPLength                   = utils.OTPLength
)

// OTPFlow drives one identifier's send/verify/resend lifecycle:
// Idle -> Sending -> Sent -> Verifying -> Verified, with Sent -> Sending
// only once the cooldown reaches zero. Changing the identifier abandons the
// session and any response still in flight for it.
type OTPFlow struct {
	authGW       auth.AuthGW
	verifier     auth.OTPVerifier
	cfg          models.OTPConfig
	now          func() time.Time
	tickInterval time.Duration

	mu            sync.Mutex
	sessionID     string
	identifier    models.Identifier
	purpose       models.OTPPurpose
	stage         models.OTPStage
	otpValue      string
	cooldown      int
	sentAt        time.Time
	generation    uint64
	closed        bool
	stopCountdown context.CancelFunc
}

// RequestCode sends (or resends) a code to identifier for purpose
func (f *OTPFlow) RequestCode(ctx context.Context, identifier models.Identifier, purpose models.OTPPurpose) (string, error) {
	const op = "request_code"

	if err := f.validatePhone(identifier); err != nil {
		return "", err
	}

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return "", flowError(models.ErrFlowClosed, op, MsgFlowClosed)
	}
	if !sameIdentifier(f.identifier, identifier) || f.purpose != purpose {
		f.resetLocked(identifier, purpose)
	}

	switch f.stage {
	case models.StageSending, models.StageVerifying:
		f.mu.Unlock()
		return "", flowError(models.ErrInvalidStage, op, MsgRequestInProgress)
	case models.StageVerified:
		f.mu.Unlock()
		return "", flowError(models.ErrInvalidStage, op, MsgAlreadyVerified)
	case models.StageSent:
		if f.cooldown > 0 {
			remaining := f.cooldown
			f.mu.Unlock()
			return "", flowError(models.ErrResendNotAllowed, op, fmt.Sprintf(MsgResendWait, utils.FormatCooldown(remaining)))
		}
	}

	previous := f.stage
	f.stage = models.StageSending
	generation := f.generation
	sessionID := f.sessionID
	f.mu.Unlock()

	message, err := f.authGW.SendOTP(ctx, purpose, identifier.NormalizedValue)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.generation != generation {
		logger.DebugCtx(ctx, "Discarding stale send OTP response", logger.String("session_id", sessionID))
		return "", flowError(models.ErrStaleResponse, op, MsgVerificationReset)
	}
	if err != nil {
		f.stage = previous
		return "", err
	}

	f.stage = models.StageSent
	f.cooldown = f.cooldownFor(purpose)
	f.sentAt = f.now()
	f.otpValue = ""

	logger.InfoCtx(ctx, "Verification code requested",
		logger.String("session_id", sessionID),
		logger.String("purpose", string(purpose)),
		logger.Phone("phone", identifier.NormalizedValue),
		logger.Int("cooldown_seconds", f.cooldown))

	return message, nil
}

// SubmitCode verifies code against the current session. Malformed codes
// are rejected locally without a network call.
func (f *OTPFlow) SubmitCode(ctx context.Context, code string) (*models.VerifyOutcome, error) {
	const op = "submit_code"

	if !ValidCode(code) {
		return nil, models.NewValidationError(op, MsgInvalidCode)
	}

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil, flowError(models.ErrFlowClosed, op, MsgFlowClosed)
	}
	if f.stage != models.StageSent {
		message := MsgCodeNotRequested
		switch f.stage {
		case models.StageSending, models.StageVerifying:
			message = MsgRequestInProgress
		case models.StageVerified:
			message = MsgAlreadyVerified
		}
		f.mu.Unlock()
		return nil, flowError(models.ErrInvalidStage, op, message)
	}

	f.stage = models.StageVerifying
	f.otpValue = code
	identifier := f.identifier
	purpose := f.purpose
	generation := f.generation
	sessionID := f.sessionID
	f.mu.Unlock()

	isLogin := purpose == models.PurposeLogin
	result, err := f.verifier.CheckOTP(ctx, identifier, code, isLogin)

	f.mu.Lock()
	if f.generation != generation {
		f.mu.Unlock()
		logger.DebugCtx(ctx, "Discarding stale verify response", logger.String("session_id", sessionID))
		return nil, flowError(models.ErrStaleResponse, op, MsgVerificationReset)
	}
	if err != nil {
		f.stage = models.StageSent
		if !errors.Is(err, models.ErrNetwork) {
			f.otpValue = ""
		}
		f.mu.Unlock()
		return nil, err
	}

	f.stage = models.StageVerified
	f.cooldown = 0
	f.cancelCountdownLocked()
	f.mu.Unlock()

	// Subscribers are notified from here, so the flow lock is released first.
	outcome := f.verifier.CompleteVerification(ctx, identifier, isLogin, result)

	logger.InfoCtx(ctx, "Verification completed",
		logger.String("session_id", sessionID),
		logger.String("purpose", string(purpose)),
		logger.String("outcome", string(outcome.Kind)))

	return outcome, nil
}

// TickCooldown decrements the resend cooldown by one second and returns
// what remains. It never changes the stage.
func (f *OTPFlow) TickCooldown() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tickLocked()
}

func (f *OTPFlow) tickLocked() int {
	if f.cooldown > 0 {
		f.cooldown--
	}
	return f.cooldown
}

// CanResend reports whether RequestCode would send a fresh code now
func (f *OTPFlow) CanResend() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.closed && f.stage == models.StageSent && f.cooldown == 0
}

// StartCountdown ticks the cooldown once per second in the background. It
// stops at zero, when ctx ends, when the session is reset or abandoned, or
// on Close. onTick, if set, receives the remaining seconds after each tick.
// The returned channel is closed once the countdown has stopped.
func (f *OTPFlow) StartCountdown(ctx context.Context, onTick func(remaining int)) <-chan struct{} {
	done := make(chan struct{})

	f.mu.Lock()
	if f.closed || f.cooldown == 0 {
		f.mu.Unlock()
		close(done)
		return done
	}
	f.cancelCountdownLocked()
	countdownCtx, cancel := context.WithCancel(ctx)
	f.stopCountdown = cancel
	generation := f.generation
	interval := f.tickInterval
	f.mu.Unlock()

	go func() {
		defer close(done)
		defer cancel()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-countdownCtx.Done():
				return
			case <-ticker.C:
				f.mu.Lock()
				if f.closed || f.generation != generation {
					f.mu.Unlock()
					return
				}
				remaining := f.tickLocked()
				f.mu.Unlock()

				if onTick != nil {
					onTick(remaining)
				}
				if remaining == 0 {
					return
				}
			}
		}
	}()

	return done
}

// ChangeIdentifier abandons the current session when identifier differs
// from it. It reports whether a reset happened.
func (f *OTPFlow) ChangeIdentifier(identifier models.Identifier) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if sameIdentifier(f.identifier, identifier) {
		return false
	}
	f.resetLocked(identifier, f.purpose)
	return true
}

// Reset returns the flow to Idle for the same identifier and purpose
func (f *OTPFlow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resetLocked(f.identifier, f.purpose)
}

// Close tears the flow down. Pending responses are discarded and the
// countdown stops.
func (f *OTPFlow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	f.generation++
	f.cancelCountdownLocked()
}

// Snapshot returns a copy of the current verification state
func (f *OTPFlow) Snapshot() models.VerificationSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return models.VerificationSnapshot{
		SessionID:                f.sessionID,
		Identifier:               f.identifier,
		Purpose:                  f.purpose,
		Stage:                    f.stage,
		OTPValue:                 f.otpValue,
		CooldownSecondsRemaining: f.cooldown,
		SentAt:                   f.sentAt,
	}
}

func (f *OTPFlow) resetLocked(identifier models.Identifier, purpose models.OTPPurpose) {
	f.cancelCountdownLocked()
	f.generation++
	f.sessionID = uuid.NewString()
	f.identifier = identifier
	f.purpose = purpose
	f.stage = models.StageIdle
	f.otpValue = ""
	f.cooldown = 0
	f.sentAt = time.Time{}
}

func (f *OTPFlow) cancelCountdownLocked() {
	if f.stopCountdown != nil {
		f.stopCountdown()
		f.stopCountdown = nil
	}
}

func (f *OTPFlow) cooldownFor(purpose models.OTPPurpose) int {
	if purpose == models.PurposeRegistration {
		return f.cfg.RegistrationCooldownSeconds
	}
	return f.cfg.LoginCooldownSeconds
}

func (f *OTPFlow) validatePhone(identifier models.Identifier) error {
	if identifier.Kind != models.IdentifierPhone {
		return models.NewValidationError("request_code", MsgInvalidPhone)
	}
	dialCode := ""
	if country, ok := utils.DetectCountry(identifier.NormalizedValue, utils.DefaultCountry()); ok {
		dialCode = country.DialCode
	}
	if err := utils.ValidatePhone(identifier.NormalizedValue, dialCode, f.cfg.MinPhoneDigits); err != nil {
		return &models.AuthError{Kind: models.ErrValidation, Op: "request_code", Message: MsgInvalidPhone, Err: err}
	}
	return nil
}

// ValidCode reports whether code is exactly six ASCII digits
func ValidCode(code string) bool {
	return utils.IsOTPCode(code)
}

func sameIdentifier(a, b models.Identifier) bool {
	return a.Kind == b.Kind && a.NormalizedValue == b.NormalizedValue
}

func flowError(kind error, op, message string) *models.AuthError {
	return &models.AuthError{Kind: kind, Op: op, Message: message}
}
