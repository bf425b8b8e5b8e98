package usecase

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/piresc/groomer/internal/pkg/jwt"
	"github.com/piresc/groomer/internal/pkg/logger"
	"github.com/piresc/groomer/internal/pkg/models"
	"github.com/piresc/groomer/internal/utils"
)

// Init restores a persisted session. A missing, unreadable or expired
// session leaves the store logged out and storage cleared.
func (s *SessionStore) Init(ctx context.Context) (models.AuthSession, error) {
	stored, err := s.sessionRepo.LoadSession(ctx)
	switch {
	case errors.Is(err, models.ErrSessionNotFound):
		logger.DebugCtx(ctx, "No stored session")
		return models.AuthSession{}, nil
	case err != nil:
		logger.ErrorCtx(ctx, "Failed to restore session, clearing storage", logger.Err(err))
		s.clearStorage(ctx)
		return models.AuthSession{}, nil
	case !stored.IsAuthenticated():
		s.clearStorage(ctx)
		return models.AuthSession{}, nil
	case jwt.IsExpired(stored.Token, s.now()):
		logger.InfoCtx(ctx, "Stored token expired, clearing session",
			logger.Int64("groomer_id", stored.Groomer.ID))
		s.clearStorage(ctx)
		return models.AuthSession{}, nil
	}

	s.mu.Lock()
	s.session = *stored
	s.state = models.StateLoggedIn
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	logger.InfoCtx(ctx, "Session restored", logger.Int64("groomer_id", stored.Groomer.ID))
	s.notify(snapshot)
	return snapshot, nil
}

// Login authenticates with an email or phone plus password. A failed login
// leaves any existing session untouched.
func (s *SessionStore) Login(ctx context.Context, identifier models.Identifier, password string) (models.AuthSession, error) {
	const op = "login"

	if identifier.Kind == models.IdentifierUnknown || identifier.NormalizedValue == "" {
		return models.AuthSession{}, models.NewValidationError(op, MsgInvalidIdentifier)
	}
	if password == "" {
		return models.AuthSession{}, models.NewValidationError(op, MsgPasswordRequired)
	}

	previous := s.setState(models.StateLoggingIn)

	req := utils.LoginRequestFor(identifier, password)
	session, err := s.authGW.Login(ctx, &req)
	if err != nil {
		s.restoreState(models.StateLoggingIn, previous)
		logger.WarnCtx(ctx, "Login failed",
			logger.String("identifier_kind", string(identifier.Kind)),
			logger.Err(err))
		return models.AuthSession{}, err
	}

	return s.adopt(ctx, session), nil
}

// Register creates an account. The backend returns credentials at once, so
// no second login call is made. The caller must have verified the phone
// through a registration OTP flow first.
func (s *SessionStore) Register(ctx context.Context, data *models.RegisterData) (models.AuthSession, error) {
	const op = "register"

	if data == nil {
		return models.AuthSession{}, models.NewValidationError(op, MsgFillRequired)
	}
	normalized := *data
	normalized.Email = strings.ToLower(strings.TrimSpace(normalized.Email))
	normalized.Name = strings.TrimSpace(normalized.Name)
	normalized.Address = strings.TrimSpace(normalized.Address)

	if err := s.validate.Struct(&normalized); err != nil {
		return models.AuthSession{}, &models.AuthError{
			Kind:    models.ErrValidation,
			Op:      op,
			Message: validationMessage(err),
			Err:     err,
		}
	}

	previous := s.setState(models.StateRegistering)

	session, err := s.authGW.Register(ctx, &normalized)
	if err != nil {
		s.restoreState(models.StateRegistering, previous)
		logger.WarnCtx(ctx, "Registration failed",
			logger.Phone("phone", normalized.Phone),
			logger.Err(err))
		return models.AuthSession{}, err
	}

	return s.adopt(ctx, session), nil
}

// VerifyOTP completes an OTP exchange and tells the caller what the proven
// phone is good for. Only a login verify that returns credentials signs
// the groomer in.
func (s *SessionStore) VerifyOTP(ctx context.Context, identifier models.Identifier, code string, isLoginFlow bool) (*models.VerifyOutcome, error) {
	result, err := s.CheckOTP(ctx, identifier, code, isLoginFlow)
	if err != nil {
		return nil, err
	}
	return s.CompleteVerification(ctx, identifier, isLoginFlow, result), nil
}

// CheckOTP submits code to the backend without touching the session
func (s *SessionStore) CheckOTP(ctx context.Context, identifier models.Identifier, code string, isLoginFlow bool) (*models.OTPResult, error) {
	const op = "verify_otp"

	if identifier.Kind != models.IdentifierPhone {
		return nil, models.NewValidationError(op, MsgInvalidPhone)
	}
	if !ValidCode(code) {
		return nil, models.NewValidationError(op, MsgInvalidCode)
	}

	purpose := models.PurposeRegistration
	if isLoginFlow {
		purpose = models.PurposeLogin
	}
	return s.authGW.VerifyOTP(ctx, purpose, identifier.NormalizedValue, code)
}

// CompleteVerification turns an accepted verify result into an outcome,
// signing the groomer in when a login verify carried credentials.
func (s *SessionStore) CompleteVerification(ctx context.Context, identifier models.Identifier, isLoginFlow bool, result *models.OTPResult) *models.VerifyOutcome {
	phone := identifier.NormalizedValue
	message := ""
	if result != nil {
		message = result.Message
	}

	switch {
	case isLoginFlow && result.HasCredentials():
		session := s.adopt(ctx, &models.AuthSession{Groomer: result.Groomer, Token: result.Token})
		return &models.VerifyOutcome{
			Kind:    models.OutcomeFullyAuthenticated,
			Phone:   phone,
			Message: message,
			Session: &session,
		}
	case isLoginFlow:
		return &models.VerifyOutcome{
			Kind:    models.OutcomeAwaitingPassword,
			Phone:   phone,
			Message: firstNonEmpty(message, MsgPasswordStep),
		}
	default:
		return &models.VerifyOutcome{
			Kind:    models.OutcomeAwaitingRegistration,
			Phone:   phone,
			Message: firstNonEmpty(message, MsgRegistrationProceed),
		}
	}
}

// Logout clears the local session unconditionally. The server is told
// first so the request still carries the token; its failure is ignored.
func (s *SessionStore) Logout(ctx context.Context) {
	if err := s.authGW.Logout(ctx); err != nil {
		logger.WarnCtx(ctx, "Server-side logout failed", logger.Err(err))
	}
	s.clear(ctx)
	logger.InfoCtx(ctx, "Logged out")
}

// HandleUnauthorized clears the session after any 401 from the backend
func (s *SessionStore) HandleUnauthorized(ctx context.Context) {
	logger.WarnCtx(ctx, "Received 401, clearing authentication data")
	s.clear(ctx)
}

// CheckIdentifier asks whether an account uses identifier
func (s *SessionStore) CheckIdentifier(ctx context.Context, identifier models.Identifier) (bool, error) {
	if identifier.Kind == models.IdentifierUnknown || identifier.NormalizedValue == "" {
		return false, models.NewValidationError("check_identifier", MsgInvalidIdentifier)
	}
	value := identifier.NormalizedValue
	if identifier.Kind == models.IdentifierEmail {
		value = strings.ToLower(value)
	}
	return s.authGW.CheckIdentifier(ctx, value, identifier.Kind)
}

// CheckAccount asks whether phone is already registered
func (s *SessionStore) CheckAccount(ctx context.Context, phone string) (bool, error) {
	if !strings.HasPrefix(phone, "+") || !utils.IsDigits(phone[1:]) {
		return false, models.NewValidationError("check_account", MsgInvalidPhone)
	}
	return s.authGW.CheckAccount(ctx, phone)
}

// CurrentToken returns the bearer token, or "" when logged out
func (s *SessionStore) CurrentToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Token
}

// Session returns a copy of the current session
func (s *SessionStore) Session() models.AuthSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// State returns the coarse store state
func (s *SessionStore) State() models.AuthState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// UpdateProfile replaces the stored profile, keeping the token
func (s *SessionStore) UpdateProfile(ctx context.Context, groomer *models.Groomer) error {
	if groomer == nil {
		return models.NewValidationError("update_profile", MsgFillRequired)
	}

	s.mu.Lock()
	if !s.session.IsAuthenticated() {
		s.mu.Unlock()
		return &models.AuthError{Kind: models.ErrNotAuthenticated, Op: "update_profile", Message: MsgNotLoggedIn}
	}
	profile := *groomer
	s.session.Groomer = &profile
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	if err := s.sessionRepo.SaveSession(ctx, &snapshot); err != nil {
		logger.ErrorCtx(ctx, "Failed to persist profile", logger.Err(err))
	}
	s.notify(snapshot)
	return nil
}

// Subscribe registers fn for every session change. Call the returned
// function to stop receiving updates.
func (s *SessionStore) Subscribe(fn func(models.AuthSession)) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

func (s *SessionStore) adopt(ctx context.Context, session *models.AuthSession) models.AuthSession {
	if err := s.sessionRepo.SaveSession(ctx, session); err != nil {
		logger.ErrorCtx(ctx, "Failed to persist session", logger.Err(err))
	}

	profile := *session.Groomer
	s.mu.Lock()
	s.session = models.AuthSession{Groomer: &profile, Token: session.Token}
	s.state = models.StateLoggedIn
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	logger.InfoCtx(ctx, "Groomer signed in", logger.Int64("groomer_id", profile.ID))
	s.notify(snapshot)
	return snapshot
}

func (s *SessionStore) clear(ctx context.Context) {
	s.clearStorage(ctx)

	s.mu.Lock()
	hadSession := s.session.Token != "" || s.session.Groomer != nil
	s.session = models.AuthSession{}
	s.state = models.StateLoggedOut
	s.mu.Unlock()

	if hadSession {
		s.notify(models.AuthSession{})
	}
}

func (s *SessionStore) clearStorage(ctx context.Context) {
	if err := s.sessionRepo.ClearSession(ctx); err != nil {
		logger.ErrorCtx(ctx, "Failed to clear stored session", logger.Err(err))
	}
}

// setState moves to a transient state and returns the one it replaced
func (s *SessionStore) setState(state models.AuthState) models.AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	previous := s.state
	s.state = state
	return previous
}

// restoreState undoes setState unless something else (a 401) moved on
func (s *SessionStore) restoreState(transient, previous models.AuthState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != transient {
		return
	}
	if previous == models.StateLoggedIn && !s.session.IsAuthenticated() {
		previous = models.StateLoggedOut
	}
	s.state = previous
}

func (s *SessionStore) snapshotLocked() models.AuthSession {
	snapshot := models.AuthSession{Token: s.session.Token}
	if s.session.Groomer != nil {
		profile := *s.session.Groomer
		snapshot.Groomer = &profile
	}
	return snapshot
}

func (s *SessionStore) notify(snapshot models.AuthSession) {
	s.mu.RLock()
	subscribers := make([]func(models.AuthSession), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subscribers = append(subscribers, fn)
	}
	s.mu.RUnlock()

	for _, fn := range subscribers {
		fn(snapshot)
	}
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// validationMessage turns the first failed rule into the registration
// form's wording
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return MsgFillRequired
	}

	fe := verrs[0]
	switch fe.Field() {
	case "email":
		if fe.Tag() == "required" {
			return MsgFillRequired
		}
		return MsgInvalidEmail
	case "phone":
		return MsgInvalidPhone
	case "password":
		if fe.Tag() == "required" {
			return MsgFillRequired
		}
		return MsgPasswordTooShort
	case "address":
		return MsgAddressRequired
	case "experienceYears":
		return MsgExperienceRange
	case "resumeUrl":
		return MsgInvalidResumeURL
	}
	return MsgFillRequired
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
