package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/groomer/internal/pkg/models"
	"github.com/piresc/groomer/internal/utils"
	"github.com/piresc/groomer/services/auth/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPhone = "+919876543210"

func phoneIdentifier(t *testing.T, raw string) models.Identifier {
	t.Helper()
	c := utils.ClassifyIdentifier(raw, utils.DefaultCountry())
	require.Equal(t, models.IdentifierPhone, c.Identifier.Kind)
	return c.Identifier
}

func testConfig() *models.Config {
	return &models.Config{
		OTP: models.OTPConfig{
			LoginCooldownSeconds:        30,
			RegistrationCooldownSeconds: 120,
			MinPhoneDigits:              10,
			DefaultCountry:              "IN",
		},
	}
}

func newFlow(ctrl *gomock.Controller) (*OTPFlow, *mocks.MockAuthGW, *mocks.MockAuthUC) {
	mockGW := mocks.NewMockAuthGW(ctrl)
	mockVerifier := mocks.NewMockAuthUC(ctrl)
	return NewOTPFlow(mockGW, mockVerifier, testConfig()), mockGW, mockVerifier
}

func TestOTPFlow_RequestCodeLogin(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	flow, mockGW, _ := newFlow(ctrl)

	identifier := phoneIdentifier(t, "9876543210")
	assert.Equal(t, testPhone, identifier.NormalizedValue)

	mockGW.EXPECT().SendOTP(gomock.Any(), models.PurposeLogin, testPhone).Return("OTP sent successfully", nil).Times(1)

	// Act
	msg, err := flow.RequestCode(context.Background(), identifier, models.PurposeLogin)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "OTP sent successfully", msg)
	snap := flow.Snapshot()
	assert.Equal(t, models.StageSent, snap.Stage)
	assert.Equal(t, 30, snap.CooldownSecondsRemaining)
	assert.NotEmpty(t, snap.SessionID)
	assert.False(t, snap.SentAt.IsZero())
}

func TestOTPFlow_RequestCodeRegistrationCooldown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	flow, mockGW, _ := newFlow(ctrl)

	mockGW.EXPECT().SendOTP(gomock.Any(), models.PurposeRegistration, testPhone).Return("", nil)

	_, err := flow.RequestCode(context.Background(), phoneIdentifier(t, testPhone), models.PurposeRegistration)

	require.NoError(t, err)
	assert.Equal(t, 120, flow.Snapshot().CooldownSecondsRemaining)
}

func TestOTPFlow_RequestCodeValidation(t *testing.T) {
	tests := []struct {
		name       string
		identifier models.Identifier
	}{
		{
			name:       "email identifier",
			identifier: models.Identifier{RawValue: "a@b.com", Kind: models.IdentifierEmail, NormalizedValue: "a@b.com"},
		},
		{
			name:       "unknown identifier",
			identifier: models.Identifier{RawValue: "abc", Kind: models.IdentifierUnknown},
		},
		{
			name:       "too short",
			identifier: models.Identifier{RawValue: "98765", Kind: models.IdentifierPhone, NormalizedValue: "+9198765"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			flow, _, _ := newFlow(ctrl)

			_, err := flow.RequestCode(context.Background(), tt.identifier, models.PurposeLogin)

			assert.ErrorIs(t, err, models.ErrValidation)
			assert.Equal(t, MsgInvalidPhone, models.UserMessage(err, ""))
			assert.Equal(t, models.StageIdle, flow.Snapshot().Stage)
		})
	}
}

func TestOTPFlow_ResendGatedByCooldown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	flow, mockGW, _ := newFlow(ctrl)
	identifier := phoneIdentifier(t, testPhone)

	mockGW.EXPECT().SendOTP(gomock.Any(), models.PurposeLogin, testPhone).Return("", nil).Times(2)

	_, err := flow.RequestCode(context.Background(), identifier, models.PurposeLogin)
	require.NoError(t, err)

	_, err = flow.RequestCode(context.Background(), identifier, models.PurposeLogin)
	assert.ErrorIs(t, err, models.ErrResendNotAllowed)
	assert.Equal(t, "You can request a new code in 0:30", models.UserMessage(err, ""))
	assert.False(t, flow.CanResend())

	for i := 0; i < 30; i++ {
		flow.TickCooldown()
	}
	assert.Equal(t, 0, flow.TickCooldown())
	assert.True(t, flow.CanResend())
	assert.Equal(t, models.StageSent, flow.Snapshot().Stage)

	_, err = flow.RequestCode(context.Background(), identifier, models.PurposeLogin)
	require.NoError(t, err)
	assert.Equal(t, 30, flow.Snapshot().CooldownSecondsRemaining)
}

func TestOTPFlow_RequestCodeFailureReverts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	flow, mockGW, _ := newFlow(ctrl)

	sendErr := &models.AuthError{Kind: models.ErrAuth, Op: "send_otp", Message: "Too many attempts"}
	mockGW.EXPECT().SendOTP(gomock.Any(), gomock.Any(), gomock.Any()).Return("", sendErr)

	_, err := flow.RequestCode(context.Background(), phoneIdentifier(t, testPhone), models.PurposeLogin)

	assert.Equal(t, "Too many attempts", models.UserMessage(err, ""))
	snap := flow.Snapshot()
	assert.Equal(t, models.StageIdle, snap.Stage)
	assert.Zero(t, snap.CooldownSecondsRemaining)
}

func TestOTPFlow_ResendFailureStaysSent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	flow, mockGW, _ := newFlow(ctrl)
	identifier := phoneIdentifier(t, testPhone)

	gomock.InOrder(
		mockGW.EXPECT().SendOTP(gomock.Any(), gomock.Any(), gomock.Any()).Return("", nil),
		mockGW.EXPECT().SendOTP(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", &models.AuthError{Kind: models.ErrNetwork, Op: "send_otp", Message: "offline"}),
	)

	_, err := flow.RequestCode(context.Background(), identifier, models.PurposeLogin)
	require.NoError(t, err)
	for flow.TickCooldown() > 0 {
	}

	_, err = flow.RequestCode(context.Background(), identifier, models.PurposeLogin)

	assert.ErrorIs(t, err, models.ErrNetwork)
	assert.Equal(t, models.StageSent, flow.Snapshot().Stage)
	assert.True(t, flow.CanResend())
}

func TestOTPFlow_SubmitCodeRejectsMalformedLocally(t *testing.T) {
	codes := []string{"12345", "1234567", "abcdef", "12 456", "", "١٢٣٤٥٦"}

	for _, code := range codes {
		t.Run(code, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			flow, mockGW, mockVerifier := newFlow(ctrl)

			mockGW.EXPECT().SendOTP(gomock.Any(), gomock.Any(), gomock.Any()).Return("", nil)
			mockVerifier.EXPECT().CheckOTP(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			_, err := flow.RequestCode(context.Background(), phoneIdentifier(t, testPhone), models.PurposeLogin)
			require.NoError(t, err)

			outcome, err := flow.SubmitCode(context.Background(), code)

			assert.Nil(t, outcome)
			assert.ErrorIs(t, err, models.ErrValidation)
			assert.Equal(t, MsgInvalidCode, models.UserMessage(err, ""))
			assert.Equal(t, models.StageSent, flow.Snapshot().Stage)
		})
	}
}

func TestOTPFlow_SubmitCodeBeforeRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	flow, _, _ := newFlow(ctrl)

	_, err := flow.SubmitCode(context.Background(), "123456")

	assert.ErrorIs(t, err, models.ErrInvalidStage)
	assert.Equal(t, MsgCodeNotRequested, models.UserMessage(err, ""))
}

func TestOTPFlow_SubmitCodeRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	flow, mockGW, mockVerifier := newFlow(ctrl)
	identifier := phoneIdentifier(t, testPhone)

	mockGW.EXPECT().SendOTP(gomock.Any(), gomock.Any(), gomock.Any()).Return("", nil)
	mockVerifier.EXPECT().CheckOTP(gomock.Any(), identifier, "111111", true).
		Return(nil, &models.AuthError{Kind: models.ErrAuth, Op: "verify_otp", Message: "Invalid OTP"})
	mockVerifier.EXPECT().CompleteVerification(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := flow.RequestCode(context.Background(), identifier, models.PurposeLogin)
	require.NoError(t, err)

	_, err = flow.SubmitCode(context.Background(), "111111")

	assert.ErrorIs(t, err, models.ErrAuth)
	assert.Equal(t, "Invalid OTP", models.UserMessage(err, ""))
	snap := flow.Snapshot()
	assert.Equal(t, models.StageSent, snap.Stage)
	assert.Empty(t, snap.OTPValue)
	assert.Equal(t, 30, snap.CooldownSecondsRemaining)
}

func TestOTPFlow_SubmitCodeNetworkErrorKeepsCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	flow, mockGW, mockVerifier := newFlow(ctrl)

	mockGW.EXPECT().SendOTP(gomock.Any(), gomock.Any(), gomock.Any()).Return("", nil)
	mockVerifier.EXPECT().CheckOTP(gomock.Any(), gomock.Any(), "123456", true).
		Return(nil, &models.AuthError{Kind: models.ErrNetwork, Op: "verify_otp", Message: "offline"})

	_, err := flow.RequestCode(context.Background(), phoneIdentifier(t, testPhone), models.PurposeLogin)
	require.NoError(t, err)

	_, err = flow.SubmitCode(context.Background(), "123456")

	assert.ErrorIs(t, err, models.ErrNetwork)
	assert.Equal(t, "123456", flow.Snapshot().OTPValue)
	assert.Equal(t, models.StageSent, flow.Snapshot().Stage)
}

func TestOTPFlow_SubmitCodeVerified(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	flow, mockGW, mockVerifier := newFlow(ctrl)
	identifier := phoneIdentifier(t, testPhone)

	mockGW.EXPECT().SendOTP(gomock.Any(), models.PurposeRegistration, testPhone).Return("", nil)
	result := &models.OTPResult{Message: "Phone verified"}
	mockVerifier.EXPECT().CheckOTP(gomock.Any(), identifier, "654321", false).Return(result, nil)
	mockVerifier.EXPECT().CompleteVerification(gomock.Any(), identifier, false, result).
		Return(&models.VerifyOutcome{Kind: models.OutcomeAwaitingRegistration, Phone: testPhone})

	_, err := flow.RequestCode(context.Background(), identifier, models.PurposeRegistration)
	require.NoError(t, err)

	outcome, err := flow.SubmitCode(context.Background(), "654321")

	require.NoError(t, err)
	assert.Equal(t, models.OutcomeAwaitingRegistration, outcome.Kind)
	snap := flow.Snapshot()
	assert.Equal(t, models.StageVerified, snap.Stage)
	assert.Zero(t, snap.CooldownSecondsRemaining)

	_, err = flow.SubmitCode(context.Background(), "654321")
	assert.ErrorIs(t, err, models.ErrInvalidStage)
	_, err = flow.RequestCode(context.Background(), identifier, models.PurposeRegistration)
	assert.ErrorIs(t, err, models.ErrInvalidStage)
}

func TestOTPFlow_StaleSendResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	flow, mockGW, _ := newFlow(ctrl)
	other := phoneIdentifier(t, "9123456789")

	mockGW.EXPECT().SendOTP(gomock.Any(), models.PurposeLogin, testPhone).
		DoAndReturn(func(ctx context.Context, purpose models.OTPPurpose, phone string) (string, error) {
			// the user edits the field while the request is in flight
			assert.True(t, flow.ChangeIdentifier(other))
			return "sent", nil
		})

	_, err := flow.RequestCode(context.Background(), phoneIdentifier(t, testPhone), models.PurposeLogin)

	assert.ErrorIs(t, err, models.ErrStaleResponse)
	snap := flow.Snapshot()
	assert.Equal(t, models.StageIdle, snap.Stage)
	assert.Equal(t, other, snap.Identifier)
	assert.Zero(t, snap.CooldownSecondsRemaining)
}

func TestOTPFlow_StaleVerifyResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	flow, mockGW, mockVerifier := newFlow(ctrl)

	mockGW.EXPECT().SendOTP(gomock.Any(), gomock.Any(), gomock.Any()).Return("", nil)
	mockVerifier.EXPECT().CheckOTP(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, id models.Identifier, code string, isLogin bool) (*models.OTPResult, error) {
			flow.Reset()
			return &models.OTPResult{Token: "tok", Groomer: &models.Groomer{ID: 5}}, nil
		})
	mockVerifier.EXPECT().CompleteVerification(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := flow.RequestCode(context.Background(), phoneIdentifier(t, testPhone), models.PurposeLogin)
	require.NoError(t, err)

	_, err = flow.SubmitCode(context.Background(), "123456")

	assert.ErrorIs(t, err, models.ErrStaleResponse)
	assert.Equal(t, models.StageIdle, flow.Snapshot().Stage)
}

func TestOTPFlow_ChangeIdentifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	flow, mockGW, _ := newFlow(ctrl)
	identifier := phoneIdentifier(t, testPhone)

	mockGW.EXPECT().SendOTP(gomock.Any(), gomock.Any(), gomock.Any()).Return("", nil)
	_, err := flow.RequestCode(context.Background(), identifier, models.PurposeLogin)
	require.NoError(t, err)
	firstSession := flow.Snapshot().SessionID

	assert.False(t, flow.ChangeIdentifier(identifier))
	assert.Equal(t, models.StageSent, flow.Snapshot().Stage)

	email := models.Identifier{RawValue: "a@b.com", Kind: models.IdentifierEmail, NormalizedValue: "a@b.com"}
	assert.True(t, flow.ChangeIdentifier(email))
	snap := flow.Snapshot()
	assert.Equal(t, models.StageIdle, snap.Stage)
	assert.NotEqual(t, firstSession, snap.SessionID)
}

func TestOTPFlow_StartCountdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockGW := mocks.NewMockAuthGW(ctrl)
	cfg := testConfig()
	cfg.OTP.LoginCooldownSeconds = 3
	flow := NewOTPFlow(mockGW, mocks.NewMockAuthUC(ctrl), cfg)
	flow.tickInterval = time.Millisecond

	mockGW.EXPECT().SendOTP(gomock.Any(), gomock.Any(), gomock.Any()).Return("", nil)
	_, err := flow.RequestCode(context.Background(), phoneIdentifier(t, testPhone), models.PurposeLogin)
	require.NoError(t, err)

	var mu sync.Mutex
	var ticks []int
	done := flow.StartCountdown(context.Background(), func(remaining int) {
		mu.Lock()
		ticks = append(ticks, remaining)
		mu.Unlock()
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("countdown did not finish")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{2, 1, 0}, ticks)
	assert.True(t, flow.CanResend())
}

func TestOTPFlow_CountdownStopsOnClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	flow, mockGW, _ := newFlow(ctrl)
	flow.tickInterval = time.Hour

	mockGW.EXPECT().SendOTP(gomock.Any(), gomock.Any(), gomock.Any()).Return("", nil)
	_, err := flow.RequestCode(context.Background(), phoneIdentifier(t, testPhone), models.PurposeLogin)
	require.NoError(t, err)

	done := flow.StartCountdown(context.Background(), nil)
	flow.Close()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("countdown still running after Close")
	}
	assert.Equal(t, 30, flow.Snapshot().CooldownSecondsRemaining)

	_, err = flow.RequestCode(context.Background(), phoneIdentifier(t, testPhone), models.PurposeLogin)
	assert.ErrorIs(t, err, models.ErrFlowClosed)
}

func TestOTPFlow_CountdownStopsOnContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	flow, mockGW, _ := newFlow(ctrl)
	flow.tickInterval = time.Hour

	mockGW.EXPECT().SendOTP(gomock.Any(), gomock.Any(), gomock.Any()).Return("", nil)
	_, err := flow.RequestCode(context.Background(), phoneIdentifier(t, testPhone), models.PurposeLogin)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := flow.StartCountdown(ctx, nil)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("countdown still running after cancel")
	}
}

func TestOTPFlow_StartCountdownWithoutCooldown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	flow, _, _ := newFlow(ctrl)

	done := flow.StartCountdown(context.Background(), nil)

	_, open := <-done
	assert.False(t, open)
}

func TestValidCode(t *testing.T) {
	assert.True(t, ValidCode("000000"))
	assert.False(t, ValidCode("00000"))
	assert.False(t, ValidCode("0000000"))
	assert.False(t, ValidCode("12a456"))
}
