package usecase

// User facing messages for local validation and flow rules
const (
	MsgInvalidPhone        = "enter a valid phone number"
	MsgInvalidCode         = "enter a valid 6-digit code"
	MsgInvalidIdentifier   = "enter a valid email or phone number"
	MsgPasswordRequired    = "enter your password"
	MsgFillRequired        = "Please fill in all required fields"
	MsgInvalidEmail        = "Please enter a valid email address"
	MsgPasswordTooShort    = "Password must be at least 8 characters long"
	MsgAddressRequired     = "Address is mandatory"
	MsgExperienceRange     = "Experience years must be between 0 and 20"
	MsgInvalidResumeURL    = "Resume link must be a valid URL"
	MsgResendWait          = "You can request a new code in %s"
	MsgRequestInProgress   = "A request is already in progress"
	MsgCodeNotRequested    = "Request a verification code first"
	MsgAlreadyVerified     = "Phone number already verified"
	MsgVerificationReset   = "Verification was restarted. Please request a new code."
	MsgFlowClosed          = "Verification is no longer active"
	MsgPasswordStep        = "Phone verified. Please enter your password to continue."
	MsgRegistrationProceed = "Phone number verified for registration"
	MsgNotLoggedIn         = "Please log in to continue"
)
