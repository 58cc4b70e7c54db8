package models

// SendEmailRequest carries a code chosen by the caller to relay as-is
type SendEmailRequest struct {
	Email string `json:"email" validate:"required"`
	OTP   string `json:"otpp" validate:"required"`
}

// OTPSendRequest asks the server to issue a code for an email
type OTPSendRequest struct {
	Email string `json:"email" validate:"required"`
}

// OTPVerifyRequest checks a user-entered code
type OTPVerifyRequest struct {
	Email string `json:"email" validate:"required"`
	OTP   string `json:"otp" validate:"required"`
}

// OTPVerifyResponse reports the verification outcome
type OTPVerifyResponse struct {
	Verified bool   `json:"verified"`
	Message  string `json:"message,omitempty"`
}
