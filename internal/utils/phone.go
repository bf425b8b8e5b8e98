package utils

import (
	"fmt"
	"strings"
)

// IsDigits reports whether s is non-empty and only ASCII decimal digits
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// OTPLength is the size of every one-time code: login, registration and
// order start/completion
const OTPLength = 6

// IsOTPCode reports whether code is exactly OTPLength ASCII digits
func IsOTPCode(code string) bool {
	return len(code) == OTPLength && IsDigits(code)
}

// DigitsOnly drops every non-digit character
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidatePhone checks a normalized "+<dial><number>" value has at least
// minDigits digits after the dial code.
func ValidatePhone(phone, dialCode string, minDigits int) error {
	if !strings.HasPrefix(phone, "+") || !IsDigits(phone[1:]) {
		return fmt.Errorf("invalid phone number format")
	}
	national := phone[1:]
	if dialCode != "" && strings.HasPrefix(phone, dialCode) {
		national = strings.TrimPrefix(phone, dialCode)
	}
	if len(national) < minDigits {
		return fmt.Errorf("phone number must have at least %d digits", minDigits)
	}
	return nil
}

// MaskPhone keeps the last 4 digits visible for logs
func MaskPhone(phone string) string {
	if len(phone) <= 4 {
		return phone
	}
	return strings.Repeat("*", len(phone)-4) + phone[len(phone)-4:]
}

// FormatCooldown renders remaining seconds as m:ss
func FormatCooldown(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
