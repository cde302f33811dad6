package validation

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// Wallet addresses are base58-encoded 32-byte public keys; anything
	// shorter than 32 characters cannot decode to one.
	MinWalletLength = 32
	MaxWalletLength = 64

	MaxNameLength    = 80
	MaxTwitterLength = 80
	MaxRefLength     = 20
	MaxDeviceLength  = 200
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateWallet checks a wallet address string for plausible shape. It does
// not decode the key; callers that need the raw bytes use the crypto package.
func ValidateWallet(wallet string) error {
	wallet = strings.TrimSpace(wallet)
	if wallet == "" {
		return fmt.Errorf("wallet cannot be empty")
	}
	if len(wallet) < MinWalletLength {
		return fmt.Errorf("wallet must be at least %d characters long", MinWalletLength)
	}
	if len(wallet) > MaxWalletLength {
		return fmt.Errorf("wallet cannot exceed %d characters", MaxWalletLength)
	}
	return nil
}

func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

// ValidateMaxLength checks an optional string field against a length cap.
func ValidateMaxLength(value, fieldName string, max int) error {
	if len(value) > max {
		return fmt.Errorf("%s cannot exceed %d characters", fieldName, max)
	}
	return nil
}

// ValidateRange checks that value lies in [min, max].
func ValidateRange(value, min, max float64, fieldName string) error {
	if value < min || value > max {
		return fmt.Errorf("%s must be between %v and %v", fieldName, min, max)
	}
	return nil
}
