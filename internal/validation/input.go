package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mkalan/bankist/internal/constants"
	"github.com/mkalan/bankist/internal/utils"
)

// ValidateUsername checks the login username format: non-empty,
// lowercase letters only (usernames are derived initials).
func ValidateUsername(val string) error {
	name := strings.TrimSpace(val)

	if name == "" {
		return fmt.Errorf("username can't be empty")
	}

	for _, r := range name {
		if r < 'a' || r > 'z' {
			return fmt.Errorf("username must be lowercase letters only")
		}
	}

	return nil
}

// ValidatePIN checks the 4-digit PIN format.
func ValidatePIN(val string) error {
	pin := strings.TrimSpace(val)

	if len(pin) != constants.PinLength {
		return fmt.Errorf("PIN must be %d digits", constants.PinLength)
	}

	if _, err := strconv.Atoi(pin); err != nil {
		return fmt.Errorf("PIN must be numeric")
	}

	return nil
}

// ValidateAmount checks a positive money amount ("150", "150.5",
// "150.50").
func ValidateAmount(val string) error {
	input := strings.TrimSpace(val)

	if input == "" {
		return fmt.Errorf("amount can't be empty")
	}

	amountFloat, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return fmt.Errorf("invalid number format")
	}

	if amountFloat <= 0 {
		return fmt.Errorf("amount must be positive")
	}

	if amountFloat > constants.MaxSafeBalanceFloat {
		return fmt.Errorf("amount too large")
	}

	return nil
}

// ParsePIN converts a validated PIN string to its numeric form.
func ParsePIN(val string) (int, error) {
	pin, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return 0, fmt.Errorf("PIN must be numeric")
	}
	return pin, nil
}

// ParseAmount converts a validated amount string to cents.
func ParseAmount(val string) (int64, error) {
	return utils.ParseToCents(val)
}
