package entity

import (
	"fmt"
	"regexp"
	"strings"
)

// ShippingAddress is the destination captured at checkout.
type ShippingAddress struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Street   string `json:"street" validate:"required"`
	City     string `json:"city" validate:"required"`
	State    string `json:"state" validate:"required"`
	ZipCode  string `json:"zipCode" validate:"required"`
	Country  string `json:"country" validate:"required"`
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	usZipPattern = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
)

// minPhoneDigits is the minimum number of digits a phone number must carry
// after formatting characters are stripped.
const minPhoneDigits = 10

// Problems returns every validation failure on the address, one per field.
// An empty slice means the address is valid. All failures are collected so
// the shopper can fix the whole form in one pass.
func (a ShippingAddress) Problems() []string {
	var problems []string

	required := []struct {
		field string
		value string
	}{
		{"fullName", a.FullName},
		{"email", a.Email},
		{"phone", a.Phone},
		{"street", a.Street},
		{"city", a.City},
		{"state", a.State},
		{"zipCode", a.ZipCode},
		{"country", a.Country},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			problems = append(problems, f.field+" is required")
		}
	}

	if a.Email != "" && !emailPattern.MatchString(a.Email) {
		problems = append(problems, "email is not a valid address")
	}

	if a.Phone != "" {
		if digits, ok := phoneDigits(a.Phone); !ok {
			problems = append(problems, "phone may only contain digits and +-() separators")
		} else if len(digits) < minPhoneDigits {
			problems = append(problems, fmt.Sprintf("phone must have at least %d digits", minPhoneDigits))
		}
	}

	// ZIP format is only enforced for US addresses; other countries vary too
	// much to check here.
	if a.ZipCode != "" && isUS(a.Country) && !usZipPattern.MatchString(a.ZipCode) {
		problems = append(problems, "zipCode must be a 5-digit US ZIP, optionally with a 4-digit extension")
	}

	return problems
}

// phoneDigits strips the accepted separator characters and reports whether
// anything other than digits remained.
func phoneDigits(phone string) (string, bool) {
	var digits strings.Builder
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
		case r == '+' || r == '-' || r == '(' || r == ')' || r == ' ':
		default:
			return "", false
		}
	}

	return digits.String(), true
}

func isUS(country string) bool {
	switch strings.ToUpper(strings.TrimSpace(country)) {
	case "US", "USA", "UNITED STATES":
		return true
	default:
		return false
	}
}
