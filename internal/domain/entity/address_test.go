package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddress() ShippingAddress {
	return ShippingAddress{
		FullName: "Jamie Doe",
		Email:    "jamie@example.com",
		Phone:    "(503) 555-0100",
		Street:   "1 Main St",
		City:     "Portland",
		State:    "OR",
		ZipCode:  "97201",
		Country:  "US",
	}
}

func TestShippingAddress_Problems_ValidAddress(t *testing.T) {
	assert.Empty(t, validAddress().Problems())
}

func TestShippingAddress_Problems_CollectsAllFailures(t *testing.T) {
	address := validAddress()
	address.Email = "not-an-email"
	address.Phone = "555"
	address.City = ""

	problems := address.Problems()

	// One pass reports every broken field, not just the first.
	require.Len(t, problems, 3)
	assert.Contains(t, problems, "city is required")
	assert.Contains(t, problems, "email is not a valid address")
	assert.Contains(t, problems, "phone must have at least 10 digits")
}

func TestShippingAddress_Problems_PhoneCharset(t *testing.T) {
	address := validAddress()
	address.Phone = "503-555-01oo"

	problems := address.Problems()

	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], "digits and +-()")
}

func TestShippingAddress_Problems_PhoneSeparatorsAllowed(t *testing.T) {
	address := validAddress()
	address.Phone = "+1 (503) 555-0100"

	assert.Empty(t, address.Problems())
}

func TestShippingAddress_Problems_USZipFormat(t *testing.T) {
	tests := []struct {
		name    string
		zip     string
		country string
		valid   bool
	}{
		{"five digits", "97201", "US", true},
		{"zip plus four", "97201-1234", "USA", true},
		{"too short", "972", "US", false},
		{"letters", "ABCDE", "United States", false},
		{"non-US skips format check", "EC1A 1BB", "GB", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			address := validAddress()
			address.ZipCode = tt.zip
			address.Country = tt.country

			problems := address.Problems()

			if tt.valid {
				assert.Empty(t, problems)
			} else {
				require.Len(t, problems, 1)
				assert.Contains(t, problems[0], "zipCode")
			}
		})
	}
}

func TestShippingAddress_Problems_AllFieldsMissing(t *testing.T) {
	problems := ShippingAddress{}.Problems()

	assert.Len(t, problems, 8)
}
