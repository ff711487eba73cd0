package contactsift_test

import (
	"testing"

	"github.com/contactsift/contactsift"
	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want string
	}{
		{"(555) 123-4567", "5551234567"},
		{"555.123.4567", "5551234567"},
		{"+44 20 7946 0958", "+442079460958"},
		{"0044 20 7946 0958", "+442079460958"},
		{"1-800-555-2368", "18005552368"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, contactsift.NormalizePhone(tt.raw), "raw %q", tt.raw)
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	t.Parallel()

	t.Run("accepts plausible numbers", func(t *testing.T) {
		t.Parallel()

		valid := []string{
			"(555) 123-4567",
			"555-123-4567",
			"555.123.4567",
			"+44 20 7946 0958",
			"1-800-555-2368",
		}
		for _, p := range valid {
			assert.True(t, contactsift.IsValidPhoneNumber(p), "phone %q", p)
		}
	})

	t.Run("rejects dates, IDs, and bad NANP shapes", func(t *testing.T) {
		t.Parallel()

		invalid := []string{
			"",
			"123456",         // too few digits
			"2023-11-10",     // date shape
			"11/10/2023",     // date shape
			"123456789012",   // unseparated digit run
			"(055) 123-4567", // area code starting with 0
			"(155) 123-4567", // area code starting with 1
			"(911) 555-2368", // N11 service code
			"(555) 023-4567", // exchange starting with 0
		}
		for _, p := range invalid {
			assert.False(t, contactsift.IsValidPhoneNumber(p), "phone %q", p)
		}
	})
}

func TestIsPhoneFalsePositive(t *testing.T) {
	t.Parallel()

	t.Run("flags placeholder digits", func(t *testing.T) {
		t.Parallel()

		assert.True(t, contactsift.IsPhoneFalsePositive("1234567890", ""))
		assert.True(t, contactsift.IsPhoneFalsePositive("7777777777", ""), "all same digit")
		assert.True(t, contactsift.IsPhoneFalsePositive("9876543210", ""), "descending sequence")
	})

	t.Run("flags fictional 555-01XX numbers", func(t *testing.T) {
		t.Parallel()

		assert.True(t, contactsift.IsPhoneFalsePositive("2125550123", ""))
		assert.False(t, contactsift.IsPhoneFalsePositive("2125557890", ""))
	})

	t.Run("flags identifier context", func(t *testing.T) {
		t.Parallel()

		assert.True(t, contactsift.IsPhoneFalsePositive("5551234567", "Invoice date: reference 5551234567"))
		assert.True(t, contactsift.IsPhoneFalsePositive("5551234567", "Tracking number 5551234567"))
		assert.False(t, contactsift.IsPhoneFalsePositive("5551234567", "Call us at (555) 123-4567"))
	})
}

func TestFormatPhoneNumber(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "(555) 123-4567", contactsift.FormatPhoneNumber("5551234567"))
	assert.Equal(t, "+1 (555) 123-4567", contactsift.FormatPhoneNumber("15551234567"))
	assert.Equal(t, "+442079460958", contactsift.FormatPhoneNumber("+442079460958"))
	assert.Equal(t, "1234567", contactsift.FormatPhoneNumber("1234567"), "short numbers unchanged")
}

func TestClassifyPhoneType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, contactsift.ClassUSLocal, contactsift.ClassifyPhoneType("2125557890"))
	assert.Equal(t, contactsift.ClassTollFree, contactsift.ClassifyPhoneType("8005552368"))
	assert.Equal(t, contactsift.ClassTollFree, contactsift.ClassifyPhoneType("18885552368"))
	assert.Equal(t, contactsift.ClassInternational, contactsift.ClassifyPhoneType("+442079460958"))
	assert.Equal(t, contactsift.ClassOther, contactsift.ClassifyPhoneType("5551234"))
}
