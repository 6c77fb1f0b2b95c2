package utils

import "testing"

func TestValidatePhone(t *testing.T) {
	valid := []string{"+27715991599", "27821234567", "+1 (555) 123-4567"}
	for _, phone := range valid {
		if !ValidatePhone(phone) {
			t.Errorf("expected %q to be valid", phone)
		}
	}

	invalid := []string{"", "not-a-number", "+0123", "9"}
	for _, phone := range invalid {
		if ValidatePhone(phone) {
			t.Errorf("expected %q to be invalid", phone)
		}
	}
}
