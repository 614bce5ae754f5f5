package utils

import (
	"errors"
	"os"
	"strings"
	"testing"

	kerrors "github.com/PolarWolf314/envseal/internal/errors"
)

func TestParseAssignment(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expectedName  string
		expectedValue string
	}{
		{"Simple", "API_KEY=abc123", "API_KEY", "abc123"},
		{"EmptyValue", "EMPTY=", "EMPTY", ""},
		{"ValueWithEquals", "DSN=user=admin;pass=x", "DSN", "user=admin;pass=x"},
		{"ValueWithSpaces", "GREETING= hello world ", "GREETING", " hello world "},
		{"LowercaseName", "db_password=p", "db_password", "p"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			name, value, err := ParseAssignment(tc.input)
			if err != nil {
				t.Fatalf("ParseAssignment(%q) failed: %v", tc.input, err)
			}
			if name != tc.expectedName || value != tc.expectedValue {
				t.Errorf("ParseAssignment(%q) = (%q, %q), expected (%q, %q)",
					tc.input, name, value, tc.expectedName, tc.expectedValue)
			}
		})
	}
}

func TestParseAssignmentErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{"NoEquals", "API_KEY", kerrors.ErrInvalidAssignment},
		{"EmptyName", "=secret-value", kerrors.ErrInvalidAssignment},
		{"Empty", "", kerrors.ErrInvalidAssignment},
		{"NulInName", "A\x00B=secret-value", kerrors.ErrInvalidSecretName},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := ParseAssignment(tc.input)
			if !errors.Is(err, tc.expected) {
				t.Fatalf("Expected %v, got %v", tc.expected, err)
			}
			if strings.Contains(err.Error(), "secret-value") {
				t.Errorf("Error must not contain the value: %v", err)
			}
		})
	}
}

func TestValidateSecretName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Upper", "API_KEY", false},
		{"Lower", "api_key", false},
		{"Unicode", "名前", false},
		{"Dotted", "app.port", false},
		{"Empty", "", true},
		{"Equals", "A=B", true},
		{"Nul", "A\x00", true},
		{"InvalidUTF8", "A\xff", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSecretName(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ValidateSecretName(%q) = %v, wantErr %t", tc.input, err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, kerrors.ErrInvalidSecretName) {
				t.Errorf("Expected ErrInvalidSecretName, got %v", err)
			}
		})
	}
}

func TestFormatNames(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	result := FormatNames([]string{"API_KEY", "DATABASE_URL"})
	expected := "\n    - API_KEY\n    - DATABASE_URL\n"
	if result != expected {
		t.Errorf("FormatNames() = %q, expected %q", result, expected)
	}
}
