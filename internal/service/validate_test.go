package service

import "testing"

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"ong@example.com", true},
		{"a.b+c@sub.example.org", true},
		{"no-at-sign", false},
		{"two@@example.com", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			err := validateEmail(tt.email)
			if (err == nil) != tt.valid {
				t.Errorf("validateEmail(%q) error = %v, valid = %v", tt.email, err, tt.valid)
			}
		})
	}
}

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"strong", "S3nh@forte", true},
		{"too short", "S3n@f", false},
		{"no uppercase", "s3nh@forte", false},
		{"no lowercase", "S3NH@FORTE", false},
		{"no digit", "Senh@forte", false},
		{"no symbol", "S3nhaforte", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePasswordStrength(tt.password)
			if (err == nil) != tt.valid {
				t.Errorf("validatePasswordStrength(%q) error = %v, valid = %v", tt.password, err, tt.valid)
			}
		})
	}
}

func TestValidateCNPJ(t *testing.T) {
	tests := []struct {
		name  string
		cnpj  string
		valid bool
	}{
		{"valid", "12345678000195", true},
		{"valid alt", "11444777000161", true},
		{"wrong check digit", "12345678000190", false},
		{"all same digits", "11111111111111", false},
		{"too short", "1234567800019", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCNPJ(tt.cnpj)
			if (err == nil) != tt.valid {
				t.Errorf("validateCNPJ(%q) error = %v, valid = %v", tt.cnpj, err, tt.valid)
			}
		})
	}
}
