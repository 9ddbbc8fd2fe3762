package service

import (
	"net/mail"
	"unicode"

	"wedonate/pkg/types"
)

func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return types.NewValidationError("invalid email format")
	}
	return nil
}

// validatePasswordStrength enforces the credential policy: minimum length 8
// with at least one uppercase, one lowercase, one digit and one symbol.
func validatePasswordStrength(password string) error {
	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case !unicode.IsSpace(r):
			symbol = true
		}
	}

	if len(password) < 8 || !upper || !lower || !digit || !symbol {
		return types.NewValidationError("password does not meet the security requirements")
	}

	return nil
}

// validateCNPJ checks the two verification digits of a normalized (digits
// only) CNPJ.
func validateCNPJ(cnpj string) error {
	if len(cnpj) != 14 {
		return types.NewValidationError("invalid CNPJ format")
	}

	allSame := true
	for i := 1; i < len(cnpj); i++ {
		if cnpj[i] != cnpj[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return types.NewValidationError("invalid CNPJ format")
	}

	if int(cnpj[12]-'0') != cnpjCheckDigit(cnpj[:12]) ||
		int(cnpj[13]-'0') != cnpjCheckDigit(cnpj[:13]) {
		return types.NewValidationError("invalid CNPJ format")
	}

	return nil
}

func cnpjCheckDigit(digits string) int {
	// Weights cycle 2..9 from the rightmost digit leftward.
	weight := 2
	sum := 0
	for i := len(digits) - 1; i >= 0; i-- {
		sum += int(digits[i]-'0') * weight
		weight++
		if weight > 9 {
			weight = 2
		}
	}

	d := 11 - sum%11
	if d >= 10 {
		return 0
	}
	return d
}
