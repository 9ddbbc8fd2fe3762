package lookup

import (
	"errors"
	"fmt"
)

var ErrCEPNotFound = errors.New("cep not found")

// UpstreamStatusError carries a third-party lookup failure whose status code
// is passed through to the caller.
type UpstreamStatusError struct {
	Service    string
	StatusCode int
	Body       string
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("%s responded with status %d", e.Service, e.StatusCode)
}

// OnlyDigits strips everything but 0-9, the normalization both CEP and CNPJ
// inputs get before validation.
func OnlyDigits(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}
