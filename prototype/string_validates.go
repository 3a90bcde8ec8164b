package prototype

import (
	"github.com/pkg/errors"
)

const (
	MinAccountNameLength = 3
	MaxAccountNameLength = 64
)

var (
	sErrLength  = errors.New("invalid length")
	sErrCharset = errors.New("invalid char")
)

// ValidAccountName accepts normalized account addresses: lowercase letters and digits only.
func ValidAccountName(s string) error {
	if len(s) < MinAccountNameLength || len(s) > MaxAccountNameLength {
		return sErrLength
	}
	for _, c := range s {
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'z') {
			return sErrCharset
		}
	}
	return nil
}
