package cw20

import (
	"github.com/pkg/errors"
)

// Contract errors. Storage, parsing and arithmetic failures come from vmcontext and prototype.
var (
	ErrUnauthorized                     = errors.New("Unauthorized")
	ErrCannotSetOwnAccount              = errors.New("Cannot set to own account")
	ErrInvalidZeroAmount                = errors.New("Invalid zero amount")
	ErrExpired                          = errors.New("Allowance is expired")
	ErrNoAllowance                      = errors.New("No allowance for this account")
	ErrCannotExceedCap                  = errors.New("Minting cannot exceed the cap")
	ErrLogoTooBig                       = errors.New("Logo binary data exceeds 5KB limit")
	ErrInvalidXmlPreamble               = errors.New("Invalid xml preamble for SVG")
	ErrInvalidPngHeader                 = errors.New("Invalid png header")
	ErrInvalidLogo                      = errors.New("Logo must be exactly one of url, svg or png")
	ErrInvalidExpiration                = errors.New("Invalid expiration value")
	ErrDuplicateInitialBalanceAddresses = errors.New("Duplicate initial balance addresses")
)
