// Package verification derives and checks the codes that gate teacher registration.
//
// The derived code is a checksum of the applicant's name, reproducible by anyone
// who knows the algorithm. It is a convenience check, not a credential; deployments
// that need real access control use invite mode instead.
package verification

import (
	"math"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"

	domainerrors "portal/internal/domain/errors"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// MinCode is the smallest code DeriveCode returns.
	MinCode = 100000
	// MaxCode is the largest code DeriveCode returns.
	MaxCode = 999999
	// MaxNameLength bounds the name, in characters, so the weighted sum stays exact.
	MaxNameLength = 256

	sumScale   = 1234567
	sumModulus = 997
	codeSpan   = MaxCode - MinCode + 1
)

// DeriveCode computes the 6-digit code for a display name.
//
// The name is upper-cased with full Unicode case mapping ("ß" becomes "SS") and each UTF-16 code unit c at position i adds
// c*(i+1)^2 to a sum S. The code is (floor(sqrt(S*1234567)) + S%997) % 900000 + 100000.
func DeriveCode(name string) (int, error) {
	if name == "" {
		return 0, domainerrors.ErrInvalidInput.WithDetails("name is required")
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return 0, domainerrors.ErrInvalidInput.WithDetails("name is too long")
	}

	var sum int64
	for i, unit := range utf16.Encode([]rune(cases.Upper(language.Und).String(name))) {
		weight := int64(i + 1)
		sum += int64(unit) * weight * weight
	}

	transformed := int64(math.Floor(math.Sqrt(float64(sum)*sumScale))) + sum%sumModulus

	return int(transformed%codeSpan) + MinCode, nil
}

// DeriveCodeString returns DeriveCode as the text a user would type.
func DeriveCodeString(name string) (string, error) {
	code, err := DeriveCode(name)
	if err != nil {
		return "", err
	}

	return strconv.Itoa(code), nil
}
