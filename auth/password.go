package auth

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// passwordSymbols is the set of characters that count as "special" for the
// password policy.
const passwordSymbols = "$&+,:;=?@#|'<>.^*()%!-"

var (
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrPasswordTooLong  = errors.New("password must be at most 100 characters")
	ErrPasswordNoDigit  = errors.New("password must contain at least one digit")
	ErrPasswordNoUpper  = errors.New("password must contain at least one uppercase character")
	ErrPasswordNoSymbol = errors.New("password must contain at least one special character")
)

// ValidatePassword checks the signup password policy. The plaintext is
// never stored or logged; callers hash it immediately after validation.
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return ErrPasswordTooShort
	}
	if len(password) > 100 {
		return ErrPasswordTooLong
	}

	var hasDigit, hasUpper, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsUpper(r):
			hasUpper = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		}
	}
	if !hasDigit {
		return ErrPasswordNoDigit
	}
	if !hasUpper {
		return ErrPasswordNoUpper
	}
	if !hasSymbol {
		return ErrPasswordNoSymbol
	}
	return nil
}

// HashPassword produces a salted bcrypt digest. Hashing the same password
// twice yields different digests because bcrypt salts per call.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether password matches the stored digest.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
