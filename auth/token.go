package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers malformed tokens, bad signatures and tokens
// signed with a different secret.
var ErrInvalidToken = errors.New("invalid token")

// Claims carries the single identity claim a session token encodes.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"userId"`
}

// IssueToken signs a token for userID with HS256. No expiry claim is set:
// tokens stay valid until the signing secret rotates. Known trade-off,
// kept on purpose.
func IssueToken(userID int64, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: userID,
	})
	return token.SignedString(secret)
}

// ParseToken verifies the signature and returns the embedded user id.
func ParseToken(tokenString string, secret []byte) (int64, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil {
		return 0, ErrInvalidToken
	}
	if !token.Valid || claims.UserID == 0 {
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
}
