package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UserClaimsKey is the fiber Locals key holding *UserClaims. It is a string so
// ctx.Context().Value resolves it through fasthttp user values.
const UserClaimsKey = "user_claims"

type UserClaims struct {
	UserID string   `json:"user_id"`
	CI     string   `json:"ci,omitempty"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

// JWTManager signs and validates HS256 tokens with the configured secret.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTManager(secret string) *JWTManager {
	return &JWTManager{secret: []byte(secret), ttl: 72 * time.Hour}
}

func (m *JWTManager) GenerateToken(userID, ci string, roles []string) (string, error) {
	claims := UserClaims{
		UserID: userID,
		CI:     ci,
		Roles:  roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *JWTManager) ValidateToken(tokenString string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*UserClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrTokenSignatureInvalid
}
