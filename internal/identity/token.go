package identity

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims содержит проверенные утверждения внешнего провайдера идентификации.
// Subject содержит стабильный идентификатор пользователя.
type Claims struct {
	Email   string `json:"email,omitempty"`
	Name    string `json:"name,omitempty"`
	Picture string `json:"picture,omitempty"`
	jwt.RegisteredClaims
}

// Verifier проверяет id-токены внешнего провайдера идентификации.
// Провайдер для приложения непрозрачен: здесь только проверка подписи,
// издателя и срока действия.
type Verifier struct {
	secret []byte
	issuer string
	devTTL time.Duration
}

// NewVerifier инициализирует проверку id-токенов.
func NewVerifier(secret string, issuer string, devTTL time.Duration) *Verifier {
	return &Verifier{
		secret: []byte(secret),
		issuer: issuer,
		devTTL: devTTL,
	}
}

// VerifyIDToken валидирует id-токен и возвращает claims.
func (v *Verifier) VerifyIDToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}), jwt.WithIssuer(v.issuer))
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("token is invalid")
	}

	if claims.Subject == "" {
		return nil, errors.New("token subject is missing")
	}

	return claims, nil
}

// IssueIDToken выпускает id-токен для локальной разработки и тестов.
// В production токены выпускает внешний провайдер.
func (v *Verifier) IssueIDToken(uid, email, name, picture string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(v.devTTL)

	claims := Claims{
		Email:   email,
		Name:    name,
		Picture: picture,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    v.issuer,
			Subject:   uid,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(v.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}
