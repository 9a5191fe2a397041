package jwt

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/techdigi/hr-backoffice/internal/domain/user"
)

// Claims are the identity fields carried by an access token.
type Claims struct {
	UserID string
	Role   user.Role
}

type Service interface {
	GenerateToken(userID string, role user.Role) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	TokenCookie(token string, expiresAt int64) *http.Cookie
	ClearCookie() *http.Cookie
	CookieName() string
}

type JWTService struct {
	expiration time.Duration
	cookieName string
	secure     bool
	tokenAuth  *jwtauth.JWTAuth
	now        func() time.Time
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, expiration time.Duration, cookieName string, secure bool) Service {
	return &JWTService{
		expiration: expiration,
		cookieName: cookieName,
		secure:     secure,
		tokenAuth:  jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		now:        time.Now,
	}
}

func (j *JWTService) GenerateToken(userID string, role user.Role) (token string, expiresAt int64, err error) {
	expiresAt = j.now().Add(j.expiration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"id":   userID,
		"role": string(role),
		"exp":  expiresAt,
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) CookieName() string {
	return j.cookieName
}

func (j *JWTService) TokenCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     j.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		Secure:   j.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (j *JWTService) ClearCookie() *http.Cookie {
	return &http.Cookie{
		Name:     j.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   j.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClaimsFromToken extracts identity claims from a verified token.
func ClaimsFromToken(token jwt.Token) (Claims, error) {
	raw, ok := token.Get("id")
	if !ok {
		return Claims{}, errors.New("token has no id claim")
	}
	id, ok := raw.(string)
	if !ok || id == "" {
		return Claims{}, fmt.Errorf("token id claim has type %T", raw)
	}

	var role user.Role
	if r, ok := token.Get("role"); ok {
		if s, ok := r.(string); ok {
			role = user.Role(s)
		}
	}
	return Claims{UserID: id, Role: role}, nil
}
