package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"serviciosjt/internal/domain/entities"
	"serviciosjt/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const authUserKey = "auth_user"

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or malformed Authorization header", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized)
)

// AuthUser is the verified caller identity extracted from the bearer
// token. Token issuance belongs to the external identity provider;
// this service only verifies the signature and claims.

type AuthUser struct {
	ID          string
	Role        entities.Role
	DisplayName string
	Email       string
	Phone       string
}

type authClaims struct {
	Role        string `json:"role,omitempty"`
	DisplayName string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	jwt.RegisteredClaims
}

// Authenticator verifies HS256 bearer tokens.

type Authenticator struct {
	secret    []byte
	clockSkew time.Duration
}

func NewAuthenticator(secret string, clockSkew time.Duration) *Authenticator {
	return &Authenticator{secret: []byte(secret), clockSkew: clockSkew}
}

func (a *Authenticator) parse(tokenString string) (AuthUser, error) {
	claims := &authClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return a.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithLeeway(a.clockSkew))
	if err != nil {
		return AuthUser{}, err
	}
	if claims.Subject == "" {
		return AuthUser{}, errors.New("token has no subject")
	}

	user := AuthUser{
		ID:          claims.Subject,
		DisplayName: claims.DisplayName,
		Email:       claims.Email,
		Phone:       claims.Phone,
	}
	// The role claim is absent until onboarding completes.
	if role, err := entities.ParseRole(claims.Role); err == nil {
		user.Role = role
	}
	return user, nil
}

// RequireAuth rejects requests without a valid bearer token.
func (a *Authenticator) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}
		user, err := a.parse(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}
		c.Set(authUserKey, user)
		c.Next()
	}
}

// OptionalAuth attaches the caller identity when a valid token is
// present and lets anonymous requests through untouched.
func (a *Authenticator) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, ok := bearerToken(c); ok {
			if user, err := a.parse(tokenString); err == nil {
				c.Set(authUserKey, user)
			}
		}
		c.Next()
	}
}

// CurrentUser returns the verified caller set by RequireAuth or
// OptionalAuth.
func CurrentUser(c *gin.Context) (AuthUser, bool) {
	v, ok := c.Get(authUserKey)
	if !ok {
		return AuthUser{}, false
	}
	user, ok := v.(AuthUser)
	return user, ok
}

// SetCurrentUser injects a caller identity; test helper.
func SetCurrentUser(c *gin.Context, user AuthUser) {
	c.Set(authUserKey, user)
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}
