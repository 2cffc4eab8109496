package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"twohtsounds/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

// JWT claims for the admin session token. There is a single shared admin
// credential, so the claims carry a role rather than a user identity.
type Claims struct {
	Role []string `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) IsAdmin() bool {
	for _, r := range c.Role {
		if r == "admin" {
			return true
		}
	}
	return false
}

// Authenticate guards admin routes: a valid admin token must be presented
// as "Authorization: Bearer <token>".
func Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		claims, err := ValidateJWT(r.Header.Get("Authorization"))
		if err != nil || !claims.IsAdmin() {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), globals.RoleKey, claims.Role)
		next(w, r.WithContext(ctx), ps)
	}
}

// OptionalAuth attaches the role to the context when a valid token is
// present and proceeds regardless. Public handlers use it to widen their
// behavior for administrators.
func OptionalAuth(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if claims, err := ValidateJWT(r.Header.Get("Authorization")); err == nil {
			r = r.WithContext(context.WithValue(r.Context(), globals.RoleKey, claims.Role))
		}
		next(w, r, ps)
	}
}

// IsAdminRequest reports whether the request context carries the admin role.
func IsAdminRequest(r *http.Request) bool {
	roles, ok := r.Context().Value(globals.RoleKey).([]string)
	if !ok {
		return false
	}
	for _, role := range roles {
		if role == "admin" {
			return true
		}
	}
	return false
}

// ValidateJWT parses a "Bearer <token>" header value and returns its claims.
func ValidateJWT(tokenString string) (*Claims, error) {
	if !strings.HasPrefix(tokenString, "Bearer ") {
		return nil, fmt.Errorf("invalid token format")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString[7:], claims, func(token *jwt.Token) (any, error) {
		return globals.JwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("unauthorized: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("unauthorized: token rejected")
	}
	return claims, nil
}
