package auth

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"twohtsounds/globals"
	"twohtsounds/middleware"
	"twohtsounds/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = 12 * time.Hour

// Login checks the submitted password against the configured admin secret
// and, on success, issues an expiring admin session token. Prefer setting
// ADMIN_PASSWORD_HASH (bcrypt); ADMIN_PASSWORD is the plain fallback.
func Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Password is required")
		return
	}

	if !checkAdminPassword(input.Password) {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid password")
		return
	}

	tokenString, err := IssueAdminToken(time.Now())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   "Login successful",
		"token":     tokenString,
		"expiresIn": int(sessionTTL.Seconds()),
	})
}

// IssueAdminToken signs a session token carrying the admin role.
func IssueAdminToken(now time.Time) (string, error) {
	claims := &middleware.Claims{
		Role: []string{"admin"},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}

func checkAdminPassword(candidate string) bool {
	if hash := os.Getenv("ADMIN_PASSWORD_HASH"); hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)) == nil
	}

	expected := os.Getenv("ADMIN_PASSWORD")
	if expected == "" {
		expected = "admin123"
	}
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(expected)) == 1
}
