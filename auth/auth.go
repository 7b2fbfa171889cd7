package auth

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"classwindow/config"
	"classwindow/utils"
)

type loginRequest struct {
	Password string `json:"password"`
}

// LoginHandler authenticates the dashboard admin and returns a JWT token.
// This guards the reporting views only; class credentials on the sync
// endpoint are checked per operation and never produce a token.
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "password is required"})
		return
	}

	if err := utils.ComparePassword(config.ConfigInstance.AdminPasswordHash, req.Password); err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "wrong password"})
		return
	}

	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(time.Hour * 24).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(config.ConfigInstance.JWTSecret))
	if err != nil {
		log.Printf("Error signing token: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "message": "error generating token"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "token": tokenString})
}

// RequireAdmin verifies the Bearer token on reporting endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := r.Header.Get("Authorization")
		if tokenString == "" {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "authorization header required"})
			return
		}
		if len(tokenString) > 7 && tokenString[:7] == "Bearer " {
			tokenString = tokenString[7:]
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(config.ConfigInstance.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || claims["role"] != "admin" {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "invalid token claims"})
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
