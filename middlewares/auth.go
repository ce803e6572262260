package middlewares

import (
	"api/utils"
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const UserContextKey = contextKey("auth_user")

const (
	TOKEN_TTL          = 24 * time.Hour
	TOKEN_TTL_REMEMBER = 30 * 24 * time.Hour
)

type AuthClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func GenerateToken(userID, email string, remember bool) (string, error) {
	ttl := TOKEN_TTL
	if remember {
		ttl = TOKEN_TTL_REMEMBER
	}

	claims := AuthClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv(utils.JWT_SECRET)))
}

func parseToken(tokenStr string) (*AuthClaims, error) {
	claims := &AuthClaims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (any, error) {
		return []byte(os.Getenv(utils.JWT_SECRET)), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	return claims, nil
}

func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Authorization")
		if token == "" {
			utils.SendResponse(w, http.StatusUnauthorized, "Missing authorization token", nil, 0)
			return
		}
		token = strings.TrimPrefix(token, "Bearer ")

		claims, err := parseToken(token)
		if err != nil {
			utils.SendResponse(w, http.StatusUnauthorized, "Invalid or expired token", nil, 0)
			return
		}

		user := AuthUser{ID: claims.UserID, Email: claims.Email}
		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserFromContext returns the authenticated user placed by Auth. The zero
// value is returned for routes mounted without the middleware.
func UserFromContext(ctx context.Context) AuthUser {
	user, _ := ctx.Value(UserContextKey).(AuthUser)
	return user
}
