package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/SMC-DeskService/internal/api/handlers"
)

const (
	msgMissingToken  = "отсутствует токен авторизации"
	msgInvalidToken  = "недействительный токен"
	msgInvalidClaims = "в токене отсутствует ID пользователя"
)

type userIDKey struct{}

// Auth проверяет Bearer JWT (HS256) и кладёт ID пользователя в контекст
// ID берётся из claim userId, при его отсутствии из sub
func Auth(secret string) func(http.Handler) http.Handler {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			token, err := jwt.Parse(strings.TrimSpace(raw), keyFunc,
				jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				handlers.RespondUnauthorized(w, msgInvalidClaims)
				return
			}

			userID := claimString(claims, "userId")
			if userID == "" {
				userID = claimString(claims, "sub")
			}
			if userID == "" {
				handlers.RespondUnauthorized(w, msgInvalidClaims)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// WithUserID кладёт ID пользователя в контекст
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// GetUserID достаёт ID пользователя, положенный Auth
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey{}).(string)
	return userID, ok && userID != ""
}

func claimString(claims jwt.MapClaims, name string) string {
	switch v := claims[name].(type) {
	case string:
		return v
	case float64:
		// числовые ID приходят из JSON как float64
		return fmt.Sprintf("%.0f", v)
	default:
		return ""
	}
}
