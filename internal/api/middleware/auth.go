package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
)

type contextKey string

const userIDKey contextKey = "userID"

const (
	msgMissingToken = "требуется аутентификация"
	msgInvalidToken = "недействительный токен"
)

// TokenParser интерфейс проверки токена аутентификации
type TokenParser interface {
	ParseToken(token string) (int64, error)
}

// NewAuth создает middleware аутентификации по Bearer токену
// ID пользователя из токена кладется в контекст запроса
func NewAuth(tokens TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			userID, err := tokens.ParseToken(token)
			if err != nil {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// WithUserID кладет ID пользователя в контекст запроса
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserID извлекает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
