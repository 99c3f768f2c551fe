package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vmshq/VMS-VisitorService/internal/api/handlers"
	"github.com/vmshq/VMS-VisitorService/internal/service/auth"
)

type claimsCtxKey struct{}

// TokenParser проверка JWT токенов персонала
type TokenParser interface {
	ParseToken(tokenString string) (*auth.Claims, error)
}

// Auth проверяет Bearer токен и кладет claims в контекст запроса
func Auth(parser TokenParser, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				handlers.RespondUnauthorized(w, "требуется авторизация")
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				handlers.RespondUnauthorized(w, "некорректный заголовок Authorization")
				return
			}

			claims, err := parser.ParseToken(parts[1])
			if err != nil {
				logger.Warn("auth: token rejected: %v", err)
				handlers.RespondUnauthorized(w, "недействительный токен")
				return
			}

			ctx := context.WithValue(r.Context(), claimsCtxKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext достает claims авторизованного пользователя
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsCtxKey{}).(*auth.Claims)
	return claims, ok
}
