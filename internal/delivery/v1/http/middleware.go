package http

import (
	"context"
	"net/http"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

// Заголовки, проставляемые внешним слоем аутентификации.
// Сервис доверяет им и сам токены не проверяет.
const (
	headerUserID    = "X-User-ID"
	headerUserEmail = "X-User-Email"
	headerUserName  = "X-User-Name"
	headerAdmin     = "X-Admin"
)

type requesterKey struct{}

// RequesterFromCtx возвращает идентичность запрашивающего, положенную
// identity-middleware. Пустой Requester — анонимный запрос.
func RequesterFromCtx(ctx context.Context) usecase.Requester {
	if req, ok := ctx.Value(requesterKey{}).(usecase.Requester); ok {
		return req
	}
	return usecase.Requester{}
}

// identityMiddleware извлекает идентичность из заголовков и кладёт её в контекст.
// При первом аутентифицированном запросе с e-mail профиль пользователя
// дозаписывается через EnsureUser; сбой апсерта запрос не блокирует.
func identityMiddleware(userUC usecase.UserUC, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := r.Header.Get(headerUserID)
			if userID == "" {
				next.ServeHTTP(w, r)
				return
			}

			req := usecase.Requester{
				UserID:  userID,
				IsAdmin: r.Header.Get(headerAdmin) == "true",
			}

			if email := r.Header.Get(headerUserEmail); email != "" {
				if _, err := userUC.EnsureUser(r.Context(), userID, email, r.Header.Get(headerUserName)); err != nil {
					log.Warnf("ensure user %s: %s", userID, err.Error())
				}
			}

			ctx := context.WithValue(r.Context(), requesterKey{}, req)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// requireIdentity отклоняет анонимные запросы.
func requireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if RequesterFromCtx(r.Context()).UserID == "" {
			WriteError(w, e.ErrNotAuthenticated)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireAdmin отклоняет запросы без админского флага.
func requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := RequesterFromCtx(r.Context())
		if req.UserID == "" {
			WriteError(w, e.ErrNotAuthenticated)
			return
		}
		if !req.IsAdmin {
			WriteError(w, e.ErrForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
