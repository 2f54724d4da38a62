package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserUC struct {
	ensured []string
}

func (f *fakeUserUC) EnsureUser(_ context.Context, id, email, displayName string) (*domain.User, error) {
	f.ensured = append(f.ensured, id)
	return domain.NewUser(id, email, displayName), nil
}

func (f *fakeUserUC) GetByID(_ context.Context, id string) (*domain.User, error) {
	return domain.NewUser(id, "u@example.com", ""), nil
}

func (f *fakeUserUC) List(context.Context) ([]domain.User, error) { return nil, nil }

func (f *fakeUserUC) SetAdmin(context.Context, string, bool) error { return nil }

func newTestMux(userUC *fakeUserUC) *chi.Mux {
	mux := chi.NewRouter()
	mux.Use(identityMiddleware(userUC, logger.Discard{}))

	echo := func(w http.ResponseWriter, r *http.Request) {
		WriteSuccess(w, http.StatusOK, map[string]interface{}{
			"user_id": RequesterFromCtx(r.Context()).UserID,
		})
	}

	mux.With(requireIdentity).Get("/private", echo)
	mux.With(requireAdmin).Get("/admin", echo)
	return mux
}

func TestRequireIdentityRejectsAnonymous(t *testing.T) {
	mux := newTestMux(&fakeUserUC{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/private", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireIdentityPassesAuthenticated(t *testing.T) {
	mux := newTestMux(&fakeUserUC{})

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set(headerUserID, "user-1")

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user-1")
}

func TestRequireAdminRejectsRegularUser(t *testing.T) {
	mux := newTestMux(&fakeUserUC{})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set(headerUserID, "user-1")

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAdminPassesWithFlag(t *testing.T) {
	mux := newTestMux(&fakeUserUC{})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set(headerUserID, "admin-1")
	req.Header.Set(headerAdmin, "true")

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIdentityMiddlewareEnsuresProfile(t *testing.T) {
	userUC := &fakeUserUC{}
	mux := newTestMux(userUC)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set(headerUserID, "user-1")
	req.Header.Set(headerUserEmail, "user@example.com")

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"user-1"}, userUC.ensured)
}

func TestIdentityMiddlewareSkipsEnsureWithoutEmail(t *testing.T) {
	userUC := &fakeUserUC{}
	mux := newTestMux(userUC)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set(headerUserID, "user-1")

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, userUC.ensured)
}
