package user

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/up4/up4-api/internal/middleware"
	"github.com/up4/up4-api/internal/pkg/database"
)

type stubUserRepo struct {
	Repository
	user *User
	err  error
}

func (r *stubUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return r.user, r.err
}

func authedRequest(t *testing.T, userID uuid.UUID) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
	return req.WithContext(ctx)
}

func TestMeReturnsProfile(t *testing.T) {
	id := uuid.New()
	handler := NewHandler(&stubUserRepo{user: &User{ID: id, Email: "a@example.com", Name: "Ada", Age: 30}})

	rec := httptest.NewRecorder()
	handler.Me(rec, authedRequest(t, id))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestMeUnknownUserReturns404(t *testing.T) {
	handler := NewHandler(&stubUserRepo{})

	rec := httptest.NewRecorder()
	handler.Me(rec, authedRequest(t, uuid.New()))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestMeStoreOutageReturns503(t *testing.T) {
	handler := NewHandler(&stubUserRepo{
		err: database.MapError("user get by id", context.DeadlineExceeded),
	})

	rec := httptest.NewRecorder()
	handler.Me(rec, authedRequest(t, uuid.New()))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 during store outage, got %d: %s", rec.Code, rec.Body.String())
	}
}
