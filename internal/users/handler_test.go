package users

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type stubStore struct {
	searchFn func(context.Context, string, string) (User, error)
}

func (s *stubStore) List(context.Context) ([]User, error) {
	return nil, nil
}

func (s *stubStore) GetByID(context.Context, int64) (User, error) {
	return User{}, sql.ErrNoRows
}

func (s *stubStore) Create(context.Context, CreateParams) (int64, error) {
	return 1, nil
}

func (s *stubStore) Search(ctx context.Context, email, phone string) (User, error) {
	if s.searchFn != nil {
		return s.searchFn(ctx, email, phone)
	}
	return User{}, sql.ErrNoRows
}

func newRouter(store Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewHandler(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
	h.RegisterRoutes(router)
	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_SearchRequiresEmailOrPhone(t *testing.T) {
	router := newRouter(&stubStore{})

	rec := get(router, "/api/users/search")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandler_SearchPrefersEmail(t *testing.T) {
	var gotEmail, gotPhone string
	store := &stubStore{
		searchFn: func(_ context.Context, email, phone string) (User, error) {
			gotEmail, gotPhone = email, phone
			return User{ID: 2, Name: "Ravi"}, nil
		},
	}
	router := newRouter(store)

	rec := get(router, "/api/users/search?email=ravi@example.com&phone=555")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotEmail != "ravi@example.com" || gotPhone != "555" {
		t.Fatalf("unexpected search args: %q %q", gotEmail, gotPhone)
	}
}

func TestHandler_SearchNoMatch(t *testing.T) {
	router := newRouter(&stubStore{})

	rec := get(router, "/api/users/search?phone=000")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestHandler_GetUnknownUser(t *testing.T) {
	router := newRouter(&stubStore{})

	rec := get(router, "/api/users/9")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
