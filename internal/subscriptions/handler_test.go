package subscriptions

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type stubStore struct {
	createFn    func(context.Context, CreateParams) (int64, error)
	setStatusFn func(context.Context, int64, Status) (bool, error)
}

func (s *stubStore) Create(ctx context.Context, params CreateParams) (int64, error) {
	if s.createFn != nil {
		return s.createFn(ctx, params)
	}
	return 0, nil
}

func (s *stubStore) SetStatus(ctx context.Context, id int64, status Status) (bool, error) {
	if s.setStatusFn != nil {
		return s.setStatusFn(ctx, id, status)
	}
	return false, nil
}

func (s *stubStore) GetByID(context.Context, int64) (Detail, error) {
	return Detail{}, nil
}

func (s *stubStore) ListByUser(context.Context, int64) ([]UserView, error) {
	return nil, nil
}

func (s *stubStore) ListByVendor(context.Context, int64) ([]VendorView, error) {
	return nil, nil
}

func newRouter(store Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewHandler(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
	h.RegisterRoutes(router)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Create(t *testing.T) {
	var captured CreateParams
	store := &stubStore{
		createFn: func(_ context.Context, params CreateParams) (int64, error) {
			captured = params
			return 11, nil
		},
	}
	router := newRouter(store)

	body := `{
		"user_id": 1,
		"vendor_id": 2,
		"plan_type": "monthly",
		"start_date": "2024-01-30",
		"end_date": "2024-02-02",
		"total_amount": 3000
	}`

	rec := postJSON(router, "/api/subscriptions", body)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]int64
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["id"] != 11 {
		t.Fatalf("expected id 11, got %d", resp["id"])
	}
	if captured.StartDate.String() != "2024-01-30" || captured.EndDate.String() != "2024-02-02" {
		t.Fatalf("unexpected date range: %s..%s", captured.StartDate, captured.EndDate)
	}
}

func TestHandler_CreateEndBeforeStart(t *testing.T) {
	router := newRouter(&stubStore{})

	body := `{
		"user_id": 1,
		"vendor_id": 2,
		"plan_type": "daily",
		"start_date": "2024-02-02",
		"end_date": "2024-01-30",
		"total_amount": 100
	}`

	rec := postJSON(router, "/api/subscriptions", body)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestHandler_CreateInvalidPlanType(t *testing.T) {
	router := newRouter(&stubStore{})

	body := `{
		"user_id": 1,
		"vendor_id": 2,
		"plan_type": "yearly",
		"start_date": "2024-01-01",
		"end_date": "2024-01-31",
		"total_amount": 100
	}`

	rec := postJSON(router, "/api/subscriptions", body)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestHandler_SetStatusUnknownID(t *testing.T) {
	store := &stubStore{
		setStatusFn: func(_ context.Context, id int64, _ Status) (bool, error) {
			return false, nil
		},
	}
	router := newRouter(store)

	req := httptest.NewRequest(http.MethodPatch, "/api/subscriptions/7/status",
		bytes.NewBufferString(`{"status":"paused"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp map[string]bool
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["changed"] {
		t.Fatal("expected changed=false for unknown id")
	}
}

func TestHandler_SetStatusRejectsUnknownValue(t *testing.T) {
	router := newRouter(&stubStore{})

	req := httptest.NewRequest(http.MethodPatch, "/api/subscriptions/7/status",
		bytes.NewBufferString(`{"status":"hibernating"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}
