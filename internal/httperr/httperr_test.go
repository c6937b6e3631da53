package httperr

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func respondStatus(t *testing.T, err error) int {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	Respond(c, err)
	return rec.Code
}

func TestRespondKinds(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Validation("bad input"), http.StatusBadRequest},
		{NotFound("vendor %d not found", 3), http.StatusNotFound},
		{Conflict("already cancelled"), http.StatusConflict},
		{Storage(errors.New("boom"), "query failed"), http.StatusInternalServerError},
		{sql.ErrNoRows, http.StatusNotFound},
		{fmt.Errorf("select: %w", sql.ErrNoRows), http.StatusNotFound},
		{errors.New("opaque"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if got := respondStatus(t, tc.err); got != tc.want {
			t.Fatalf("Respond(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Storage(cause, "insert delivery")
	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped cause to survive errors.Is")
	}
}
