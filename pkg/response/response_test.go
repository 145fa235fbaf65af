package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/trackademic-api/pkg/errors"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
		wantErrors int
	}{
		{
			name:       "wrapped internal",
			err:        appErrors.Internal(errors.New("connection reset"), "failed to load course"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"failed to load course"}`,
			wantErrors: 1,
		},
		{
			name:       "plain error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"internal server error"}`,
			wantErrors: 1,
		},
		{
			name:       "not found",
			err:        appErrors.NotFound("Course", "CS999"),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Course CS999 not found"}`,
		},
		{
			name:       "validation",
			err:        appErrors.Clone(appErrors.ErrValidation, "Student code is required"),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Student code is required"}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, w := newContext()
			Error(c, tc.err)

			require.Equal(t, tc.wantStatus, w.Code)
			assert.JSONEq(t, tc.wantBody, w.Body.String())
			assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
			assert.Len(t, c.Errors, tc.wantErrors)
		})
	}
}

func TestDeleted(t *testing.T) {
	c, w := newContext()
	Deleted(c, "Course", "CS101")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Course CS101 deleted"}`, w.Body.String())
}

func TestCreatedAndNoCacheHeaders(t *testing.T) {
	c, w := newContext()
	Created(c, gin.H{"_id": "course3"})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"_id":"course3"}`, w.Body.String())
	assert.Equal(t, "no-cache", w.Header().Get("Pragma"))
}

func TestBytes(t *testing.T) {
	c, w := newContext()
	Bytes(c, "text/csv", "semester-report-A1-2024-1.csv", []byte("a,b\n"))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="semester-report-A1-2024-1.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "a,b\n", w.Body.String())
}
