package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dayflow-hq/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow-hq/hrms-backend-go/internal/domain/auth"
	"github.com/dayflow-hq/hrms-backend-go/internal/domain/leave"
	"github.com/dayflow-hq/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, map[string]string{"key": "value"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decode(t, rec)
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Message)
	assert.NotNil(t, resp.Data)
}

func TestSuccessWithCount(t *testing.T) {
	rec := httptest.NewRecorder()
	SuccessWithCount(rec, []string{"a", "b"}, 2)

	resp := decode(t, rec)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Count)
	assert.Equal(t, 2, *resp.Count)
}

func TestHandleErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"deactivated account", user.ErrAccountDeactivated, http.StatusForbidden},
		{"permission denied", user.ErrPermissionDenied, http.StatusForbidden},
		{"ownership required", user.ErrOwnershipRequired, http.StatusForbidden},
		{"duplicate signup", user.ErrEmailExists, http.StatusBadRequest},
		{"already checked in", attendance.ErrAlreadyCheckedIn, http.StatusBadRequest},
		{"not checked in", attendance.ErrNotCheckedIn, http.StatusBadRequest},
		{"record not found", attendance.ErrRecordNotFound, http.StatusNotFound},
		{"insufficient balance", leave.ErrInsufficientBalance, http.StatusBadRequest},
		{"already processed", leave.ErrAlreadyProcessed, http.StatusBadRequest},
		{"leave not found", leave.ErrRequestNotFound, http.StatusNotFound},
		{"unexpected fault", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		rec := httptest.NewRecorder()
		HandleError(rec, c.err)
		assert.Equal(t, c.code, rec.Code, c.name)

		resp := decode(t, rec)
		assert.False(t, resp.Success, c.name)
		assert.NotEmpty(t, resp.Message, c.name)
	}
}

func TestHandleErrorSurfacesFaultMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, errors.New("store unavailable"))

	resp := decode(t, rec)
	assert.Equal(t, "store unavailable", resp.Message)
}

func TestHandleErrorValidation(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "email", Message: "a valid email is required"},
	}

	rec := httptest.NewRecorder()
	HandleError(rec, errs)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "a valid email is required", resp.Errors["email"])
}
