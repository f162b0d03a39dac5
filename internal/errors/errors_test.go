package errors

import (
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError(t *testing.T) {
	err := New(http.StatusNotFound, "NO_DATASET", "No dataset has been uploaded")
	assert.Equal(t, "No dataset has been uploaded", err.Error())
	assert.Equal(t, http.StatusNotFound, err.StatusCode)

	v := ErrValidation("file", "A spreadsheet file is required")
	assert.Equal(t, http.StatusBadRequest, v.StatusCode)
	assert.Equal(t, "VALIDATION_FAILED", v.ErrorCode)
	assert.Equal(t, map[string]string{"field": "file"}, v.Details)
}

func TestHandleErrorRendersAPIError(t *testing.T) {
	h := NewErrorHandler(slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/dataset", nil)
	rec := httptest.NewRecorder()
	h.HandleError(rec, req, ErrBadUpload("The file could not be read as a spreadsheet"))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "UPLOAD_DECODE_FAILED")
}

func TestHandleErrorHidesInternalDetail(t *testing.T) {
	h := NewErrorHandler(slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/students", nil)
	rec := httptest.NewRecorder()
	h.HandleError(rec, req, errors.New("pgx: connection refused"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "pgx")
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
}

func TestHandleErrorNil(t *testing.T) {
	h := NewErrorHandler(slog.Default())
	rec := httptest.NewRecorder()
	h.HandleError(rec, httptest.NewRequest(http.MethodGet, "/", nil), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}
