package common

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renovateiq/renovateiq-backend/internal/pkg/apperror"
)

func TestClassifyStoreError(t *testing.T) {
	constraint := errors.New(`pq: duplicate key value violates unique constraint "contractors_pkey"`)
	appErr := ClassifyStoreError(constraint)
	assert.Equal(t, apperror.ErrCodeFailedPrecondition, appErr.Code)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	assert.Contains(t, appErr.Message, "duplicate key")
}

func TestClassifyStoreErrorMasksInfrastructure(t *testing.T) {
	for _, raw := range []string{
		"sql: transaction has already been committed",
		"dial tcp: connection refused",
		"context deadline exceeded: timeout",
	} {
		appErr := ClassifyStoreError(errors.New(raw))
		assert.Equal(t, apperror.ErrCodeInternal, appErr.Code, raw)
		assert.Equal(t, "Internal server error", appErr.Message, raw)
	}
}

func TestClassifyStoreErrorKeepsAppError(t *testing.T) {
	original := apperror.New(apperror.ErrCodeNotFound, "Template not found")
	appErr := ClassifyStoreError(original)
	assert.Same(t, original, appErr)
}
