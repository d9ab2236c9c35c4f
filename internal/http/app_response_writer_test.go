package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cafe-dashboard/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
)

func TestNewAppResponseWriter(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	appWriter := newAppResponseWriter(rr, 1)

	assert.NotNil(t, appWriter)
	assert.Nil(t, appWriter.svcError)
	assert.Equal(t, "", appWriter.ErrorCode())
}

func TestAppResponseWriter_SetServiceError_And_ErrorCode(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	appWriter := newAppResponseWriter(rr, 1)

	assert.Equal(t, "", appWriter.ErrorCode())

	svcErr1 := svcerrors.NewInvalidArgumentError("TEST_1000", "test error", nil)
	appWriter.SetServiceError(svcErr1)
	assert.Equal(t, svcErr1, appWriter.svcError)
	assert.Equal(t, "TEST_1000", appWriter.ErrorCode())

	svcErr2 := svcerrors.NewUpstreamUnavailableError("TEST_5020", nil)
	appWriter.SetServiceError(svcErr2)
	assert.Equal(t, svcErr2, appWriter.svcError)
	assert.Equal(t, "TEST_5020", appWriter.ErrorCode())

	appWriter.SetServiceError(nil)
	assert.Nil(t, appWriter.svcError)
	assert.Equal(t, "", appWriter.ErrorCode())
}

func TestAppResponseWriter_WrapsResponseWriter(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	appWriter := newAppResponseWriter(rr, 1)

	appWriter.WriteHeader(http.StatusCreated)
	assert.Equal(t, http.StatusCreated, appWriter.Status())
	assert.Equal(t, http.StatusCreated, rr.Code)

	appWriter.Write([]byte("test body"))
	assert.Equal(t, "test body", rr.Body.String())
	assert.Equal(t, http.StatusCreated, appWriter.Status())

	rr2 := httptest.NewRecorder()
	appWriter2 := newAppResponseWriter(rr2, 1)
	appWriter2.WriteHeader(http.StatusNotFound)
	appWriter2.Write([]byte("not found"))
	assert.Equal(t, http.StatusNotFound, appWriter2.Status())
	assert.Equal(t, http.StatusNotFound, rr2.Code)
}
