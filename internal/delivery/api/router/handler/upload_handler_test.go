package handler

import (
	"bytes"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	mockService "github.com/Ulrich-Yao/website/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func multipartUpload(t *testing.T, field, filename, content string) (*http.Request, error) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write([]byte(content)); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req := httptest.NewRequest(http.MethodPost, "/api/uploads", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	return req, nil
}

func TestUploadHandler_Upload(t *testing.T) {
	storage := mockService.NewMockFileStorage(t)
	storage.On("Save", mock.Anything, "banner.png", mock.Anything).
		Return("/uploads/1700000000000-banner.png", nil)

	h := &UploadHandler{
		storage: storage,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	e := echo.New()
	req, err := multipartUpload(t, "file", "banner.png", "png-bytes")
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Upload(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "/uploads/1700000000000-banner.png")
}

func TestUploadHandler_Upload_MissingFile(t *testing.T) {
	storage := mockService.NewMockFileStorage(t)

	h := &UploadHandler{
		storage: storage,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	e := echo.New()
	req, err := multipartUpload(t, "wrong-field", "banner.png", "png-bytes")
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Upload(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	storage.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}
