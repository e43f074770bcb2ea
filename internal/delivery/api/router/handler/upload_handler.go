package handler

import (
	"log/slog"
	"net/http"

	"github.com/Ulrich-Yao/website/internal/delivery/api/response"
	"github.com/Ulrich-Yao/website/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UploadHandlerParams holds dependencies for UploadHandler, injected by Fx.
type UploadHandlerParams struct {
	fx.In

	Storage service.FileStorage
	Logger  *slog.Logger
}

// UploadHandler accepts multipart image uploads from the dashboard and
// returns the public URL the stored file is served from.
type UploadHandler struct {
	storage service.FileStorage
	logger  *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler.
func NewUploadHandler(params UploadHandlerParams) *UploadHandler {
	return &UploadHandler{
		storage: params.Storage,
		logger:  params.Logger,
	}
}

// Upload stores the file posted under the "file" form field.
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Missing file upload")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer src.Close()

	url, err := h.storage.Save(c.Request().Context(), fileHeader.Filename, src)
	if err != nil {
		return errors.Wrap(err, "failed to store uploaded file")
	}

	h.logger.Info("File uploaded",
		slog.String("filename", fileHeader.Filename),
		slog.String("url", url),
		slog.Int64("size", fileHeader.Size))

	return response.Success(c, http.StatusCreated, map[string]string{"url": url})
}
