package handler

import (
	"io"
	"log/slog"
	"net/http"

	"taponn/internal/delivery/api/response"
	domainerrors "taponn/internal/domain/errors"
	"taponn/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UploadHandlerParams holds dependencies for UploadHandler, injected by Fx.
type UploadHandlerParams struct {
	fx.In

	UploadUC usecase.UploadUsecase
	Logger   *slog.Logger
}

// UploadHandler accepts multipart image uploads.
type UploadHandler struct {
	uploadUC usecase.UploadUsecase
	logger   *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler.
func NewUploadHandler(params UploadHandlerParams) *UploadHandler {
	return &UploadHandler{
		uploadUC: params.UploadUC,
		logger:   params.Logger,
	}
}

// UploadProfileImage stores the "image" part and, when profileId is sent, sets it as that profile's avatar.
func (h *UploadHandler) UploadProfileImage(c echo.Context) error {
	profileID, err := optionalFormID(c, "profileId")
	if err != nil {
		return err
	}

	file, err := readFormFile(c, "image")
	if err != nil {
		return err
	}

	out, err := h.uploadUC.UploadProfileImage(c.Request().Context(), actorOf(c), profileID, file)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newUploadResponse(out))
}

// UploadQRLogo stores the "logo" part and, when qrId is sent, sets it as that code's logo.
func (h *UploadHandler) UploadQRLogo(c echo.Context) error {
	qrID, err := optionalFormID(c, "qrId")
	if err != nil {
		return err
	}

	file, err := readFormFile(c, "logo")
	if err != nil {
		return err
	}

	out, err := h.uploadUC.UploadQRLogo(c.Request().Context(), actorOf(c), qrID, file)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newUploadResponse(out))
}

// ServeFile streams a previously uploaded file by its storage key.
func (h *UploadHandler) ServeFile(c echo.Context) error {
	file, err := h.uploadUC.OpenFile(c.Request().Context(), c.Param("*"))
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=31536000, immutable")

	return c.Blob(http.StatusOK, file.ContentType, file.Data)
}

func readFormFile(c echo.Context, field string) (*usecase.UploadFile, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(field + " file is required")
	}

	src, err := header.Open()
	if err != nil {
		return nil, errors.Wrap(err, "open uploaded file")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, errors.Wrap(err, "read uploaded file")
	}

	return &usecase.UploadFile{Filename: header.Filename, Data: data}, nil
}

func newUploadResponse(out *usecase.UploadOutput) *UploadResponse {
	return &UploadResponse{
		URL:         out.URL,
		Key:         out.Key,
		ContentType: out.ContentType,
		Size:        out.Size,
	}
}
