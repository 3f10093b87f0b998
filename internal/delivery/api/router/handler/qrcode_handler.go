package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"taponn/internal/delivery/api/response"
	"taponn/internal/domain/entity"
	"taponn/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const formatDataURL = "dataurl"

// QRCodeHandlerParams holds dependencies for QRCodeHandler, injected by Fx.
type QRCodeHandlerParams struct {
	fx.In

	QRCodeUC usecase.QRCodeUsecase
	Logger   *slog.Logger
}

// QRCodeHandler holds dependencies for QR code handlers.
type QRCodeHandler struct {
	qrCodeUC usecase.QRCodeUsecase
	logger   *slog.Logger
}

// NewQRCodeHandler is the constructor for QRCodeHandler.
func NewQRCodeHandler(params QRCodeHandlerParams) *QRCodeHandler {
	return &QRCodeHandler{
		qrCodeUC: params.QRCodeUC,
		logger:   params.Logger,
	}
}

// QRSettingsRequest carries render and scan-limit settings. Absent fields keep
// their current values; an explicit null clears expiresAt or maxScans.
type QRSettingsRequest struct {
	Size                 *int                `json:"size" validate:"omitempty,min=64,max=2048"`
	ForegroundColor      *string             `json:"foregroundColor" validate:"omitempty,hexcolor"`
	BackgroundColor      *string             `json:"backgroundColor" validate:"omitempty,hexcolor"`
	ErrorCorrectionLevel *string             `json:"errorCorrectionLevel" validate:"omitempty,oneof=L M Q H"`
	Margin               *int                `json:"margin" validate:"omitempty,gte=0,max=32"`
	ExpiresAt            nullable[time.Time] `json:"expiresAt"`
	MaxScans             nullable[int]       `json:"maxScans"`
}

func (r *QRSettingsRequest) settings() *entity.QRSettingsPatch {
	if r == nil {
		return nil
	}

	return &entity.QRSettingsPatch{
		Size:                 r.Size,
		ForegroundColor:      r.ForegroundColor,
		BackgroundColor:      r.BackgroundColor,
		ErrorCorrectionLevel: r.ErrorCorrectionLevel,
		Margin:               r.Margin,
		ExpiresAt:            r.ExpiresAt.Value,
		MaxScans:             r.MaxScans.Value,
		ClearExpiresAt:       r.ExpiresAt.isNull(),
		ClearMaxScans:        r.MaxScans.isNull(),
	}
}

// nullable tells an absent JSON field apart from an explicit null.
type nullable[T any] struct {
	Set   bool
	Value *T
}

func (n *nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil

		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v

	return nil
}

func (n nullable[T]) isNull() bool {
	return n.Set && n.Value == nil
}

// QRDataRequest wraps the type-specific content, e.g. {"content": {"url": "..."}}.
type QRDataRequest struct {
	Content map[string]any `json:"content"`
}

// CreateQRCodeRequest represents the request body for creating a QR code
type CreateQRCodeRequest struct {
	Name     string             `json:"name" validate:"required,max=100"`
	Type     string             `json:"type"`
	Profile  string             `json:"profile" validate:"required,uuid"`
	Data     QRDataRequest      `json:"data"`
	Settings *QRSettingsRequest `json:"settings"`
}

// UpdateQRCodeRequest represents a partial QR code update
type UpdateQRCodeRequest struct {
	Name     *string            `json:"name" validate:"omitempty,min=1,max=100"`
	IsActive *bool              `json:"isActive"`
	Settings *QRSettingsRequest `json:"settings"`
	Data     *QRDataRequest     `json:"data"`
}

func (r *UpdateQRCodeRequest) patch() entity.QRCodePatch {
	patch := entity.QRCodePatch{
		Name:     r.Name,
		IsActive: r.IsActive,
		Settings: r.Settings.settings(),
	}
	if r.Data != nil {
		patch.Content = r.Data.Content
	}

	return patch
}

// CreateQRCode handles creating a QR code for one of the caller's profiles.
func (h *QRCodeHandler) CreateQRCode(c echo.Context) error {
	var req CreateQRCodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid QR code input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	profileID, err := uuid.Parse(req.Profile)
	if err != nil {
		return errInvalidID.WithDetails("profile must be a UUID")
	}

	qr, err := h.qrCodeUC.CreateQRCode(c.Request().Context(), actorOf(c), &usecase.CreateQRCodeInput{
		Name:      req.Name,
		Type:      entity.QRType(req.Type),
		ProfileID: profileID,
		Content:   req.Data.Content,
		Settings:  req.Settings.settings(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newQRCodeResponse(qr))
}

// ListQRCodes returns the caller's QR codes.
func (h *QRCodeHandler) ListQRCodes(c echo.Context) error {
	limit, offset := page(c)

	codes, err := h.qrCodeUC.ListQRCodes(c.Request().Context(), actorOf(c), limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newQRCodeResponses(codes))
}

// GetQRCode returns one QR code.
func (h *QRCodeHandler) GetQRCode(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	qr, err := h.qrCodeUC.GetQRCode(c.Request().Context(), actorOf(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newQRCodeResponse(qr))
}

// UpdateQRCode applies a partial update.
func (h *QRCodeHandler) UpdateQRCode(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateQRCodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid QR code input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	qr, err := h.qrCodeUC.UpdateQRCode(c.Request().Context(), actorOf(c), id, req.patch())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newQRCodeResponse(qr))
}

// DeleteQRCode removes a QR code.
func (h *QRCodeHandler) DeleteQRCode(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.qrCodeUC.DeleteQRCode(c.Request().Context(), actorOf(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// ToggleQRCodeStatus flips the active flag.
func (h *QRCodeHandler) ToggleQRCodeStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	qr, err := h.qrCodeUC.ToggleQRCodeStatus(c.Request().Context(), actorOf(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newQRCodeResponse(qr))
}

// RegenerateQRCode recomputes the payload and image and resets scan counters.
func (h *QRCodeHandler) RegenerateQRCode(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	qr, err := h.qrCodeUC.RegenerateQRCode(c.Request().Context(), actorOf(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newQRCodeResponse(qr))
}

// GetQRCodeAnalytics returns scan counters and the most recent scans.
func (h *QRCodeHandler) GetQRCodeAnalytics(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	out, err := h.qrCodeUC.GetQRCodeAnalytics(c.Request().Context(), actorOf(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newQRCodeAnalyticsResponse(out))
}

// DownloadQRCode renders the code as a PNG attachment, or as a data URL with ?format=dataurl.
func (h *QRCodeHandler) DownloadQRCode(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if strings.EqualFold(c.QueryParam("format"), formatDataURL) {
		dataURL, err := h.qrCodeUC.RenderQRCodeDataURL(ctx, actorOf(c), id)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, map[string]string{"qrImage": dataURL})
	}

	png, err := h.qrCodeUC.RenderQRCodePNG(ctx, actorOf(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="qr-`+id.String()+`.png"`)

	return c.Blob(http.StatusOK, "image/png", png)
}

// ScanQRCode is the public scan endpoint. It records the scan and returns the redirect target.
func (h *QRCodeHandler) ScanQRCode(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	req := c.Request()
	out, err := h.qrCodeUC.ScanQRCode(req.Context(), id, &usecase.ScanInput{
		IPAddress: c.RealIP(),
		UserAgent: req.UserAgent(),
		Referrer:  req.Referer(),
		Device:    deviceClass(req.UserAgent()),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &ScanResponse{
		QRCode:      newQRCodeResponse(out.QRCode),
		RedirectURL: out.RedirectURL,
	})
}

// deviceClass buckets a user agent into mobile, tablet or desktop.
func deviceClass(userAgent string) string {
	ua := strings.ToLower(userAgent)
	switch {
	case ua == "":
		return ""
	case strings.Contains(ua, "ipad") || strings.Contains(ua, "tablet"):
		return "tablet"
	case strings.Contains(ua, "mobi") || strings.Contains(ua, "android"):
		return "mobile"
	default:
		return "desktop"
	}
}
