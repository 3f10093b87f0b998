package handler

import (
	"time"

	"taponn/internal/domain/entity"
	"taponn/internal/usecase"

	"github.com/google/uuid"
)

// UserResponse is the public view of an account. Credentials and one-time tokens are never exposed.
type UserResponse struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Email       string              `json:"email"`
	Role        entity.Role         `json:"role"`
	Status      entity.UserStatus   `json:"status"`
	Permissions []entity.Permission `json:"permissions"`
	IsLocked    bool                `json:"isLocked"`
	LastLogin   *time.Time          `json:"lastLogin,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

func newUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}

	permissions := u.Permissions
	if permissions == nil {
		permissions = []entity.Permission{}
	}

	return &UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		Status:      u.Status,
		Permissions: permissions,
		IsLocked:    u.IsLocked,
		LastLogin:   u.LastLogin,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// TokenResponse is returned by register and login.
type TokenResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	User        *UserResponse `json:"user"`
}

func newTokenResponse(out *usecase.AuthOutput) *TokenResponse {
	return &TokenResponse{
		AccessToken: out.AccessToken,
		TokenType:   "bearer",
		User:        newUserResponse(out.User),
	}
}

type ProfileResponse struct {
	ID           uuid.UUID              `json:"id"`
	User         uuid.UUID              `json:"user"`
	DisplayName  string                 `json:"displayName"`
	Username     *string                `json:"username"`
	Bio          string                 `json:"bio"`
	JobTitle     string                 `json:"jobTitle"`
	Company      string                 `json:"company"`
	Location     string                 `json:"location"`
	Website      string                 `json:"website"`
	Avatar       string                 `json:"avatar"`
	Theme        string                 `json:"theme"`
	IsPublic     bool                   `json:"isPublic"`
	SocialLinks  entity.SocialLinks     `json:"socialLinks"`
	ContactInfo  entity.ContactInfo     `json:"contactInfo"`
	CustomFields []entity.CustomField   `json:"customFields"`
	Settings     entity.ProfileSettings `json:"settings"`
	CreatedAt    time.Time              `json:"createdAt"`
	UpdatedAt    time.Time              `json:"updatedAt"`
}

func newProfileResponse(p *entity.Profile) *ProfileResponse {
	customFields := p.CustomFields
	if customFields == nil {
		customFields = []entity.CustomField{}
	}

	return &ProfileResponse{
		ID:           p.ID,
		User:         p.UserID,
		DisplayName:  p.DisplayName,
		Username:     p.Username,
		Bio:          p.Bio,
		JobTitle:     p.JobTitle,
		Company:      p.Company,
		Location:     p.Location,
		Website:      p.Website,
		Avatar:       p.Avatar,
		Theme:        p.Theme,
		IsPublic:     p.IsPublic,
		SocialLinks:  p.SocialLinks,
		ContactInfo:  p.ContactInfo,
		CustomFields: customFields,
		Settings:     p.Settings,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func newProfileResponses(profiles []*entity.Profile) []*ProfileResponse {
	out := make([]*ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, newProfileResponse(p))
	}

	return out
}

// QRAnalyticsSummary omits the scan history, which is served by the analytics endpoint.
type QRAnalyticsSummary struct {
	TotalScans    int        `json:"totalScans"`
	UniqueScans   int        `json:"uniqueScans"`
	LastScannedAt *time.Time `json:"lastScannedAt,omitempty"`
}

type QRCodeResponse struct {
	ID        uuid.UUID          `json:"id"`
	User      uuid.UUID          `json:"user"`
	Profile   uuid.UUID          `json:"profile"`
	Name      string             `json:"name"`
	Type      entity.QRType      `json:"type"`
	Content   map[string]any     `json:"content"`
	QRData    string             `json:"qrData"`
	QRImage   string             `json:"qrImage,omitempty"`
	Logo      string             `json:"logo,omitempty"`
	ScanCount int                `json:"scanCount"`
	IsActive  bool               `json:"isActive"`
	Settings  entity.QRSettings  `json:"settings"`
	Analytics QRAnalyticsSummary `json:"analytics"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

func newQRCodeResponse(q *entity.QRCode) *QRCodeResponse {
	content := q.Content
	if content == nil {
		content = map[string]any{}
	}

	return &QRCodeResponse{
		ID:        q.ID,
		User:      q.UserID,
		Profile:   q.ProfileID,
		Name:      q.Name,
		Type:      q.Type,
		Content:   content,
		QRData:    q.Data,
		QRImage:   q.QRImage,
		Logo:      q.Logo,
		ScanCount: q.ScanCount,
		IsActive:  q.IsActive,
		Settings:  q.Settings,
		Analytics: QRAnalyticsSummary{
			TotalScans:    q.Analytics.TotalScans,
			UniqueScans:   q.Analytics.UniqueScans,
			LastScannedAt: q.Analytics.LastScannedAt,
		},
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

func newQRCodeResponses(codes []*entity.QRCode) []*QRCodeResponse {
	out := make([]*QRCodeResponse, 0, len(codes))
	for _, q := range codes {
		out = append(out, newQRCodeResponse(q))
	}

	return out
}

type ScanResponse struct {
	QRCode      *QRCodeResponse `json:"qrCode"`
	RedirectURL string          `json:"redirectUrl"`
}

type QRCodeAnalyticsResponse struct {
	QRCodeID      uuid.UUID           `json:"qrCodeId"`
	ScanCount     int                 `json:"scanCount"`
	TotalScans    int                 `json:"totalScans"`
	UniqueScans   int                 `json:"uniqueScans"`
	LastScannedAt *time.Time          `json:"lastScannedAt,omitempty"`
	RecentScans   []entity.ScanRecord `json:"recentScans"`
}

func newQRCodeAnalyticsResponse(out *usecase.QRCodeAnalyticsOutput) *QRCodeAnalyticsResponse {
	recent := out.RecentScans
	if recent == nil {
		recent = []entity.ScanRecord{}
	}

	return &QRCodeAnalyticsResponse{
		QRCodeID:      out.QRCodeID,
		ScanCount:     out.ScanCount,
		TotalScans:    out.TotalScans,
		UniqueScans:   out.UniqueScans,
		LastScannedAt: out.LastScannedAt,
		RecentScans:   recent,
	}
}

type OrderResponse struct {
	ID                 uuid.UUID              `json:"id"`
	User               uuid.UUID              `json:"user"`
	OrderNumber        string                 `json:"orderNumber"`
	ProductType        string                 `json:"productType"`
	Quantity           int                    `json:"quantity"`
	Items              []entity.OrderItem     `json:"items"`
	TotalAmount        float64                `json:"totalAmount"`
	Status             entity.OrderStatus     `json:"status"`
	PaymentStatus      entity.PaymentStatus   `json:"paymentStatus"`
	ShippingAddress    entity.ShippingAddress `json:"shippingAddress"`
	TrackingNumber     string                 `json:"trackingNumber,omitempty"`
	EstimatedDelivery  *time.Time             `json:"estimatedDelivery,omitempty"`
	Notes              []entity.OrderNote     `json:"notes"`
	PaymentMethod      string                 `json:"paymentMethod,omitempty"`
	PaidAt             *time.Time             `json:"paidAt,omitempty"`
	CancelledAt        *time.Time             `json:"cancelledAt,omitempty"`
	CancellationReason string                 `json:"cancellationReason,omitempty"`
	RefundedAt         *time.Time             `json:"refundedAt,omitempty"`
	RefundReason       string                 `json:"refundReason,omitempty"`
	RefundAmount       *float64               `json:"refundAmount,omitempty"`
	CreatedAt          time.Time              `json:"createdAt"`
	UpdatedAt          time.Time              `json:"updatedAt"`
}

func newOrderResponse(o *entity.Order) *OrderResponse {
	items := o.Items
	if items == nil {
		items = []entity.OrderItem{}
	}
	notes := o.Notes
	if notes == nil {
		notes = []entity.OrderNote{}
	}

	return &OrderResponse{
		ID:                 o.ID,
		User:               o.UserID,
		OrderNumber:        o.OrderNumber,
		ProductType:        o.ProductType,
		Quantity:           o.Quantity,
		Items:              items,
		TotalAmount:        o.TotalAmount,
		Status:             o.Status,
		PaymentStatus:      o.PaymentStatus,
		ShippingAddress:    o.ShippingAddress,
		TrackingNumber:     o.TrackingNumber,
		EstimatedDelivery:  o.EstimatedDelivery,
		Notes:              notes,
		PaymentMethod:      o.PaymentMethod,
		PaidAt:             o.PaidAt,
		CancelledAt:        o.CancelledAt,
		CancellationReason: o.CancellationReason,
		RefundedAt:         o.RefundedAt,
		RefundReason:       o.RefundReason,
		RefundAmount:       o.RefundAmount,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

func newOrderResponses(orders []*entity.Order) []*OrderResponse {
	out := make([]*OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, newOrderResponse(o))
	}

	return out
}

type UploadResponse struct {
	URL         string `json:"url"`
	Key         string `json:"key"`
	ContentType string `json:"contentType"`
	Size        int    `json:"size"`
}
