package entity

import (
	"time"

	"github.com/google/uuid"
)

const DefaultTheme = "default"

// Profile is a public-facing page owned by a user.
type Profile struct {
	ID     uuid.UUID
	UserID uuid.UUID

	// Username is the optional public handle. Nil means no handle.
	Username *string

	DisplayName string
	Bio         string
	JobTitle    string
	Company     string
	Location    string
	Website     string
	Avatar      string
	Theme       string
	IsPublic    bool

	SocialLinks  SocialLinks
	ContactInfo  ContactInfo
	CustomFields []CustomField
	Settings     ProfileSettings

	CreatedAt time.Time
	UpdatedAt time.Time
}

type SocialLinks struct {
	Website   string `json:"website,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
	GitHub    string `json:"github,omitempty"`
}

type ContactInfo struct {
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

type CustomField struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Type  string `json:"type"`
}

type ProfileSettings struct {
	ShowEmail        bool `json:"showEmail"`
	ShowPhone        bool `json:"showPhone"`
	AllowContact     bool `json:"allowContact"`
	AnalyticsEnabled bool `json:"analyticsEnabled"`
}

// DefaultProfileSettings returns the settings applied to new profiles.
func DefaultProfileSettings() ProfileSettings {
	return ProfileSettings{
		ShowEmail:        false,
		ShowPhone:        false,
		AllowContact:     true,
		AnalyticsEnabled: true,
	}
}

// NewProfile builds a public profile with default theme and settings.
func NewProfile(userID uuid.UUID, displayName string) *Profile {
	return &Profile{
		UserID:      userID,
		DisplayName: displayName,
		Theme:       DefaultTheme,
		IsPublic:    true,
		Settings:    DefaultProfileSettings(),
	}
}

// Handle returns the username, or the profile ID when no username is set.
func (p *Profile) Handle() string {
	if p.Username != nil && *p.Username != "" {
		return *p.Username
	}

	return p.ID.String()
}

// ProfilePatch carries a partial profile update. Nil fields are left untouched.
type ProfilePatch struct {
	DisplayName  *string
	Username     *string
	Bio          *string
	JobTitle     *string
	Company      *string
	Location     *string
	Website      *string
	Avatar       *string
	Theme        *string
	IsPublic     *bool
	SocialLinks  *SocialLinks
	ContactInfo  *ContactInfo
	CustomFields *[]CustomField
	Settings     *ProfileSettings
}

// Apply merges the supplied fields into p.
func (patch ProfilePatch) Apply(p *Profile) {
	setIfPresent(&p.DisplayName, patch.DisplayName)
	setIfPresent(&p.Bio, patch.Bio)
	setIfPresent(&p.JobTitle, patch.JobTitle)
	setIfPresent(&p.Company, patch.Company)
	setIfPresent(&p.Location, patch.Location)
	setIfPresent(&p.Website, patch.Website)
	setIfPresent(&p.Avatar, patch.Avatar)
	setIfPresent(&p.Theme, patch.Theme)
	setIfPresent(&p.IsPublic, patch.IsPublic)
	setIfPresent(&p.SocialLinks, patch.SocialLinks)
	setIfPresent(&p.ContactInfo, patch.ContactInfo)
	setIfPresent(&p.Settings, patch.Settings)
	if patch.CustomFields != nil {
		p.CustomFields = NormalizeCustomFields(*patch.CustomFields)
	}
	if patch.Username != nil {
		if *patch.Username == "" {
			p.Username = nil
		} else {
			username := *patch.Username
			p.Username = &username
		}
	}
}

// NormalizeCustomFields fills in the default field type.
func NormalizeCustomFields(fields []CustomField) []CustomField {
	out := make([]CustomField, len(fields))
	for i, f := range fields {
		if f.Type == "" {
			f.Type = "text"
		}
		out[i] = f
	}

	return out
}

func setIfPresent[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
