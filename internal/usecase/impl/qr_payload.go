package impl

import (
	"fmt"
	"net/url"
	"strings"

	"taponn/internal/domain/entity"
	domainerrors "taponn/internal/domain/errors"

	"github.com/pkg/errors"
)

// profileURL is the canonical public link of a profile.
func profileURL(frontendURL string, profile *entity.Profile) string {
	return strings.TrimSuffix(frontendURL, "/") + "/profile/" + profile.Handle()
}

// buildQRPayload derives the string encoded into a QR code from its type and content.
func buildQRPayload(qrType entity.QRType, content map[string]any, profile *entity.Profile, frontendURL string) (string, error) {
	var payload string

	switch qrType {
	case entity.QRTypeProfile:
		if profile == nil {
			return "", errors.Wrap(domainerrors.ErrProfileNotFound, "profile QR code requires a profile")
		}

		return profileURL(frontendURL, profile), nil

	case entity.QRTypeContact, entity.QRTypeVCard:
		payload = buildVCard(content, profile)

	case entity.QRTypeWhatsApp:
		phone := digitsOnly(contentString(content, "phone"))
		if phone == "" {
			break
		}
		payload = fmt.Sprintf("https://wa.me/%s?text=%s", phone, encodeURIComponent(contentString(content, "message")))

	case entity.QRTypeEmail:
		email := contentString(content, "email")
		if email == "" {
			break
		}
		payload = fmt.Sprintf("mailto:%s?subject=%s&body=%s",
			email,
			encodeURIComponent(contentString(content, "subject")),
			encodeURIComponent(contentString(content, "body")),
		)

	case entity.QRTypePhone:
		if phone := contentString(content, "phone"); phone != "" {
			payload = "tel:" + phone
		}

	case entity.QRTypeLinkedIn, entity.QRTypeInstagram, entity.QRTypeFacebook,
		entity.QRTypeTwitter, entity.QRTypeWebsite, entity.QRTypeURL:
		payload = contentString(content, "url")

	case entity.QRTypeWiFi:
		ssid := contentString(content, "ssid")
		if ssid == "" {
			break
		}
		encryption := contentString(content, "encryption")
		if encryption == "" {
			encryption = "WPA"
		}
		payload = fmt.Sprintf("WIFI:T:%s;S:%s;P:%s;;", encryption, ssid, contentString(content, "password"))

	case entity.QRTypeText:
		payload = contentString(content, "text")

	case entity.QRTypeCustom:
		payload = contentString(content, "custom")

	default:
		return "", errors.Wrapf(domainerrors.ErrQRTypeUnsupported, "type %q", qrType)
	}

	if payload == "" {
		return "", errors.Wrapf(domainerrors.ErrValidationFailed, "QR code content is required for type %q", qrType)
	}

	return payload, nil
}

// buildVCard renders a vCard 3.0 card. Missing fields fall back to the linked profile.
func buildVCard(content map[string]any, profile *entity.Profile) string {
	name := contentString(content, "name")
	org := contentString(content, "company", "organization")
	title := contentString(content, "title", "jobTitle")
	phone := contentString(content, "phone")
	email := contentString(content, "email")
	website := contentString(content, "website", "url")

	if profile != nil {
		name = firstNonEmpty(name, profile.DisplayName)
		org = firstNonEmpty(org, profile.Company)
		title = firstNonEmpty(title, profile.JobTitle)
		phone = firstNonEmpty(phone, profile.ContactInfo.Phone)
		email = firstNonEmpty(email, profile.ContactInfo.Email)
		website = firstNonEmpty(website, profile.Website)
	}
	if name == "" && phone == "" && email == "" {
		return ""
	}

	lines := []string{"BEGIN:VCARD", "VERSION:3.0", "FN:" + name}
	for _, field := range []struct{ key, value string }{
		{"ORG", org},
		{"TITLE", title},
		{"TEL", phone},
		{"EMAIL", email},
		{"URL", website},
	} {
		if field.value != "" {
			lines = append(lines, field.key+":"+field.value)
		}
	}
	lines = append(lines, "END:VCARD")

	return strings.Join(lines, "\n")
}

// contentString returns the first non-empty string found under keys.
func contentString(content map[string]any, keys ...string) string {
	for _, key := range keys {
		switch v := content[key].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case fmt.Stringer:
			return v.String()
		case float64, int, int64:
			return fmt.Sprint(v)
		}
	}

	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// encodeURIComponent escapes s for use in a query value, using %20 for spaces.
func encodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
