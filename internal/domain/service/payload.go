package service

import (
	"strings"

	"github.com/qrforge/qrforge/internal/domain/utils/validator"
	"github.com/qrforge/qrforge/pkg/payload"
	qr "github.com/qrforge/qrforge/pkg/qrcode"
)

// BuildPayload dispatches a format tag and its pipe-delimited parts to the
// matching payload builder, validating fields first. Unknown tags and failed
// validation return a ValidationError; callers decide whether to surface it
// or fall back to a literal text payload.
func BuildPayload(format string, parts []string) (string, error) {
	get := func(i int) string {
		if i < len(parts) {
			return strings.TrimSpace(parts[i])
		}
		return ""
	}
	invalid := func(field, reason string) (string, error) {
		return "", &qr.ValidationError{Field: field, Reason: reason}
	}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "text", "":
		if !validator.Required(get(0)) {
			return invalid("text", "must not be empty")
		}
		return payload.Text(get(0)), nil

	case "url":
		if !validator.URL(get(0)) {
			return invalid("url", "malformed URL")
		}
		return payload.URL(get(0)), nil

	case "applink":
		if !validator.URL(get(0)) {
			return invalid("url", "malformed URL")
		}
		return payload.AppLink(get(0)), nil

	case "mailto":
		if !validator.Email(get(0)) {
			return invalid("email", "malformed address")
		}
		return payload.Mailto(get(0), get(1), get(2)), nil

	case "tel":
		if !validator.Phone(get(0)) {
			return invalid("phone", "malformed number")
		}
		return payload.Tel(get(0)), nil

	case "sms":
		if !validator.Phone(get(0)) {
			return invalid("phone", "malformed number")
		}
		return payload.SMS(get(0), get(1)), nil

	case "wifi":
		auth := get(1)
		if auth == "" {
			auth = "WPA"
		}
		if !validator.WiFi(get(0), auth, get(2)) {
			return invalid("wifi", "ssid, auth type and password must be consistent")
		}
		hidden := strings.EqualFold(get(3), "true")
		return payload.WiFi(get(0), auth, get(2), hidden), nil

	case "geo":
		if !validator.Geo(get(0), get(1)) {
			return invalid("geo", "coordinates out of range")
		}
		return payload.Geo(get(0), get(1), get(2)), nil

	case "event":
		if !validator.Event(get(0), get(1), get(2)) {
			return invalid("event", "summary and start date (YYYYMMDD) required")
		}
		return payload.Event(get(0), get(1), get(2), get(3), get(4)), nil

	case "payment":
		if !validator.Payment(get(0)) {
			return invalid("payment", "address too short")
		}
		return payload.Payment(get(0), get(1), get(2)), nil

	case "vcard":
		if !validator.Required(get(0)) {
			return invalid("name", "must not be empty")
		}
		if get(2) != "" && !validator.Email(get(2)) {
			return invalid("email", "malformed address")
		}
		if !validator.Birthday(get(5)) {
			return invalid("birthday", "expected YYYYMMDD")
		}
		if !validator.Address(get(6)) {
			return invalid("address", "expected pobox;ext;street;... form")
		}
		if !validator.Note(get(7)) {
			return invalid("note", "too long")
		}
		card := payload.VCard{
			FullName:    get(0),
			TelCell:     get(1),
			EmailWork:   get(2),
			Org:         get(3),
			Title:       get(4),
			Birthday:    get(5),
			AddressHome: get(6),
			Note:        get(7),
			URL:         get(8),
		}
		return card.String(), nil

	case "mecard":
		if !validator.Required(get(0)) {
			return invalid("name", "must not be empty")
		}
		return payload.MECARD(get(0), get(1), get(2), get(3), get(4)), nil

	default:
		return invalid("format", "unknown format tag "+format)
	}
}
