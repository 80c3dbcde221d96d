// Package payload builds the well-known QR payload string formats: plain
// text, URLs, mailto/tel/sms links, wifi credentials, geo URIs, calendar
// events, payment requests, MECARD and vCard blocks.
//
// Builders are pure string formatting; they return "" when a mandatory
// input is missing. Input validation lives with the callers.
package payload

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
)

// Text returns the trimmed literal text payload.
func Text(text string) string {
	return strings.TrimSpace(text)
}

// URL normalizes a link payload, defaulting the scheme to https.
func URL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}
	return raw
}

// AppLink is an alias for URL kept for parity with the batch format tags.
func AppLink(raw string) string { return URL(raw) }

// Mailto builds a mailto: link with optional subject and body.
func Mailto(to, subject, body string) string {
	to = strings.TrimSpace(to)
	if to == "" {
		return ""
	}
	var params []string
	if subject != "" {
		params = append(params, "subject="+escapeQuery(subject))
	}
	if body != "" {
		params = append(params, "body="+escapeQuery(body))
	}
	if len(params) == 0 {
		return "mailto:" + to
	}
	return "mailto:" + to + "?" + strings.Join(params, "&")
}

// Tel builds a tel: link.
func Tel(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}
	return "tel:" + phone
}

// SMS builds an sms: link with an optional prefilled message.
func SMS(phone, message string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}
	if message != "" {
		return "sms:" + phone + "?body=" + escapeQuery(message)
	}
	return "sms:" + phone
}

// WiFi builds the WIFI:T:..;S:..;P:..;H:..;; network payload. The auth type
// defaults to WPA; the password is omitted for open (nopass) networks.
func WiFi(ssid, auth, password string, hidden bool) string {
	ssid = strings.ReplaceAll(ssid, ";", `\;`)
	auth = strings.ToUpper(strings.TrimSpace(auth))
	if auth == "" {
		auth = "WPA"
	}
	parts := []string{"WIFI:T:" + auth, "S:" + ssid}
	if auth != "NOPASS" && password != "" {
		parts = append(parts, "P:"+password)
	}
	if hidden {
		parts = append(parts, "H:true")
	}
	return strings.Join(parts, ";") + ";;"
}

// Geo builds a geo: URI with an optional search label.
func Geo(lat, lon, label string) string {
	lat, lon = strings.TrimSpace(lat), strings.TrimSpace(lon)
	if lat == "" || lon == "" {
		return ""
	}
	if label != "" {
		return fmt.Sprintf("geo:%s,%s?q=%s", lat, lon, url.QueryEscape(label))
	}
	return fmt.Sprintf("geo:%s,%s", lat, lon)
}

// Payment builds a bitcoin: payment request with optional amount and label.
func Payment(address, amount, label string) string {
	address = strings.TrimSpace(address)
	if address == "" {
		return ""
	}
	var params []string
	if amount != "" {
		params = append(params, "amount="+escapeQuery(amount))
	}
	if label != "" {
		params = append(params, "label="+escapeQuery(label))
	}
	if len(params) == 0 {
		return "bitcoin:" + address
	}
	return "bitcoin:" + address + "?" + strings.Join(params, "&")
}

// MECARD builds the compact MECARD contact format.
func MECARD(name, tel, email, org, note string) string {
	parts := []string{"MECARD:N:" + name}
	if tel != "" {
		parts = append(parts, "TEL:"+tel)
	}
	if email != "" {
		parts = append(parts, "EMAIL:"+email)
	}
	if org != "" {
		parts = append(parts, "ORG:"+org)
	}
	if note != "" {
		parts = append(parts, "NOTE:"+note)
	}
	return strings.Join(parts, ";") + ";"
}

// eventLayouts accepts YYYYMMDD, YYYYMMDDTHHMM and YYYYMMDDTHHMMSS.
var eventLayouts = []string{"20060102T150405", "20060102T1504", "20060102"}

// Event builds a VCALENDAR/VEVENT block. An event without an end time runs
// for one hour.
func Event(summary, start, end, location, description string) string {
	summary = strings.TrimSpace(summary)
	startAt, ok := parseEventTime(start)
	if summary == "" || !ok {
		return ""
	}
	endAt, hasEnd := parseEventTime(end)
	if !hasEnd {
		endAt = startAt.Add(time.Hour)
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//qrforge//EN")
	cal.SetVersion("2.0")

	uid := fmt.Sprintf("%d@qrforge", startAt.Unix())
	e := cal.AddEvent(uid)
	e.SetDtStampTime(startAt)
	e.SetStartAt(startAt)
	e.SetEndAt(endAt)
	e.SetSummary(summary)
	if location != "" {
		e.SetLocation(location)
	}
	if description != "" {
		e.SetDescription(description)
	}
	return cal.Serialize()
}

func parseEventTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range eventLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// escapeQuery percent-encodes a query value without turning spaces into '+'.
func escapeQuery(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
