// Package validator checks user-supplied payload fields before rendering.
// Every check is a pure predicate; empty optional fields pass.
package validator

import (
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	phoneRe = regexp.MustCompile(`^[+\d][\d\s\-()]{7,}$`)
	urlRe   = regexp.MustCompile(`^(https?://)?[\w.-]+(\.[\w.-]+)+[/#?]?.*$`)
	bdayRe  = regexp.MustCompile(`^\d{8}$`)
	eventRe = regexp.MustCompile(`^\d{8}(T\d{4}(\d{2})?)?$`)
)

func Required(value string) bool {
	return strings.TrimSpace(value) != ""
}

func Email(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func Phone(phone string) bool {
	return phoneRe.MatchString(phone)
}

func URL(url string) bool {
	return urlRe.MatchString(url)
}

// Birthday accepts YYYYMMDD (a real calendar date) or the empty string.
func Birthday(bday string) bool {
	if strings.TrimSpace(bday) == "" {
		return true
	}
	if !bdayRe.MatchString(bday) {
		return false
	}
	_, err := time.Parse("20060102", bday)
	return err == nil
}

// Address accepts the vCard ADR form with at least three ;-separated parts,
// or the empty string.
func Address(addr string) bool {
	if strings.TrimSpace(addr) == "" {
		return true
	}
	return strings.Count(addr, ";") >= 2
}

func Note(note string) bool {
	return len(note) <= 200
}

// Geo requires both coordinates and checks the latitude/longitude ranges.
func Geo(lat, lon string) bool {
	if lat == "" || lon == "" {
		return false
	}
	la, err1 := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	lo, err2 := strconv.ParseFloat(strings.TrimSpace(lon), 64)
	if err1 != nil || err2 != nil {
		return false
	}
	return la >= -90 && la <= 90 && lo >= -180 && lo <= 180
}

// WiFi requires an SSID, a known auth type, and a password unless the
// network is open.
func WiFi(ssid, auth, password string) bool {
	if strings.TrimSpace(ssid) == "" {
		return false
	}
	switch strings.ToLower(auth) {
	case "wpa", "wep":
		return strings.TrimSpace(password) != ""
	case "nopass":
		return true
	default:
		return false
	}
}

// Event requires a summary and a start date in YYYYMMDD[THHMM[SS]] form;
// the end date, when present, must use the same form.
func Event(summary, start, end string) bool {
	if strings.TrimSpace(summary) == "" || strings.TrimSpace(start) == "" {
		return false
	}
	if !eventRe.MatchString(start) {
		return false
	}
	return end == "" || eventRe.MatchString(end)
}

// Payment applies a minimal sanity check to a payment address.
func Payment(address string) bool {
	return len(strings.TrimSpace(address)) >= 12
}
