package domain

import "strings"

// Device categories derived from the User-Agent header.
const (
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
	DeviceDesktop = "desktop"
)

// ViewerContext is the normalized set of attributes describing the person
// requesting a delivery. It lives for a single request and is never
// persisted. Audience is a reserved dimension: no resolver populates it yet,
// so a target constraining on audience can currently never match.
type ViewerContext struct {
	Country  string
	Region   string
	Province string
	City     string
	Sport    string
	Audience string
	Device   string
}

// Profile holds the stored attributes of a platform user, as exposed by the
// profile store. Province participates in event recording and reporting but
// not in targeting.
type Profile struct {
	UserID   string
	Country  string
	Region   string
	Province string
	City     string
	Sport    string
}

// NewViewerContext builds a normalized context from an optional stored
// profile and the request's user agent. A nil profile leaves every
// viewer-derived field empty.
func NewViewerContext(p *Profile, userAgent string) ViewerContext {
	v := ViewerContext{Device: DeviceFromUserAgent(userAgent)}
	if p != nil {
		v.Country = Normalize(p.Country)
		v.Region = Normalize(p.Region)
		v.Province = Normalize(p.Province)
		v.City = Normalize(p.City)
		v.Sport = Normalize(p.Sport)
	}
	return v
}

// DeviceFromUserAgent classifies a User-Agent string into a device
// category. An empty string classifies as desktop.
func DeviceFromUserAgent(ua string) string {
	ua = strings.ToLower(ua)
	switch {
	// tablet tokens first: Android tablets advertise "android" without
	// "mobile"
	case strings.Contains(ua, "ipad"), strings.Contains(ua, "tablet"):
		return DeviceTablet
	case strings.Contains(ua, "mobile"),
		strings.Contains(ua, "iphone"),
		strings.Contains(ua, "ipod"),
		strings.Contains(ua, "android"):
		return DeviceMobile
	default:
		return DeviceDesktop
	}
}

// Normalize lowercases and trims a viewer attribute.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
