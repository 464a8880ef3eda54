// Package timezone pins calendar arithmetic to the portal's configured timezone.
//
// Booking dates are calendar days, not instants: a visitor in any browser books the
// campus-local day. Use Today and ParseDate for anything that compares days, and
// FormatDate for anything sent to the backend.
//
// The timezone is configured via the APP_TIMEZONE environment variable using IANA
// names ("UTC", "Europe/Istanbul") and is initialized when the package is imported.
package timezone
