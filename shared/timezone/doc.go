// Package timezone provides timezone utilities for the application.
//
// Reservation windows are stored and compared as absolute instants; this
// package only affects how times are rendered and how date-only inputs are
// interpreted. The timezone is configured via the APP_TIMEZONE environment
// variable using standard IANA names ("UTC", "America/New_York") and is
// initialized when the package is imported.
package timezone
