// Package timezone resolves every "what day is it" question the storage layer
// asks. Check-in stamps, calendar-date comparisons and the dashboard's notion
// of "today" all go through the application timezone configured via
// APP_TIMEZONE, falling back to UTC.
package timezone
