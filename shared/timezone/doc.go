// Package timezone pins every wall-clock calculation (booking dates, audit stamps)
// to APP_TIMEZONE, an IANA name such as "Europe/London". Unset or unknown names mean UTC.
package timezone
