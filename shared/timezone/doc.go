// Package timezone pins every timestamp the engine writes to the application timezone.
//
// The zone comes from APP_TIMEZONE and is loaded when the package is imported, falling back to UTC.
// Audit metadata, approval decision times and ledger entries all take their instant from Now.
//
// Travel dates are plain calendar dates (YYYY-MM-DD) and are parsed with ParseTravelDate, which
// interprets them in the application zone:
//
//	departure, err := timezone.ParseTravelDate("2024-12-15")
//
// Use IANA names such as "UTC" or "Asia/Jakarta".
package timezone
