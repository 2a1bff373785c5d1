// Package timezone provides timezone utilities for the application.
//
// Usage Examples:
//
//  1. Current time in the application timezone:
//     now := timezone.Now()
//
//  2. Session timezone conversion of naive server timestamps:
//     utc, err := timezone.ToUTC("2024-01-01 10:00:00", "America/Bogota")   // "2024-01-01 15:00:00"
//     local, err := timezone.ToLocal("2024-01-01 15:00:00", "")             // default zone
//
//  3. Parsing a naive timestamp, treating bad input as "no value":
//     t, ok := timezone.ParseDateTime("2024-01-01 10:00:00")
//
// ToUTC is strict: wall times that are skipped or repeated by a daylight
// saving transition fail instead of being resolved to one of the candidates.
// ToLocal shifts by the zone offset in effect at the current moment, not at
// the input instant, so ToLocal(ToUTC(x)) equals x only when both instants
// share the same offset.
//
// Supported timezone formats:
// - Standard timezone names only: "UTC", "America/Bogota", "America/New_York", "Europe/London"
//
// The application timezone is configured via the APP_TIMEZONE environment variable
// and is automatically initialized when the package is imported.
package timezone
