// Package geocode names dive sites by reverse-geocoding their entry
// coordinates against the Nominatim (OpenStreetMap) API.
//
// The client honors the Nominatim usage policy: requests are rate limited
// to one per second by default and carry an identifying User-Agent.
// Results are cached by quantized coordinate for a day, so re-running a
// backfill over the same dives costs no network traffic.
//
// Geocoding is decoration. Callers are expected to treat a failed lookup
// as "no place" and carry on; a GPS fix is applied with or without names
// attached.
package geocode
