// Package backfill drives a GPS backfill run over a MacDive library.
//
// A run lists the dives that imported from a Shearwater computer without a
// usable dive site, decodes the GPS fix buried in each dive's raw payload
// and attaches a fresh dive site carrying that fix. Reverse geocoding the
// entry coordinate is optional; when it succeeds the place is stored with
// the site and prefixed to the dive note.
//
// Runs are dry by default. Nothing is written unless Options.Apply is set,
// so a run can always be previewed first.
package backfill
