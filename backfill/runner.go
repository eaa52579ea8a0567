package backfill

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/divetools/swiftgps"
	"github.com/divetools/swiftgps/geocode"
	"github.com/divetools/swiftgps/internal/collision"
	"github.com/divetools/swiftgps/internal/hash"
	"github.com/divetools/swiftgps/macdive"
	"github.com/divetools/swiftgps/record"
)

// notePrefix marks dive notes written by this tool.
const notePrefix = "[Swift AI GPS] "

// Store is the subset of macdive.Store the runner needs.
type Store interface {
	Candidates(ctx context.Context) ([]macdive.Dive, error)
	DiveSiteEntity(ctx context.Context) (int64, error)
	ApplyGPS(ctx context.Context, dive macdive.Dive, site macdive.Site, note string) (int64, error)
}

// Geocoder resolves a coordinate to a human-readable place.
type Geocoder interface {
	Reverse(ctx context.Context, coord record.Coordinate) (geocode.Place, error)
}

// Options control a backfill run.
type Options struct {
	// Apply writes the resolved sites back to the database. When false
	// the runner only reports what it would change.
	Apply bool

	// Geocode enables reverse geocoding of the entry coordinate.
	Geocode bool
}

// Stats summarize a run.
type Stats struct {
	Candidates int // dives matched by the candidate query
	Updated    int // dives updated, or that would be in a dry run
	Skipped    int // dives left untouched
	Duplicates int // subset of Skipped whose raw payload repeated an earlier dive
}

// Run decodes the raw payload of every candidate dive and writes the
// resolved dive sites back, or only reports them when Options.Apply is off.
// Stats count the work done before any error.
func Run(ctx context.Context, store Store, geocoder Geocoder, logger *log.Logger, opts Options) (Stats, error) {
	logger = logger.With("run", uuid.NewString())

	var stats Stats

	if _, err := store.DiveSiteEntity(ctx); err != nil {
		return stats, fmt.Errorf("verify database: %w", err)
	}

	dives, err := store.Candidates(ctx)
	if err != nil {
		return stats, fmt.Errorf("list candidates: %w", err)
	}

	stats.Candidates = len(dives)
	logger.Info("scanning candidates", "count", len(dives))

	seen := collision.NewTracker()

	for _, dive := range dives {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		fp := hash.Fingerprint(dive.RawData)
		if prior, dup := seen.Track(fp, dive.RawData, dive.Label()); dup {
			logger.Debug("duplicate raw payload", "dive", dive.Label(), "first", prior)
			stats.Duplicates++
			stats.Skipped++
			continue
		}

		gps, ok := swiftgps.Extract(dive.RawData)
		if !ok {
			logger.Debug("no GPS fix in payload", "dive", dive.Label())
			stats.Skipped++
			continue
		}

		if !validFix(gps) {
			logger.Warn("decoded coordinates out of range",
				"dive", dive.Label(), "entry", gps.Entry)
			stats.Skipped++
			continue
		}

		var place geocode.Place

		geocoded := false
		if opts.Geocode && geocoder != nil {
			place, err = geocoder.Reverse(ctx, gps.Entry)
			switch {
			case err != nil && ctx.Err() != nil:
				return stats, ctx.Err()
			case err != nil:
				logger.Warn("reverse geocode failed", "dive", dive.Label(), "err", err)
				place = geocode.Place{}
			default:
				geocoded = true
			}
		}

		note := composeNote(gps, place)

		site := macdive.Site{Lat: gps.Entry.Lat, Lon: gps.Entry.Lon}
		if geocoded {
			site.Geo = &macdive.SiteGeo{
				Country:  place.Country,
				Locality: place.Locality,
				Water:    place.Water,
			}
		}

		if !opts.Apply {
			logger.Info("would update", "dive", dive.Label(), "note", note)
			stats.Updated++
			continue
		}

		sitePK, err := store.ApplyGPS(ctx, dive, site, note)
		if err != nil {
			return stats, fmt.Errorf("update %s: %w", dive.Label(), err)
		}

		logger.Info("updated", "dive", dive.Label(), "site", sitePK, "note", note)
		stats.Updated++
	}

	if n := seen.Collisions(); n > 0 {
		logger.Warn("distinct payloads shared a fingerprint", "count", n)
	}

	return stats, nil
}

// validFix reports whether every coordinate in the fix is on the globe.
// The decoder only filters sentinel pairs, so a corrupt payload can still
// yield out-of-range degrees.
func validFix(gps record.GPS) bool {
	if !gps.Entry.LatLng().IsValid() {
		return false
	}

	return !gps.HasExit || gps.Exit.LatLng().IsValid()
}

// composeNote renders the note text for a fix. The place and exit parts
// appear only when known.
func composeNote(gps record.GPS, place geocode.Place) string {
	text := "Entry: " + gps.Entry.String()
	if gps.HasExit {
		text += " / Exit: " + gps.Exit.String()
	}

	if s := place.String(); s != "" {
		text = s + " — " + text
	}

	return notePrefix + text
}
