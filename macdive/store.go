package macdive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotMacDive reports a database whose Z_PRIMARYKEY table has no
// DiveSite entity, which no MacDive store lacks.
var ErrNotMacDive = errors.New("not a MacDive database: no DiveSite entity")

// coreDataEpoch is 2001-01-01T00:00:00Z, the zero point of Core Data
// timestamps.
var coreDataEpoch = time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)

func coreDataSeconds(t time.Time) float64 {
	return t.Sub(coreDataEpoch).Seconds()
}

// DefaultPath returns the standard location of the MacDive database.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "MacDive.sqlite"
	}

	return filepath.Join(home, "Library", "Application Support", "MacDive", "MacDive.sqlite")
}

// Store is a handle on one MacDive database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens the MacDive database at path. The file must already exist;
// a missing path is an error, never an implicitly created empty store.
func Open(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("macdive: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("macdive: open %s: %w", path, err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Dive is one backfill candidate row from ZDIVE. Number, Notes, SiteFK and
// Opt are zero when the underlying column is NULL.
type Dive struct {
	PK      int64
	Number  int64
	RawData []byte
	Notes   string
	SiteFK  int64
	Opt     int64
}

// Label names the dive for log output: the dive number when it has one,
// otherwise the primary key.
func (d Dive) Label() string {
	if d.Number != 0 {
		return fmt.Sprintf("Dive %d", d.Number)
	}

	return fmt.Sprintf("Dive (PK=%d)", d.PK)
}

const candidatesQuery = `
SELECT d.Z_PK, d.ZDIVENUMBER, d.ZRAWDATA, d.ZNOTES,
       d.ZRELATIONSHIPDIVESITE, d.Z_OPT
FROM ZDIVE d
LEFT JOIN ZDIVESITE s ON d.ZRELATIONSHIPDIVESITE = s.Z_PK
WHERE d.ZRAWDATA IS NOT NULL
  AND d.ZPARSERTYPE LIKE 'shearwater%'
  AND (d.ZRELATIONSHIPDIVESITE IS NULL
       OR s.ZGPSLAT IS NULL OR s.ZGPSLAT = 0.0)
ORDER BY d.ZDIVENUMBER`

// Candidates returns the Shearwater dives that still need GPS: raw device
// memory is present and the linked site is absent, has a NULL latitude, or
// a zeroed one. Ordered by dive number.
func (s *Store) Candidates(ctx context.Context) ([]Dive, error) {
	rows, err := s.db.QueryContext(ctx, candidatesQuery)
	if err != nil {
		return nil, fmt.Errorf("macdive: query candidates: %w", err)
	}
	defer rows.Close()

	var dives []Dive

	for rows.Next() {
		var (
			d      Dive
			number sql.NullInt64
			notes  sql.NullString
			siteFK sql.NullInt64
			opt    sql.NullInt64
		)

		if err := rows.Scan(&d.PK, &number, &d.RawData, &notes, &siteFK, &opt); err != nil {
			return nil, fmt.Errorf("macdive: scan candidate: %w", err)
		}

		d.Number = number.Int64
		d.Notes = notes.String
		d.SiteFK = siteFK.Int64
		d.Opt = opt.Int64
		dives = append(dives, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("macdive: iterate candidates: %w", err)
	}

	return dives, nil
}

// DiveSiteEntity returns the Core Data entity id of DiveSite rows.
// Returns ErrNotMacDive when the entity is absent, which is the cheapest
// way to notice the path points at some other application's SQLite file.
func (s *Store) DiveSiteEntity(ctx context.Context) (int64, error) {
	var ent int64

	err := s.db.QueryRowContext(ctx,
		`SELECT Z_ENT FROM Z_PRIMARYKEY WHERE Z_NAME = 'DiveSite'`).Scan(&ent)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotMacDive
	}

	if err != nil {
		return 0, fmt.Errorf("macdive: look up DiveSite entity: %w", err)
	}

	return ent, nil
}

// Site describes the dive site row ApplyGPS creates.
type Site struct {
	Lat float64
	Lon float64

	// Geo carries the reverse-geocoded names for the ZCOUNTRY, ZLOCATION
	// and ZBODYOFWATER columns. A nil Geo stores NULLs instead.
	Geo *SiteGeo
}

// SiteGeo is the set of names a reverse geocoder attaches to a site.
type SiteGeo struct {
	Country  string
	Locality string
	Water    string
}

// ApplyGPS creates a dive site at the given position and links the dive to
// it, appending note to the dive's existing notes.
//
// All three statements run in one transaction: the ZDIVESITE insert (with
// the next primary key after Z_MAX), the Z_PRIMARYKEY bump, and the ZDIVE
// update. Nothing is written if any step fails.
//
// Returns the primary key of the created site.
func (s *Store) ApplyGPS(ctx context.Context, dive Dive, site Site, note string) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("macdive: begin: %w", err)
	}
	defer tx.Rollback()

	var (
		ent   int64
		maxPK int64
	)

	err = tx.QueryRowContext(ctx,
		`SELECT Z_ENT, Z_MAX FROM Z_PRIMARYKEY WHERE Z_NAME = 'DiveSite'`).Scan(&ent, &maxPK)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotMacDive
	}

	if err != nil {
		return 0, fmt.Errorf("macdive: look up DiveSite entity: %w", err)
	}

	sitePK := maxPK + 1

	var country, locality, water any
	if site.Geo != nil {
		country, locality, water = site.Geo.Country, site.Geo.Locality, site.Geo.Water
	}

	_, err = tx.ExecContext(ctx, `
INSERT INTO ZDIVESITE
    (Z_PK, Z_ENT, Z_OPT, ZGPSLAT, ZGPSLON,
     ZCOUNTRY, ZLOCATION, ZBODYOFWATER, ZMODIFIED)
VALUES (?, ?, 1, ?, ?, ?, ?, ?, ?)`,
		sitePK, ent, site.Lat, site.Lon, country, locality, water,
		coreDataSeconds(s.now()))
	if err != nil {
		return 0, fmt.Errorf("macdive: insert dive site: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE Z_PRIMARYKEY SET Z_MAX = ? WHERE Z_NAME = 'DiveSite'`, sitePK)
	if err != nil {
		return 0, fmt.Errorf("macdive: bump Z_MAX: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
UPDATE ZDIVE
SET ZRELATIONSHIPDIVESITE = ?, ZNOTES = ?, Z_OPT = ?
WHERE Z_PK = ?`,
		sitePK, appendNote(dive.Notes, note), dive.Opt+1, dive.PK)
	if err != nil {
		return 0, fmt.Errorf("macdive: update dive: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("macdive: commit: %w", err)
	}

	return sitePK, nil
}

// appendNote extends a dive's notes with the GPS note, separated from any
// existing text by a blank line.
func appendNote(existing, note string) string {
	if existing == "" {
		return note
	}

	return existing + "\n\n" + note
}
