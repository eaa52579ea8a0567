// Command swiftgps backfills GPS dive sites in a MacDive library from the
// raw Shearwater payloads it already holds.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/divetools/swiftgps/backfill"
	"github.com/divetools/swiftgps/backup"
	"github.com/divetools/swiftgps/geocode"
	"github.com/divetools/swiftgps/internal/config"
	"github.com/divetools/swiftgps/macdive"
)

func main() {
	cfg := config.Load()

	dbPath := pflag.StringP("db", "d", cfg.DatabasePath, "Path to MacDive.sqlite. Empty means the standard MacDive location.")
	apply := pflag.BoolP("apply", "a", false, "Write changes to the database. Without it the run is a dry preview.")
	noGeocode := pflag.Bool("no-geocode", false, "Skip reverse geocoding of entry coordinates.")
	backupMode := pflag.StringP("backup", "b", cfg.BackupCompression, "Snapshot compression before writing: none, gzip, zstd or lz4.")
	verbose := pflag.BoolP("verbose", "v", false, "Verbose. Show per-dive decisions.")
	help := pflag.Bool("help", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s - Backfill GPS dive sites in a MacDive library.\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Decodes the raw Shearwater payloads MacDive already imported and\n")
		fmt.Fprintf(os.Stderr, "attaches the GPS fixes as dive sites. Quit MacDive before applying.\n")
		fmt.Fprintf(os.Stderr, "\n")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	compression, err := backup.ParseCompression(*backupMode)
	if err != nil {
		logger.Fatal("bad --backup value", "err", err)
	}

	path := *dbPath
	if path == "" {
		path = macdive.DefaultPath()
	}

	store, err := macdive.Open(path)
	if err != nil {
		logger.Fatal("open library", "err", err)
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *apply {
		backupPath, err := backup.Snapshot(path, compression)
		if err != nil {
			logger.Fatal("snapshot library", "err", err)
		}
		logger.Info("library snapshot written", "path", backupPath)
	}

	var geocoder backfill.Geocoder
	if !*noGeocode {
		opts := []geocode.Option{
			geocode.WithBaseURL(cfg.NominatimURL),
			geocode.WithUserAgent(cfg.UserAgent),
			geocode.WithCacheTTL(cfg.CacheTTL),
		}
		if cfg.GeocodeRPS > 0 {
			opts = append(opts, geocode.WithRateLimit(time.Duration(float64(time.Second)/cfg.GeocodeRPS)))
		}
		geocoder = geocode.New(opts...)
	}

	stats, err := backfill.Run(ctx, store, geocoder, logger, backfill.Options{
		Apply:   *apply,
		Geocode: !*noGeocode,
	})
	if err != nil {
		logger.Fatal("backfill failed", "err", err)
	}

	verb := "would be updated"
	if *apply {
		verb = "updated"
	}

	fmt.Printf("Done. %d of %d candidate dive(s) %s, %d skipped.\n",
		stats.Updated, stats.Candidates, verb, stats.Skipped)

	if !*apply && stats.Updated > 0 {
		fmt.Println("Re-run with --apply to write these changes.")
	}
}
