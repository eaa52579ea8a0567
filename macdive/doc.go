// Package macdive reads and updates MacDive's Core Data SQLite store.
//
// MacDive keeps each dive in ZDIVE with the raw device memory it imported
// (ZRAWDATA) and an optional link to a ZDIVESITE row. Core Data bookkeeping
// applies throughout: every row carries its entity id (Z_ENT) and an
// optimistic-locking counter (Z_OPT), the Z_PRIMARYKEY table tracks the
// highest primary key per entity, and timestamps count seconds from
// 2001-01-01 UTC rather than the Unix epoch.
//
// The store exposes exactly the three operations the backfill needs:
// selecting candidate dives (Shearwater imports whose site is missing or
// has no GPS), resolving the DiveSite entity id, and applying one dive's
// fix. ApplyGPS performs its three statements in a single transaction and
// maintains the bookkeeping by hand the way MacDive expects: the new site
// row gets Z_OPT 1, Z_PRIMARYKEY's Z_MAX moves up, and the dive's Z_OPT is
// incremented with its notes extended in place.
//
// MacDive must not be running while rows are written; SQLite locking keeps
// the file consistent, but MacDive caches Core Data state in memory and
// will not see external changes until restarted.
package macdive
