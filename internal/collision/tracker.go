package collision

import "bytes"

// Tracker spots repeated raw payloads during a backfill run. It keys on the
// payload fingerprint but keeps the bytes, so two different payloads that
// happen to share a fingerprint are not mistaken for duplicates.
type Tracker struct {
	seen       map[uint64]entry
	collisions int
}

type entry struct {
	payload []byte
	label   string
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{seen: make(map[uint64]entry)}
}

// Track records payload under its fingerprint and returns the label of the
// earlier identical payload, if any. On a fingerprint collision with a
// different payload the first entry stays on record, so repeats of the
// later payload go undetected; the collision is counted instead.
func (t *Tracker) Track(fp uint64, payload []byte, label string) (string, bool) {
	prior, ok := t.seen[fp]
	if !ok {
		t.seen[fp] = entry{payload: payload, label: label}
		return "", false
	}

	if bytes.Equal(prior.payload, payload) {
		return prior.label, true
	}

	t.collisions++

	return "", false
}

// Count returns the number of distinct payloads on record.
func (t *Tracker) Count() int {
	return len(t.seen)
}

// Collisions returns how many fingerprint collisions were seen.
func (t *Tracker) Collisions() int {
	return t.collisions
}
