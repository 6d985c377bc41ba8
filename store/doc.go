// Package store provides cache containers with validity tracking.
//
// ValidityStore distinguishes a stored-but-invalidated entry from a
// never-computed one: Invalidate stops serving every value without
// discarding it, which is a cheap bulk-miss when re-population always
// rewrites entries right after a miss. TimedStore additionally stamps each
// entry with a deadline from an injected clock, so reads past the deadline
// behave as absent.
//
// Both types plug into a memocache.Slot as per-method containers via
// memocache.WithContainer.
package store
