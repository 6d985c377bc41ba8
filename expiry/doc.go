// Package expiry provides policies that decide when a timed cache entry
// stops being served. Policies compare the current time, as reported by the
// store's injected clock, against the deadline recorded at write time.
package expiry
