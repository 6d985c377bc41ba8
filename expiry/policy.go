package expiry

import (
	"math/rand/v2"
	"time"
)

// Policy decides whether a timed entry written with the given deadline is
// expired at the given time.
type Policy interface {
	// Expired returns true if the entry must no longer be served.
	Expired(now, deadline time.Time) bool
}

// AfterDeadline expires an entry strictly after its deadline passes. A read
// at exactly the deadline still hits.
type AfterDeadline struct{}

var _ Policy = AfterDeadline{}

// Expired returns true when now is after the deadline.
func (AfterDeadline) Expired(now, deadline time.Time) bool {
	return now.After(deadline)
}

// Never keeps entries valid indefinitely, regardless of their deadline.
type Never struct{}

var _ Policy = Never{}

// Expired always returns false.
func (Never) Expired(now, deadline time.Time) bool {
	return false
}

// Jittered can expire an entry before its deadline. With probability Chance
// the deadline is treated as if it were Early sooner, which spreads refreshes
// of the same entry across callers instead of stampeding them at once.
type Jittered struct {
	// Early is how much sooner the entry may expire.
	Early time.Duration

	// Chance is the probability, in [0, 1], of applying the early deadline.
	Chance float64

	// Random is the random source used to roll the chance.
	// If nil, the system default generator is used. Set a seeded source for
	// deterministic behavior in tests.
	Random *rand.Rand
}

var _ Policy = (*Jittered)(nil)

// Expired applies the early deadline with probability Chance, and the real
// deadline otherwise.
func (p *Jittered) Expired(now, deadline time.Time) bool {
	if p.randFloat64() > p.Chance {
		return now.After(deadline)
	}
	return now.Add(p.Early).After(deadline)
}

func (p *Jittered) randFloat64() float64 {
	if p.Random == nil {
		return rand.Float64()
	}
	return p.Random.Float64()
}
