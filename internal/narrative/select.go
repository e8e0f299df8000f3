package narrative

import (
	"math/rand"
	"time"
)

// SelectVariant picks one phrasing from an ordered variant list. With a seed
// the choice is a pure function of (options, seed): index = |seed| mod len.
// Without a seed a call-local generator picks freely; no process-wide random
// state is ever touched, so concurrent generations cannot observe each other.
func SelectVariant(options []string, seed *int64) string {
	if len(options) == 0 {
		return ""
	}
	if len(options) == 1 {
		return options[0]
	}
	if seed != nil {
		s := *seed
		if s < 0 {
			s = -s
		}
		return options[int(s%int64(len(options)))]
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return options[rng.Intn(len(options))]
}

// selectFrom is the composer-internal shorthand: look up a topic path and
// select one variant with the composition seed.
func (l *Library) selectFrom(seed *int64, parts ...string) string {
	return SelectVariant(l.Variants(parts...), seed)
}
