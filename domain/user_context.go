package domain

// StringSet is a membership-only set of identifiers.
type StringSet map[string]struct{}

// NewStringSet builds a set from the given values.
func NewStringSet(values ...string) StringSet {
	s := make(StringSet, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

func (s StringSet) Has(v string) bool {
	_, ok := s[v]
	return ok
}

func (s StringSet) Add(v string) {
	s[v] = struct{}{}
}

// Preferences holds the stored content-preference signals for one user.
type Preferences struct {
	Genres  StringSet
	ShowIDs StringSet
}

// UserContext is everything the scorer knows about the requesting user.
// A brand-new user legitimately has every set empty.
//
// PreferredGenres is loaded alongside the show preferences but the scoring
// algorithm does not read it; the signal is collected upstream and kept here
// so the context round-trips it unchanged.
type UserContext struct {
	UserID           string
	FollowingIDs     StringSet
	PreferredGenres  StringSet
	PreferredShowIDs StringSet
}
