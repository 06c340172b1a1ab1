package entity

import (
	"bytes"

	"github.com/google/uuid"
)

// Pair is the unordered two-user key shared by proximity events, matches,
// friend requests and friendships. It is normalized on construction so that
// UserA always sorts before UserB; equality is then a plain value compare
// regardless of which user came first at the call site.
type Pair struct {
	UserA uuid.UUID `json:"user_a"` // The lexically smaller user ID.
	UserB uuid.UUID `json:"user_b"` // The lexically larger user ID.
}

// NewPair builds a normalized pair from two user IDs in either order.
func NewPair(a, b uuid.UUID) Pair {
	if bytes.Compare(a[:], b[:]) > 0 {
		a, b = b, a
	}

	return Pair{UserA: a, UserB: b}
}

// Contains reports whether id is one of the pair's users.
func (p Pair) Contains(id uuid.UUID) bool {
	return p.UserA == id || p.UserB == id
}

// Other returns the counterpart of id within the pair. The second return is
// false when id is not part of the pair.
func (p Pair) Other(id uuid.UUID) (uuid.UUID, bool) {
	switch id {
	case p.UserA:
		return p.UserB, true
	case p.UserB:
		return p.UserA, true
	}

	return uuid.Nil, false
}

// Users returns both user IDs in normalized order.
func (p Pair) Users() [2]uuid.UUID {
	return [2]uuid.UUID{p.UserA, p.UserB}
}
