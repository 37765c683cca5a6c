package domain

import (
	"fmt"

	"github.com/pkg/errors"
)

// Relationship encodes the business relationship between an ordered pair of
// ASes, as seen from the perspective of the first AS in the pair.
type Relationship int8

const (
	// P2C means the first AS provides transit to the second.
	P2C Relationship = -1

	// P2P means the two ASes peer with each other.
	P2P Relationship = 0

	// C2P means the first AS is a customer of the second.  C2P never appears
	// in feed data; it only arises as the inverse view of a stored P2C.
	C2P Relationship = 1
)

var relationshipLabels = map[Relationship]string{
	P2C: "P2C",
	P2P: "P2P",
	C2P: "C2P",
}

func (rel Relationship) String() string {
	if label, ok := relationshipLabels[rel]; ok {
		return label
	}
	return fmt.Sprintf("Relationship(%v)", int8(rel))
}

// MarshalJSON emits the display label rather than the raw code.
func (rel Relationship) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", rel.String())), nil
}

// Inverse returns the same relationship as seen from the opposite direction.
// P2C and C2P mirror each other, P2P is its own inverse.
func (rel Relationship) Inverse() Relationship {
	return -rel
}

// ParseRelationship converts a raw feed code into a Relationship.  Feeds only
// ever carry P2C (-1) and P2P (0); anything else is rejected.
func ParseRelationship(code int) (Relationship, error) {
	switch rel := Relationship(code); rel {
	case P2C, P2P:
		return rel, nil
	}
	return P2P, errors.Errorf("invalid relationship code %v", code)
}
