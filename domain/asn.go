package domain

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// ASN identifies an Autonomous System by its number.
type ASN uint64

// ParseASN parses a base-10 AS number.
func ParseASN(s string) (ASN, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid AS number %q", s)
	}
	return ASN(n), nil
}

// Pair is an ordered AS tuple, stored exactly as authored in the feed.
type Pair struct {
	From ASN
	To   ASN
}

// Reversed returns the pair with its endpoints swapped.
func (pair Pair) Reversed() Pair {
	return Pair{From: pair.To, To: pair.From}
}

func (pair Pair) String() string {
	return fmt.Sprintf("%v-%v", pair.From, pair.To)
}
