package domain

import (
	"fmt"
)

// DataSource describes one contribution to the feed, as declared by the feed
// itself in a "# source:" header line.  Value semantics so it can key a set.
type DataSource struct {
	DType     string `json:"dtype"`
	Proto     string `json:"proto"`
	Date      int    `json:"date"`
	Feed      string `json:"feed"`
	Collector string `json:"collector"`
}

func (src DataSource) String() string {
	return fmt.Sprintf("%v|%v|%v|%v|%v", src.DType, src.Proto, src.Date, src.Feed, src.Collector)
}
